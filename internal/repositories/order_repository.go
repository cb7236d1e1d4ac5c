package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	"github.com/aaravmahajanofficial/storefront-api/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type OrderRepository interface {
	ListOrders(ctx context.Context) ([]*models.Order, error)
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, order *models.Order) error
	OrderStats(ctx context.Context) (*OrderStats, error)
}

type OrderStats struct {
	TotalOrders    int64
	TotalRevenue   float64
	MonthlyRevenue []models.MonthlyRevenue
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

const orderSelect = `
	SELECT o.id, o.total_price, o.status, o.is_delivered, o.delivered_at, o.created_at, o.updated_at,
	       u.id, u.name, u.email
	FROM orders o
	JOIN users u ON u.id = o.user_id`

// ListOrders returns every order, newest first, with its buyer and line items.
func (r *orderRepository) ListOrders(ctx context.Context) ([]*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, orderSelect+` ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, translateError("listing orders", err)
	}
	defer rows.Close()

	orders := []*models.Order{}
	byID := make(map[uuid.UUID]*models.Order)

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}

		orders = append(orders, order)
		byID[order.ID] = order
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err := r.attachItems(dbCtx, byID); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order, err := scanOrder(r.DB.QueryRowContext(dbCtx, orderSelect+` WHERE o.id = $1`, id))
	if err != nil {
		return nil, translateError("querying order", err)
	}

	if err := r.attachItems(dbCtx, map[uuid.UUID]*models.Order{order.ID: order}); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, order *models.Order) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE orders SET status = $1, is_delivered = $2, delivered_at = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at`

	var deliveredAt sql.NullTime
	if order.DeliveredAt != nil {
		deliveredAt = sql.NullTime{Time: *order.DeliveredAt, Valid: true}
	}

	err := r.DB.QueryRowContext(dbCtx, query, order.Status, order.IsDelivered, deliveredAt, order.ID).Scan(&order.UpdatedAt)

	return translateError("updating order status", err)
}

// OrderStats aggregates revenue over all orders, grouped by creation month ascending.
func (r *orderRepository) OrderStats(ctx context.Context) (*OrderStats, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	stats := &OrderStats{MonthlyRevenue: []models.MonthlyRevenue{}}

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*), COALESCE(SUM(total_price), 0) FROM orders`).Scan(&stats.TotalOrders, &stats.TotalRevenue)
	if err != nil {
		return nil, translateError("aggregating orders", err)
	}

	query := `
		SELECT to_char(created_at, 'YYYY-MM') AS month, SUM(total_price), COUNT(*)
		FROM orders
		GROUP BY month
		ORDER BY month ASC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, translateError("aggregating monthly revenue", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.MonthlyRevenue
		if err := rows.Scan(&m.Month, &m.Revenue, &m.Orders); err != nil {
			return nil, fmt.Errorf("scanning monthly revenue: %w", err)
		}

		stats.MonthlyRevenue = append(stats.MonthlyRevenue, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating monthly revenue: %w", err)
	}

	return stats, nil
}

func (r *orderRepository) attachItems(ctx context.Context, orders map[uuid.UUID]*models.Order) error {

	ids := make([]string, 0, len(orders))
	for id := range orders {
		ids = append(ids, id.String())
	}

	query := `
		SELECT order_id, product_id, name, quantity, price
		FROM order_items
		WHERE order_id = ANY($1::uuid[])`

	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return translateError("querying order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		var item models.OrderItem

		if err := rows.Scan(&orderID, &item.ProductID, &item.Name, &item.Quantity, &item.Price); err != nil {
			return fmt.Errorf("scanning order item: %w", err)
		}

		if order, ok := orders[orderID]; ok {
			order.OrderItems = append(order.OrderItems, item)
		}
	}

	return rows.Err()
}

func scanOrder(row rowScanner) (*models.Order, error) {
	order := &models.Order{User: &models.OrderUser{}, OrderItems: []models.OrderItem{}}

	var deliveredAt sql.NullTime

	err := row.Scan(&order.ID, &order.TotalPrice, &order.Status, &order.IsDelivered, &deliveredAt, &order.CreatedAt, &order.UpdatedAt,
		&order.User.ID, &order.User.Name, &order.User.Email)
	if err != nil {
		return nil, err
	}

	if deliveredAt.Valid {
		order.DeliveredAt = &deliveredAt.Time
	}

	return order, nil
}
