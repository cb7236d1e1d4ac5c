package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/storefront-api/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/storefront-api/internal/errors"
	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	repository "github.com/aaravmahajanofficial/storefront-api/internal/repositories"
	"github.com/google/uuid"
)

type AdminService interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	ListOrders(ctx context.Context) ([]*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, req *models.UpdateOrderStatusRequest) (*models.Order, error)
}

type adminService struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	users    repository.UserRepository
	now      func() time.Time
}

func NewAdminService(products repository.ProductRepository, orders repository.OrderRepository, users repository.UserRepository) AdminService {
	return &adminService{products: products, orders: orders, users: users, now: time.Now}
}

// DashboardStats counts active products, all orders and customer accounts; admins are not counted as users.
func (s *adminService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {

	totalProducts, err := s.products.CountProducts(ctx, true)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to count products").WithError(err)
	}

	totalUsers, err := s.users.CountUsers(ctx, models.RoleUser)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to count users").WithError(err)
	}

	orderStats, err := s.orders.OrderStats(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to aggregate orders").WithError(err)
	}

	monthly := orderStats.MonthlyRevenue
	if monthly == nil {
		monthly = []models.MonthlyRevenue{}
	}

	return &models.DashboardStats{
		TotalProducts:  totalProducts,
		TotalOrders:    orderStats.TotalOrders,
		TotalUsers:     totalUsers,
		TotalRevenue:   orderStats.TotalRevenue,
		MonthlyRevenue: monthly,
	}, nil
}

func (s *adminService) ListOrders(ctx context.Context) ([]*models.Order, error) {

	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, nil
}

// UpdateOrderStatus marks Delivered orders as delivered now. Other statuses leave the delivery record as it was.
func (s *adminService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, req *models.UpdateOrderStatusRequest) (*models.Order, error) {

	order, err := s.orders.GetOrderByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Order not found", "", "Failed to fetch order")
	}

	order.Status = req.Status

	if req.Status == models.OrderStatusDelivered {
		if !order.IsDelivered {
			deliveredAt := s.now().UTC()
			order.DeliveredAt = &deliveredAt
		}
		order.IsDelivered = true
	}

	if err := s.orders.UpdateOrderStatus(ctx, order); err != nil {
		return nil, storeError(err, "Order not found", "", "Failed to update order")
	}

	middleware.LoggerFromContext(ctx).Info("Order status updated", slog.String("orderID", id.String()), slog.String("status", string(order.Status)))

	return order, nil
}
