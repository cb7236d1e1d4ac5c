package repository_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	repository "github.com/aaravmahajanofficial/storefront-api/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderColumns = []string{"id", "total_price", "status", "is_delivered", "delivered_at", "created_at", "updated_at", "id", "name", "email"}

func TestOrderRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewOrderRepository(db)
	ctx := t.Context()
	now := time.Now()

	t.Run("ListOrders", func(t *testing.T) {
		first, second := uuid.New(), uuid.New()
		userID := uuid.New()
		productID := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`JOIN users u ON u.id = o.user_id ORDER BY o.created_at DESC`)).
			WillReturnRows(sqlmock.NewRows(orderColumns).
				AddRow(first.String(), 120.5, "Pending", false, nil, now, now, userID.String(), "Jane", "jane@example.com").
				AddRow(second.String(), 30.0, "Delivered", true, now, now.Add(-time.Hour), now, userID.String(), "Jane", "jane@example.com"))

		mock.ExpectQuery(regexp.QuoteMeta(`FROM order_items WHERE order_id = ANY($1::uuid[])`)).
			WillReturnRows(sqlmock.NewRows([]string{"order_id", "product_id", "name", "quantity", "price"}).
				AddRow(first.String(), productID.String(), "Tee", 2, 60.25).
				AddRow(second.String(), productID.String(), "Tee", 1, 30.0))

		orders, err := repo.ListOrders(ctx)

		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, first, orders[0].ID)
		assert.Equal(t, models.OrderStatusPending, orders[0].Status)
		assert.Nil(t, orders[0].DeliveredAt)
		assert.Equal(t, "Jane", orders[0].User.Name)
		require.Len(t, orders[0].OrderItems, 1)
		assert.Equal(t, 2, orders[0].OrderItems[0].Quantity)
		assert.True(t, orders[1].IsDelivered)
		require.NotNil(t, orders[1].DeliveredAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListOrders empty skips items query", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY o.created_at DESC`)).
			WillReturnRows(sqlmock.NewRows(orderColumns))

		orders, err := repo.ListOrders(ctx)

		require.NoError(t, err)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetOrderByID not found", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`WHERE o.id = $1`)).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(orderColumns))

		_, err := repo.GetOrderByID(ctx, id)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdateOrderStatus", func(t *testing.T) {
		delivered := now.Add(-time.Minute)
		order := &models.Order{ID: uuid.New(), Status: models.OrderStatusDelivered, IsDelivered: true, DeliveredAt: &delivered}

		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE orders SET status = $1, is_delivered = $2, delivered_at = $3`)).
			WithArgs("Delivered", true, delivered, order.ID).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

		require.NoError(t, repo.UpdateOrderStatus(ctx, order))
		assert.Equal(t, now, order.UpdatedAt)
		require.NoError(t, mock.ExpectationsWereMet())

		t.Run("Unknown order", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(`UPDATE orders SET`)).
				WithArgs("Processing", false, nil, sqlmock.AnyArg()).
				WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

			err := repo.UpdateOrderStatus(ctx, &models.Order{ID: uuid.New(), Status: models.OrderStatusProcessing})

			assert.ErrorIs(t, err, repository.ErrNotFound)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("OrderStats", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*), COALESCE(SUM(total_price), 0) FROM orders`)).
			WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(3, 250.0))
		mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY month ORDER BY month ASC`)).
			WillReturnRows(sqlmock.NewRows([]string{"month", "sum", "count"}).
				AddRow("2024-01", 100.0, 1).
				AddRow("2024-02", 150.0, 2))

		stats, err := repo.OrderStats(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.TotalOrders)
		assert.InDelta(t, 250.0, stats.TotalRevenue, 0.001)
		require.Len(t, stats.MonthlyRevenue, 2)
		assert.Equal(t, "2024-01", stats.MonthlyRevenue[0].Month)
		assert.Equal(t, int64(2), stats.MonthlyRevenue[1].Orders)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("OrderStats with no orders", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`COALESCE(SUM(total_price), 0)`)).
			WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(0, 0.0))
		mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY month`)).
			WillReturnRows(sqlmock.NewRows([]string{"month", "sum", "count"}))

		stats, err := repo.OrderStats(ctx)

		require.NoError(t, err)
		assert.Zero(t, stats.TotalOrders)
		assert.NotNil(t, stats.MonthlyRevenue)
		assert.Empty(t, stats.MonthlyRevenue)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
