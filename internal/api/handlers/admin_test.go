package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront-api/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/storefront-api/internal/errors"
	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	"github.com/aaravmahajanofficial/storefront-api/internal/services/mocks"
	"github.com/aaravmahajanofficial/storefront-api/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminStats(t *testing.T) {
	svc := mocks.NewAdminService(t)
	h := handlers.NewAdminHandler(svc)

	svc.On("DashboardStats", mock.Anything).Return(&models.DashboardStats{
		TotalProducts:  3,
		TotalOrders:    2,
		TotalUsers:     5,
		TotalRevenue:   150.5,
		MonthlyRevenue: []models.MonthlyRevenue{{Month: "2026-09", Revenue: 150.5, Orders: 2}},
	}, nil).Once()

	rr := httptest.NewRecorder()
	h.Stats().ServeHTTP(rr, testutils.NewAuthenticatedRequest(http.MethodGet, "/api/v1/admin/stats", "", uuid.New(), models.RoleAdmin, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"totalProducts": 3,
		"totalOrders": 2,
		"totalUsers": 5,
		"totalRevenue": 150.5,
		"monthlyRevenue": [{"_id": "2026-09", "revenue": 150.5, "orders": 2}]
	}`, rr.Body.String())
}

func TestAdminListOrders(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewAdminService(t)
		h := handlers.NewAdminHandler(svc)

		svc.On("ListOrders", mock.Anything).Return([]*models.Order{{ID: uuid.New(), Status: models.OrderStatusPending}}, nil).Once()

		rr := httptest.NewRecorder()
		h.ListOrders().ServeHTTP(rr, testutils.NewAuthenticatedRequest(http.MethodGet, "/api/v1/admin/orders", "", uuid.New(), models.RoleAdmin, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"Pending"`)
	})

	t.Run("Failure", func(t *testing.T) {
		svc := mocks.NewAdminService(t)
		h := handlers.NewAdminHandler(svc)

		svc.On("ListOrders", mock.Anything).Return(nil, appErrors.DatabaseError("Failed to fetch orders")).Once()

		rr := httptest.NewRecorder()
		h.ListOrders().ServeHTTP(rr, testutils.NewAuthenticatedRequest(http.MethodGet, "/api/v1/admin/orders", "", uuid.New(), models.RoleAdmin, nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"code": "INTERNAL_ERROR", "message": "Server error"}`, rr.Body.String())
	})
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	t.Run("Delivered", func(t *testing.T) {
		svc := mocks.NewAdminService(t)
		h := handlers.NewAdminHandler(svc)
		id := uuid.New()
		now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

		svc.On("UpdateOrderStatus", mock.Anything, id, &models.UpdateOrderStatusRequest{Status: models.OrderStatusDelivered}).
			Return(&models.Order{ID: id, Status: models.OrderStatusDelivered, IsDelivered: true, DeliveredAt: &now}, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewAuthenticatedRequest(http.MethodPut, "/", `{"status": "Delivered"}`, uuid.New(), models.RoleAdmin, map[string]string{"id": id.String()})
		h.UpdateOrderStatus().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"isDelivered":true`)
		assert.Contains(t, rr.Body.String(), `"deliveredAt":"2026-10-01T12:00:00Z"`)
	})

	t.Run("Unknown status", func(t *testing.T) {
		h := handlers.NewAdminHandler(mocks.NewAdminService(t))

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodPut, "/", `{"status": "Lost"}`, map[string]string{"id": uuid.NewString()})
		h.UpdateOrderStatus().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("Order not found", func(t *testing.T) {
		svc := mocks.NewAdminService(t)
		h := handlers.NewAdminHandler(svc)
		id := uuid.New()

		svc.On("UpdateOrderStatus", mock.Anything, id, mock.Anything).Return(nil, appErrors.NotFoundError("Order not found")).Once()

		rr := httptest.NewRecorder()
		h.UpdateOrderStatus().ServeHTTP(rr, testutils.NewRequest(http.MethodPut, "/", `{"status": "Shipped"}`, map[string]string{"id": id.String()}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"code": "NOT_FOUND", "message": "Order not found"}`, rr.Body.String())
	})
}
