package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront-api/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	service "github.com/aaravmahajanofficial/storefront-api/internal/services"
	"github.com/aaravmahajanofficial/storefront-api/internal/utils"
	"github.com/aaravmahajanofficial/storefront-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AdminHandler struct {
	adminService service.AdminService
	validator    *validator.Validate
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService, validator: validator.New()}
}

// Stats godoc
//	@Summary		Dashboard statistics (Admin)
//	@Description	Active product count, order count, customer count, total revenue and revenue per month.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	models.DashboardStats
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403	{object}	response.ErrorResponse	"Admin role required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/admin/stats [get]
func (h *AdminHandler) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		stats, err := h.adminService.DashboardStats(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to compute dashboard stats", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, stats)
	}
}

// ListOrders godoc
//	@Summary	List all orders (Admin)
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{array}		models.Order
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure	403	{object}	response.ErrorResponse	"Admin role required"
//	@Failure	500	{object}	response.ErrorResponse	"Internal server error"
//	@Security	BearerAuth
//	@Router		/admin/orders [get]
func (h *AdminHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		orders, err := h.adminService.ListOrders(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list orders", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, orders)
	}
}

// UpdateOrderStatus godoc
//	@Summary		Update order status (Admin)
//	@Description	Setting Delivered also marks the order delivered with the current time.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Order ID (UUID)"	Format(uuid)
//	@Param			status	body		models.UpdateOrderStatusRequest	true	"New Order Status"
//	@Success		200		{object}	models.Order
//	@Failure		400		{object}	response.ErrorResponse	"Invalid order ID format or invalid status value"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse	"Admin role required"
//	@Failure		404		{object}	response.ErrorResponse	"Order not found"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/admin/orders/{id}/status [put]
func (h *AdminHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.String("orderId", id.String()))

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update order status input")
			return
		}

		order, err := h.adminService.UpdateOrderStatus(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update order status", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order status updated successfully", slog.String("newStatus", string(req.Status)))
		response.Success(w, http.StatusOK, order)
	}
}
