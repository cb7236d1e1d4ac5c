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

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// Quote godoc
//	@Summary		Price a cart
//	@Description	Prices client-held cart lines against current catalog prices and stock. Nothing is stored.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			cart	body		models.CartQuoteRequest	true	"Cart lines"
//	@Success		200		{object}	models.CartQuote
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or insufficient stock"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found or inactive"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/cart/quote [post]
func (h *CartHandler) Quote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CartQuoteRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid cart quote input")
			return
		}

		quote, err := h.cartService.Quote(r.Context(), &req)
		if err != nil {
			logger.Warn("Failed to quote cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, quote)
	}
}
