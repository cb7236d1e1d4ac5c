package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront-api/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-api/internal/catalog"
	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	service "github.com/aaravmahajanofficial/storefront-api/internal/services"
	"github.com/aaravmahajanofficial/storefront-api/internal/utils"
	"github.com/aaravmahajanofficial/storefront-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	productService service.ProductService
	limits         catalog.Limits
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService, limits catalog.Limits) *ProductHandler {
	if limits.Default < 1 {
		limits = catalog.DefaultLimits()
	}

	return &ProductHandler{productService: productService, limits: limits, validator: validator.New()}
}

// ListProducts godoc
//	@Summary		List active products
//	@Description	Filters, searches, sorts and paginates the active catalog. Unknown category or brand slugs are ignored.
//	@Tags			Products
//	@Produce		json
//	@Param			page		query		int		false	"Page number (default: 1)"				minimum(1)
//	@Param			limit		query		int		false	"Items per page (default: 12, max: 100)"	minimum(1)
//	@Param			category	query		string	false	"Category slug"
//	@Param			brand		query		string	false	"Brand slug"
//	@Param			minPrice	query		number	false	"Lower price bound"
//	@Param			maxPrice	query		number	false	"Upper price bound"
//	@Param			search		query		string	false	"Case-insensitive text in name or description"
//	@Param			sort		query		string	false	"Sort order"	Enums(price-low, price-high, rating, newest)
//	@Success		200			{object}	models.ProductListResponse
//	@Failure		500			{object}	response.ErrorResponse	"Internal server error"
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		params := catalog.ParseListParams(r.URL.Query(), h.limits)

		products, err := h.productService.ListProducts(r.Context(), params)
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// ListAllProducts godoc
//	@Summary		List all products (Admin)
//	@Description	Same filters as the public listing, including inactive products.
//	@Tags			Admin
//	@Produce		json
//	@Param			page	query		int		false	"Page number (default: 1)"	minimum(1)
//	@Param			limit	query		int		false	"Items per page"			minimum(1)
//	@Param			search	query		string	false	"Case-insensitive text in name or description"
//	@Success		200		{object}	models.ProductListResponse
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse	"Admin role required"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/admin/products [get]
func (h *ProductHandler) ListAllProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		params := catalog.ParseListParams(r.URL.Query(), h.limits)

		products, err := h.productService.ListAllProducts(r.Context(), params)
		if err != nil {
			logger.Error("Failed to list all products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// FeaturedProducts godoc
//	@Summary	List featured products
//	@Tags		Products
//	@Produce	json
//	@Success	200	{array}		models.Product
//	@Failure	500	{object}	response.ErrorResponse	"Internal server error"
//	@Router		/products/featured [get]
func (h *ProductHandler) FeaturedProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products, err := h.productService.FeaturedProducts(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list featured products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// GetProduct godoc
//	@Summary		Get a product by ID
//	@Description	Inactive products are reported as not found.
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		string					true	"Product ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Product
//	@Failure		400	{object}	response.ErrorResponse	"Invalid product ID format"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		product, err := h.productService.GetProduct(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get product", slog.String("productId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// CreateProduct godoc
//	@Summary	Create a product (Admin)
//	@Tags		Products
//	@Accept		json
//	@Produce	json
//	@Param		product	body		models.CreateProductRequest	true	"Product details"
//	@Success	201		{object}	models.Product
//	@Failure	400		{object}	response.ErrorResponse	"Validation error, unknown category or brand, or duplicate name"
//	@Failure	401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure	403		{object}	response.ErrorResponse	"Admin role required"
//	@Failure	500		{object}	response.ErrorResponse	"Internal server error"
//	@Security	BearerAuth
//	@Router		/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create product input")
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product created successfully", slog.String("productId", product.ID.String()))
		response.Success(w, http.StatusCreated, product)
	}
}

// UpdateProduct godoc
//	@Summary		Update a product (Admin)
//	@Description	Only the fields present in the body are changed.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Product ID (UUID)"	Format(uuid)
//	@Param			product	body		models.UpdateProductRequest	true	"Fields to change"
//	@Success		200		{object}	models.Product
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or duplicate name"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse	"Admin role required"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/products/{id} [put]
func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.String("productId", id.String()))

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update product input")
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated successfully")
		response.Success(w, http.StatusOK, product)
	}
}

// DeleteProduct godoc
//	@Summary		Deactivate a product (Admin)
//	@Description	Soft delete: the product is hidden from the storefront but kept for order history.
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		string	true	"Product ID (UUID)"	Format(uuid)
//	@Success		200	{object}	response.MessageResponse
//	@Failure		400	{object}	response.ErrorResponse	"Invalid product ID format"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403	{object}	response.ErrorResponse	"Admin role required"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/products/{id} [delete]
func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
			logger.Error("Failed to delete product", slog.String("productId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Message(w, http.StatusOK, "Product removed")
	}
}
