package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/storefront-api/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	service "github.com/aaravmahajanofficial/storefront-api/internal/services"
	"github.com/aaravmahajanofficial/storefront-api/internal/utils"
	"github.com/aaravmahajanofficial/storefront-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	validator       *validator.Validate
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, validator: validator.New()}
}

// ListCategories godoc
//	@Summary	List active categories
//	@Tags		Categories
//	@Produce	json
//	@Success	200	{array}		models.Category
//	@Failure	500	{object}	response.ErrorResponse	"Internal server error"
//	@Router		/categories [get]
func (h *CategoryHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.categoryService.ListCategories(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list categories", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}

// GetCategory godoc
//	@Summary	Get an active category by slug
//	@Tags		Categories
//	@Produce	json
//	@Param		slug	path		string	true	"Category slug"
//	@Success	200		{object}	models.Category
//	@Failure	404		{object}	response.ErrorResponse	"Category not found"
//	@Failure	500		{object}	response.ErrorResponse	"Internal server error"
//	@Router		/categories/{slug} [get]
func (h *CategoryHandler) GetCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		slug := strings.ToLower(r.PathValue("slug"))

		category, err := h.categoryService.GetCategoryBySlug(r.Context(), slug)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to get category", slog.String("slug", slug), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, category)
	}
}

// CreateCategory godoc
//	@Summary	Create a category (Admin)
//	@Tags		Categories
//	@Accept		json
//	@Produce	json
//	@Param		category	body		models.CreateCategoryRequest	true	"Category details"
//	@Success	201			{object}	models.Category
//	@Failure	400			{object}	response.ErrorResponse	"Validation error or duplicate name"
//	@Failure	401			{object}	response.ErrorResponse	"Authentication required"
//	@Failure	403			{object}	response.ErrorResponse	"Admin role required"
//	@Failure	500			{object}	response.ErrorResponse	"Internal server error"
//	@Security	BearerAuth
//	@Router		/categories [post]
func (h *CategoryHandler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create category input")
			return
		}

		category, err := h.categoryService.CreateCategory(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create category", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, category)
	}
}

// UpdateCategory godoc
//	@Summary	Update a category (Admin)
//	@Tags		Categories
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string							true	"Category ID (UUID)"	Format(uuid)
//	@Param		category	body		models.UpdateCategoryRequest	true	"Fields to change"
//	@Success	200			{object}	models.Category
//	@Failure	400			{object}	response.ErrorResponse	"Validation error or duplicate name"
//	@Failure	401			{object}	response.ErrorResponse	"Authentication required"
//	@Failure	403			{object}	response.ErrorResponse	"Admin role required"
//	@Failure	404			{object}	response.ErrorResponse	"Category not found"
//	@Failure	500			{object}	response.ErrorResponse	"Internal server error"
//	@Security	BearerAuth
//	@Router		/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateCategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update category input")
			return
		}

		category, err := h.categoryService.UpdateCategory(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update category", slog.String("categoryId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, category)
	}
}

// DeleteCategory godoc
//	@Summary	Deactivate a category (Admin)
//	@Tags		Categories
//	@Produce	json
//	@Param		id	path		string	true	"Category ID (UUID)"	Format(uuid)
//	@Success	200	{object}	response.MessageResponse
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure	403	{object}	response.ErrorResponse	"Admin role required"
//	@Failure	404	{object}	response.ErrorResponse	"Category not found"
//	@Failure	500	{object}	response.ErrorResponse	"Internal server error"
//	@Security	BearerAuth
//	@Router		/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.categoryService.DeleteCategory(r.Context(), id); err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to delete category", slog.String("categoryId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Message(w, http.StatusOK, "Category removed")
	}
}

type BrandHandler struct {
	brandService service.BrandService
	validator    *validator.Validate
}

func NewBrandHandler(brandService service.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService, validator: validator.New()}
}

// ListBrands godoc
//	@Summary	List active brands
//	@Tags		Brands
//	@Produce	json
//	@Success	200	{array}		models.Brand
//	@Failure	500	{object}	response.ErrorResponse	"Internal server error"
//	@Router		/brands [get]
func (h *BrandHandler) ListBrands() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		brands, err := h.brandService.ListBrands(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list brands", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, brands)
	}
}

// GetBrand godoc
//	@Summary	Get an active brand by slug
//	@Tags		Brands
//	@Produce	json
//	@Param		slug	path		string	true	"Brand slug"
//	@Success	200		{object}	models.Brand
//	@Failure	404		{object}	response.ErrorResponse	"Brand not found"
//	@Failure	500		{object}	response.ErrorResponse	"Internal server error"
//	@Router		/brands/{slug} [get]
func (h *BrandHandler) GetBrand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		slug := strings.ToLower(r.PathValue("slug"))

		brand, err := h.brandService.GetBrandBySlug(r.Context(), slug)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to get brand", slog.String("slug", slug), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, brand)
	}
}

// CreateBrand godoc
//	@Summary	Create a brand (Admin)
//	@Tags		Brands
//	@Accept		json
//	@Produce	json
//	@Param		brand	body		models.CreateBrandRequest	true	"Brand details"
//	@Success	201		{object}	models.Brand
//	@Failure	400		{object}	response.ErrorResponse	"Validation error or duplicate name"
//	@Failure	401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure	403		{object}	response.ErrorResponse	"Admin role required"
//	@Failure	500		{object}	response.ErrorResponse	"Internal server error"
//	@Security	BearerAuth
//	@Router		/brands [post]
func (h *BrandHandler) CreateBrand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateBrandRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create brand input")
			return
		}

		brand, err := h.brandService.CreateBrand(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create brand", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, brand)
	}
}

// UpdateBrand godoc
//	@Summary	Update a brand (Admin)
//	@Tags		Brands
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Brand ID (UUID)"	Format(uuid)
//	@Param		brand	body		models.UpdateBrandRequest	true	"Fields to change"
//	@Success	200		{object}	models.Brand
//	@Failure	400		{object}	response.ErrorResponse	"Validation error or duplicate name"
//	@Failure	401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure	403		{object}	response.ErrorResponse	"Admin role required"
//	@Failure	404		{object}	response.ErrorResponse	"Brand not found"
//	@Failure	500		{object}	response.ErrorResponse	"Internal server error"
//	@Security	BearerAuth
//	@Router		/brands/{id} [put]
func (h *BrandHandler) UpdateBrand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateBrandRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update brand input")
			return
		}

		brand, err := h.brandService.UpdateBrand(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update brand", slog.String("brandId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, brand)
	}
}

// DeleteBrand godoc
//	@Summary	Deactivate a brand (Admin)
//	@Tags		Brands
//	@Produce	json
//	@Param		id	path		string	true	"Brand ID (UUID)"	Format(uuid)
//	@Success	200	{object}	response.MessageResponse
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure	403	{object}	response.ErrorResponse	"Admin role required"
//	@Failure	404	{object}	response.ErrorResponse	"Brand not found"
//	@Failure	500	{object}	response.ErrorResponse	"Internal server error"
//	@Security	BearerAuth
//	@Router		/brands/{id} [delete]
func (h *BrandHandler) DeleteBrand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.brandService.DeleteBrand(r.Context(), id); err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to delete brand", slog.String("brandId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Message(w, http.StatusOK, "Brand removed")
	}
}
