package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/storefront-api/internal/api/handlers"
	"github.com/aaravmahajanofficial/storefront-api/internal/catalog"
	appErrors "github.com/aaravmahajanofficial/storefront-api/internal/errors"
	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	"github.com/aaravmahajanofficial/storefront-api/internal/services/mocks"
	"github.com/aaravmahajanofficial/storefront-api/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListProducts(t *testing.T) {
	t.Run("Success - Query parsed", func(t *testing.T) {
		svc := mocks.NewProductService(t)
		h := handlers.NewProductHandler(svc, catalog.DefaultLimits())

		minPrice := 10.0
		svc.On("ListProducts", mock.Anything, catalog.ListParams{
			Page:         2,
			Limit:        100,
			CategorySlug: "hats",
			MinPrice:     &minPrice,
			Search:       "wool",
			Sort:         catalog.SortPriceLow,
		}).Return(&models.ProductListResponse{Products: []*models.Product{}, CurrentPage: 2}, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/api/v1/products?page=2&limit=500&category=Hats&minPrice=10&maxPrice=abc&search=wool&sort=price-low", "", nil)

		h.ListProducts().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"products": [], "currentPage": 2, "totalPages": 0, "totalProducts": 0}`, rr.Body.String())
	})

	t.Run("Success - Unset limits fall back to defaults", func(t *testing.T) {
		svc := mocks.NewProductService(t)
		h := handlers.NewProductHandler(svc, catalog.Limits{})

		svc.On("ListProducts", mock.Anything, catalog.ListParams{Page: 1, Limit: catalog.MaxLimit}).
			Return(&models.ProductListResponse{Products: []*models.Product{}, CurrentPage: 1}, nil).Once()

		rr := httptest.NewRecorder()
		h.ListProducts().ServeHTTP(rr, testutils.NewRequest(http.MethodGet, "/api/v1/products?limit=5000", "", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Service error masked", func(t *testing.T) {
		svc := mocks.NewProductService(t)
		h := handlers.NewProductHandler(svc, catalog.DefaultLimits())

		svc.On("ListProducts", mock.Anything, mock.Anything).Return(nil, appErrors.DatabaseError("Failed to fetch products")).Once()

		rr := httptest.NewRecorder()
		h.ListProducts().ServeHTTP(rr, testutils.NewRequest(http.MethodGet, "/api/v1/products", "", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"code": "INTERNAL_ERROR", "message": "Server error"}`, rr.Body.String())
	})

	t.Run("Admin listing", func(t *testing.T) {
		svc := mocks.NewProductService(t)
		h := handlers.NewProductHandler(svc, catalog.DefaultLimits())

		svc.On("ListAllProducts", mock.Anything, mock.MatchedBy(func(p catalog.ListParams) bool {
			return p.Page == 1 && p.Limit == catalog.DefaultLimit
		})).Return(&models.ProductListResponse{Products: []*models.Product{}}, nil).Once()

		rr := httptest.NewRecorder()
		h.ListAllProducts().ServeHTTP(rr, testutils.NewAuthenticatedRequest(http.MethodGet, "/api/v1/admin/products", "", uuid.New(), models.RoleAdmin, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestFeaturedProducts(t *testing.T) {
	svc := mocks.NewProductService(t)
	h := handlers.NewProductHandler(svc, catalog.DefaultLimits())

	svc.On("FeaturedProducts", mock.Anything).Return([]*models.Product{{ID: uuid.New(), Name: "Cap", IsFeatured: true}}, nil).Once()

	rr := httptest.NewRecorder()
	h.FeaturedProducts().ServeHTTP(rr, testutils.NewRequest(http.MethodGet, "/api/v1/products/featured", "", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &products))
	assert.Len(t, products, 1)
}

func TestGetProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewProductService(t)
		h := handlers.NewProductHandler(svc, catalog.DefaultLimits())
		product := &models.Product{ID: uuid.New(), Name: "Cap", IsActive: true}

		svc.On("GetProduct", mock.Anything, product.ID).Return(product, nil).Once()

		rr := httptest.NewRecorder()
		h.GetProduct().ServeHTTP(rr, testutils.NewRequest(http.MethodGet, "/", "", map[string]string{"id": product.ID.String()}))

		require.Equal(t, http.StatusOK, rr.Code)

		var got models.Product
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, product.ID, got.ID)
	})

	t.Run("Invalid id", func(t *testing.T) {
		h := handlers.NewProductHandler(mocks.NewProductService(t), catalog.DefaultLimits())

		rr := httptest.NewRecorder()
		h.GetProduct().ServeHTTP(rr, testutils.NewRequest(http.MethodGet, "/", "", map[string]string{"id": "42"}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"code": "BAD_REQUEST", "message": "Invalid ID format"}`, rr.Body.String())
	})

	t.Run("Not found", func(t *testing.T) {
		svc := mocks.NewProductService(t)
		h := handlers.NewProductHandler(svc, catalog.DefaultLimits())
		id := uuid.New()

		svc.On("GetProduct", mock.Anything, id).Return(nil, appErrors.NotFoundError("Product not found")).Once()

		rr := httptest.NewRecorder()
		h.GetProduct().ServeHTTP(rr, testutils.NewRequest(http.MethodGet, "/", "", map[string]string{"id": id.String()}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"code": "NOT_FOUND", "message": "Product not found"}`, rr.Body.String())
	})
}

func TestCreateProduct(t *testing.T) {
	categoryID, brandID := uuid.New(), uuid.New()
	validBody := `{"name": "Wool Cap", "description": "Warm", "price": 29.99, "category": "` + categoryID.String() + `", "brand": "` + brandID.String() + `", "stock": 5}`

	t.Run("Success - Product Created", func(t *testing.T) {
		svc := mocks.NewProductService(t)
		h := handlers.NewProductHandler(svc, catalog.DefaultLimits())
		created := &models.Product{ID: uuid.New(), Name: "Wool Cap", Price: 29.99, IsActive: true}

		svc.On("CreateProduct", mock.Anything, mock.MatchedBy(func(req *models.CreateProductRequest) bool {
			return req.Name == "Wool Cap" && req.Category == categoryID && req.Brand == brandID && req.Stock == 5
		})).Return(created, nil).Once()

		rr := httptest.NewRecorder()
		h.CreateProduct().ServeHTTP(rr, testutils.NewAuthenticatedRequest(http.MethodPost, "/api/v1/products", validBody, uuid.New(), models.RoleAdmin, nil))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), created.ID.String())
	})

	t.Run("Invalid Input - Bad JSON", func(t *testing.T) {
		h := handlers.NewProductHandler(mocks.NewProductService(t), catalog.DefaultLimits())

		rr := httptest.NewRecorder()
		h.CreateProduct().ServeHTTP(rr, testutils.NewRequest(http.MethodPost, "/api/v1/products", "{invalid json", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Invalid Input - Unknown field", func(t *testing.T) {
		h := handlers.NewProductHandler(mocks.NewProductService(t), catalog.DefaultLimits())
		body := `{"name": "Wool Cap", "description": "Warm", "category": "` + categoryID.String() + `", "brand": "` + brandID.String() + `", "isAdmin": true}`

		rr := httptest.NewRecorder()
		h.CreateProduct().ServeHTTP(rr, testutils.NewRequest(http.MethodPost, "/api/v1/products", body, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Invalid Input - Validation Error", func(t *testing.T) {
		h := handlers.NewProductHandler(mocks.NewProductService(t), catalog.DefaultLimits())

		rr := httptest.NewRecorder()
		h.CreateProduct().ServeHTTP(rr, testutils.NewRequest(http.MethodPost, "/api/v1/products", `{"name": "W", "price": -1}`, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "VALIDATION_ERROR", body["code"])
		assert.NotEmpty(t, body["details"])
	})

	t.Run("Invalid Input - Price beyond column range", func(t *testing.T) {
		h := handlers.NewProductHandler(mocks.NewProductService(t), catalog.DefaultLimits())
		body := `{"name": "Wool Cap", "description": "Warm", "price": 10000000000, "category": "` + categoryID.String() + `", "brand": "` + brandID.String() + `", "stock": 5}`

		rr := httptest.NewRecorder()
		h.CreateProduct().ServeHTTP(rr, testutils.NewRequest(http.MethodPost, "/api/v1/products", body, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("Failure - Duplicate name", func(t *testing.T) {
		svc := mocks.NewProductService(t)
		h := handlers.NewProductHandler(svc, catalog.DefaultLimits())

		svc.On("CreateProduct", mock.Anything, mock.Anything).Return(nil, appErrors.DuplicateEntryError("Product with this name already exists")).Once()

		rr := httptest.NewRecorder()
		h.CreateProduct().ServeHTTP(rr, testutils.NewRequest(http.MethodPost, "/api/v1/products", validBody, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"code": "DUPLICATE_ENTRY", "message": "Product with this name already exists"}`, rr.Body.String())
	})
}

func TestUpdateProduct(t *testing.T) {
	t.Run("Success - Partial update", func(t *testing.T) {
		svc := mocks.NewProductService(t)
		h := handlers.NewProductHandler(svc, catalog.DefaultLimits())
		id := uuid.New()

		svc.On("UpdateProduct", mock.Anything, id, mock.MatchedBy(func(req *models.UpdateProductRequest) bool {
			return req.Price != nil && *req.Price == 19.5 && req.Name == nil
		})).Return(&models.Product{ID: id, Price: 19.5}, nil).Once()

		rr := httptest.NewRecorder()
		h.UpdateProduct().ServeHTTP(rr, testutils.NewRequest(http.MethodPut, "/", `{"price": 19.5}`, map[string]string{"id": id.String()}))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		svc := mocks.NewProductService(t)
		h := handlers.NewProductHandler(svc, catalog.DefaultLimits())
		id := uuid.New()

		svc.On("UpdateProduct", mock.Anything, id, mock.Anything).Return(nil, appErrors.NotFoundError("Product not found")).Once()

		rr := httptest.NewRecorder()
		h.UpdateProduct().ServeHTTP(rr, testutils.NewRequest(http.MethodPut, "/", `{"stock": 3}`, map[string]string{"id": id.String()}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteProduct(t *testing.T) {
	svc := mocks.NewProductService(t)
	h := handlers.NewProductHandler(svc, catalog.DefaultLimits())
	id := uuid.New()

	svc.On("DeleteProduct", mock.Anything, id).Return(nil).Once()

	rr := httptest.NewRecorder()
	h.DeleteProduct().ServeHTTP(rr, testutils.NewRequest(http.MethodDelete, "/", "", map[string]string{"id": id.String()}))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message": "Product removed"}`, rr.Body.String())
}
