package mongostore

import (
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront-api/internal/catalog"
	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	repository "github.com/aaravmahajanofficial/storefront-api/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const productsNS = "storefront.products"

func productBSON(id, categoryID, brandID uuid.UUID, name string) bson.D {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return bson.D{
		{Key: "_id", Value: id.String()},
		{Key: "name", Value: name},
		{Key: "description", Value: "Soft cotton"},
		{Key: "price", Value: 25.0},
		{Key: "category_id", Value: categoryID.String()},
		{Key: "brand_id", Value: brandID.String()},
		{Key: "images", Value: bson.A{"a.jpg"}},
		{Key: "colors", Value: bson.A{bson.D{{Key: "name", Value: "Red"}, {Key: "color_value", Value: "#f00"}}}},
		{Key: "stock", Value: int32(4)},
		{Key: "is_active", Value: true},
		{Key: "created_at", Value: now},
		{Key: "updated_at", Value: now},
		{Key: "category", Value: bson.A{bson.D{{Key: "_id", Value: categoryID.String()}, {Key: "name", Value: "Tops"}, {Key: "slug", Value: "tops"}}}},
		{Key: "brand", Value: bson.A{bson.D{{Key: "_id", Value: brandID.String()}, {Key: "name", Value: "Acme"}, {Key: "slug", Value: "acme"}}}},
	}
}

func countResponse(n int64) bson.D {
	return mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch, bson.D{{Key: "n", Value: n}})
}

func TestProductRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	categoryID, brandID := uuid.New(), uuid.New()

	mt.Run("CreateProduct", func(mt *mtest.T) {
		repo := NewProductRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		product := &models.Product{Name: "Tee", Price: 25, CategoryID: categoryID, BrandID: brandID, IsActive: true}
		require.NoError(mt, repo.CreateProduct(mt.Context(), product))

		assert.NotEqual(mt, uuid.Nil, product.ID)
		doc := mt.GetStartedEvent().Command.Lookup("documents").Array().Index(0).Value().Document()
		assert.Equal(mt, categoryID.String(), doc.Lookup("category_id").StringValue())
		_, err := doc.LookupErr("original_price")
		assert.Error(mt, err, "unset original price is omitted")
	})

	mt.Run("CreateProduct duplicate name", func(mt *mtest.T) {
		repo := NewProductRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "E11000 duplicate key error"}))

		err := repo.CreateProduct(mt.Context(), &models.Product{Name: "Tee"})

		assert.ErrorIs(mt, err, repository.ErrDuplicateKey)
	})

	mt.Run("GetProductByID expands refs", func(mt *mtest.T) {
		repo := NewProductRepo(mt.DB)
		id := uuid.New()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch, productBSON(id, categoryID, brandID, "Tee")))

		product, err := repo.GetProductByID(mt.Context(), id)

		require.NoError(mt, err)
		assert.Equal(mt, id, product.ID)
		assert.Equal(mt, &models.CatalogRef{ID: categoryID, Name: "Tops", Slug: "tops"}, product.Category)
		assert.Equal(mt, "acme", product.Brand.Slug)
		assert.Equal(mt, []models.Color{{Name: "Red", ColorValue: "#f00"}}, product.Colors)
		assert.Equal(mt, []string{}, product.Sizes)
		assert.Equal(mt, 4, product.Stock)
		assert.Equal(mt, "aggregate", mt.GetStartedEvent().CommandName)
	})

	mt.Run("GetProductByID not found", func(mt *mtest.T) {
		repo := NewProductRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch))

		_, err := repo.GetProductByID(mt.Context(), uuid.New())

		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("GetProductsByIDs empty input", func(mt *mtest.T) {
		repo := NewProductRepo(mt.DB)

		products, err := repo.GetProductsByIDs(mt.Context(), nil)

		require.NoError(mt, err)
		assert.Empty(mt, products)
		assert.Nil(mt, mt.GetStartedEvent())
	})

	mt.Run("UpdateProduct missing", func(mt *mtest.T) {
		repo := NewProductRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := repo.UpdateProduct(mt.Context(), &models.Product{ID: uuid.New(), Name: "Tee"})

		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("ListProducts", func(mt *mtest.T) {
		repo := NewProductRepo(mt.DB)
		mt.AddMockResponses(
			countResponse(3),
			mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch,
				productBSON(uuid.New(), categoryID, brandID, "Tee"),
				productBSON(uuid.New(), categoryID, brandID, "Polo"),
			),
		)

		products, total, err := repo.ListProducts(mt.Context(), catalog.Query{Limit: 2, Offset: 0, Sort: catalog.SortPriceLow})

		require.NoError(mt, err)
		assert.Equal(mt, int64(3), total)
		assert.Len(mt, products, 2)
	})

	mt.Run("ListProducts past the last page", func(mt *mtest.T) {
		repo := NewProductRepo(mt.DB)
		mt.AddMockResponses(countResponse(3))

		products, total, err := repo.ListProducts(mt.Context(), catalog.Query{Limit: 12, Offset: 12})

		require.NoError(mt, err)
		assert.Equal(mt, int64(3), total)
		assert.NotNil(mt, products)
		assert.Empty(mt, products)
	})

	mt.Run("CountProducts", func(mt *mtest.T) {
		repo := NewProductRepo(mt.DB)
		mt.AddMockResponses(countResponse(7))

		total, err := repo.CountProducts(mt.Context(), true)

		require.NoError(mt, err)
		assert.Equal(mt, int64(7), total)
	})
}

func TestBuildProductFilter(t *testing.T) {
	categoryID := uuid.New()
	minPrice, maxPrice := 10.0, 50.0

	t.Run("Public default", func(t *testing.T) {
		assert.Equal(t, bson.M{"is_active": true}, buildProductFilter(catalog.Query{}))
	})

	t.Run("Admin listing has no active filter", func(t *testing.T) {
		assert.Empty(t, buildProductFilter(catalog.Query{IncludeInactive: true}))
	})

	t.Run("All filters", func(t *testing.T) {
		filter := buildProductFilter(catalog.Query{
			CategoryID:   &categoryID,
			MinPrice:     &minPrice,
			MaxPrice:     &maxPrice,
			FeaturedOnly: true,
			Search:       "t-shirt (v2)",
		})

		assert.Equal(t, true, filter["is_featured"])
		assert.Equal(t, categoryID.String(), filter["category_id"])
		assert.NotContains(t, filter, "brand_id")
		assert.Equal(t, bson.M{"$gte": 10.0, "$lte": 50.0}, filter["price"])

		pattern := primitive.Regex{Pattern: `t-shirt \(v2\)`, Options: "i"}
		assert.Equal(t, bson.A{bson.M{"name": pattern}, bson.M{"description": pattern}}, filter["$or"])
	})

	t.Run("Only a lower bound", func(t *testing.T) {
		filter := buildProductFilter(catalog.Query{MinPrice: &minPrice})
		assert.Equal(t, bson.M{"$gte": 10.0}, filter["price"])
	})
}

func TestProductSort(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, productSort(catalog.SortPriceLow))
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, productSort(catalog.SortPriceHigh))
	assert.Equal(t, bson.D{{Key: "rating", Value: -1}}, productSort(catalog.SortRating))
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}}, productSort(catalog.SortNewest))
	assert.Equal(t, bson.D{{Key: "is_featured", Value: -1}, {Key: "created_at", Value: -1}}, productSort(catalog.SortDefault))
}
