package mongostore

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/aaravmahajanofficial/storefront-api/internal/catalog"
	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	repository "github.com/aaravmahajanofficial/storefront-api/internal/repositories"
	"github.com/aaravmahajanofficial/storefront-api/internal/utils"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type colorDoc struct {
	Name       string `bson:"name"`
	ColorValue string `bson:"color_value"`
}

type refDoc struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`
	Slug string `bson:"slug"`
}

type productDoc struct {
	ID            string     `bson:"_id"`
	Name          string     `bson:"name"`
	Description   string     `bson:"description"`
	Price         float64    `bson:"price"`
	OriginalPrice *float64   `bson:"original_price,omitempty"`
	CategoryID    string     `bson:"category_id"`
	BrandID       string     `bson:"brand_id"`
	Images        []string   `bson:"images"`
	Sizes         []string   `bson:"sizes"`
	Colors        []colorDoc `bson:"colors"`
	Features      []string   `bson:"features"`
	Stock         int        `bson:"stock"`
	Rating        float64    `bson:"rating"`
	NumReviews    int        `bson:"num_reviews"`
	Badge         string     `bson:"badge"`
	IsFeatured    bool       `bson:"is_featured"`
	IsActive      bool       `bson:"is_active"`
	CreatedAt     time.Time  `bson:"created_at"`
	UpdatedAt     time.Time  `bson:"updated_at"`

	// filled by $lookup, never stored
	Category []refDoc `bson:"category,omitempty"`
	Brand    []refDoc `bson:"brand,omitempty"`
}

func newProductDoc(p *models.Product) *productDoc {
	colors := make([]colorDoc, 0, len(p.Colors))
	for _, c := range p.Colors {
		colors = append(colors, colorDoc{Name: c.Name, ColorValue: c.ColorValue})
	}

	return &productDoc{
		ID: p.ID.String(), Name: p.Name, Description: p.Description, Price: p.Price, OriginalPrice: p.OriginalPrice,
		CategoryID: p.CategoryID.String(), BrandID: p.BrandID.String(),
		Images: nonNil(p.Images), Sizes: nonNil(p.Sizes), Colors: colors, Features: nonNil(p.Features),
		Stock: p.Stock, Rating: p.Rating, NumReviews: p.NumReviews, Badge: p.Badge,
		IsFeatured: p.IsFeatured, IsActive: p.IsActive, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}
}

func (d *productDoc) model() (*models.Product, error) {
	var ids [3]uuid.UUID
	for i, raw := range []string{d.ID, d.CategoryID, d.BrandID} {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("product %s: bad id %q: %w", d.ID, raw, err)
		}

		ids[i] = id
	}

	colors := make([]models.Color, 0, len(d.Colors))
	for _, c := range d.Colors {
		colors = append(colors, models.Color{Name: c.Name, ColorValue: c.ColorValue})
	}

	p := &models.Product{
		ID: ids[0], Name: d.Name, Description: d.Description, Price: d.Price, OriginalPrice: d.OriginalPrice,
		CategoryID: ids[1], BrandID: ids[2],
		Images: nonNil(d.Images), Sizes: nonNil(d.Sizes), Colors: colors, Features: nonNil(d.Features),
		Stock: d.Stock, Rating: d.Rating, NumReviews: d.NumReviews, Badge: d.Badge,
		IsFeatured: d.IsFeatured, IsActive: d.IsActive, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}

	p.Category = &models.CatalogRef{ID: p.CategoryID}
	if len(d.Category) > 0 {
		p.Category.Name, p.Category.Slug = d.Category[0].Name, d.Category[0].Slug
	}

	p.Brand = &models.CatalogRef{ID: p.BrandID}
	if len(d.Brand) > 0 {
		p.Brand.Name, p.Brand.Slug = d.Brand[0].Name, d.Brand[0].Slug
	}

	return p, nil
}

type productRepository struct {
	coll *mongo.Collection
}

func NewProductRepo(db *mongo.Database) repository.ProductRepository {
	return &productRepository{coll: db.Collection(productsCollection)}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product.ID = uuid.New()
	product.CreatedAt = now()
	product.UpdatedAt = product.CreatedAt

	_, err := r.coll.InsertOne(dbCtx, newProductDoc(product))

	return translateError("inserting product", err)
}

func (r *productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	products, err := r.aggregate(dbCtx, expand(bson.D{{Key: "$match", Value: bson.M{"_id": id.String()}}}))
	if err != nil {
		return nil, translateError("querying product", err)
	}

	if len(products) == 0 {
		return nil, fmt.Errorf("querying product: %w", repository.ErrNotFound)
	}

	return products[0], nil
}

func (r *productRepository) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Product, error) {
	if len(ids) == 0 {
		return []*models.Product{}, nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	products, err := r.aggregate(dbCtx, expand(bson.D{{Key: "$match", Value: bson.M{"_id": bson.M{"$in": keys}}}}))
	if err != nil {
		return nil, translateError("querying products by id", err)
	}

	return products, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product.UpdatedAt = now()

	return replaceByID(dbCtx, r.coll, "updating product", product.ID.String(), newProductDoc(product))
}

func (r *productRepository) ListProducts(ctx context.Context, q catalog.Query) ([]*models.Product, int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	filter := buildProductFilter(q)

	total, err := r.coll.CountDocuments(dbCtx, filter)
	if err != nil {
		return nil, 0, translateError("counting products", err)
	}

	if total == 0 || int64(q.Offset) >= total {
		return []*models.Product{}, total, nil
	}

	products, err := r.aggregate(dbCtx, expand(
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$sort", Value: productSort(q.Sort)}},
		bson.D{{Key: "$skip", Value: int64(q.Offset)}},
		bson.D{{Key: "$limit", Value: int64(q.Limit)}},
	))
	if err != nil {
		return nil, 0, translateError("listing products", err)
	}

	return products, total, nil
}

func (r *productRepository) CountProducts(ctx context.Context, activeOnly bool) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	total, err := r.coll.CountDocuments(dbCtx, filter)
	if err != nil {
		return 0, translateError("counting products", err)
	}

	return total, nil
}

func (r *productRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*models.Product, error) {
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}

	products := make([]*models.Product, 0, len(docs))
	for i := range docs {
		product, err := docs[i].model()
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	return products, nil
}

// expand appends the category and brand lookups to the given stages.
func expand(stages ...bson.D) mongo.Pipeline {
	lookup := func(from, local, as string) bson.D {
		return bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: from},
			{Key: "localField", Value: local},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: as},
		}}}
	}

	return append(mongo.Pipeline(stages),
		lookup(categoriesCollection, "category_id", "category"),
		lookup(brandsCollection, "brand_id", "brand"),
	)
}

func buildProductFilter(q catalog.Query) bson.M {
	filter := bson.M{}

	if !q.IncludeInactive {
		filter["is_active"] = true
	}

	if q.FeaturedOnly {
		filter["is_featured"] = true
	}

	if q.CategoryID != nil {
		filter["category_id"] = q.CategoryID.String()
	}

	if q.BrandID != nil {
		filter["brand_id"] = q.BrandID.String()
	}

	if q.MinPrice != nil || q.MaxPrice != nil {
		price := bson.M{}
		if q.MinPrice != nil {
			price["$gte"] = *q.MinPrice
		}
		if q.MaxPrice != nil {
			price["$lte"] = *q.MaxPrice
		}
		filter["price"] = price
	}

	// user input is matched literally
	if q.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}
	}

	return filter
}

func productSort(sort catalog.SortKey) bson.D {
	switch sort {
	case catalog.SortPriceLow:
		return bson.D{{Key: "price", Value: 1}}
	case catalog.SortPriceHigh:
		return bson.D{{Key: "price", Value: -1}}
	case catalog.SortRating:
		return bson.D{{Key: "rating", Value: -1}}
	case catalog.SortNewest:
		return bson.D{{Key: "created_at", Value: -1}}
	default:
		return bson.D{{Key: "is_featured", Value: -1}, {Key: "created_at", Value: -1}}
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
