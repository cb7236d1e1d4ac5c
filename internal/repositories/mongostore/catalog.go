package mongostore

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	repository "github.com/aaravmahajanofficial/storefront-api/internal/repositories"
	"github.com/aaravmahajanofficial/storefront-api/internal/utils"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type categoryDoc struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Slug        string    `bson:"slug"`
	Description string    `bson:"description"`
	Image       string    `bson:"image"`
	IsActive    bool      `bson:"is_active"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (d *categoryDoc) model() (*models.Category, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("category id %q: %w", d.ID, err)
	}

	return &models.Category{
		ID: id, Name: d.Name, Slug: d.Slug, Description: d.Description, Image: d.Image,
		IsActive: d.IsActive, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}, nil
}

func newCategoryDoc(c *models.Category) *categoryDoc {
	return &categoryDoc{
		ID: c.ID.String(), Name: c.Name, Slug: c.Slug, Description: c.Description, Image: c.Image,
		IsActive: c.IsActive, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
	}
}

type brandDoc struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Slug        string    `bson:"slug"`
	Description string    `bson:"description"`
	Logo        string    `bson:"logo"`
	Website     string    `bson:"website"`
	IsActive    bool      `bson:"is_active"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (d *brandDoc) model() (*models.Brand, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("brand id %q: %w", d.ID, err)
	}

	return &models.Brand{
		ID: id, Name: d.Name, Slug: d.Slug, Description: d.Description, Logo: d.Logo, Website: d.Website,
		IsActive: d.IsActive, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}, nil
}

func newBrandDoc(b *models.Brand) *brandDoc {
	return &brandDoc{
		ID: b.ID.String(), Name: b.Name, Slug: b.Slug, Description: b.Description, Logo: b.Logo, Website: b.Website,
		IsActive: b.IsActive, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt,
	}
}

func activeFilter(includeInactive bool) bson.M {
	if includeInactive {
		return bson.M{}
	}

	return bson.M{"is_active": true}
}

var byName = options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

type categoryRepository struct {
	coll *mongo.Collection
}

func NewCategoryRepo(db *mongo.Database) repository.CategoryRepository {
	return &categoryRepository{coll: db.Collection(categoriesCollection)}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	category.ID = uuid.New()
	category.CreatedAt = now()
	category.UpdatedAt = category.CreatedAt

	_, err := r.coll.InsertOne(dbCtx, newCategoryDoc(category))

	return translateError("inserting category", err)
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return r.findOne(ctx, "querying category", bson.M{"_id": id.String()})
}

func (r *categoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return r.findOne(ctx, "querying category by slug", bson.M{"slug": slug})
}

func (r *categoryRepository) findOne(ctx context.Context, op string, filter bson.M) (*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var doc categoryDoc
	if err := r.coll.FindOne(dbCtx, filter).Decode(&doc); err != nil {
		return nil, translateError(op, err)
	}

	return doc.model()
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	category.UpdatedAt = now()

	return replaceByID(dbCtx, r.coll, "updating category", category.ID.String(), newCategoryDoc(category))
}

func (r *categoryRepository) ListCategories(ctx context.Context, includeInactive bool) ([]*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	cursor, err := r.coll.Find(dbCtx, activeFilter(includeInactive), byName)
	if err != nil {
		return nil, translateError("listing categories", err)
	}

	var docs []categoryDoc
	if err := cursor.All(dbCtx, &docs); err != nil {
		return nil, fmt.Errorf("decoding categories: %w", err)
	}

	categories := make([]*models.Category, 0, len(docs))
	for i := range docs {
		category, err := docs[i].model()
		if err != nil {
			return nil, err
		}

		categories = append(categories, category)
	}

	return categories, nil
}

type brandRepository struct {
	coll *mongo.Collection
}

func NewBrandRepo(db *mongo.Database) repository.BrandRepository {
	return &brandRepository{coll: db.Collection(brandsCollection)}
}

func (r *brandRepository) CreateBrand(ctx context.Context, brand *models.Brand) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	brand.ID = uuid.New()
	brand.CreatedAt = now()
	brand.UpdatedAt = brand.CreatedAt

	_, err := r.coll.InsertOne(dbCtx, newBrandDoc(brand))

	return translateError("inserting brand", err)
}

func (r *brandRepository) GetBrandByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	return r.findOne(ctx, "querying brand", bson.M{"_id": id.String()})
}

func (r *brandRepository) GetBrandBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	return r.findOne(ctx, "querying brand by slug", bson.M{"slug": slug})
}

func (r *brandRepository) findOne(ctx context.Context, op string, filter bson.M) (*models.Brand, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var doc brandDoc
	if err := r.coll.FindOne(dbCtx, filter).Decode(&doc); err != nil {
		return nil, translateError(op, err)
	}

	return doc.model()
}

func (r *brandRepository) UpdateBrand(ctx context.Context, brand *models.Brand) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	brand.UpdatedAt = now()

	return replaceByID(dbCtx, r.coll, "updating brand", brand.ID.String(), newBrandDoc(brand))
}

func (r *brandRepository) ListBrands(ctx context.Context, includeInactive bool) ([]*models.Brand, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	cursor, err := r.coll.Find(dbCtx, activeFilter(includeInactive), byName)
	if err != nil {
		return nil, translateError("listing brands", err)
	}

	var docs []brandDoc
	if err := cursor.All(dbCtx, &docs); err != nil {
		return nil, fmt.Errorf("decoding brands: %w", err)
	}

	brands := make([]*models.Brand, 0, len(docs))
	for i := range docs {
		brand, err := docs[i].model()
		if err != nil {
			return nil, err
		}

		brands = append(brands, brand)
	}

	return brands, nil
}
