// Package mongostore keeps the catalog (products, categories and brands) in MongoDB.
// Users and orders stay in postgres regardless of the catalog driver.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/storefront-api/internal/config"
	repository "github.com/aaravmahajanofficial/storefront-api/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	productsCollection   = "products"
	categoriesCollection = "categories"
	brandsCollection     = "brands"
)

type Store struct {
	client *mongo.Client
	DB     *mongo.Database
}

func Connect(ctx context.Context, cfg config.Mongo) (*Store, error) {

	timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(timeoutCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(timeoutCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	slog.Info("✅ Successfully connected to MongoDB", slog.String("database", cfg.Database))

	return &Store{client: client, DB: client.Database(cfg.Database)}, nil
}

// EnsureIndexes creates the unique indexes backing name and slug uniqueness.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{Keys: bson.D{{Key: field, Value: 1}}, Options: options.Index().SetUnique(true)}
	}

	indexes := map[string][]mongo.IndexModel{
		productsCollection: {
			unique("name"),
			{Keys: bson.D{{Key: "category_id", Value: 1}}},
			{Keys: bson.D{{Key: "brand_id", Value: 1}}},
			{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "is_featured", Value: -1}, {Key: "created_at", Value: -1}}},
		},
		categoriesCollection: {unique("name"), unique("slug")},
		brandsCollection:     {unique("name"), unique("slug")},
	}

	for name, models := range indexes {
		if _, err := s.DB.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("creating indexes on %s: %w", name, err)
		}
	}

	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}

	return nil
}

// translateError maps driver errors onto the repository sentinels.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", op, repository.ErrDuplicateKey)
	}

	return fmt.Errorf("%s: %w", op, err)
}

// replaceByID saves a whole document; a missing _id is ErrNotFound.
func replaceByID(ctx context.Context, coll *mongo.Collection, op, id string, doc any) error {
	res, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return translateError(op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

// mongo keeps millisecond precision
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
