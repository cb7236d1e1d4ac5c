package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/storefront-api/internal/config"
	"github.com/aaravmahajanofficial/storefront-api/internal/utils"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	_ "github.com/lib/pq"
)

//go:embed schema.sql
var schema string

type Repository struct {
	DB *sql.DB
}

// New opens the traced postgres pool and verifies it is reachable.
func New(cfg *config.Config) (*Repository, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	ctx, cancel := utils.WithDBTimeout(context.Background())
	defer cancel()

	// Test the connection to make sure DB is reachable
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("✅ Successfully connected to PostgreSQL", slog.String("host", cfg.Database.Host), slog.String("database", cfg.Database.Name))

	return &Repository{DB: db}, nil
}

// EnsureSchema creates missing tables and indexes. Every statement is idempotent.
func (p *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := p.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}

func (p *Repository) Close() error {
	return p.DB.Close()
}
