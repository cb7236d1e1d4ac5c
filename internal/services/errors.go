package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aaravmahajanofficial/storefront-api/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/storefront-api/internal/errors"
	repository "github.com/aaravmahajanofficial/storefront-api/internal/repositories"
)

// storeError maps a repository failure onto the client facing error taxonomy.
func storeError(err error, notFound, duplicate, fallback string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return appErrors.NotFoundError(notFound).WithError(err)
	case errors.Is(err, repository.ErrDuplicateKey):
		return appErrors.DuplicateEntryError(duplicate).WithError(err)
	case errors.Is(err, repository.ErrInvalidReference):
		return appErrors.BadRequestError("Referenced record does not exist").WithError(err)
	default:
		return appErrors.DatabaseError(fallback).WithError(err)
	}
}

// cache failures never fail a request
func logCacheError(ctx context.Context, op, key string, err error) {
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Cache "+op+" failed", slog.String("key", key), slog.Any("error", err))
	}
}
