package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// postgres error codes
const (
	pgUniqueViolation     = pq.ErrorCode("23505")
	pgForeignKeyViolation = pq.ErrorCode("23503")
)

// translateError maps driver errors onto the package sentinels, keeping the cause wrapped.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w (%s)", op, ErrDuplicateKey, pqErr.Constraint)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w (%s)", op, ErrInvalidReference, pqErr.Constraint)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
