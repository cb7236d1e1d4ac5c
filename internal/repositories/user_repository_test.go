package repository_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	repository "github.com/aaravmahajanofficial/storefront-api/internal/repositories"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewUserRepo(db)
	ctx := t.Context()
	now := time.Now()

	t.Run("CreateUser", func(t *testing.T) {
		user := &models.User{Name: "Jane", Email: "jane@example.com", Password: "hash", Role: models.RoleAdmin}
		newID := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users(email, password, name, role, created_at, updated_at)`)).
			WithArgs("jane@example.com", "hash", "Jane", "admin").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(newID.String(), now, now))

		require.NoError(t, repo.CreateUser(ctx, user))
		assert.Equal(t, newID, user.ID)
		require.NoError(t, mock.ExpectationsWereMet())

		t.Run("Email taken", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
				WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

			err := repo.CreateUser(ctx, &models.User{Email: "JANE@example.com", Role: models.RoleUser})

			assert.ErrorIs(t, err, repository.ErrDuplicateKey)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetUserByEmail", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`WHERE lower(email) = lower($1)`)).
			WithArgs("Jane@Example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "name", "role", "created_at", "updated_at"}).
				AddRow(id.String(), "jane@example.com", "hash", "Jane", "user", now, now))

		user, err := repo.GetUserByEmail(ctx, "Jane@Example.com")

		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, models.RoleUser, user.Role)
		assert.Equal(t, "hash", user.Password)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetUserByID not found", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1`)).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "role", "created_at", "updated_at"}))

		user, err := repo.GetUserByID(ctx, id)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CountUsers", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users WHERE role = $1`)).
			WithArgs("user").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

		total, err := repo.CountUsers(ctx, models.RoleUser)

		require.NoError(t, err)
		assert.Equal(t, int64(42), total)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
