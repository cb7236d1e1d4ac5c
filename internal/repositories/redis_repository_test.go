package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront-api/internal/config"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the sliding window members carry a timestamp and a random suffix
func anyArgs(_, _ []interface{}) error { return nil }

func newRateLimitTestRepo(t *testing.T) (*redisRepository, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.Config{RateConfig: config.RateConfig{MaxAttempts: 3, WindowSize: time.Minute}}

	return &redisRepository{client: client, cfg: cfg}, mock
}

func expectWindow(mock redismock.ClientMock, key string, attempts int64) {
	mock.MatchExpectationsInOrder(true)
	mock.CustomMatch(anyArgs).ExpectZRemRangeByScore(key, "0", "0").SetVal(0)
	mock.CustomMatch(anyArgs).ExpectZAdd(key, redis.Z{}).SetVal(1)
	mock.ExpectZCard(key).SetVal(attempts)
	mock.ExpectExpire(key, time.Minute).SetVal(true)
}

func TestCheckLoginRateLimit(t *testing.T) {
	key := loginAttemptsKey("jane@example.com")

	t.Run("Within window", func(t *testing.T) {
		repo, mock := newRateLimitTestRepo(t)
		expectWindow(mock, key, 1)

		allowed, remaining, retryAfter, err := repo.CheckLoginRateLimit(t.Context(), "jane@example.com")

		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 2, remaining)
		assert.Zero(t, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Exactly at the limit is still allowed", func(t *testing.T) {
		repo, mock := newRateLimitTestRepo(t)
		expectWindow(mock, key, 3)

		allowed, remaining, _, err := repo.CheckLoginRateLimit(t.Context(), "jane@example.com")

		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Zero(t, remaining)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Over the limit", func(t *testing.T) {
		repo, mock := newRateLimitTestRepo(t)
		expectWindow(mock, key, 4)

		oldest := time.Now().Add(-20 * time.Second).Unix()
		mock.ExpectZRangeArgsWithScores(redis.ZRangeArgs{Key: key, Start: 0, Stop: 0}).
			SetVal([]redis.Z{{Score: float64(oldest), Member: "x"}})

		allowed, remaining, retryAfter, err := repo.CheckLoginRateLimit(t.Context(), "jane@example.com")

		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Zero(t, remaining)
		assert.InDelta(t, 40, retryAfter, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Pipeline failure", func(t *testing.T) {
		repo, mock := newRateLimitTestRepo(t)
		mock.CustomMatch(anyArgs).ExpectZRemRangeByScore(key, "0", "0").SetErr(errors.New("connection refused"))

		allowed, _, _, err := repo.CheckLoginRateLimit(t.Context(), "jane@example.com")

		require.Error(t, err)
		assert.False(t, allowed)
	})
}

func TestResetLoginRateLimit(t *testing.T) {
	repo, mock := newRateLimitTestRepo(t)
	mock.ExpectDel(loginAttemptsKey("jane@example.com")).SetVal(1)

	require.NoError(t, repo.ResetLoginRateLimit(t.Context(), "jane@example.com"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRevocation(t *testing.T) {
	repo, mock := newRateLimitTestRepo(t)

	mock.ExpectSet(revokedTokenKey("abc"), 1, 30*time.Minute).SetVal("OK")
	mock.ExpectExists(revokedTokenKey("abc")).SetVal(1)
	mock.ExpectExists(revokedTokenKey("other")).SetVal(0)
	mock.ExpectExists(revokedTokenKey("broken")).SetErr(errors.New("timeout"))

	require.NoError(t, repo.RevokeToken(t.Context(), "abc", 30*time.Minute))

	revoked, err := repo.IsTokenRevoked(t.Context(), "abc")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = repo.IsTokenRevoked(t.Context(), "other")
	require.NoError(t, err)
	assert.False(t, revoked)

	_, err = repo.IsTokenRevoked(t.Context(), "broken")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
