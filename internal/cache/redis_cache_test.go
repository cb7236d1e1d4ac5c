package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront-api/internal/cache"
	"github.com/aaravmahajanofficial/storefront-api/internal/config"
	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (cache.Cache, redismock.ClientMock, *config.CacheConfig) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.CacheConfig{
		DefaultTTL: 10 * time.Minute,
	}

	return cache.NewRedisCache(client, cfg), mock, cfg
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	product := models.Product{ID: uuid.New(), Name: "Wool Cap", Price: 29.99, Images: []string{}, IsActive: true}
	testKey := cache.Key(cache.ProductKeyPrefix, product.ID.String())

	jsonData, err := json.Marshal(product)
	require.NoError(t, err)

	t.Run("Hit", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(testKey).SetVal(string(jsonData))

		var result models.Product
		found, err := redisCache.Get(ctx, testKey, &result)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, product.ID, result.ID)
		assert.Equal(t, product.Name, result.Name)
		assert.InDelta(t, product.Price, result.Price, 0.0001)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Miss", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(testKey).SetErr(redis.Nil)

		var result models.Product
		found, err := redisCache.Get(ctx, testKey, &result)

		require.NoError(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		expectedErr := errors.New("redis connection error")
		mock.ExpectGet(testKey).SetErr(expectedErr)

		var result models.Product
		found, err := redisCache.Get(ctx, testKey, &result)

		require.Error(t, err)
		assert.False(t, found)
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Corrupt entry", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(testKey).SetVal(`{"price":"free"}`)

		var result models.Product
		found, err := redisCache.Get(ctx, testKey, &result)

		require.Error(t, err)
		assert.False(t, found)

		var jsonErr *json.UnmarshalTypeError
		assert.ErrorAs(t, err, &jsonErr)
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	testKey := cache.ActiveCategoriesKey
	value := []models.Category{{ID: uuid.New(), Name: "Hats", Slug: "hats", IsActive: true}}

	jsonData, err := json.Marshal(value)
	require.NoError(t, err)

	t.Run("Explicit TTL", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectSet(testKey, jsonData, 5*time.Minute).SetVal("OK")

		require.NoError(t, redisCache.Set(ctx, testKey, value, 5*time.Minute))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Default TTL", func(t *testing.T) {
		redisCache, mock, cfg := setup(t)
		mock.ExpectSet(testKey, jsonData, cfg.DefaultTTL).SetVal("OK")

		require.NoError(t, redisCache.Set(ctx, testKey, value, 0))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Marshal error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		err := redisCache.Set(ctx, testKey, make(chan int), time.Minute)

		var jsonErr *json.UnsupportedTypeError
		require.ErrorAs(t, err, &jsonErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		expectedErr := errors.New("redis SET failed")
		mock.ExpectSet(testKey, jsonData, time.Minute).SetErr(expectedErr)

		err := redisCache.Set(ctx, testKey, value, time.Minute)

		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()
	productKey := cache.Key(cache.ProductKeyPrefix, uuid.NewString())

	t.Run("Several keys", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectDel(productKey, cache.ActiveBrandsKey).SetVal(2)

		require.NoError(t, redisCache.Delete(ctx, productKey, cache.ActiveBrandsKey))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No keys", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		require.NoError(t, redisCache.Delete(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		expectedErr := errors.New("redis DEL failed")
		mock.ExpectDel(productKey).SetErr(expectedErr)

		err := redisCache.Delete(ctx, productKey)

		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeletePrefix(t *testing.T) {
	ctx := t.Context()
	first, second := cache.Key(cache.ProductKeyPrefix, "a"), cache.Key(cache.ProductKeyPrefix, "b")

	t.Run("Walks every scan page", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectScan(0, "product:*", 100).SetVal([]string{first}, 7)
		mock.ExpectDel(first).SetVal(1)
		mock.ExpectScan(7, "product:*", 100).SetVal([]string{second}, 0)
		mock.ExpectDel(second).SetVal(1)

		require.NoError(t, redisCache.DeletePrefix(ctx, cache.ProductKeyPrefix))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nothing cached", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectScan(0, "product:*", 100).SetVal([]string{}, 0)

		require.NoError(t, redisCache.DeletePrefix(ctx, cache.ProductKeyPrefix))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Scan error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		expectedErr := errors.New("redis SCAN failed")
		mock.ExpectScan(0, "product:*", 100).SetErr(expectedErr)

		assert.ErrorIs(t, redisCache.DeletePrefix(ctx, cache.ProductKeyPrefix), expectedErr)
	})
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "product:abc", cache.Key(cache.ProductKeyPrefix, "abc"))
	assert.Equal(t, "category:list:active", cache.ActiveCategoriesKey)
	assert.Equal(t, "brand:list:active", cache.ActiveBrandsKey)
}
