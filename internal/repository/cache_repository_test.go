package repository

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	appErrors "github.com/noah-isme/tutor-market/pkg/errors"
)

func TestCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil, "tutor-market", nil)
	ctx := context.Background()

	var dest map[string]string
	assert.ErrorIs(t, repo.Get(ctx, "k", &dest), appErrors.ErrCacheMiss)
	assert.NoError(t, repo.Set(ctx, "k", map[string]string{"a": "b"}, time.Minute))
	assert.NoError(t, repo.Close())
}

func TestCacheRepositoryPrefix(t *testing.T) {
	assert.Equal(t, "tutor-market:", NewCacheRepository(nil, "tutor-market", nil).prefix)
	assert.Equal(t, "app:", NewCacheRepository(nil, "app:", nil).prefix)
	assert.Equal(t, "", NewCacheRepository(nil, "", nil).prefix)
}

func TestCacheRepositoryUnreachableRedisIsNotAMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	repo := NewCacheRepository(client, "tutor-market", nil)
	defer repo.Close() //nolint:errcheck

	var dest map[string]string
	err := repo.Get(context.Background(), "k", &dest)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, appErrors.ErrCacheMiss)
}
