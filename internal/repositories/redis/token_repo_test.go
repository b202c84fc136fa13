package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicehire/internal/repositories"
)

func newTestRepo(t *testing.T, ttl time.Duration) (*TokenRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewTokenRepo(rdb, ttl), mr
}

func TestIssueAndResolve(t *testing.T) {
	repo, _ := newTestRepo(t, time.Hour)
	ctx := context.Background()

	token, err := repo.Issue(ctx, "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := repo.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestResolve_UnknownToken(t *testing.T) {
	repo, _ := newTestRepo(t, time.Hour)

	_, err := repo.Resolve(context.Background(), "nope")

	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestRotate_OldTokenStopsWorking(t *testing.T) {
	repo, _ := newTestRepo(t, time.Hour)
	ctx := context.Background()

	old, err := repo.Issue(ctx, "user-1")
	require.NoError(t, err)

	next, userID, err := repo.Rotate(ctx, old)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.NotEqual(t, old, next)

	_, err = repo.Resolve(ctx, old)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	resolved, err := repo.Resolve(ctx, next)
	require.NoError(t, err)
	assert.Equal(t, "user-1", resolved)
}

func TestRevoke(t *testing.T) {
	repo, _ := newTestRepo(t, time.Hour)
	ctx := context.Background()

	token, err := repo.Issue(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, repo.Revoke(ctx, token))

	_, err = repo.Resolve(ctx, token)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestIssue_TokenExpires(t *testing.T) {
	repo, mr := newTestRepo(t, time.Minute)
	ctx := context.Background()

	token, err := repo.Issue(ctx, "user-1")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = repo.Resolve(ctx, token)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
