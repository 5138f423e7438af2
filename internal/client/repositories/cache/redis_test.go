package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) *RedisRepository {
	t.Helper()
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisRepository(rdb, "session")
}

func TestRedisRepository_GetMissingKey(t *testing.T) {
	repo := setupRedis(t)

	got, err := repo.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRedisRepository_SetGet(t *testing.T) {
	repo := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("T")))
	got, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("T"), got)
}

func TestRedisRepository_SetMany(t *testing.T) {
	repo := setupRedis(t)
	ctx := context.Background()

	err := repo.SetMany(ctx, map[string][]byte{
		KeyToken: []byte("T"),
		KeyUser:  []byte(`{"id":7,"email":"a@b.com"}`),
	})
	require.NoError(t, err)

	token, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("T"), token)

	user, err := repo.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":7,"email":"a@b.com"}`, string(user))
}

func TestRedisRepository_DeleteAndClear(t *testing.T) {
	repo := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("T")))
	require.NoError(t, repo.Set(ctx, KeyUser, []byte("U")))

	require.NoError(t, repo.Delete(ctx, KeyToken))
	got, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, repo.Clear(ctx))
	got, err = repo.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.Nil(t, got)

	// A second clear on an empty cache is fine.
	require.NoError(t, repo.Clear(ctx))
}

func TestRedisRepository_PrefixIsolation(t *testing.T) {
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	a := NewRedisRepository(rdb, "a")
	b := NewRedisRepository(rdb, "b")
	ctx := context.Background()

	require.NoError(t, a.Set(ctx, KeyToken, []byte("TA")))
	require.NoError(t, b.Set(ctx, KeyToken, []byte("TB")))

	require.NoError(t, a.Clear(ctx))

	got, err := b.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("TB"), got, "clearing one prefix must not touch another")
}
