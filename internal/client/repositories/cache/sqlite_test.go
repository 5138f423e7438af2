package cache

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session_cache (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_GetMissingKey(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	got, err := repo.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSQLiteRepository_SetGetOverwrite(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("T1")))
	got, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("T1"), got)

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("T2")))
	got, err = repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("T2"), got)
}

func TestSQLiteRepository_SetMany(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
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

func TestSQLiteRepository_DeleteAndClear(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("T")))
	require.NoError(t, repo.Set(ctx, KeyUser, []byte("U")))

	require.NoError(t, repo.Delete(ctx, KeyToken))
	got, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, repo.Clear(ctx))
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM session_cache`).Scan(&n))
	require.Equal(t, 0, n)
}

func TestSQLiteRepository_ClearIdempotent(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx))
}
