package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/novalend/console/internal/console/domain"
	"github.com/novalend/console/internal/console/store"
)

func TestUserCachePutGet(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := domain.User{
		ID:             "u-42",
		Organization:   "Lendsqr",
		Username:       "Adedeji",
		AccountBalance: "200000.50",
		Status:         domain.UserStatusActive,
		Guarantors:     []domain.Guarantor{{FullName: "Debby Ogana"}},
	}
	require.NoError(t, st.UserCache().Put(ctx, u))

	got, err := st.UserCache().Get(ctx, "u-42")
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestUserCacheMissingKey(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	_, err := st.UserCache().Get(ctx, "u-404")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserCachePutOverwrites(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	require.NoError(t, st.UserCache().Put(ctx, domain.User{ID: "u-1", Username: "old"}))
	require.NoError(t, st.UserCache().Put(ctx, domain.User{ID: "u-1", Username: "new"}))

	got, err := st.UserCache().Get(ctx, "u-1")
	require.NoError(t, err)
	require.Equal(t, "new", got.Username)
}

func TestUserCacheMismatchedPayloadIsAMiss(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	// Plant a row whose payload belongs to a different user than the key.
	_, err := st.db.ExecContext(ctx,
		`INSERT INTO user_cache (cache_key, payload, created_at) VALUES (?, ?, ?)`,
		"user_u-1", `{"id":"u-9","username":"stale"}`, now())
	require.NoError(t, err)

	_, err = st.UserCache().Get(ctx, "u-1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserCacheUndecodablePayloadIsAMiss(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	_, err := st.db.ExecContext(ctx,
		`INSERT INTO user_cache (cache_key, payload, created_at) VALUES (?, ?, ?)`,
		"user_u-1", `{{not json`, now())
	require.NoError(t, err)

	_, err = st.UserCache().Get(ctx, "u-1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserCacheDelete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	require.NoError(t, st.UserCache().Put(ctx, domain.User{ID: "u-1"}))
	require.NoError(t, st.UserCache().Delete(ctx, "u-1"))

	_, err := st.UserCache().Get(ctx, "u-1")
	require.ErrorIs(t, err, store.ErrNotFound)
}
