package sqlite

import (
	"context"
	"encoding/json"

	"github.com/novalend/console/internal/console/domain"
	"github.com/novalend/console/internal/console/store"
)

type userCacheRepo struct {
	db dbtx
}

// cacheKey derives the storage key from a user ID.
func cacheKey(userID string) string { return "user_" + userID }

func (r *userCacheRepo) Get(ctx context.Context, userID string) (domain.User, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM user_cache WHERE cache_key = ?`, cacheKey(userID)).
		Scan(&payload)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	var u domain.User
	if err := json.Unmarshal([]byte(payload), &u); err != nil {
		// Undecodable payloads are a miss, not an error.
		return domain.User{}, store.ErrNotFound
	}

	// A stale entry for a different record is a miss too.
	if u.ID != userID {
		return domain.User{}, store.ErrNotFound
	}

	return u, nil
}

func (r *userCacheRepo) Put(ctx context.Context, u domain.User) error {
	payload, err := json.Marshal(u)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO user_cache (cache_key, payload, created_at) VALUES (?, ?, ?)
		 ON CONFLICT (cache_key) DO UPDATE SET payload = excluded.payload`,
		cacheKey(u.ID), string(payload), now())
	return err
}

func (r *userCacheRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM user_cache WHERE cache_key = ?`, cacheKey(userID))
	return err
}
