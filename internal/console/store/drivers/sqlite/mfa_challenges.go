package sqlite

import (
	"context"

	"github.com/novalend/console/internal/console/domain"
)

type mfaChallengesRepo struct {
	db dbtx
}

func (r *mfaChallengesRepo) CreateMFAChallenge(ctx context.Context, c domain.MFAChallenge) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO mfa_challenges (token_hash, admin_id, attempts, expires_at, created_at)
		 VALUES (?, ?, 0, ?, ?)`,
		c.TokenHash, c.AdminID, c.ExpiresAt.UTC(), now())
	return err
}

func (r *mfaChallengesRepo) GetMFAChallenge(ctx context.Context, tokenHash string) (domain.MFAChallenge, error) {
	var c domain.MFAChallenge
	err := r.db.QueryRowContext(ctx,
		`SELECT token_hash, admin_id, attempts, expires_at, created_at
		 FROM mfa_challenges WHERE token_hash = ? AND expires_at > ?`,
		tokenHash, now()).
		Scan(&c.TokenHash, &c.AdminID, &c.Attempts, &c.ExpiresAt, &c.CreatedAt)
	if err != nil {
		return domain.MFAChallenge{}, mapNotFound(err)
	}
	return c, nil
}

func (r *mfaChallengesRepo) IncrementMFAChallengeAttempts(ctx context.Context, tokenHash string) (domain.MFAChallenge, error) {
	_, err := r.db.ExecContext(ctx,
		`UPDATE mfa_challenges SET attempts = attempts + 1 WHERE token_hash = ?`,
		tokenHash)
	if err != nil {
		return domain.MFAChallenge{}, err
	}
	return r.GetMFAChallenge(ctx, tokenHash)
}

func (r *mfaChallengesRepo) DeleteMFAChallenge(ctx context.Context, tokenHash string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM mfa_challenges WHERE token_hash = ?`, tokenHash)
	return err
}

func (r *mfaChallengesRepo) DeleteExpiredMFAChallenges(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM mfa_challenges WHERE expires_at < ?`, now())
	return err
}
