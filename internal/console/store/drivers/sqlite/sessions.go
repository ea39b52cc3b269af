package sqlite

import (
	"context"

	"github.com/novalend/console/internal/console/domain"
)

type sessionsRepo struct {
	db dbtx
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	ts := now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, admin_id, expires_at, revoked, created_at, updated_at)
		 VALUES (?, ?, ?, 0, ?, ?)`,
		s.ID, s.AdminID, s.ExpiresAt.UTC(), ts, ts)
	return err
}

func (r *sessionsRepo) GetSessionByID(ctx context.Context, id string) (domain.Session, error) {
	var s domain.Session
	err := r.db.QueryRowContext(ctx,
		`SELECT id, admin_id, expires_at, revoked, created_at, updated_at
		 FROM sessions WHERE id = ?`, id).
		Scan(&s.ID, &s.AdminID, &s.ExpiresAt, &s.Revoked, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return s, nil
}

func (r *sessionsRepo) RevokeSession(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET revoked = 1, updated_at = ? WHERE id = ?`,
		now(), id)
	return err
}

func (r *sessionsRepo) RevokeAllAdminSessions(ctx context.Context, adminID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET revoked = 1, updated_at = ? WHERE admin_id = ? AND revoked = 0`,
		now(), adminID)
	return err
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at < ?`, now())
	return err
}
