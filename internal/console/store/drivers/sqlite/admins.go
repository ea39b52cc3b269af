package sqlite

import (
	"context"
	"database/sql"

	"github.com/novalend/console/internal/console/domain"
)

type adminsRepo struct {
	db dbtx
}

const adminColumns = `id, email, password_hash, mfa_enabled, mfa_secret, created_at, updated_at`

func (r *adminsRepo) GetAdminByID(ctx context.Context, id string) (domain.Admin, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE id = ?`, id)
	return scanAdmin(row)
}

func (r *adminsRepo) GetAdminByEmail(ctx context.Context, email string) (domain.Admin, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE email = ?`, email)
	return scanAdmin(row)
}

func (r *adminsRepo) CreateAdmin(ctx context.Context, a domain.Admin) error {
	ts := now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO admins (id, email, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.Email, a.PasswordHash, ts, ts)
	return err
}

func (r *adminsRepo) UpdatePasswordHash(ctx context.Context, adminID, newHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE admins SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, now(), adminID)
	return err
}

func (r *adminsRepo) UpdateMFASecret(ctx context.Context, adminID, secret string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE admins SET mfa_secret = ?, updated_at = ? WHERE id = ?`,
		secret, now(), adminID)
	return err
}

func (r *adminsRepo) EnableMFA(ctx context.Context, adminID string) error {
	ts := now()
	_, err := r.db.ExecContext(ctx,
		`UPDATE admins SET mfa_enabled = ?, updated_at = ? WHERE id = ?`,
		ts, ts, adminID)
	return err
}

func (r *adminsRepo) DisableMFA(ctx context.Context, adminID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE admins SET mfa_enabled = NULL, mfa_secret = NULL, updated_at = ? WHERE id = ?`,
		now(), adminID)
	return err
}

func (r *adminsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func scanAdmin(row *sql.Row) (domain.Admin, error) {
	var (
		a          domain.Admin
		mfaEnabled sql.NullTime
		mfaSecret  sql.NullString
	)
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &mfaEnabled, &mfaSecret,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}

	a.MFAEnabled = mapNullTimePtr(mfaEnabled)
	a.MFASecret = mapNullStringPtr(mfaSecret)
	return a, nil
}
