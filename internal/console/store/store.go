package store

import (
	"context"
	"errors"

	"github.com/novalend/console/internal/console/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep concerns tidy and make each one
// mockable in service tests.
type Store interface {
	Admins() Admins
	Sessions() Sessions
	MFAChallenges() MFAChallenges
	UserCache() UserCache

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing on nil and
	// rolling back on error. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. Same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Admins interface {
	// GetAdminByID returns an admin account by id.
	GetAdminByID(ctx context.Context, id string) (domain.Admin, error)

	// GetAdminByEmail is used during login.
	GetAdminByEmail(ctx context.Context, email string) (domain.Admin, error)

	// CreateAdmin inserts a new admin (id is provided by app via ULID).
	CreateAdmin(ctx context.Context, a domain.Admin) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, adminID, newHash string) error

	// UpdateMFASecret sets the TOTP secret without enabling MFA.
	UpdateMFASecret(ctx context.Context, adminID, secret string) error

	// EnableMFA marks MFA as enabled (sets the mfa_enabled timestamp).
	EnableMFA(ctx context.Context, adminID string) error

	// DisableMFA clears both mfa_enabled and mfa_secret.
	DisableMFA(ctx context.Context, adminID string) error

	// IsEmpty returns true if there are no admin accounts (seed check).
	IsEmpty(ctx context.Context) (bool, error)
}

type Sessions interface {
	// CreateSession records a freshly established login.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByID returns a session by its id (the JWT "sid" claim).
	GetSessionByID(ctx context.Context, id string) (domain.Session, error)

	// RevokeSession flips revoked, making the session's tokens dead.
	RevokeSession(ctx context.Context, id string) error

	// RevokeAllAdminSessions bulk-revokes for one admin (password change).
	RevokeAllAdminSessions(ctx context.Context, adminID string) error

	// DeleteExpiredSessions is housekeeping.
	DeleteExpiredSessions(ctx context.Context) error
}

type MFAChallenges interface {
	// CreateMFAChallenge stores a pending second-factor challenge.
	CreateMFAChallenge(ctx context.Context, c domain.MFAChallenge) error

	// GetMFAChallenge returns a not-expired challenge by token hash.
	GetMFAChallenge(ctx context.Context, tokenHash string) (domain.MFAChallenge, error)

	// IncrementMFAChallengeAttempts bumps the failed-attempt counter and
	// returns the updated challenge.
	IncrementMFAChallengeAttempts(ctx context.Context, tokenHash string) (domain.MFAChallenge, error)

	// DeleteMFAChallenge removes a consumed challenge.
	DeleteMFAChallenge(ctx context.Context, tokenHash string) error

	// DeleteExpiredMFAChallenges is housekeeping.
	DeleteExpiredMFAChallenges(ctx context.Context) error
}

// UserCache is the per-user detail cache, keyed "user_<id>". Entries are
// written after the first successful fetch and never expired by the
// system; deleting rows manually is the only removal path.
type UserCache interface {
	// Get returns the cached record for a user ID. A missing key, an
	// undecodable payload, or a payload whose id differs from the
	// requested one all return ErrNotFound (treated as a miss).
	Get(ctx context.Context, userID string) (domain.User, error)

	// Put serializes and stores the record under its user ID.
	Put(ctx context.Context, u domain.User) error

	// Delete removes one cached record.
	Delete(ctx context.Context, userID string) error
}
