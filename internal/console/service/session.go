package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pquerna/otp/totp"

	"github.com/novalend/console/internal/console/domain"
	"github.com/novalend/console/internal/console/store"
	"github.com/novalend/console/pkg/consolesdk"
	"github.com/novalend/console/pkg/cryptox"
	"github.com/novalend/console/pkg/idx"
	"github.com/novalend/console/pkg/jwtx"
	"github.com/novalend/console/pkg/slogx"
)

// MaxMFAAttempts is the maximum number of failed TOTP submissions allowed
// per challenge.
const MaxMFAAttempts = 5

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidMFAToken    = errors.New("invalid_mfa_token")
	ErrTooManyAttempts    = errors.New("too_many_attempts")
	ErrSessionInvalid     = errors.New("session_invalid")
)

// MFARequiredError is an alias to the SDK's MFARequiredError so the HTTP
// layer writes the same wire shape the SDK parses.
type MFARequiredError = consolesdk.MFARequiredError

// SessionService handles login, MFA challenges, and session lifecycle.
type SessionService struct {
	Store        store.Store
	Signer       *jwtx.Signer
	Issuer       string
	SessionTTL   time.Duration
	ChallengeTTL time.Duration
}

// Login verifies email/password. For MFA-enabled admins it stores a pending
// challenge and returns *MFARequiredError carrying the opaque mfa_token;
// otherwise it establishes a session and returns the signed token.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.SessionToken, error) {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()

	admin, err := s.Store.Admins().GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if cryptox.VerifyPassword(password, admin.PasswordHash) != nil {
		l.Info("login password verification failed", slog.String("admin_id", admin.ID))
		return nil, ErrInvalidCredentials
	}

	if admin.MFAEnabled != nil {
		token, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return nil, fmt.Errorf("generate mfa token: %w", err)
		}

		challenge := domain.MFAChallenge{
			TokenHash: cryptox.FingerprintToken(token),
			AdminID:   admin.ID,
			ExpiresAt: now.Add(s.challengeTTL()),
		}
		if err := s.Store.MFAChallenges().CreateMFAChallenge(ctx, challenge); err != nil {
			return nil, fmt.Errorf("store mfa challenge: %w", err)
		}

		return nil, &MFARequiredError{
			MFAToken: token,
			Methods:  []string{"totp"},
		}
	}

	return s.establishSession(ctx, admin, []string{"pwd"}, now)
}

// CompleteMFA exchanges a pending challenge token plus a TOTP code for a
// session. Challenges are single-use and capped at MaxMFAAttempts failures.
func (s *SessionService) CompleteMFA(ctx context.Context, mfaToken, otpCode string) (*domain.SessionToken, error) {
	now := time.Now().UTC()
	tokenHash := cryptox.FingerprintToken(mfaToken)

	challenge, err := s.Store.MFAChallenges().GetMFAChallenge(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidMFAToken
		}
		return nil, err
	}

	if challenge.Attempts >= MaxMFAAttempts {
		_ = s.Store.MFAChallenges().DeleteMFAChallenge(ctx, tokenHash)
		return nil, ErrTooManyAttempts
	}

	admin, err := s.Store.Admins().GetAdminByID(ctx, challenge.AdminID)
	if err != nil {
		return nil, err
	}
	if admin.MFASecret == nil || *admin.MFASecret == "" {
		return nil, ErrInvalidMFAToken
	}

	if !totp.Validate(otpCode, *admin.MFASecret) {
		updated, err := s.Store.MFAChallenges().IncrementMFAChallengeAttempts(ctx, tokenHash)
		if err == nil && updated.Attempts >= MaxMFAAttempts {
			_ = s.Store.MFAChallenges().DeleteMFAChallenge(ctx, tokenHash)
			return nil, ErrTooManyAttempts
		}
		return nil, ErrInvalidMFAToken
	}

	if err := s.Store.MFAChallenges().DeleteMFAChallenge(ctx, tokenHash); err != nil {
		return nil, fmt.Errorf("consume mfa challenge: %w", err)
	}

	return s.establishSession(ctx, admin, []string{"pwd", "otp"}, now)
}

// Logout revokes the session so its token dies before the JWT expiry.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	return s.Store.Sessions().RevokeSession(ctx, sessionID)
}

// CheckSession reports whether the session is still live. Satisfies
// httpx.SessionChecker.
func (s *SessionService) CheckSession(ctx context.Context, sessionID string) error {
	sess, err := s.Store.Sessions().GetSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSessionInvalid
		}
		return err
	}

	if sess.Revoked || time.Now().UTC().After(sess.ExpiresAt) {
		return ErrSessionInvalid
	}
	return nil
}

// WhoAmI returns the admin account behind a session.
func (s *SessionService) WhoAmI(ctx context.Context, adminID string) (domain.Admin, error) {
	return s.Store.Admins().GetAdminByID(ctx, adminID)
}

func (s *SessionService) establishSession(
	ctx context.Context,
	admin domain.Admin,
	amr []string,
	now time.Time,
) (*domain.SessionToken, error) {
	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	sessionID := idx.New().String()
	sess := domain.Session{
		ID:        sessionID,
		AdminID:   admin.ID,
		ExpiresAt: now.Add(ttl),
	}
	if err := s.Store.Sessions().CreateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	claims := jwtx.NewSessionClaims(admin.ID, sessionID, admin.Email, amr, ttl, s.Issuer, now)
	signed, err := s.Signer.Sign(claims)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &domain.SessionToken{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int(ttl.Seconds()),
	}, nil
}

func (s *SessionService) challengeTTL() time.Duration {
	if s.ChallengeTTL <= 0 {
		return 5 * time.Minute
	}
	return s.ChallengeTTL
}
