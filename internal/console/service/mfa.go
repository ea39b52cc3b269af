package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/novalend/console/internal/console/domain"
	"github.com/novalend/console/internal/console/store"
)

var (
	ErrInvalidTOTPCode   = errors.New("invalid TOTP code")
	ErrMFANotEnabled     = errors.New("MFA not enabled for this admin")
	ErrMFAAlreadyEnabled = errors.New("MFA already enabled for this admin")
	ErrMFANotEnrolled    = errors.New("MFA not enrolled - call EnrollTOTP first")
)

// MFAService manages TOTP enrollment for admin accounts.
type MFAService struct {
	Store  store.Store
	Issuer string // Issuer name for TOTP (e.g., "Novalend Console")
}

// EnrollTOTP generates a TOTP secret for the admin and returns the
// provisioning details. This does NOT enable MFA yet - the admin must
// confirm a code via ActivateTOTP first.
func (s *MFAService) EnrollTOTP(ctx context.Context, adminID string) (domain.MFAEnrollment, error) {
	admin, err := s.Store.Admins().GetAdminByID(ctx, adminID)
	if err != nil {
		return domain.MFAEnrollment{}, fmt.Errorf("failed to get admin: %w", err)
	}
	if admin.MFAEnabled != nil {
		return domain.MFAEnrollment{}, ErrMFAAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: admin.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return domain.MFAEnrollment{}, fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	// Store the secret (but don't enable MFA yet)
	if err := s.Store.Admins().UpdateMFASecret(ctx, adminID, key.Secret()); err != nil {
		return domain.MFAEnrollment{}, fmt.Errorf("failed to store MFA secret: %w", err)
	}

	return domain.MFAEnrollment{
		Secret:  key.Secret(),
		URL:     key.URL(),
		Issuer:  s.Issuer,
		Account: admin.Email,
	}, nil
}

// ActivateTOTP verifies a TOTP code and enables MFA for the admin if valid.
func (s *MFAService) ActivateTOTP(ctx context.Context, adminID, code string) error {
	admin, err := s.Store.Admins().GetAdminByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.MFASecret == nil || *admin.MFASecret == "" {
		return ErrMFANotEnrolled
	}
	if admin.MFAEnabled != nil {
		return ErrMFAAlreadyEnabled
	}

	if !totp.Validate(code, *admin.MFASecret) {
		return ErrInvalidTOTPCode
	}

	return s.Store.Admins().EnableMFA(ctx, adminID)
}

// RemoveTOTP disables MFA after verifying a current code, proving the
// caller still holds the authenticator.
func (s *MFAService) RemoveTOTP(ctx context.Context, adminID, code string) error {
	admin, err := s.Store.Admins().GetAdminByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.MFAEnabled == nil || admin.MFASecret == nil || *admin.MFASecret == "" {
		return ErrMFANotEnabled
	}

	if !totp.Validate(code, *admin.MFASecret) {
		return ErrInvalidTOTPCode
	}

	return s.Store.Admins().DisableMFA(ctx, adminID)
}
