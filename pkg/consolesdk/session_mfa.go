package consolesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// EnrollMFA generates a new TOTP secret for the authenticated admin. The
// secret is pending until ActivateMFA confirms a valid code.
func (s *Session) EnrollMFA(ctx context.Context) (*MFAEnrollResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/session/mfa/enroll", nil, nil)
	if err != nil {
		return nil, err
	}

	var enroll MFAEnrollResponse
	if err := decodeJSON(resp, &enroll, http.StatusOK); err != nil {
		return nil, err
	}

	return &enroll, nil
}

// ActivateMFA confirms a pending TOTP enrollment with a code from the
// authenticator app. After this call, login requires MFA.
func (s *Session) ActivateMFA(ctx context.Context, otpCode string) error {
	body, err := json.Marshal(map[string]string{"otp_code": otpCode})
	if err != nil {
		return fmt.Errorf("failed to encode activate request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/session/mfa/activate", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

// RemoveMFA disables TOTP for the authenticated admin. A current code is
// required to prove possession of the authenticator.
func (s *Session) RemoveMFA(ctx context.Context, otpCode string) error {
	body, err := json.Marshal(map[string]string{"otp_code": otpCode})
	if err != nil {
		return fmt.Errorf("failed to encode remove request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/session/mfa", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}
