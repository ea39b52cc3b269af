package consolesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the Novalend admin console service.
// It provides access to unauthenticated operations and can create
// authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new console service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login authenticates with email/password and returns an authenticated
// Session. When the admin account has MFA enabled, it returns
// *MFARequiredError carrying the mfa_token for CompleteMFA.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode login request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/session", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var sessionResp SessionResponse
	if err := decodeJSON(resp, &sessionResp, http.StatusOK); err != nil {
		return nil, err
	}

	return newSession(c, &sessionResp), nil
}

// CompleteMFA exchanges an mfa_token plus a TOTP code for a Session.
func (c *SDKClient) CompleteMFA(ctx context.Context, mfaToken, otpCode string) (*Session, error) {
	body, err := json.Marshal(map[string]string{
		"mfa_token": mfaToken,
		"otp_code":  otpCode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode mfa request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/session/mfa", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var sessionResp SessionResponse
	if err := decodeJSON(resp, &sessionResp, http.StatusOK); err != nil {
		return nil, err
	}

	return newSession(c, &sessionResp), nil
}

// NewSessionFromToken creates an authenticated session from an existing
// access token, e.g. one persisted from a previous login.
func (c *SDKClient) NewSessionFromToken(accessToken string) *Session {
	return &Session{
		client:      c,
		accessToken: accessToken,
	}
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}
