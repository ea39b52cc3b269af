package consolesdk

import (
	"context"
	"net/http"
	"time"
)

// Session represents an authenticated console session. The console does not
// issue refresh tokens; when the access token expires the caller logs in
// again.
type Session struct {
	client      *SDKClient
	accessToken string
	expiresAt   time.Time
}

// newSession creates a new authenticated session from a login response.
func newSession(client *SDKClient, resp *SessionResponse) *Session {
	return &Session{
		client:      client,
		accessToken: resp.AccessToken,
		expiresAt:   time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}
}

// AccessToken returns the session's bearer token.
func (s *Session) AccessToken() string { return s.accessToken }

// ExpiresAt returns when the access token expires. Zero for sessions built
// with NewSessionFromToken.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// WhoAmI returns the authenticated admin's profile.
func (s *Session) WhoAmI(ctx context.Context) (*WhoAmIResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/session", nil, nil)
	if err != nil {
		return nil, err
	}

	var who WhoAmIResponse
	if err := decodeJSON(resp, &who, http.StatusOK); err != nil {
		return nil, err
	}

	return &who, nil
}

// Logout revokes the session server-side. The access token stops working
// immediately even though the JWT has not expired.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/session", nil, nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}
