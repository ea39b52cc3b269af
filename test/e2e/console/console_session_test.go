package console_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/novalend/console/pkg/consolesdk"
)

func TestLoginAndWhoAmI(t *testing.T) {
	baseURL, _ := setupConsoleServer(t, &stubSource{records: sampleRecords()})
	client := consolesdk.NewSDKClient(baseURL)

	session, err := client.Login(t.Context(), adminEmail, adminPassword)
	require.NoError(t, err)
	require.NotEmpty(t, session.AccessToken())

	who, err := session.WhoAmI(t.Context())
	require.NoError(t, err)
	require.Equal(t, adminEmail, who.Email)
	require.False(t, who.MFAEnabled)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	baseURL, _ := setupConsoleServer(t, &stubSource{records: sampleRecords()})
	client := consolesdk.NewSDKClient(baseURL)

	_, err := client.Login(t.Context(), adminEmail, "not-the-password")
	require.Error(t, err)

	var apiErr *consolesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "invalid_credentials", apiErr.Code)
}

func TestLoginRejectsMissingFields(t *testing.T) {
	baseURL, _ := setupConsoleServer(t, &stubSource{records: sampleRecords()})
	client := consolesdk.NewSDKClient(baseURL)

	_, err := client.Login(t.Context(), adminEmail, "")
	var apiErr *consolesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "invalid_request", apiErr.Code)
}

func TestLogoutRevokesTokenImmediately(t *testing.T) {
	baseURL, _ := setupConsoleServer(t, &stubSource{records: sampleRecords()})
	client := consolesdk.NewSDKClient(baseURL)

	session, err := client.Login(t.Context(), adminEmail, adminPassword)
	require.NoError(t, err)
	require.NoError(t, session.Logout(t.Context()))

	// The JWT itself is still within its validity window, but the
	// server-side session is revoked.
	_, err = session.WhoAmI(t.Context())
	var apiErr *consolesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestRequestsWithoutTokenAreRejected(t *testing.T) {
	baseURL, _ := setupConsoleServer(t, &stubSource{records: sampleRecords()})
	client := consolesdk.NewSDKClient(baseURL)

	session := client.NewSessionFromToken("not-a-jwt")
	_, err := session.ListUsers(t.Context(), consolesdk.ListUsersOptions{})

	var apiErr *consolesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestSessionFromPersistedToken(t *testing.T) {
	baseURL, _ := setupConsoleServer(t, &stubSource{records: sampleRecords()})
	client := consolesdk.NewSDKClient(baseURL)

	session, err := client.Login(t.Context(), adminEmail, adminPassword)
	require.NoError(t, err)

	restored := client.NewSessionFromToken(session.AccessToken())
	who, err := restored.WhoAmI(t.Context())
	require.NoError(t, err)
	require.Equal(t, adminEmail, who.Email)
}

func TestTokensAreNotInterchangeableAcrossDeployments(t *testing.T) {
	baseA, _ := setupConsoleServer(t, &stubSource{records: sampleRecords()})
	baseB, _ := setupConsoleServer(t, &stubSource{records: sampleRecords()})

	session, err := consolesdk.NewSDKClient(baseA).Login(t.Context(), adminEmail, adminPassword)
	require.NoError(t, err)

	// Each deployment has its own signing key.
	foreign := consolesdk.NewSDKClient(baseB).NewSessionFromToken(session.AccessToken())
	_, err = foreign.WhoAmI(t.Context())

	var apiErr *consolesdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}
