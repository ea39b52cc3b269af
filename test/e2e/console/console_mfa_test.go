package console_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"

	"github.com/novalend/console/pkg/consolesdk"
)

func TestMFAFullLifecycle(t *testing.T) {
	baseURL, _ := setupConsoleServer(t, &stubSource{records: sampleRecords()})
	client := consolesdk.NewSDKClient(baseURL)

	session, err := client.Login(t.Context(), adminEmail, adminPassword)
	require.NoError(t, err)

	// Enroll: the secret is revealed once, MFA is not yet active.
	enroll, err := session.EnrollMFA(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, enroll.Secret)
	require.True(t, strings.HasPrefix(enroll.URL, "otpauth://totp/"))

	who, err := session.WhoAmI(t.Context())
	require.NoError(t, err)
	require.False(t, who.MFAEnabled)

	// Activate with a code from the authenticator.
	code, err := totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, session.ActivateMFA(t.Context(), code))

	who, err = session.WhoAmI(t.Context())
	require.NoError(t, err)
	require.True(t, who.MFAEnabled)

	// A fresh login now requires the second factor.
	_, err = client.Login(t.Context(), adminEmail, adminPassword)
	var mfaErr *consolesdk.MFARequiredError
	require.ErrorAs(t, err, &mfaErr)
	require.NotEmpty(t, mfaErr.MFAToken)
	require.Contains(t, mfaErr.Methods, "totp")

	code, err = totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	mfaSession, err := client.CompleteMFA(t.Context(), mfaErr.MFAToken, code)
	require.NoError(t, err)

	who, err = mfaSession.WhoAmI(t.Context())
	require.NoError(t, err)
	require.Equal(t, adminEmail, who.Email)

	// Remove MFA; the next login is single factor again.
	code, err = totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, mfaSession.RemoveMFA(t.Context(), code))

	_, err = client.Login(t.Context(), adminEmail, adminPassword)
	require.NoError(t, err)
}

func TestCompleteMFARejectsWrongCode(t *testing.T) {
	baseURL, _ := setupConsoleServer(t, &stubSource{records: sampleRecords()})
	client := consolesdk.NewSDKClient(baseURL)

	session, err := client.Login(t.Context(), adminEmail, adminPassword)
	require.NoError(t, err)

	enroll, err := session.EnrollMFA(t.Context())
	require.NoError(t, err)
	code, err := totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, session.ActivateMFA(t.Context(), code))

	_, err = client.Login(t.Context(), adminEmail, adminPassword)
	var mfaErr *consolesdk.MFARequiredError
	require.ErrorAs(t, err, &mfaErr)

	_, err = client.CompleteMFA(t.Context(), mfaErr.MFAToken, "000000")
	var apiErr *consolesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "invalid_token", apiErr.Code)
}

func TestCompleteMFARejectsForgedToken(t *testing.T) {
	baseURL, _ := setupConsoleServer(t, &stubSource{records: sampleRecords()})
	client := consolesdk.NewSDKClient(baseURL)

	_, err := client.CompleteMFA(t.Context(), "forged-token", "123456")
	var apiErr *consolesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestActivateMFARequiresEnrollment(t *testing.T) {
	baseURL, _ := setupConsoleServer(t, &stubSource{records: sampleRecords()})
	client := consolesdk.NewSDKClient(baseURL)

	session, err := client.Login(t.Context(), adminEmail, adminPassword)
	require.NoError(t, err)

	err = session.ActivateMFA(t.Context(), "123456")
	var apiErr *consolesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}
