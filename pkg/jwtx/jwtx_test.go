package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	signer, err := GenerateSigner()
	require.NoError(t, err)
	require.NoError(t, signer.Validate())

	now := time.Now().UTC()
	claims := NewSessionClaims(
		"admin-1", "sess-1", "admin@novalend.test",
		[]string{"pwd"},
		time.Hour,
		"https://console.novalend.test",
		now,
	)
	require.NotEmpty(t, claims.ID)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	v := NewVerifier(signer, "https://console.novalend.test")
	require.True(t, v.IsReady())

	got, err := v.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "admin-1", got.Subject)
	require.Equal(t, "sess-1", got.SID)
	require.Equal(t, "admin@novalend.test", got.Email)
	require.Equal(t, []string{"pwd"}, got.AMR)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	signer, err := GenerateSigner()
	require.NoError(t, err)

	claims := NewSessionClaims(
		"admin-1", "sess-1", "admin@novalend.test",
		[]string{"pwd"},
		time.Hour,
		"https://console.novalend.test",
		time.Now().UTC(),
	)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	v := NewVerifier(signer, "https://other.example.com")
	_, err = v.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsExpired(t *testing.T) {
	signer, err := GenerateSigner()
	require.NoError(t, err)

	claims := NewSessionClaims(
		"admin-1", "sess-1", "admin@novalend.test",
		[]string{"pwd"},
		-time.Minute,
		"https://console.novalend.test",
		time.Now().UTC().Add(-time.Hour),
	)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	v := NewVerifier(signer, "https://console.novalend.test")
	_, err = v.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	signer, err := GenerateSigner()
	require.NoError(t, err)
	other, err := GenerateSigner()
	require.NoError(t, err)

	claims := NewSessionClaims(
		"admin-1", "sess-1", "admin@novalend.test",
		[]string{"pwd"},
		time.Hour,
		"https://console.novalend.test",
		time.Now().UTC(),
	)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	v := NewVerifier(other, "https://console.novalend.test")
	_, err = v.Verify(token)
	require.Error(t, err)
}

func TestSignerPEMRoundTrip(t *testing.T) {
	signer, err := GenerateSigner()
	require.NoError(t, err)

	pemBytes, err := signer.EncodePEM()
	require.NoError(t, err)

	loaded, err := NewSigner(signer.KID(), pemBytes)
	require.NoError(t, err)
	require.Equal(t, signer.Public(), loaded.Public())
}
