package console_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/novalend/console/pkg/consolesdk"
)

func TestLivenessProbe(t *testing.T) {
	baseURL, _ := setupConsoleServer(t, &stubSource{records: sampleRecords()})
	client := consolesdk.NewSDKClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "test", health.Version)
	require.NotEmpty(t, health.Uptime)
	require.Nil(t, health.Checks)
}

func TestReadinessProbe(t *testing.T) {
	baseURL, _ := setupConsoleServer(t, &stubSource{records: sampleRecords()})
	client := consolesdk.NewSDKClient(baseURL)

	health, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Signer)
}
