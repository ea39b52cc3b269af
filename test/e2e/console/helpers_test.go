package console_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/novalend/console/internal/console/dataset"
	"github.com/novalend/console/internal/console/domain"
	consolehttp "github.com/novalend/console/internal/console/http"
	"github.com/novalend/console/internal/console/service"
	"github.com/novalend/console/internal/console/store/drivers/sqlite"
	"github.com/novalend/console/pkg/cryptox"
	"github.com/novalend/console/pkg/idx"
	"github.com/novalend/console/pkg/jwtx"
)

/*
 * Common fixtures and helpers for console end-to-end tests. Each test
 * spins up the full HTTP stack in-process (router, services, sqlite
 * store, signer) behind an httptest server and drives it through the
 * SDK, the same way a real client would.
 */

const (
	adminEmail    = "ops@novalend.test"
	adminPassword = "Admin123!"
	testIssuer    = "novalend-console-test"
)

// errTestOutage simulates every dataset source being down.
var errTestOutage = errors.New("simulated upstream outage")

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "console-e2e-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

// stubSource serves a fixed record set, standing in for the upstream
// dataset endpoint.
type stubSource struct {
	records []dataset.RawRecord
	err     error
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Fetch(_ context.Context) ([]dataset.RawRecord, error) {
	return s.records, s.err
}

func sampleRecords() []dataset.RawRecord {
	return []dataset.RawRecord{
		{
			"id":             "ls-0001",
			"organization":   "Lendsqr",
			"username":       "Adedeji",
			"email":          "adedeji@lendsqr.com",
			"phoneNumber":    "08078903721",
			"dateJoined":     "2020-05-15T10:00:00.000Z",
			"status":         "Active",
			"accountBalance": float64(200000.5),
			"educationAndEmployment": map[string]any{
				"loanRepayment": "40000",
			},
		},
		{
			"id":             "ls-0002",
			"organization":   "Irorun",
			"username":       "Debby",
			"email":          "debby@irorun.com",
			"phoneNumber":    "07060780922",
			"dateJoined":     "2021-01-02T08:30:00.000Z",
			"status":         "Inactive",
			"accountBalance": float64(0),
		},
		{
			"id":             "ls-0003",
			"organization":   "Lendstar",
			"username":       "Grace",
			"email":          "grace@lendstar.com",
			"phoneNumber":    "08160780900",
			"dateJoined":     "2020-05-15T23:59:59.000Z",
			"status":         "Blacklisted",
			"accountBalance": "120.5",
		},
	}
}

// setupConsoleServer assembles the full service in-process and returns
// its base URL plus the backing store for direct seeding.
func setupConsoleServer(t *testing.T, src dataset.Source) (string, *sqlite.Store) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.GenerateSigner()
	require.NoError(t, err)
	verifier := jwtx.NewVerifier(signer, testIssuer)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := consolehttp.NewRouter(verifier, testIssuer, "test", st, logger)
	router.SessionService = &service.SessionService{
		Store:  st,
		Signer: signer,
		Issuer: testIssuer,
	}
	router.UsersService = &service.UsersService{
		Resolver: dataset.NewResolver(logger, src),
		Store:    st,
		Logger:   logger,
	}
	router.MFAService = &service.MFAService{
		Store:  st,
		Issuer: "Novalend Console",
	}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	seedTestAdmin(t, st)
	return srv.URL, st
}

func seedTestAdmin(t *testing.T, st *sqlite.Store) {
	t.Helper()

	hash, err := cryptox.HashPassword(adminPassword)
	require.NoError(t, err)

	require.NoError(t, st.Admins().CreateAdmin(context.Background(), domain.Admin{
		ID:           idx.New().String(),
		Email:        adminEmail,
		PasswordHash: hash,
	}))
}
