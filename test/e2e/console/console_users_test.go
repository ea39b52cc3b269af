package console_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/novalend/console/pkg/consolesdk"
)

func loginSession(t *testing.T, baseURL string) *consolesdk.Session {
	t.Helper()

	session, err := consolesdk.NewSDKClient(baseURL).Login(t.Context(), adminEmail, adminPassword)
	require.NoError(t, err)
	return session
}

func TestListUsersPagination(t *testing.T) {
	baseURL, _ := setupConsoleServer(t, &stubSource{records: sampleRecords()})
	session := loginSession(t, baseURL)

	page, err := session.ListUsers(t.Context(), consolesdk.ListUsersOptions{Page: 1, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page.Users, 2)
	require.Equal(t, 3, page.Pagination.Total)
	require.Equal(t, 2, page.Pagination.TotalPages)
	require.True(t, page.Pagination.HasNext)
	require.False(t, page.Pagination.HasPrev)

	page, err = session.ListUsers(t.Context(), consolesdk.ListUsersOptions{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page.Users, 1)
	require.Equal(t, "ls-0003", page.Users[0].ID)
	require.False(t, page.Pagination.HasNext)
	require.True(t, page.Pagination.HasPrev)
}

func TestListUsersFilters(t *testing.T) {
	baseURL, _ := setupConsoleServer(t, &stubSource{records: sampleRecords()})
	session := loginSession(t, baseURL)

	page, err := session.ListUsers(t.Context(), consolesdk.ListUsersOptions{Organization: "lend"})
	require.NoError(t, err)
	require.Len(t, page.Users, 2)

	page, err = session.ListUsers(t.Context(), consolesdk.ListUsersOptions{Status: "Inactive"})
	require.NoError(t, err)
	require.Len(t, page.Users, 1)
	require.Equal(t, "ls-0002", page.Users[0].ID)

	page, err = session.ListUsers(t.Context(), consolesdk.ListUsersOptions{Date: "2020-05-15"})
	require.NoError(t, err)
	require.Len(t, page.Users, 2)

	page, err = session.ListUsers(t.Context(), consolesdk.ListUsersOptions{
		Organization: "lend",
		Username:     "debby",
	})
	require.NoError(t, err)
	require.Empty(t, page.Users)
}

func TestListUsersRejectsBadPageParams(t *testing.T) {
	baseURL, _ := setupConsoleServer(t, &stubSource{records: sampleRecords()})
	session := loginSession(t, baseURL)

	_, err := session.ListUsers(t.Context(), consolesdk.ListUsersOptions{PageSize: 5000})
	var apiErr *consolesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "invalid_request", apiErr.Code)
}

func TestGetUserDetail(t *testing.T) {
	baseURL, _ := setupConsoleServer(t, &stubSource{records: sampleRecords()})
	session := loginSession(t, baseURL)

	user, err := session.GetUser(t.Context(), "ls-0001")
	require.NoError(t, err)
	require.Equal(t, "Adedeji", user.Username)
	require.Equal(t, "200000.50", user.AccountBalance)
	require.Equal(t, "40000", user.EducationAndEmployment.LoanRepayment)

	_, err = session.GetUser(t.Context(), "ls-9999")
	var apiErr *consolesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, "not_found", apiErr.Code)
}

func TestGetUserServedFromCacheDuringOutage(t *testing.T) {
	src := &stubSource{records: sampleRecords()}
	baseURL, _ := setupConsoleServer(t, src)
	session := loginSession(t, baseURL)

	_, err := session.GetUser(t.Context(), "ls-0002")
	require.NoError(t, err)

	// Upstream disappears; the previously viewed record is still served.
	src.records = nil
	src.err = errTestOutage

	user, err := session.GetUser(t.Context(), "ls-0002")
	require.NoError(t, err)
	require.Equal(t, "Debby", user.Username)

	// Anything uncached reports the outage.
	_, err = session.GetUser(t.Context(), "ls-0001")
	var apiErr *consolesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, "upstream_unavailable", apiErr.Code)
}

func TestUserStats(t *testing.T) {
	baseURL, _ := setupConsoleServer(t, &stubSource{records: sampleRecords()})
	session := loginSession(t, baseURL)

	stats, err := session.GetUserStats(t.Context())
	require.NoError(t, err)
	require.Equal(t, 3, stats.TotalUsers)
	require.Equal(t, 1, stats.ActiveUsers)
	require.Equal(t, 1, stats.UsersWithLoans)
	require.Equal(t, 2, stats.UsersWithSavings)
}

func TestListUsersDuringFullOutage(t *testing.T) {
	baseURL, _ := setupConsoleServer(t, &stubSource{err: errTestOutage})
	session := loginSession(t, baseURL)

	_, err := session.ListUsers(t.Context(), consolesdk.ListUsersOptions{})
	var apiErr *consolesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, "upstream_unavailable", apiErr.Code)
}
