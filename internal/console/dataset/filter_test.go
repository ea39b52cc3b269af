package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/novalend/console/internal/console/domain"
)

func filterFixture() []domain.User {
	return []domain.User{
		{
			ID:           "u-1",
			Organization: "Lendsqr",
			Username:     "Adedeji",
			Email:        "adedeji@lendsqr.com",
			PhoneNumber:  "08078903721",
			DateJoined:   "2020-05-15T10:00:00.000Z",
			Status:       domain.UserStatusActive,
		},
		{
			ID:           "u-2",
			Organization: "Irorun",
			Username:     "Debby",
			Email:        "debby@irorun.com",
			PhoneNumber:  "07060780922",
			DateJoined:   "2021-01-02T08:30:00.000Z",
			Status:       domain.UserStatusInactive,
		},
		{
			ID:           "u-3",
			Organization: "Lendstar",
			Username:     "Grace",
			Email:        "grace@lendstar.com",
			PhoneNumber:  "08160780900",
			DateJoined:   "2020-05-15T23:59:59.000Z",
			Status:       domain.UserStatusBlacklisted,
		},
	}
}

func TestFilterEmptyReturnsInputSlice(t *testing.T) {
	t.Parallel()

	users := filterFixture()
	got := Filter(users, domain.UserFilters{})

	require.Len(t, got, len(users))
	// Identity, not a copy.
	require.Same(t, &users[0], &got[0])
}

func TestFilterSubstringCaseInsensitive(t *testing.T) {
	t.Parallel()

	users := filterFixture()

	t.Run("organization", func(t *testing.T) {
		got := Filter(users, domain.UserFilters{Organization: "lend"})
		require.Len(t, got, 2)
		require.Equal(t, "u-1", got[0].ID)
		require.Equal(t, "u-3", got[1].ID)
	})

	t.Run("username", func(t *testing.T) {
		got := Filter(users, domain.UserFilters{Username: "DEBBY"})
		require.Len(t, got, 1)
		require.Equal(t, "u-2", got[0].ID)
	})

	t.Run("email", func(t *testing.T) {
		got := Filter(users, domain.UserFilters{Email: "@irorun"})
		require.Len(t, got, 1)
		require.Equal(t, "u-2", got[0].ID)
	})

	t.Run("phone number substring", func(t *testing.T) {
		got := Filter(users, domain.UserFilters{PhoneNumber: "07809"})
		require.Len(t, got, 2)
	})
}

func TestFilterStatusExact(t *testing.T) {
	t.Parallel()

	got := Filter(filterFixture(), domain.UserFilters{Status: domain.UserStatusBlacklisted})
	require.Len(t, got, 1)
	require.Equal(t, "u-3", got[0].ID)
}

func TestFilterDateMatchesDayOnly(t *testing.T) {
	t.Parallel()

	got := Filter(filterFixture(), domain.UserFilters{Date: "2020-05-15"})
	require.Len(t, got, 2)
	require.Equal(t, "u-1", got[0].ID)
	require.Equal(t, "u-3", got[1].ID)
}

func TestFilterCriteriaAreConjunctive(t *testing.T) {
	t.Parallel()

	users := filterFixture()

	got := Filter(users, domain.UserFilters{
		Organization: "lend",
		Status:       domain.UserStatusActive,
	})
	require.Len(t, got, 1)
	require.Equal(t, "u-1", got[0].ID)

	got = Filter(users, domain.UserFilters{
		Organization: "lend",
		Username:     "debby",
	})
	require.Empty(t, got)
}
