package dataset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/novalend/console/internal/console/domain"
)

func paginateFixture(n int) []domain.User {
	users := make([]domain.User, n)
	for i := range users {
		users[i] = domain.User{ID: fmt.Sprintf("u-%02d", i+1)}
	}
	return users
}

func TestPaginateFirstPage(t *testing.T) {
	t.Parallel()

	page := Paginate(paginateFixture(25), 1, 10)

	require.Len(t, page.Users, 10)
	require.Equal(t, "u-01", page.Users[0].ID)
	require.Equal(t, "u-10", page.Users[9].ID)

	require.Equal(t, 1, page.Pagination.Page)
	require.Equal(t, 10, page.Pagination.PageSize)
	require.Equal(t, 25, page.Pagination.Total)
	require.Equal(t, 3, page.Pagination.TotalPages)
	require.True(t, page.Pagination.HasNext)
	require.False(t, page.Pagination.HasPrev)
}

func TestPaginateLastPartialPage(t *testing.T) {
	t.Parallel()

	page := Paginate(paginateFixture(25), 3, 10)

	require.Len(t, page.Users, 5)
	require.Equal(t, "u-21", page.Users[0].ID)
	require.Equal(t, "u-25", page.Users[4].ID)
	require.False(t, page.Pagination.HasNext)
	require.True(t, page.Pagination.HasPrev)
}

func TestPaginatePastTheEnd(t *testing.T) {
	t.Parallel()

	page := Paginate(paginateFixture(25), 9, 10)

	require.Empty(t, page.Users)
	require.Equal(t, 9, page.Pagination.Page)
	require.Equal(t, 25, page.Pagination.Total)
	require.Equal(t, 3, page.Pagination.TotalPages)
	require.False(t, page.Pagination.HasNext)
	require.True(t, page.Pagination.HasPrev)
}

func TestPaginateOversizedPage(t *testing.T) {
	t.Parallel()

	page := Paginate(paginateFixture(7), 1, 50)

	require.Len(t, page.Users, 7)
	require.Equal(t, 1, page.Pagination.TotalPages)
	require.False(t, page.Pagination.HasNext)
	require.False(t, page.Pagination.HasPrev)
}

func TestPaginateEmptyCollection(t *testing.T) {
	t.Parallel()

	page := Paginate(nil, 1, 10)

	require.Empty(t, page.Users)
	require.Equal(t, 0, page.Pagination.Total)
	require.Equal(t, 0, page.Pagination.TotalPages)
	require.False(t, page.Pagination.HasNext)
	require.False(t, page.Pagination.HasPrev)
}

func TestPaginateExactMultiple(t *testing.T) {
	t.Parallel()

	page := Paginate(paginateFixture(20), 2, 10)

	require.Len(t, page.Users, 10)
	require.Equal(t, 2, page.Pagination.TotalPages)
	require.False(t, page.Pagination.HasNext)
	require.True(t, page.Pagination.HasPrev)
}
