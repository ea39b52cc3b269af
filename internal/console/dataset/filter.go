package dataset

import (
	"strings"

	"github.com/novalend/console/internal/console/domain"
)

// Filter returns the subset of users matching every present criterion.
// With no criteria present the input slice is returned as-is (no copy).
// The filter is stable: result order is input order.
func Filter(users []domain.User, f domain.UserFilters) []domain.User {
	if f.IsEmpty() {
		return users
	}

	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if matches(u, f) {
			out = append(out, u)
		}
	}
	return out
}

func matches(u domain.User, f domain.UserFilters) bool {
	if f.Organization != "" && !containsFold(u.Organization, f.Organization) {
		return false
	}
	if f.Username != "" && !containsFold(u.Username, f.Username) {
		return false
	}
	if f.Email != "" && !containsFold(u.Email, f.Email) {
		return false
	}
	// Phone numbers are digits in practice; match case-sensitively.
	if f.PhoneNumber != "" && !strings.Contains(u.PhoneNumber, f.PhoneNumber) {
		return false
	}
	if f.Status != "" && u.Status != f.Status {
		return false
	}
	if f.Date != "" && dateOnly(u.DateJoined) != f.Date {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// dateOnly returns the portion of an ISO-8601 timestamp before the time
// separator.
func dateOnly(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i >= 0 {
		return ts[:i]
	}
	return ts
}
