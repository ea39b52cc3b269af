package consolesdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListUsers retrieves one page of the user listing. Filters in opts are
// combined with AND; omitted filters are unconstrained.
func (s *Session) ListUsers(ctx context.Context, opts ListUsersOptions) (*UsersPage, error) {
	q := url.Values{}
	if opts.Organization != "" {
		q.Set("organization", opts.Organization)
	}
	if opts.Username != "" {
		q.Set("username", opts.Username)
	}
	if opts.Email != "" {
		q.Set("email", opts.Email)
	}
	if opts.PhoneNumber != "" {
		q.Set("phone_number", opts.PhoneNumber)
	}
	if opts.Date != "" {
		q.Set("date", opts.Date)
	}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(opts.PageSize))
	}

	path := "/v1/users"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var page UsersPage
	if err := decodeJSON(resp, &page, http.StatusOK); err != nil {
		return nil, err
	}

	return &page, nil
}

// GetUser retrieves a single user by ID.
func (s *Session) GetUser(ctx context.Context, id string) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/users/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUserStats retrieves the dashboard stat-card numbers.
func (s *Session) GetUserStats(ctx context.Context) (*UserStats, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/users/stats", nil, nil)
	if err != nil {
		return nil, err
	}

	var stats UserStats
	if err := decodeJSON(resp, &stats, http.StatusOK); err != nil {
		return nil, err
	}

	return &stats, nil
}
