package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/novalend/console/internal/console/dataset"
	"github.com/novalend/console/internal/console/domain"
	"github.com/novalend/console/internal/console/store"
)

var (
	// ErrUserNotFound means no record with the requested ID exists in the
	// dataset.
	ErrUserNotFound = errors.New("user not found")

	// ErrDataUnavailable means every dataset source failed.
	ErrDataUnavailable = errors.New("user data unavailable")
)

// UsersService serves the user listing and detail views. Listings always go
// to the resolver so filters and stats reflect the current dataset; detail
// lookups consult the per-user cache first.
type UsersService struct {
	Resolver *dataset.Resolver
	Store    store.Store
	Logger   *slog.Logger
}

// List returns one page of users matching the given filters.
func (s *UsersService) List(ctx context.Context, filters domain.UserFilters, page, pageSize int) (dataset.Page, error) {
	users, err := s.fetchAll(ctx)
	if err != nil {
		return dataset.Page{}, err
	}

	matched := dataset.Filter(users, filters)
	return dataset.Paginate(matched, page, pageSize), nil
}

// Get returns a single user by ID. A cache hit skips the dataset fetch
// entirely; on a miss the full dataset is fetched once and the record is
// cached for next time.
func (s *UsersService) Get(ctx context.Context, id string) (domain.User, error) {
	if cached, err := s.Store.UserCache().Get(ctx, id); err == nil {
		return cached, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		s.Logger.Warn("user cache read failed", "user_id", id, "err", err)
	}

	users, err := s.fetchAll(ctx)
	if err != nil {
		return domain.User{}, err
	}

	for _, u := range users {
		if u.ID == id {
			// Best effort: a failed cache write only costs the next
			// request a refetch.
			if err := s.Store.UserCache().Put(ctx, u); err != nil {
				s.Logger.Warn("user cache write failed", "user_id", id, "err", err)
			}
			return u, nil
		}
	}

	return domain.User{}, ErrUserNotFound
}

// Stats computes the dashboard stat-card numbers over the full dataset.
func (s *UsersService) Stats(ctx context.Context) (domain.UserStats, error) {
	users, err := s.fetchAll(ctx)
	if err != nil {
		return domain.UserStats{}, err
	}

	stats := domain.UserStats{TotalUsers: len(users)}
	for _, u := range users {
		if u.Status == domain.UserStatusActive {
			stats.ActiveUsers++
		}
		if u.EducationAndEmployment.LoanRepayment != "0" {
			stats.UsersWithLoans++
		}
		if balance, err := strconv.ParseFloat(u.AccountBalance, 64); err == nil && balance > 0 {
			stats.UsersWithSavings++
		}
	}

	return stats, nil
}

func (s *UsersService) fetchAll(ctx context.Context) ([]domain.User, error) {
	raw, err := s.Resolver.Fetch(ctx)
	if err != nil {
		if errors.Is(err, dataset.ErrNoSource) {
			return nil, ErrDataUnavailable
		}
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	return dataset.Normalize(raw), nil
}
