package http

import (
	"errors"
	"net/http"

	"github.com/novalend/console/internal/console/service"
	"github.com/novalend/console/pkg/consolesdk"
	"github.com/novalend/console/pkg/httpx"
	"github.com/novalend/console/pkg/slogx"
)

// UserStatsHandler serves the dashboard stat cards.
type UserStatsHandler struct {
	UsersService *service.UsersService
}

// ServeHTTP handles GET /v1/users/stats
//
//	@Summary		User statistics
//	@Description	Returns the dashboard stat-card numbers computed over the full
//	@Description	(unfiltered) dataset: total users, active users, users with loans,
//	@Description	and users with savings.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	consolesdk.UserStats		"Stat-card numbers"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		502	{object}	consolesdk.ErrorResponse	"No dataset source reachable"
//	@Router			/v1/users/stats [get].
func (h *UserStatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	stats, err := h.UsersService.Stats(ctx)
	if err != nil {
		if errors.Is(err, service.ErrDataUnavailable) {
			consolesdk.ErrUpstreamUnavailable.WriteError(w)
			return
		}
		log.Error("user stats failed", "err", err)
		consolesdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, stats)
}
