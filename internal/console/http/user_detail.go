package http

import (
	"errors"
	"net/http"

	"github.com/novalend/console/internal/console/service"
	"github.com/novalend/console/pkg/consolesdk"
	"github.com/novalend/console/pkg/httpx"
	"github.com/novalend/console/pkg/slogx"
)

// UserDetailHandler serves single-user lookups, cache-first.
type UserDetailHandler struct {
	UsersService *service.UsersService
}

// ServeHTTP handles GET /v1/users/{id}
//
//	@Summary		Get a user
//	@Description	Returns the full record for one user. Served from the per-user cache
//	@Description	when possible; otherwise fetched from the dataset and cached.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"User ID"
//	@Success		200	{object}	consolesdk.User				"Full user record"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		404	{object}	consolesdk.ErrorResponse	"Unknown user ID"
//	@Failure		502	{object}	consolesdk.ErrorResponse	"No dataset source reachable"
//	@Router			/v1/users/{id} [get].
func (h *UserDetailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id := r.PathValue("id")
	if id == "" {
		consolesdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UsersService.Get(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			consolesdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrDataUnavailable):
			consolesdk.ErrUpstreamUnavailable.WriteError(w)
		default:
			log.Error("user lookup failed", "user_id", id, "err", err)
			consolesdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, user)
}
