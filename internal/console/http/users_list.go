package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/novalend/console/internal/console/domain"
	"github.com/novalend/console/internal/console/service"
	"github.com/novalend/console/pkg/consolesdk"
	"github.com/novalend/console/pkg/httpx"
	"github.com/novalend/console/pkg/slogx"
)

// Listing defaults match the dashboard's initial view.
const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// UsersListHandler serves the filtered, paginated user listing.
type UsersListHandler struct {
	UsersService *service.UsersService
}

// ServeHTTP handles GET /v1/users
//
//	@Summary		List users
//	@Description	Returns one page of the user directory. All filters are optional and
//	@Description	combined with AND. Text filters match case-insensitive substrings;
//	@Description	status is an exact match; date matches the day the user joined.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			organization	query		string						false	"Organization substring"
//	@Param			username		query		string						false	"Username substring"
//	@Param			email			query		string						false	"Email substring"
//	@Param			phone_number	query		string						false	"Phone number substring"
//	@Param			date			query		string						false	"Date joined (YYYY-MM-DD)"
//	@Param			status			query		string						false	"Exact status"	Enums(Active, Inactive, Pending, Blacklisted)
//	@Param			page			query		int							false	"1-indexed page"	default(1)
//	@Param			page_size		query		int							false	"Records per page"	default(10)
//	@Success		200				{object}	consolesdk.UsersPage		"One page of users with pagination metadata"
//	@Failure		400				{object}	consolesdk.ErrorResponse	"Invalid query parameters"
//	@Failure		401				{object}	consolesdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		502				{object}	consolesdk.ErrorResponse	"No dataset source reachable"
//	@Router			/v1/users [get].
func (h *UsersListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	q := r.URL.Query()

	filters := domain.UserFilters{
		Organization: q.Get("organization"),
		Username:     q.Get("username"),
		Email:        q.Get("email"),
		PhoneNumber:  q.Get("phone_number"),
		Date:         q.Get("date"),
		Status:       domain.UserStatus(q.Get("status")),
	}

	page, err := positiveIntParam(q.Get("page"), defaultPage)
	if err != nil {
		consolesdk.ErrInvalidRequest.WriteError(w)
		return
	}
	pageSize, err := positiveIntParam(q.Get("page_size"), defaultPageSize)
	if err != nil || pageSize > maxPageSize {
		consolesdk.ErrInvalidRequest.WriteError(w)
		return
	}

	result, err := h.UsersService.List(ctx, filters, page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrDataUnavailable) {
			consolesdk.ErrUpstreamUnavailable.WriteError(w)
			return
		}
		log.Error("user listing failed", "err", err)
		consolesdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, result)
}

// positiveIntParam parses a query parameter as a positive integer,
// returning def for the empty string and an error for anything else.
func positiveIntParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errors.New("invalid positive integer")
	}
	return n, nil
}
