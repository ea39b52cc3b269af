package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/novalend/console/internal/console/service"
	"github.com/novalend/console/internal/console/store"
	"github.com/novalend/console/pkg/httpx"
	"github.com/novalend/console/pkg/jwtx"
	"github.com/novalend/console/pkg/slogx"

	_ "github.com/novalend/console/api/console" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     *jwtx.EdDSAVerifier
	issuer       string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	SessionService *service.SessionService
	UsersService   *service.UsersService
	MFAService     *service.MFAService
}

func NewRouter(
	verifier *jwtx.EdDSAVerifier,
	issuer, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		issuer:       issuer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSession()
	r.registerUsers()
	r.registerMFA()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Novalend Admin Console API
//	@version		0.1.0
//	@description	Back office API for the Novalend lending platform. Serves the
//	@description	user directory (listing, filtering, detail views, dashboard
//	@description	stats) backed by the upstream dataset, with session-based
//	@description	admin authentication and optional TOTP MFA.
//
//	@contact.name				Novalend Engineering
//	@contact.url				https://github.com/novalend/console
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authn verifies the JWT and confirms the sid is still live server-side.
func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.verifier, r.SessionService)
}

func (r *Router) registerSession() {
	h := &SessionHandler{SessionService: r.SessionService}

	// POST /v1/session - strict rate limit (authentication attempts)
	r.Mux.Handle("POST /v1/session",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /v1/session/mfa - strict rate limit (second factor attempts)
	r.Mux.Handle("POST /v1/session/mfa",
		httpx.Chain(http.HandlerFunc(h.HandleCompleteMFA),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /v1/session - whoami, lenient by admin
	r.Mux.Handle("GET /v1/session",
		httpx.Chain(http.HandlerFunc(h.HandleWhoAmI),
			r.authn(),
			httpx.RateLimitByAdmin(httpx.LenientLimit),
		),
	)

	// DELETE /v1/session - logout, moderate by admin
	r.Mux.Handle("DELETE /v1/session",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			r.authn(),
			httpx.RateLimitByAdmin(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	listHandler := &UsersListHandler{UsersService: r.UsersService}
	detailHandler := &UserDetailHandler{UsersService: r.UsersService}
	statsHandler := &UserStatsHandler{UsersService: r.UsersService}

	// All user directory reads are authenticated, lenient by admin.
	r.Mux.Handle("GET /v1/users",
		httpx.Chain(listHandler,
			r.authn(),
			httpx.RateLimitByAdmin(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /v1/users/stats",
		httpx.Chain(statsHandler,
			r.authn(),
			httpx.RateLimitByAdmin(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /v1/users/{id}",
		httpx.Chain(detailHandler,
			r.authn(),
			httpx.RateLimitByAdmin(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerMFA() {
	h := &MFAHandler{MFAService: r.MFAService}

	// Enrollment operations are sensitive: strict limits, always authed.
	r.Mux.Handle("POST /v1/session/mfa/enroll",
		httpx.Chain(http.HandlerFunc(h.HandleEnroll),
			r.authn(),
			httpx.RateLimitByAdmin(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /v1/session/mfa/activate",
		httpx.Chain(http.HandlerFunc(h.HandleActivate),
			r.authn(),
			httpx.RateLimitByAdmin(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("DELETE /v1/session/mfa",
		httpx.Chain(http.HandlerFunc(h.HandleRemove),
			r.authn(),
			httpx.RateLimitByAdmin(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.verifier),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
