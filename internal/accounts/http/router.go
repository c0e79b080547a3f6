package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fluxline/accountd/internal/accounts/domain"
	"github.com/fluxline/accountd/internal/accounts/service"
	"github.com/fluxline/accountd/internal/accounts/store"
	"github.com/fluxline/accountd/pkg/httpx"
	"github.com/fluxline/accountd/pkg/jwtx"
	"github.com/fluxline/accountd/pkg/slogx"

	_ "github.com/fluxline/accountd/api/accounts" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     *jwtx.Verifier
	signer       *jwtx.Signer
	roles        domain.RoleList
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store        store.Store
	TokenService *service.TokenService
	UserService  *service.UserService
}

func NewRouter(
	verifier *jwtx.Verifier,
	signer *jwtx.Signer,
	roles domain.RoleList,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		signer:       signer,
		roles:        roles,
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
	r.registerAuth()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Accountd User Account Service API
//	@version		0.1.0
//	@description	User account CRUD with local email/password authentication.
//	@description
//	@description				Session tokens are HS256-signed JWTs carrying the user ID and role.
//
//	@contact.name				Fluxline Team
//	@contact.url				https://github.com/fluxline/accountd
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

func (r *Router) registerAuth() {
	// POST /auth/login - strict rate limit by IP (authentication attempts)
	loginHandler := &LoginHandler{
		UserService:  r.UserService,
		TokenService: r.TokenService,
	}
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	signUpHandler := &SignUpHandler{
		UserService:  r.UserService,
		TokenService: r.TokenService,
	}
	usersHandler := &UsersHandler{UserService: r.UserService}
	editHandler := &UsersEditHandler{UserService: r.UserService}

	// secured wraps a handler with the standard authenticated pipeline:
	// verify the token, resolve its subject to a stored user, rate limit
	// per user, then optionally require a minimum role.
	secured := func(h http.HandlerFunc, minRole string) http.Handler {
		mws := []httpx.Middleware{
			httpx.AuthnMiddleware(r.verifier), // verify JWT (iss/exp)
			AttachUser(r.store),               // 401 if the subject is gone
		}
		if minRole != "" {
			mws = append(mws, RequireRole(r.roles, minRole))
		}
		mws = append(mws, httpx.RateLimitByUser(httpx.DefaultLimit))
		return httpx.Chain(h, mws...)
	}

	// POST /users/new - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /v1/users/new",
		httpx.Chain(signUpHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Literal segments take precedence over {id} in the mux, so /me and /all
	// never collide with the wildcard routes.
	r.Mux.Handle("GET /v1/users/me", secured(usersHandler.HandleMe, ""))
	r.Mux.Handle("GET /v1/users/all", secured(usersHandler.HandleList, domain.RoleAdmin))
	r.Mux.Handle("GET /v1/users/{id}", secured(usersHandler.HandleShow, ""))

	r.Mux.Handle("PUT /v1/users/{id}", secured(editHandler.HandleUpsert, ""))
	r.Mux.Handle("PATCH /v1/users/{id}", secured(editHandler.HandlePatch, ""))
	r.Mux.Handle("PUT /v1/users/{id}/password", secured(editHandler.HandleChangePassword, ""))

	r.Mux.Handle("DELETE /v1/users/{id}", secured(usersHandler.HandleDelete, domain.RoleAdmin))
}

func (r *Router) registerSystem() {
	// Health check endpoints - default rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.DefaultLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer),
			httpx.RateLimitByIP(httpx.DefaultLimit),
		),
	)
}
