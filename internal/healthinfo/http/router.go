package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/service"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store"
	"github.com/aussiebroadwan/healthinfo/pkg/httpx"
	"github.com/aussiebroadwan/healthinfo/pkg/slogx"

	_ "github.com/aussiebroadwan/healthinfo/api/healthinfo" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Realm is announced in the WWW-Authenticate challenge.
const Realm = "Health Information System"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store       store.Store
	credentials httpx.CredentialVerifier
	failures    *httpx.FailureLimiter
	metrics     *httpx.Metrics // nil disables /metrics

	ProgramService    *service.ProgramService
	ClientService     *service.ClientService
	EnrollmentService *service.EnrollmentService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	credentials httpx.CredentialVerifier,
	metrics *httpx.Metrics,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		credentials:  credentials,
		failures:     httpx.NewFailureLimiter(httpx.AuthLimit),
		metrics:      metrics,
		logger:       logger,
	}

	// Metrics reads the pattern the mux sets on the request, so nothing
	// between them may replace *http.Request. Recover sits inside metrics so
	// recovered panics are counted as 500s.
	r.middlewares = []httpx.Middleware{slogx.HTTPMiddleware(r.logger)}
	if metrics != nil {
		r.middlewares = append(r.middlewares, metrics.Middleware())
	}
	r.middlewares = append(r.middlewares, httpx.Recover())

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerRoot()
	r.registerPrograms()
	r.registerClients()
	r.registerSystem()
	r.registerDocs()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Health Information System API
//	@version		0.1.0
//	@description	Manages health programs, the clients registered with them and their enrollments.
//	@description
//	@description	Every string field is HTML-escaped before it is stored.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/healthinfo
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:3000
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.basic	BasicAuth
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured puts h behind Basic auth and a per-user rate limit. Rejected
// credentials count against the caller's IP. Responses are never cacheable.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.NoStore(),
		httpx.BasicAuth(Realm, r.credentials, r.failures),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerRoot() {
	r.Mux.Handle("GET /{$}", r.secured(http.HandlerFunc(RootHandler), httpx.ReadLimit))

	// Anything unmatched still needs credentials before it learns the path is unknown.
	r.Mux.Handle("/", r.secured(http.HandlerFunc(NotFoundHandler), httpx.ReadLimit))
}

func (r *Router) registerPrograms() {
	h := &ProgramsHandler{
		ProgramService:    r.ProgramService,
		EnrollmentService: r.EnrollmentService,
	}

	r.Mux.Handle("POST /programs", r.secured(http.HandlerFunc(h.HandleCreate), httpx.WriteLimit))
	r.Mux.Handle("GET /programs", r.secured(http.HandlerFunc(h.HandleList), httpx.ReadLimit))
	r.Mux.Handle("GET /programs/{programId}", r.secured(http.HandlerFunc(h.HandleGet), httpx.ReadLimit))
	r.Mux.Handle("GET /programs/{programId}/clients",
		r.secured(http.HandlerFunc(h.HandleListClients), httpx.ReadLimit))
}

func (r *Router) registerClients() {
	h := &ClientsHandler{ClientService: r.ClientService}
	enroll := &EnrollHandler{EnrollmentService: r.EnrollmentService}

	r.Mux.Handle("POST /clients", r.secured(http.HandlerFunc(h.HandleCreate), httpx.WriteLimit))
	r.Mux.Handle("GET /clients", r.secured(http.HandlerFunc(h.HandleList), httpx.ReadLimit))
	r.Mux.Handle("GET /clients/{clientId}", r.secured(http.HandlerFunc(h.HandleGet), httpx.ReadLimit))
	r.Mux.Handle("POST /clients/{clientId}/enroll", r.secured(enroll, httpx.WriteLimit))
}

func (r *Router) registerSystem() {
	// Probes stay unauthenticated so orchestrators can poll them.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.ReadLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.ReadLimit),
		),
	)

	if r.metrics != nil {
		r.Mux.Handle("GET /metrics", r.secured(r.metrics.Handler(), httpx.ReadLimit))
	}
}

func (r *Router) registerDocs() {
	r.Mux.Handle("GET /swagger/", r.secured(httpSwagger.Handler(), httpx.ReadLimit))
}
