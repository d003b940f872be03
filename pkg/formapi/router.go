package formapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formrules/pkg/httpserver"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/requestid"
)

// Option configures the router.
type Option func(*routerConfig)

type routerConfig struct {
	log    *slog.Logger
	checks []httpserver.Check
}

// WithLogger sets the request and handler logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *routerConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// WithReadinessChecks adds checks run by GET /health/ready.
func WithReadinessChecks(checks ...httpserver.Check) Option {
	return func(c *routerConfig) { c.checks = append(c.checks, checks...) }
}

// NewRouter mounts the API:
//
//	GET  /health/live
//	GET  /health/ready
//	GET  /rules
//	GET  /rulesets
//	POST /rulesets/{name}/validate
//	POST /validate
func NewRouter(engine Validator, sets RuleSets, opts ...Option) http.Handler {
	cfg := routerConfig{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	h := &handlers{engine: engine, sets: sets, log: cfg.log}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestid.Middleware)
	r.Use(requestLogger(cfg.log))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFound, "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "")
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", httpserver.LivenessHandler())
		r.Get("/ready", httpserver.ReadinessHandler(cfg.log, cfg.checks...))
	})

	r.Get("/rules", h.listRules)
	r.Get("/rulesets", h.listRuleSets)
	r.Post("/rulesets/{name}/validate", h.validateRuleSet)
	r.Post("/validate", h.validateInline)

	return r
}

// requestLogger writes one record per request once the response is done.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.InfoContext(r.Context(), "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
