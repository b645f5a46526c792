// Package routing assembles the server's routing table from independently
// pluggable concerns: serialization middleware, health, metrics, and the
// business service.
//
// Composition is a pure builder step: [Compose] returns an immutable ordered
// [Table] and never mutates global state, so composing twice with the same
// inputs yields equivalent tables. The table is materialized into a chi mux
// just before the listener binds and is never modified afterwards.
package routing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-bookstore/internal/config"
	"github.com/MKhiriev/go-bookstore/internal/health"
	"github.com/MKhiriev/go-bookstore/internal/logger"
	"github.com/MKhiriev/go-bookstore/internal/media"
	"github.com/MKhiriev/go-bookstore/internal/metrics"
)

// Fixed path segments of the operational endpoints and the default mount
// prefix of the business service.
const (
	HealthPath         = "/health"
	MetricsPath        = "/metrics"
	DefaultServicePath = "/books"

	// servicePathKey optionally overrides the business service prefix.
	servicePathKey = "app.service-path"
)

// Service is the opaque routable unit the composer mounts under the service
// path prefix. The unit exposes its own internal path structure.
type Service interface {
	Routes() chi.Router
}

// Binding is one ordered (path prefix, handler) entry of the routing table.
type Binding struct {
	Prefix  string
	Handler http.Handler
}

// Table is the composed, ordered routing table. Global middlewares apply to
// every binding; bindings dispatch by path prefix in registration order.
// A Table is immutable once returned by [Compose].
type Table struct {
	strategy    media.Strategy
	middlewares []namedMiddleware
	bindings    []Binding
	metrics     *metrics.Metrics
}

type namedMiddleware struct {
	name string
	fn   func(http.Handler) http.Handler
}

// Option adjusts composition without breaking its purity: options only add
// inputs, never mutate an existing table.
type Option func(*composeOptions)

type composeOptions struct {
	log    *logger.Logger
	checks []health.Check
}

// WithLogger sets the logger used by the trace-id and request-logging
// middleware. Defaults to a no-op logger.
func WithLogger(log *logger.Logger) Option {
	return func(o *composeOptions) { o.log = log }
}

// WithChecks appends health check units to the built-in runtime set.
func WithChecks(checks ...health.Check) Option {
	return func(o *composeOptions) { o.checks = append(o.checks, checks...) }
}

// Compose builds the routing table for the given serialization strategy and
// business service.
//
// The serialization middleware is registered globally and ahead of every
// handler that negotiates payload content — the reason strategy resolution
// must happen before composition. Health and metrics are always additive and
// independent of the chosen strategy. The service is mounted under the
// configured prefix ("app.service-path", default /books).
//
// A nil service or a strategy outside the closed set fails with
// [ErrComposition] at compose time, never deferred to the first request.
func Compose(node config.Node, strategy media.Strategy, service Service, opts ...Option) (*Table, error) {
	if service == nil {
		return nil, ErrComposition
	}
	switch strategy {
	case media.JSONP, media.JSONB, media.Jackson:
	default:
		return nil, ErrComposition
	}

	options := composeOptions{log: logger.Nop()}
	for _, opt := range opts {
		opt(&options)
	}

	servicePath := DefaultServicePath
	if n := node.Get(servicePathKey); n.Exists() {
		servicePath = n.String()
	}

	m := metrics.New()

	checks := append(health.BuiltinChecks(), options.checks...)

	t := &Table{
		strategy: strategy,
		metrics:  m,
		middlewares: []namedMiddleware{
			{name: "recoverer", fn: middleware.Recoverer},
			{name: "traceid", fn: withTraceID(options.log)},
			{name: "logging", fn: withLogging},
			{name: "metrics", fn: m.Middleware},
			{name: "media:" + strategy.String(), fn: media.Middleware(strategy)},
		},
		bindings: []Binding{
			{Prefix: HealthPath, Handler: health.NewHandler(checks...)},
			{Prefix: MetricsPath, Handler: m.Handler()},
			{Prefix: servicePath, Handler: service.Routes()},
		},
	}

	return t, nil
}

// Strategy returns the serialization strategy the table was composed with.
func (t *Table) Strategy() media.Strategy {
	return t.strategy
}

// Bindings returns a copy of the ordered binding list.
func (t *Table) Bindings() []Binding {
	out := make([]Binding, len(t.bindings))
	copy(out, t.bindings)
	return out
}

// MiddlewareNames returns the names of the global middleware chain in
// registration order.
func (t *Table) MiddlewareNames() []string {
	out := make([]string, 0, len(t.middlewares))
	for _, mw := range t.middlewares {
		out = append(out, mw.name)
	}
	return out
}

// Router materializes the table into a fresh chi mux. Each call builds a new
// mux, so a table can back multiple listeners without shared mutable state.
func (t *Table) Router() *chi.Mux {
	router := chi.NewRouter()
	for _, mw := range t.middlewares {
		router.Use(mw.fn)
	}
	for _, b := range t.bindings {
		if sub, ok := b.Handler.(chi.Router); ok {
			router.Mount(b.Prefix, sub)
			continue
		}
		router.Handle(b.Prefix, b.Handler)
	}
	return router
}
