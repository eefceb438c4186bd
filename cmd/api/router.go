package main

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-laundry/internal/form"
	"github.com/noah-isme/backend-laundry/internal/health"
	"github.com/noah-isme/backend-laundry/internal/laundry"
	"github.com/noah-isme/backend-laundry/internal/obs"
	"github.com/noah-isme/backend-laundry/internal/ratelimit"
	"github.com/noah-isme/backend-laundry/internal/screen"
	"github.com/noah-isme/backend-laundry/internal/security"
)

type routerDeps struct {
	Logger         zerolog.Logger
	Metrics        *obs.HTTPMetrics
	Gatherer       prometheus.Gatherer
	TracingEnabled bool
	CORSOrigins    []string
	BodyLimit      int64
	Headers        bool
	RateLimit      ratelimit.Handler
	Health         health.Handler
	Screens        *screen.Handler
	Quote          *laundry.Handler
	Form           *form.Handler
}

func newRouter(d routerDeps) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if d.TracingEnabled {
		r.Use(obs.TracingMiddleware(serviceName))
	}
	if d.Metrics != nil {
		r.Use(obs.HTTPObs{Metrics: d.Metrics}.Middleware)
	}
	r.Use(obs.RequestLogger{Logger: d.Logger}.Middleware)
	r.Use(security.CORS(d.CORSOrigins))
	r.Use(security.Headers{Enable: d.Headers, EnableHSTS: true}.Middleware)

	if d.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/health/live", d.Health.Live)
	r.Get("/health/ready", d.Health.Ready)

	r.Route("/api/v1", func(v chi.Router) {
		v.Use(d.RateLimit.Middleware)
		v.Use(security.BodyLimit{Max: d.BodyLimit}.Middleware)

		v.Route("/screens", func(s chi.Router) {
			s.Get("/", d.Screens.List)
			s.Get("/{route}", d.Screens.Get)
			s.Post("/navigate", d.Screens.Navigate)
		})

		v.Route("/laundry", func(l chi.Router) {
			l.Post("/quote", d.Quote.Quote)
			l.Post("/form", d.Form.New)
			l.Post("/form/actions", d.Form.Dispatch)
			l.Post("/form/share", d.Form.Share)
		})
	})

	return r
}
