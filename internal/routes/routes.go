package routes

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wigconnect/wigconnect/internal/assets"
	"github.com/wigconnect/wigconnect/internal/formstate"
	"github.com/wigconnect/wigconnect/internal/handlers"
	"github.com/wigconnect/wigconnect/internal/metrics"
	"github.com/wigconnect/wigconnect/internal/middlewares"
	"github.com/wigconnect/wigconnect/internal/settings"
	"github.com/wigconnect/wigconnect/web/templates"
)

type Deps struct {
	Logger   *slog.Logger
	Tmpls    *templates.Tmpls
	Assets   *assets.Assets
	Store    *settings.Store
	Forms    *formstate.Registry
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	// Secure marks the form session cookie Secure.
	Secure bool
}

func AddRoutes(mux *chi.Mux, d Deps) {
	d.Assets.HttpHandler(mux)

	mux.Handle("GET /settings.json", handlers.SettingsDocument(d.Store))
	mux.Handle("GET /metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))

	mux.Group(func(mux chi.Router) {
		mux.Use(middlewares.FormSession(d.Secure))

		mux.Handle("GET /", handlers.Index(d.Store, d.Forms, d.Metrics, d.Assets, d.Tmpls))
		mux.Handle("GET /updates", handlers.Updates(d.Logger, d.Store, d.Forms, d.Tmpls))

		mux.Route("/contact", func(mux chi.Router) {
			mux.Handle("POST /", handlers.ContactSubmit(d.Logger, d.Store, d.Forms, d.Metrics, d.Tmpls))
			mux.Handle("POST /reset", handlers.ContactReset(d.Store, d.Forms, d.Metrics, d.Tmpls))
			mux.Handle("POST /format", handlers.ContactFormat(d.Store))
		})
	})
}
