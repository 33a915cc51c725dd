package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ponabinanth/inventory-service/pkg/broadcast"
	"github.com/ponabinanth/inventory-service/pkg/httpserver"
	"github.com/ponabinanth/inventory-service/pkg/inventory"
	"github.com/ponabinanth/inventory-service/pkg/logger"
	"github.com/ponabinanth/inventory-service/pkg/notifier"
	"github.com/ponabinanth/inventory-service/pkg/requestid"
)

// Deps collects everything the router serves. Store, Hub, Dispatcher and
// History are required; HealthChecks are optional readiness probes run by
// the health endpoint.
type Deps struct {
	Store        *inventory.Store
	Hub          *broadcast.Hub
	Dispatcher   *notifier.Dispatcher
	History      *notifier.History
	Logger       *slog.Logger
	HealthChecks []func(context.Context) error
}

type handlers struct {
	store      *inventory.Store
	hub        *broadcast.Hub
	dispatcher *notifier.Dispatcher
	history    *notifier.History
	log        *slog.Logger
}

// NewRouter builds the service's HTTP surface: the product and notification
// JSON API under /api, the event stream at /api/events, and the health
// endpoint at /healthz.
func NewRouter(deps Deps) http.Handler {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	h := &handlers{
		store:      deps.Store,
		hub:        deps.Hub,
		dispatcher: deps.Dispatcher,
		history:    deps.History,
		log:        log.With(logger.Component("api")),
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(h.recovery)
	r.Use(h.requestLogger)

	r.Get("/healthz", httpserver.HealthCheckHandler(context.Background(), log, deps.HealthChecks...))

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.listProducts)
			r.Post("/", h.createProduct)
			r.Get("/{id}", h.getProduct)
			r.Put("/{id}", h.updateProduct)
			r.Delete("/{id}", h.deleteProduct)
			r.Post("/{id}/restock", h.restockProduct)
		})
		r.Get("/alerts", h.getAlerts)
		r.Get("/notifications", h.listNotifications)
		r.Post("/notifications", h.dispatchNotification)
		r.Get("/events", h.streamEvents)
	})

	return r
}
