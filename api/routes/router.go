package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/simplytrees/bacqyard-bridge/api/controllers"
	webhookcontrollers "github.com/simplytrees/bacqyard-bridge/api/controllers/webhooks"
	"github.com/simplytrees/bacqyard-bridge/api/middleware"
	"github.com/simplytrees/bacqyard-bridge/internal/catalog"
	"github.com/simplytrees/bacqyard-bridge/internal/intake"
	"github.com/simplytrees/bacqyard-bridge/pkg/config"
	"github.com/simplytrees/bacqyard-bridge/pkg/db"
	"github.com/simplytrees/bacqyard-bridge/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	catalogService catalog.Service,
	intakeService intake.Service,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	r.Get("/products", controllers.ListProducts(catalogService, logg))
	r.Post("/orders/webhook", webhookcontrollers.ShopifyOrders(intakeService, logg))

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
