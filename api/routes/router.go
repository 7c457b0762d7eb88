package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/locofly/inventory-backend/api/controllers"
	"github.com/locofly/inventory-backend/api/middleware"
	"github.com/locofly/inventory-backend/internal/audit"
	"github.com/locofly/inventory-backend/internal/barcode"
	"github.com/locofly/inventory-backend/internal/inventory"
	"github.com/locofly/inventory-backend/pkg/config"
	"github.com/locofly/inventory-backend/pkg/db"
	"github.com/locofly/inventory-backend/pkg/logger"
	"github.com/locofly/inventory-backend/pkg/metrics"
	pkgredis "github.com/locofly/inventory-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *pkgredis.Client,
	gatherer prometheus.Gatherer,
	httpMetrics *metrics.HTTPMetrics,
	inventoryService inventory.Service,
	auditService audit.Service,
	barcodeService barcode.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	var redisPinger pkgredis.Pinger
	var idempotencyStore pkgredis.IdempotencyStore
	if redisClient != nil {
		redisPinger = redisClient
		idempotencyStore = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisPinger))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Idempotency(idempotencyStore, cfg.Idempotency.TTL, logg))

		r.Route("/locations", func(r chi.Router) {
			r.Get("/", controllers.ListLocations(inventoryService, logg))
			r.Post("/", controllers.CreateLocation(inventoryService, logg))
			r.Route("/{locationID}/items", func(r chi.Router) {
				r.Get("/", controllers.ListLocationItems(inventoryService, logg))
				r.Put("/{itemName}", controllers.SetItemQuantity(inventoryService, logg))
				r.Post("/{itemName}/adjust", controllers.AdjustItemQuantity(inventoryService, logg))
				r.Delete("/{itemName}", controllers.DeleteItem(inventoryService, logg))
			})
		})

		r.Get("/items/{itemName}/locations", controllers.ItemLocations(inventoryService, logg))

		r.Route("/barcodes", func(r chi.Router) {
			r.Get("/", controllers.ListBarcodes(barcodeService, logg))
			r.Get("/{code}", controllers.ResolveBarcode(barcodeService, logg))
		})

		r.Get("/reports/shortages", controllers.ShortageReport(inventoryService, logg))
		r.Get("/audit", controllers.AuditHistory(auditService, logg))
	})

	return r
}
