package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"opsdesk/internal/auth"
	"opsdesk/internal/db"
)

// Routes constructs the chi router containing all API endpoints.
func (a *API) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	allowed := a.config.AllowedOrigins
	if len(allowed) == 0 {
		allowed = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowed,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-User-Id", "X-User-Email", "X-User-Name"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           int((10 * time.Minute).Seconds()),
	}))
	r.Use(httprate.Limit(100, time.Minute))
	r.Use(auth.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		if err := db.Ping(req.Context(), a.pool); err != nil {
			respondError(w, http.StatusServiceUnavailable, err)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		// The change stream stays open until the client disconnects, so it
		// must not run under the per-request timeout.
		r.Get("/events", a.handleEvents)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			mountCRUD(r, "/orders", a.stores.Orders)
			mountCRUD(r, "/suppliers", a.stores.Suppliers)
			mountCRUD(r, "/inventory", a.stores.Inventory.Store)
			r.Post("/inventory/{id}/stock", a.handleAddStock)
			mountCRUD(r, "/sales", a.stores.Sales)
			mountCRUD(r, "/employees", a.stores.Employees)
			mountCRUD(r, "/customers", a.stores.Customers)

			r.Get("/audit-logs", a.handleListAuditLogs)
			r.Get("/activity", a.handleActivity)
			r.Post("/session", a.handleSession)
			r.Get("/org", a.handleOrg)

			r.Route("/reports", func(r chi.Router) {
				r.Get("/daily-sales", a.handleDailySales)
				r.Get("/inventory-status", a.handleInventoryStatus)
				r.Get("/customer-insights", a.handleCustomerInsights)
				r.Get("/{name}/export", a.handleExport)
			})
		})
	})

	return r
}
