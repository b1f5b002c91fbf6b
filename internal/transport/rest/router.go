package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/budget-tracker/internal/category"
	"github.com/frahmantamala/budget-tracker/internal/expense"
	"github.com/frahmantamala/budget-tracker/internal/summary"
	"github.com/frahmantamala/budget-tracker/internal/transport/middleware"
	"github.com/frahmantamala/budget-tracker/internal/transport/swagger"
	"github.com/go-chi/chi"
)

// RegisterAllRoutes wires every HTTP route of the service onto the router.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, categoryHandler *category.Handler, expenseHandler *expense.Handler, summaryHandler *summary.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Global middleware
	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.RecoveryMiddleware(logger))

	// API documentation
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if categoryHandler != nil {
			r.Route("/categories", func(cr chi.Router) {
				cr.Get("/", categoryHandler.GetCategories)
				cr.Post("/", categoryHandler.CreateCategory)
				cr.Get("/{id}", categoryHandler.GetCategory)
				cr.Put("/{id}", categoryHandler.UpdateCategory)
				cr.Delete("/{id}", categoryHandler.DeleteCategory)
			})
		}

		if expenseHandler != nil {
			r.Route("/expenses", func(er chi.Router) {
				er.Get("/", expenseHandler.GetExpenses)
				er.Post("/", expenseHandler.CreateExpense)
				er.Get("/{id}", expenseHandler.GetExpense)
				er.Put("/{id}", expenseHandler.UpdateExpense)
				er.Delete("/{id}", expenseHandler.DeleteExpense)
			})
		}

		if summaryHandler != nil {
			r.Get("/summary", summaryHandler.GetSummary)
		}
	})

	// SPA shell and static assets
	RegisterSPARoutes(router, logger)
}
