package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/budgetwise/expense-tracker/internal/auth"
	"github.com/budgetwise/expense-tracker/internal/expenditure"
	"github.com/budgetwise/expense-tracker/internal/income"
	"github.com/budgetwise/expense-tracker/internal/transport/middleware"
	"github.com/budgetwise/expense-tracker/internal/transport/swagger"
	"github.com/budgetwise/expense-tracker/internal/user"
	"github.com/go-chi/chi"
)

// RegisterAllRoutes wires the full HTTP surface. Paths keep their trailing
// slashes; existing clients depend on the exact form.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	allowedOrigins string,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	incomeHandler *income.Handler,
	expenditureHandler *expenditure.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/auth", func(r chi.Router) {
		r.Post("/signup/", authHandler.Signup)
		r.Post("/login/", authHandler.Login)
		r.Post("/refresh/", authHandler.Refresh)
		r.Post("/logout/", authHandler.Logout)

		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)
			pr.Get("/user/{userID}/profile/", userHandler.GetProfile)
			pr.Put("/user/{userID}/profile/", userHandler.UpdateProfile)
		})
	})

	router.Route("/user", func(r chi.Router) {
		r.Use(authHandler.AuthMiddleware)

		r.Route("/income", func(ir chi.Router) {
			ir.Get("/", incomeHandler.List)
			ir.Post("/", incomeHandler.Create)
			ir.Get("/{incomeID}/", incomeHandler.Get)
			ir.Put("/{incomeID}/", incomeHandler.Update)
			ir.Delete("/{incomeID}/", incomeHandler.Delete)
		})

		r.Route("/expenditure", func(er chi.Router) {
			er.Get("/", expenditureHandler.List)
			er.Post("/", expenditureHandler.Create)
			er.Get("/{expenditureID}/", expenditureHandler.Get)
			er.Put("/{expenditureID}/", expenditureHandler.Update)
			er.Delete("/{expenditureID}/", expenditureHandler.Delete)
		})
	})
}
