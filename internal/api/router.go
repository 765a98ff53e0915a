package api

import (
	"bank-services/internal/api/handler"
	mw "bank-services/internal/api/middleware"
	"bank-services/internal/auth"
	"bank-services/internal/config"
	"bank-services/internal/domain/homeloan"
	"bank-services/internal/domain/savingsaccount"
	"context"
	"log/slog"
	"net/http"
	"time"

	_ "bank-services/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"
	"github.com/redis/go-redis/v9"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Dependencies are the collaborators the HTTP layer is built from. Redis is
// optional and only used for rate limiting.
type Dependencies struct {
	HomeLoans       homeloan.HomeLoanService
	SavingsAccounts savingsaccount.SavingsAccountService
	Users           handler.Authenticator
	Tokens          *auth.TokenManager
	Redis           *redis.Client
}

// SetupRouter wires every route and middleware. Background work started for the
// router, such as sweeping in-memory rate limit buckets, stops when ctx is done.
func SetupRouter(ctx context.Context, deps Dependencies, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(ctx, router, cfg, deps.Redis, logger)
	setupMetricsEndpoint(router, cfg, logger)
	setupAuthRoutes(router, deps, logger)
	setupHomeLoanRoutes(router, cfg, deps, logger)
	setupSavingsAccountRoutes(router, cfg, deps, logger)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	setupSwaggerEndpoint(router, logger)

	return router
}

func setupMiddleware(ctx context.Context, router *chi.Mux, cfg *config.Config, redisClient *redis.Client, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(mw.NewRateLimiterMiddleware(ctx, cfg.Server.RateLimit, redisClient, logger).Middleware)
	router.Use(mw.MetricsMiddleware())
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupSwaggerEndpoint(router *chi.Mux, logger *slog.Logger) {
	logger.Info("Setting up Swagger UI endpoint", "path", "/swagger/")
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
}

func setupAuthRoutes(router *chi.Mux, deps Dependencies, logger *slog.Logger) {
	authHandler := handler.NewAuthHandler(deps.Users, deps.Tokens, logger)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
	})
}

func setupHomeLoanRoutes(router *chi.Mux, cfg *config.Config, deps Dependencies, logger *slog.Logger) {
	h := handler.NewHomeLoanHandler(deps.HomeLoans, logger)
	authCfg := cfg.Server.Auth

	router.Route("/homeloans", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(authCfg, deps.Tokens, logger))
		r.With(mw.RequireRole(authCfg, config.PermissionRead, logger)).Get("/", h.SearchHomeLoans)
		r.With(mw.RequireRole(authCfg, config.PermissionRead, logger)).Get("/{id}", h.GetHomeLoan)
		r.With(mw.RequireRole(authCfg, config.PermissionCreateOrModify, logger)).Post("/", h.AddHomeLoan)
		r.With(mw.RequireRole(authCfg, config.PermissionCreateOrModify, logger)).Put("/", h.ModifyHomeLoan)
		r.With(mw.RequireRole(authCfg, config.PermissionDeleteOrPurge, logger)).Delete("/{id}", h.DeleteHomeLoan)
	})
}

func setupSavingsAccountRoutes(router *chi.Mux, cfg *config.Config, deps Dependencies, logger *slog.Logger) {
	h := handler.NewSavingsAccountHandler(deps.SavingsAccounts, logger)
	authCfg := cfg.Server.Auth

	router.Route("/savingsbankaccounts", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(authCfg, deps.Tokens, logger))
		r.With(mw.RequireRole(authCfg, config.PermissionRead, logger)).Get("/", h.SearchSavingsAccounts)
		r.With(mw.RequireRole(authCfg, config.PermissionRead, logger)).Get("/{id}", h.GetSavingsAccount)
		r.With(mw.RequireRole(authCfg, config.PermissionCreateOrModify, logger)).Post("/", h.AddSavingsAccount)
		r.With(mw.RequireRole(authCfg, config.PermissionCreateOrModify, logger)).Put("/", h.ModifySavingsAccount)
		r.With(mw.RequireRole(authCfg, config.PermissionDeleteOrPurge, logger)).Delete("/{id}", h.DeleteSavingsAccount)
	})
}
