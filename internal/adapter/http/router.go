package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/clubkit/treasury/internal/adapter/http/handler"
	"github.com/clubkit/treasury/internal/adapter/http/middleware"
	"github.com/clubkit/treasury/internal/domain"
	"github.com/clubkit/treasury/internal/infrastructure/auth"
	"github.com/clubkit/treasury/internal/infrastructure/metrics"
	"github.com/clubkit/treasury/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	ClubHandler        *handler.ClubHandler
	MemberHandler      *handler.MemberHandler
	BankAccountHandler *handler.BankAccountHandler
	TreasuryHandler    *handler.TreasuryHandler
	StatementHandler   *handler.StatementHandler
	HealthHandler      *handler.HealthHandler

	JWTManager       *auth.JWTManager
	IdempotencyStore usecase.IdempotencyStore
	Metrics          *metrics.Metrics
	RateLimiter      *middleware.RateLimiter
	Logger           zerolog.Logger
}

// NewRouter creates the HTTP router. Everything under /api/v1 except club
// provisioning and subdomain resolution requires a club-scoped token, and
// balance-affecting routes additionally require the treasurer role.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}
	r.Use(middleware.Recovery)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Club provisioning and lookup sit outside the tenant scope.
		r.Route("/clubs", func(r chi.Router) {
			r.Post("/", cfg.ClubHandler.Create)
			r.Get("/", cfg.ClubHandler.List)
			r.Get("/by-subdomain/{subdomain}", cfg.ClubHandler.Resolve)
			r.Get("/{id}", cfg.ClubHandler.Get)
		})

		// Tenant-scoped routes: the club comes from the token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(cfg.JWTManager))

			if cfg.IdempotencyStore != nil {
				r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore).Wrap)
			}

			r.Route("/members", func(r chi.Router) {
				r.Get("/", cfg.MemberHandler.List)
				r.Get("/{id}", cfg.MemberHandler.Get)
				r.Get("/{id}/statement", cfg.StatementHandler.GetMemberStatement)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(domain.RoleTreasurer))
					r.Post("/", cfg.MemberHandler.Create)
					r.Post("/{id}/credits", cfg.TreasuryHandler.CreditMember)
				})
			})

			r.Route("/bank-accounts", func(r chi.Router) {
				r.Get("/", cfg.BankAccountHandler.List)
				r.Get("/{id}", cfg.BankAccountHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(domain.RoleTreasurer))
					r.Post("/", cfg.BankAccountHandler.Create)
					r.Delete("/{id}", cfg.BankAccountHandler.Delete)
				})
			})

			r.Route("/treasury", func(r chi.Router) {
				r.Get("/fund", cfg.TreasuryHandler.GetFund)
				r.Get("/fund/consistency", cfg.StatementHandler.CheckFundConsistency)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(domain.RoleTreasurer))
					r.Post("/transfers/bank-to-cash", cfg.TreasuryHandler.TransferBankToCash)
					r.Post("/transfers/cash-to-bank", cfg.TreasuryHandler.TransferCashToBank)
				})
			})

			r.Get("/entries", cfg.StatementHandler.ListEntries)
		})
	})

	return r
}
