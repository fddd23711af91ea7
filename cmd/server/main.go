package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "github.com/clubkit/treasury/internal/adapter/http"
	"github.com/clubkit/treasury/internal/adapter/http/handler"
	"github.com/clubkit/treasury/internal/adapter/http/middleware"
	postgresRepo "github.com/clubkit/treasury/internal/adapter/repository/postgres"
	redisRepo "github.com/clubkit/treasury/internal/adapter/repository/redis"
	"github.com/clubkit/treasury/internal/infrastructure/auth"
	"github.com/clubkit/treasury/internal/infrastructure/config"
	"github.com/clubkit/treasury/internal/infrastructure/logger"
	"github.com/clubkit/treasury/internal/infrastructure/metrics"
	"github.com/clubkit/treasury/internal/infrastructure/postgres"
	"github.com/clubkit/treasury/internal/infrastructure/redis"
	"github.com/clubkit/treasury/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx := context.Background()

	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	clubRepo := postgresRepo.NewClubRepository(pool)
	fundRepo := postgresRepo.NewCashFundRepository(pool)
	memberRepo := postgresRepo.NewMemberRepository(pool)
	bankRepo := postgresRepo.NewBankAccountRepository(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	retrier := postgresRepo.NewRetrier(log)
	idGen := postgresRepo.NewULIDGenerator()
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Use cases
	guard := usecase.NewTenantGuard(fundRepo, memberRepo, bankRepo)
	clubUC := usecase.NewClubUseCase(txManager, clubRepo, fundRepo, cache, idGen)
	memberUC := usecase.NewMemberUseCase(memberRepo, idGen)
	bankUC := usecase.NewBankAccountUseCase(bankRepo, idGen)
	treasuryUC := usecase.NewTreasuryUseCase(txManager, guard, fundRepo, memberRepo, entryRepo, idGen, m)
	statementUC := usecase.NewStatementUseCase(entryRepo, memberRepo, fundRepo, retrier, log)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ClubHandler:        handler.NewClubHandler(clubUC),
		MemberHandler:      handler.NewMemberHandler(memberUC),
		BankAccountHandler: handler.NewBankAccountHandler(bankUC),
		TreasuryHandler:    handler.NewTreasuryHandler(treasuryUC),
		StatementHandler:   handler.NewStatementHandler(statementUC),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),
		JWTManager:         jwtManager,
		IdempotencyStore:   idempotencyStore,
		Metrics:            m,
		RateLimiter:        middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
		Logger:             log,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
