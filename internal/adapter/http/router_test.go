package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/clubkit/treasury/internal/adapter/http/handler"
	apimiddleware "github.com/clubkit/treasury/internal/adapter/http/middleware"
	"github.com/clubkit/treasury/internal/domain"
	"github.com/clubkit/treasury/internal/infrastructure/auth"
	"github.com/clubkit/treasury/internal/usecase"
	"github.com/clubkit/treasury/internal/usecase/mocks"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_TenantRoutesRequireToken(t *testing.T) {
	router := NewRouter(newRouterConfig())

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/members"},
		{http.MethodGet, "/api/v1/treasury/fund"},
		{http.MethodGet, "/api/v1/entries"},
		{http.MethodPost, "/api/v1/treasury/transfers/bank-to-cash"},
	}

	for _, p := range paths {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(p.method, p.path, nil)
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected %s %s to return 401 without a token, got %d", p.method, p.path, rec.Code)
		}
	}
}

func TestNewRouter_MemberRoleCannotTransfer(t *testing.T) {
	manager := auth.NewJWTManager("router-test-secret", time.Hour)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.JWTManager = manager
	}))

	token, err := manager.Generate(domain.Principal{UserID: "u1", ClubID: "c1", Role: domain.RoleMember})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	body := `{"bank_account_id":"b1","amount":"10.00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/treasury/transfers/bank-to-cash", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected member role to be rejected with 403, got %d", rec.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	manager := auth.NewJWTManager("router-test-secret", time.Hour)
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.JWTManager = manager
		cfg.IdempotencyStore = store
	}))

	token, err := manager.Generate(domain.Principal{UserID: "u1", ClubID: "c1", Role: domain.RoleTreasurer})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	body := `{"name":"Alex"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/members/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/clubs/",
		"GET /api/v1/clubs/by-subdomain/{subdomain}",
		"POST /api/v1/members/",
		"POST /api/v1/members/{id}/credits",
		"GET /api/v1/members/{id}/statement",
		"POST /api/v1/bank-accounts/",
		"DELETE /api/v1/bank-accounts/{id}",
		"GET /api/v1/treasury/fund",
		"GET /api/v1/treasury/fund/consistency",
		"POST /api/v1/treasury/transfers/bank-to-cash",
		"POST /api/v1/treasury/transfers/cash-to-bank",
		"GET /api/v1/entries",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	txManager := mocks.NewMockTransactionManager()
	clubRepo := mocks.NewMockClubRepository()
	fundRepo := mocks.NewMockCashFundRepository()
	memberRepo := mocks.NewMockMemberRepository()
	bankRepo := mocks.NewMockBankAccountRepository()
	entryRepo := mocks.NewMockEntryRepository()
	idGen := mocks.NewMockIDGenerator()
	guard := usecase.NewTenantGuard(fundRepo, memberRepo, bankRepo)

	clubUC := usecase.NewClubUseCase(txManager, clubRepo, fundRepo, nil, idGen)
	memberUC := usecase.NewMemberUseCase(memberRepo, idGen)
	bankUC := usecase.NewBankAccountUseCase(bankRepo, idGen)
	treasuryUC := usecase.NewTreasuryUseCase(txManager, guard, fundRepo, memberRepo, entryRepo, idGen, nil)
	statementUC := usecase.NewStatementUseCase(entryRepo, memberRepo, fundRepo, passthroughRetrier{}, zerolog.Nop())

	cfg := RouterConfig{
		ClubHandler:        handler.NewClubHandler(clubUC),
		MemberHandler:      handler.NewMemberHandler(memberUC),
		BankAccountHandler: handler.NewBankAccountHandler(bankUC),
		TreasuryHandler:    handler.NewTreasuryHandler(treasuryUC),
		StatementHandler:   handler.NewStatementHandler(statementUC),
		HealthHandler:      &handler.HealthHandler{},
		JWTManager:         auth.NewJWTManager("router-test-secret", time.Hour),
		Logger:             zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type passthroughRetrier struct{}

func (passthroughRetrier) Retry(ctx context.Context, operation func() error) error {
	return operation()
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
