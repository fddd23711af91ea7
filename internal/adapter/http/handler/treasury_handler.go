package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clubkit/treasury/internal/adapter/http/dto"
	"github.com/clubkit/treasury/internal/adapter/http/middleware"
	"github.com/clubkit/treasury/internal/usecase"
)

// TreasuryHandler handles treasury operation HTTP requests. All routes are
// club-scoped through the authenticated principal.
type TreasuryHandler struct {
	treasuryUC *usecase.TreasuryUseCase
}

// NewTreasuryHandler creates a new TreasuryHandler.
func NewTreasuryHandler(treasuryUC *usecase.TreasuryUseCase) *TreasuryHandler {
	return &TreasuryHandler{treasuryUC: treasuryUC}
}

// CreditMember adjusts a member's balance by a signed amount.
func (h *TreasuryHandler) CreditMember(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing principal", "")
		return
	}

	memberID := chi.URLParam(r, "id")
	if memberID == "" {
		writeError(w, http.StatusBadRequest, "missing member ID", "")
		return
	}

	var req dto.CreditMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(principal, memberID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err.Error())
		return
	}

	result, err := h.treasuryUC.CreditMember(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to credit member", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.CreditResultResponse{
		EntryID:       result.EntryID,
		MemberBalance: result.MemberBalance,
	})
}

// TransferBankToCash moves money from a bank account into the cash fund.
func (h *TreasuryHandler) TransferBankToCash(w http.ResponseWriter, r *http.Request) {
	h.transfer(w, r, h.treasuryUC.TransferBankToCash)
}

// TransferCashToBank moves money from the cash fund to a bank account.
func (h *TreasuryHandler) TransferCashToBank(w http.ResponseWriter, r *http.Request) {
	h.transfer(w, r, h.treasuryUC.TransferCashToBank)
}

func (h *TreasuryHandler) transfer(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, input usecase.TransferInput) (*usecase.TransferResult, error),
) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing principal", "")
		return
	}

	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(principal)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err.Error())
		return
	}

	result, err := apply(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to transfer", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.TransferResultResponse{
		EntryID:     result.EntryID,
		FundBalance: result.FundBalance,
	})
}

// GetFund returns the club's cash fund snapshot.
func (h *TreasuryHandler) GetFund(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing principal", "")
		return
	}

	snapshot, err := h.treasuryUC.GetFundSnapshot(r.Context(), principal.ClubID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get fund", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.FundSnapshotFromUseCase(snapshot))
}
