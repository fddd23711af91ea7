package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clubkit/treasury/internal/adapter/http/dto"
	"github.com/clubkit/treasury/internal/adapter/http/middleware"
	"github.com/clubkit/treasury/internal/usecase"
)

// BankAccountHandler handles bank account administration HTTP requests.
type BankAccountHandler struct {
	bankUC *usecase.BankAccountUseCase
}

// NewBankAccountHandler creates a new BankAccountHandler.
func NewBankAccountHandler(bankUC *usecase.BankAccountUseCase) *BankAccountHandler {
	return &BankAccountHandler{bankUC: bankUC}
}

// Create creates a new bank account in the caller's club.
func (h *BankAccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing principal", "")
		return
	}

	var req dto.CreateBankAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.bankUC.CreateBankAccount(r.Context(), req.ToUseCaseInput(principal.ClubID))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create bank account", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.BankAccountFromDomain(account))
}

// Get retrieves a bank account of the caller's club.
func (h *BankAccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing principal", "")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing bank account ID", "")
		return
	}

	account, err := h.bankUC.GetBankAccount(r.Context(), principal.ClubID, id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get bank account", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.BankAccountFromDomain(account))
}

// List lists the caller's club bank accounts.
func (h *BankAccountHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing principal", "")
		return
	}

	accounts, err := h.bankUC.ListBankAccounts(r.Context(), usecase.ListBankAccountsInput{
		ClubID: principal.ClubID,
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list bank accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BankAccountsFromDomain(accounts))
}

// Delete removes a bank account from the caller's club. Historic ledger
// entries keep their audit record.
func (h *BankAccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing principal", "")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing bank account ID", "")
		return
	}

	if err := h.bankUC.DeleteBankAccount(r.Context(), principal.ClubID, id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete bank account", err.Error())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
