package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clubkit/treasury/internal/adapter/http/dto"
	"github.com/clubkit/treasury/internal/adapter/http/middleware"
	"github.com/clubkit/treasury/internal/domain"
	"github.com/clubkit/treasury/internal/usecase"
)

// StatementHandler handles read-side ledger HTTP requests.
type StatementHandler struct {
	statementUC *usecase.StatementUseCase
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statementUC *usecase.StatementUseCase) *StatementHandler {
	return &StatementHandler{statementUC: statementUC}
}

// ListEntries lists the club's ledger entries, newest first.
func (h *StatementHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing principal", "")
		return
	}

	input := usecase.ListEntriesInput{
		ClubID: principal.ClubID,
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	}

	if op := r.URL.Query().Get("operation_type"); op != "" {
		opType := domain.OperationType(op)
		if !opType.Valid() {
			writeError(w, http.StatusBadRequest, "unknown operation type", op)
			return
		}
		input.OperationType = &opType
	}

	if memberID := r.URL.Query().Get("member_id"); memberID != "" {
		input.MemberID = &memberID
	}

	entries, err := h.statementUC.ListEntries(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list entries", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesFromDomain(entries))
}

// GetMemberStatement returns a member's credit history with running totals.
func (h *StatementHandler) GetMemberStatement(w http.ResponseWriter, r *http.Request) {
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

	statement, err := h.statementUC.GetMemberStatement(r.Context(), principal.ClubID, memberID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get statement", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.MemberStatementFromUseCase(statement))
}

// CheckFundConsistency recomputes the fund balance from the ledger.
func (h *StatementHandler) CheckFundConsistency(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing principal", "")
		return
	}

	report, err := h.statementUC.CheckFundConsistency(r.Context(), principal.ClubID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to check consistency", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ConsistencyReportFromUseCase(report))
}
