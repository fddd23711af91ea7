package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clubkit/treasury/internal/adapter/http/dto"
	"github.com/clubkit/treasury/internal/adapter/http/middleware"
	"github.com/clubkit/treasury/internal/usecase"
)

// MemberHandler handles member administration HTTP requests.
type MemberHandler struct {
	memberUC *usecase.MemberUseCase
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(memberUC *usecase.MemberUseCase) *MemberHandler {
	return &MemberHandler{memberUC: memberUC}
}

// Create creates a new member in the caller's club.
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing principal", "")
		return
	}

	var req dto.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	member, err := h.memberUC.CreateMember(r.Context(), req.ToUseCaseInput(principal.ClubID))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create member", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.MemberFromDomain(member))
}

// Get retrieves a member of the caller's club.
func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing principal", "")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing member ID", "")
		return
	}

	member, err := h.memberUC.GetMember(r.Context(), principal.ClubID, id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get member", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.MemberFromDomain(member))
}

// List lists the caller's club members.
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing principal", "")
		return
	}

	members, err := h.memberUC.ListMembers(r.Context(), usecase.ListMembersInput{
		ClubID: principal.ClubID,
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list members", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MembersFromDomain(members))
}
