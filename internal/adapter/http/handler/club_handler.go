package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clubkit/treasury/internal/adapter/http/dto"
	"github.com/clubkit/treasury/internal/usecase"
)

// ClubHandler handles club administration HTTP requests. Club creation and
// listing sit outside the tenant scope; they are platform administration.
type ClubHandler struct {
	clubUC *usecase.ClubUseCase
}

// NewClubHandler creates a new ClubHandler.
func NewClubHandler(clubUC *usecase.ClubUseCase) *ClubHandler {
	return &ClubHandler{clubUC: clubUC}
}

// Create creates a new club with its cash fund.
func (h *ClubHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClubRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	club, err := h.clubUC.CreateClub(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create club", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.ClubFromDomain(club))
}

// Get retrieves a club by ID.
func (h *ClubHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing club ID", "")
		return
	}

	club, err := h.clubUC.GetClub(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get club", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ClubFromDomain(club))
}

// Resolve resolves a club by subdomain.
func (h *ClubHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	subdomain := chi.URLParam(r, "subdomain")
	if subdomain == "" {
		writeError(w, http.StatusBadRequest, "missing subdomain", "")
		return
	}

	club, err := h.clubUC.ResolveSubdomain(r.Context(), subdomain)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to resolve club", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ClubFromDomain(club))
}

// List lists clubs with pagination.
func (h *ClubHandler) List(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.clubUC.ListClubs(r.Context(), usecase.ListClubsInput{
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list clubs", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ClubsFromDomain(clubs))
}
