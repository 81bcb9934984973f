package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"scamintel/internal/config"
	"scamintel/internal/domain/models"
	"scamintel/internal/domain/services"
	"scamintel/internal/infrastructure/database/repository"
	"scamintel/pkg/logger"
)

// SessionsHandler handles session-scoped analysis endpoints
type SessionsHandler struct {
	sessions  *services.SessionService
	highValue []models.EntityType
	logger    *logger.Logger
}

// NewSessionsHandler creates a new SessionsHandler
func NewSessionsHandler(sessions *services.SessionService, cfg *config.Config, log *logger.Logger) *SessionsHandler {
	var highValue []models.EntityType
	if cfg != nil {
		for _, name := range cfg.Extraction.HighValueTypes {
			if t, ok := models.ParseEntityType(name); ok {
				highValue = append(highValue, t)
			}
		}
	}
	return &SessionsHandler{
		sessions:  sessions,
		highValue: highValue,
		logger:    log.WithComponent("sessions-handler"),
	}
}

// AnalyzeRequest is the request body for POST /sessions/{id}/analyze
type AnalyzeRequest struct {
	Messages        []string                `json:"messages"`
	ModelCandidates *models.ModelCandidates `json:"model_candidates,omitempty"`
}

// Analyze handles POST /api/v1/sessions/{id}/analyze
func (h *SessionsHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Messages) == 0 {
		respondError(w, http.StatusBadRequest, "messages is required")
		return
	}

	session, err := h.sessions.AnalyzeTurn(r.Context(), sessionID, req.Messages, req.ModelCandidates)
	if err != nil {
		h.logger.Error().Err(err).Str("session_id", sessionID.String()).Msg("failed to analyze turn")
		respondError(w, http.StatusInternalServerError, "failed to analyze messages")
		return
	}

	respondJSON(w, http.StatusOK, session)
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	session, err := h.sessions.Get(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			respondError(w, http.StatusNotFound, "session not found")
			return
		}
		h.logger.Error().Err(err).Str("session_id", sessionID.String()).Msg("failed to load session")
		respondError(w, http.StatusInternalServerError, "failed to load session")
		return
	}

	respondJSON(w, http.StatusOK, session)
}

// Completeness handles GET /api/v1/sessions/{id}/completeness. The required
// entity types default to the configured high-value set and may be overridden
// with a comma-separated ?types= parameter.
func (h *SessionsHandler) Completeness(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	required := h.highValue
	if raw := r.URL.Query().Get("types"); raw != "" {
		required = nil
		for _, name := range strings.Split(raw, ",") {
			t, ok := models.ParseEntityType(strings.TrimSpace(name))
			if !ok {
				respondError(w, http.StatusBadRequest, "unknown entity type: "+name)
				return
			}
			required = append(required, t)
		}
	}

	report, err := h.sessions.Completeness(r.Context(), sessionID, required)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			respondError(w, http.StatusNotFound, "session not found")
			return
		}
		h.logger.Error().Err(err).Str("session_id", sessionID.String()).Msg("failed to compute completeness")
		respondError(w, http.StatusInternalServerError, "failed to compute completeness")
		return
	}

	respondJSON(w, http.StatusOK, report)
}
