package handlers

import (
	"encoding/json"
	"net/http"

	"scamintel/internal/config"
	"scamintel/internal/domain/services"
	"scamintel/internal/infrastructure/cache"
	"scamintel/internal/infrastructure/database/repository"
	"scamintel/pkg/logger"
)

// Handlers holds all API handlers
type Handlers struct {
	Health     *HealthHandler
	Extraction *ExtractionHandler
	Sessions   *SessionsHandler
}

// Dependencies holds dependencies for handlers
type Dependencies struct {
	Extractor *services.IntelExtractor
	Adapter   *services.ModelAdapter
	Detector  *services.ScamDetector
	Sessions  *services.SessionService
	Cache     *cache.RedisCache
	Repos     *repository.Repositories
	Config    *config.Config
	Logger    *logger.Logger
}

// NewHandlers creates all handlers
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(deps.Cache, deps.Repos, deps.Config, deps.Logger),
		Extraction: NewExtractionHandler(deps.Extractor, deps.Adapter, deps.Detector, deps.Config, deps.Logger),
		Sessions:   NewSessionsHandler(deps.Sessions, deps.Config, deps.Logger),
	}
}

// respondJSON writes a JSON response with the given status
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
