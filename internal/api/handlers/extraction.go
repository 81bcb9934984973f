package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"scamintel/internal/config"
	"scamintel/internal/domain/models"
	"scamintel/internal/domain/services"
	"scamintel/pkg/logger"
)

// ExtractionHandler handles stateless extraction endpoints
type ExtractionHandler struct {
	extractor *services.IntelExtractor
	adapter   *services.ModelAdapter
	detector  *services.ScamDetector
	maxLen    int
	logger    *logger.Logger
}

// NewExtractionHandler creates a new ExtractionHandler
func NewExtractionHandler(
	extractor *services.IntelExtractor,
	adapter *services.ModelAdapter,
	detector *services.ScamDetector,
	cfg *config.Config,
	log *logger.Logger,
) *ExtractionHandler {
	maxLen := 0
	if cfg != nil {
		maxLen = cfg.Extraction.MaxTextLength
	}
	return &ExtractionHandler{
		extractor: extractor,
		adapter:   adapter,
		detector:  detector,
		maxLen:    maxLen,
		logger:    log.WithComponent("extraction-handler"),
	}
}

// ExtractRequest is the request body for POST /extract
type ExtractRequest struct {
	Text            string                     `json:"text"`
	Messages        []string                   `json:"messages,omitempty"`
	ModelCandidates *models.ModelCandidates    `json:"model_candidates,omitempty"`
	PriorRecord     *models.IntelligenceRecord `json:"prior_record,omitempty"`
}

// ExtractResponse is the response body for POST /extract
type ExtractResponse struct {
	Record         *models.IntelligenceRecord `json:"record"`
	Classification *models.ScamClassification `json:"classification"`
	EntityCount    int                        `json:"entity_count"`
}

// Extract handles POST /api/v1/extract. It runs the deterministic scan,
// validates and merges any model-produced candidates, and folds both into
// the caller-supplied prior record when one is given.
func (h *ExtractionHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text := req.Text
	if text == "" && len(req.Messages) > 0 {
		text = strings.Join(req.Messages, " ")
	}
	if strings.TrimSpace(text) == "" {
		respondError(w, http.StatusBadRequest, "text or messages is required")
		return
	}
	if h.maxLen > 0 && len(text) > h.maxLen {
		text = text[:h.maxLen]
	}

	patternRecord := h.extractor.Extract(text)
	merged := h.adapter.MergeHybrid(patternRecord, req.ModelCandidates, req.PriorRecord)
	classification := h.detector.ClassifyWithIntel(text, merged)

	h.logger.Debug().
		Int("entities", merged.EntityCount()).
		Bool("is_scam", classification.IsScam).
		Msg("extraction completed")

	respondJSON(w, http.StatusOK, ExtractResponse{
		Record:         merged,
		Classification: classification,
		EntityCount:    merged.EntityCount(),
	})
}

// Patterns handles GET /api/v1/extract/patterns and exposes the reference
// data the scanner is built from, for client-side triage tooling.
func (h *ExtractionHandler) Patterns(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.extractor.ReferenceData())
}
