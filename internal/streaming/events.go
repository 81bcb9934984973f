package streaming

import (
	"time"

	"github.com/google/uuid"

	"scamintel/internal/domain/models"
)

// EventType represents the type of intelligence event
type EventType string

const (
	EventTypeEntityExtracted EventType = "entity_extracted"
	EventTypeSessionAnalyzed EventType = "session_analyzed"
)

// IntelEvent is a real-time notification about a newly extracted entity.
type IntelEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`

	SessionID   string            `json:"session_id,omitempty"`
	EntityType  models.EntityType `json:"entity_type,omitempty"`
	EntityValue string            `json:"entity_value,omitempty"`

	ScamDetected bool            `json:"scam_detected,omitempty"`
	ScamType     models.ScamType `json:"scam_type,omitempty"`
	Confidence   float64         `json:"confidence,omitempty"`
	EntityCount  int             `json:"entity_count,omitempty"`
}

// NewEntityEvent creates an event for a single newly extracted entity.
func NewEntityEvent(sessionID string, entityType models.EntityType, value string) *IntelEvent {
	return &IntelEvent{
		ID:          uuid.New().String(),
		Type:        EventTypeEntityExtracted,
		Timestamp:   time.Now(),
		SessionID:   sessionID,
		EntityType:  entityType,
		EntityValue: value,
	}
}

// NewSessionAnalyzedEvent creates a summary event for an analyzed turn.
func NewSessionAnalyzedEvent(session *models.Session) *IntelEvent {
	return &IntelEvent{
		ID:           uuid.New().String(),
		Type:         EventTypeSessionAnalyzed,
		Timestamp:    time.Now(),
		SessionID:    session.ID.String(),
		ScamDetected: session.ScamDetected,
		ScamType:     session.ScamType,
		Confidence:   session.Confidence,
		EntityCount:  session.Record.EntityCount(),
	}
}
