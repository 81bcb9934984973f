package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a per-conversation accumulation of extracted intelligence.
// Each analyzed turn merges into Record; merge monotonicity guarantees no
// previously confirmed finding is ever lost.
type Session struct {
	ID               uuid.UUID           `json:"id"`
	Record           *IntelligenceRecord `json:"record"`
	ScamDetected     bool                `json:"scam_detected"`
	ScamType         ScamType            `json:"scam_type,omitempty"`
	Confidence       float64             `json:"confidence"`
	MessagesAnalyzed int                 `json:"messages_analyzed"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// NewSession creates an empty session with the given ID.
func NewSession(id uuid.UUID) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		Record:    NewIntelligenceRecord(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
