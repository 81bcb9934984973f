package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"scamintel/internal/domain/models"
	"scamintel/internal/infrastructure/database"
	"scamintel/pkg/logger"
)

// ErrSessionNotFound is returned when a session ID has no stored row.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists conversation sessions and their accumulated
// intelligence records. The record column is JSONB in the API wire shape.
type SessionRepository struct {
	db     *database.PostgresDB
	logger *logger.Logger
}

// NewSessionRepository creates a session repository
func NewSessionRepository(db *database.PostgresDB, log *logger.Logger) *SessionRepository {
	return &SessionRepository{
		db:     db,
		logger: log.WithComponent("session-repository"),
	}
}

// Upsert inserts or replaces a session row.
func (r *SessionRepository) Upsert(ctx context.Context, session *models.Session) error {
	record, err := json.Marshal(session.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	const query = `
INSERT INTO sessions (id, record, scam_detected, scam_type, confidence, messages_analyzed, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
    record            = EXCLUDED.record,
    scam_detected     = EXCLUDED.scam_detected,
    scam_type         = EXCLUDED.scam_type,
    confidence        = EXCLUDED.confidence,
    messages_analyzed = EXCLUDED.messages_analyzed,
    updated_at        = EXCLUDED.updated_at
`
	err = r.db.Exec(ctx, query,
		session.ID,
		record,
		session.ScamDetected,
		string(session.ScamType),
		session.Confidence,
		session.MessagesAnalyzed,
		session.CreatedAt,
		session.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert session: %w", err)
	}
	return nil
}

// GetByID loads a session by ID.
func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	const query = `
SELECT id, record, scam_detected, scam_type, confidence, messages_analyzed, created_at, updated_at
FROM sessions
WHERE id = $1
`
	var (
		session  models.Session
		record   []byte
		scamType string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&record,
		&session.ScamDetected,
		&scamType,
		&session.Confidence,
		&session.MessagesAnalyzed,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	session.ScamType = models.ScamType(scamType)
	session.Record = models.NewIntelligenceRecord()
	if len(record) > 0 {
		if err := json.Unmarshal(record, session.Record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}
	}
	return &session, nil
}

// List returns recently updated sessions.
func (r *SessionRepository) List(ctx context.Context, limit, offset int) ([]*models.Session, error) {
	const query = `
SELECT id, record, scam_detected, scam_type, confidence, messages_analyzed, created_at, updated_at
FROM sessions
ORDER BY updated_at DESC
LIMIT $1 OFFSET $2
`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		var (
			session  models.Session
			record   []byte
			scamType string
		)
		if err := rows.Scan(
			&session.ID,
			&record,
			&session.ScamDetected,
			&scamType,
			&session.Confidence,
			&session.MessagesAnalyzed,
			&session.CreatedAt,
			&session.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		session.ScamType = models.ScamType(scamType)
		session.Record = models.NewIntelligenceRecord()
		if len(record) > 0 {
			if err := json.Unmarshal(record, session.Record); err != nil {
				return nil, fmt.Errorf("failed to unmarshal record: %w", err)
			}
		}
		sessions = append(sessions, &session)
	}
	return sessions, rows.Err()
}

// Delete removes a session row.
func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Repositories bundles all repositories
type Repositories struct {
	Sessions *SessionRepository
}

// NewRepositories creates the repository bundle
func NewRepositories(db *database.PostgresDB, log *logger.Logger) *Repositories {
	return &Repositories{
		Sessions: NewSessionRepository(db, log),
	}
}
