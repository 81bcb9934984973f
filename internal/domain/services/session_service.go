package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"scamintel/internal/domain/models"
	"scamintel/internal/infrastructure/cache"
	"scamintel/internal/infrastructure/database/repository"
	"scamintel/internal/streaming"
	"scamintel/pkg/logger"
)

// SessionService accumulates per-conversation intelligence turn-over-turn.
// The extraction pipeline itself is pure; this service is the stateful
// caller that re-supplies the prior record on every merge, which is safe
// because merge never loses previously confirmed findings.
type SessionService struct {
	extractor *IntelExtractor
	adapter   *ModelAdapter
	detector  *ScamDetector
	repos     *repository.Repositories
	cache     *cache.RedisCache
	publisher *streaming.NATSPublisher
	cacheTTL  time.Duration
	logger    *logger.Logger
}

// NewSessionService creates a session service. The publisher may be nil when
// event streaming is disabled.
func NewSessionService(
	extractor *IntelExtractor,
	adapter *ModelAdapter,
	detector *ScamDetector,
	repos *repository.Repositories,
	c *cache.RedisCache,
	publisher *streaming.NATSPublisher,
	cacheTTL time.Duration,
	log *logger.Logger,
) *SessionService {
	return &SessionService{
		extractor: extractor,
		adapter:   adapter,
		detector:  detector,
		repos:     repos,
		cache:     c,
		publisher: publisher,
		cacheTTL:  cacheTTL,
		logger:    log.WithComponent("session-service"),
	}
}

// AnalyzeTurn extracts intelligence from a batch of adversary messages and
// merges it into the stored session record. Returns the updated session.
func (s *SessionService) AnalyzeTurn(
	ctx context.Context,
	sessionID uuid.UUID,
	messages []string,
	candidates *models.ModelCandidates,
) (*models.Session, error) {
	session, err := s.getOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	text := strings.Join(messages, " ")
	patternRecord := s.extractor.Extract(text)
	prior := session.Record
	merged := s.adapter.MergeHybrid(patternRecord, candidates, prior)

	classification := s.detector.ClassifyWithIntel(text, merged)

	session.Record = merged
	session.MessagesAnalyzed += len(messages)
	session.UpdatedAt = time.Now()
	if classification.IsScam {
		session.ScamDetected = true
		session.ScamType = classification.ScamType
	}
	if classification.Confidence > session.Confidence {
		session.Confidence = classification.Confidence
	}

	if err := s.repos.Sessions.Upsert(ctx, session); err != nil {
		return nil, err
	}
	if err := s.cache.CacheSession(ctx, session.ID.String(), session, s.cacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("session_id", session.ID.String()).Msg("failed to cache session")
	}

	s.publishEvents(ctx, session, prior, merged)

	s.logger.Info().
		Str("session_id", session.ID.String()).
		Int("messages", len(messages)).
		Int("entities", merged.EntityCount()).
		Bool("scam_detected", session.ScamDetected).
		Msg("conversation turn analyzed")

	return session, nil
}

// Get loads a session, preferring the cache.
func (s *SessionService) Get(ctx context.Context, sessionID uuid.UUID) (*models.Session, error) {
	var cached models.Session
	err := s.cache.GetCachedSession(ctx, sessionID.String(), &cached)
	if err == nil {
		return &cached, nil
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		s.logger.Warn().Err(err).Str("session_id", sessionID.String()).Msg("session cache read failed")
	}

	session, err := s.repos.Sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cacheErr := s.cache.CacheSession(ctx, sessionID.String(), session, s.cacheTTL); cacheErr != nil {
		s.logger.Warn().Err(cacheErr).Str("session_id", sessionID.String()).Msg("failed to cache session")
	}
	return session, nil
}

// Completeness runs the read-only completeness query against a stored
// session record.
func (s *SessionService) Completeness(ctx context.Context, sessionID uuid.UUID, highValue []models.EntityType) (models.CompletenessReport, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return models.CompletenessReport{}, err
	}
	return session.Record.Completeness(highValue), nil
}

func (s *SessionService) getOrCreate(ctx context.Context, sessionID uuid.UUID) (*models.Session, error) {
	session, err := s.Get(ctx, sessionID)
	if err == nil {
		return session, nil
	}
	if errors.Is(err, repository.ErrSessionNotFound) {
		return models.NewSession(sessionID), nil
	}
	return nil, err
}

// publishEvents emits one event per newly merged entity plus a session
// summary. Publishing is best effort; a broker outage never fails a turn.
func (s *SessionService) publishEvents(ctx context.Context, session *models.Session, prior, merged *models.IntelligenceRecord) {
	if s.publisher == nil {
		return
	}
	for _, t := range models.FixedEntityTypes() {
		for _, v := range merged.Values(t) {
			if prior.Contains(t, v) {
				continue
			}
			event := streaming.NewEntityEvent(session.ID.String(), t, v)
			if err := s.publisher.Publish(ctx, event); err != nil {
				s.logger.Warn().Err(err).Str("entity_type", string(t)).Msg("failed to publish entity event")
			}
		}
	}
	if err := s.publisher.Publish(ctx, streaming.NewSessionAnalyzedEvent(session)); err != nil {
		s.logger.Warn().Err(err).Msg("failed to publish session event")
	}
}
