package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/argumentor/analysis-service/internal/analysis"
	"github.com/argumentor/analysis-service/internal/cache"
	"github.com/argumentor/analysis-service/internal/events"
	"github.com/argumentor/analysis-service/internal/models"
	"github.com/argumentor/analysis-service/internal/repositories"
	"github.com/argumentor/analysis-service/internal/validator"
	"gorm.io/datatypes"
)

// analysisCacheTTL bounds how long a scored text stays cached. Scoring
// is deterministic, so a cached Analysis never goes stale; the TTL only
// bounds memory.
const analysisCacheTTL = time.Hour

// lowConfidenceFloor is the winning modality count below which the
// adaptation selector also includes complementary bundles.
const lowConfidenceFloor = 4

// AnalysisService runs the full submission pipeline: score, classify,
// generate feedback and challenges, detect modality, select
// adaptations, track session progress, persist the interaction and
// publish the completion event.
type AnalysisService interface {
	Analyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResponse, error)
	GetProgress(ctx context.Context, sessionID string) (*analysis.ProgressReport, error)
	GetSessionHistory(ctx context.Context, sessionID string) ([]analysis.SessionEntry, error)
}

// AnalyzeRequest is one learner submission.
type AnalyzeRequest struct {
	Text      string `json:"text" validate:"required"`
	SessionID string `json:"session_id" validate:"required"`
	StudentID string `json:"student_id"`
	Topic     string `json:"topic"`
}

// AnalyzeResponse is the composite result exposed to collaborators.
type AnalyzeResponse struct {
	Analysis        models.Analysis           `json:"analysis"`
	Weaknesses      []models.Weakness         `json:"weaknesses"`
	Strengths       []models.Strength         `json:"strengths"`
	Feedback        []models.FeedbackItem     `json:"feedback"`
	MicroChallenges []models.MicroChallenge   `json:"micro_challenges"`
	Modality        models.Modality           `json:"modality"`
	Recommendations []models.AdaptationBundle `json:"recommendations"`
	Progress        analysis.ProgressReport   `json:"progress"`
}

type analysisService struct {
	repo      repositories.Repository
	store     *analysis.SessionStore
	cache     cache.CacheService
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAnalysisService(
	repo repositories.Repository,
	store *analysis.SessionStore,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger *slog.Logger,
	v *validator.Validator,
) AnalysisService {
	return &analysisService{
		repo:      repo,
		store:     store,
		cache:     cacheService,
		publisher: publisher,
		logger:    logger,
		validator: v,
	}
}

func (s *analysisService) Analyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResponse, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	if req.Text == "" {
		return nil, ErrEmptyText
	}
	if req.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	sub := models.Submission{
		Text:      req.Text,
		SessionID: req.SessionID,
		StudentID: req.StudentID,
		Timestamp: time.Now(),
	}

	s.logger.Info("Analyzing submission",
		"session_id", sub.SessionID,
		"student_id", sub.StudentID,
		"text_length", len(sub.Text))

	scored := s.scoreWithCache(ctx, sub.Text)

	weaknesses, strengths := analysis.Classify(scored)
	feedback := analysis.GenerateFeedback(weaknesses, strengths)
	challenges := analysis.GenerateChallenges(weaknesses)

	modality, lowConfidence := s.detectWithConfidence(sub.Text)
	topic := req.Topic
	if topic == "" {
		topic = "el tema"
	}
	recommendations := analysis.SelectAdaptations(modality, topic, lowConfidence)

	s.store.Append(sub.SessionID, analysis.SessionEntry{
		Timestamp: sub.Timestamp,
		Analysis:  scored,
		Feedback:  feedback,
	})
	progress := s.store.CalculateProgress(sub.SessionID)

	if err := s.recordInteraction(ctx, sub, scored, modality); err != nil {
		// Persistence is a collaborator concern; a failed write must
		// not void a completed analysis.
		s.logger.Error("Failed to record interaction",
			"session_id", sub.SessionID, "error", err)
	}

	s.publishAnalysisEvents(ctx, sub, scored, weaknesses, strengths, progress)

	return &AnalyzeResponse{
		Analysis:        scored,
		Weaknesses:      weaknesses,
		Strengths:       strengths,
		Feedback:        feedback,
		MicroChallenges: challenges,
		Modality:        modality,
		Recommendations: recommendations,
		Progress:        progress,
	}, nil
}

func (s *analysisService) GetProgress(ctx context.Context, sessionID string) (*analysis.ProgressReport, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}
	if s.store.Len(sessionID) == 0 {
		return nil, ErrSessionNotFound
	}
	report := s.store.CalculateProgress(sessionID)
	return &report, nil
}

func (s *analysisService) GetSessionHistory(ctx context.Context, sessionID string) ([]analysis.SessionEntry, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}
	history := s.store.History(sessionID)
	if len(history) == 0 {
		return nil, ErrSessionNotFound
	}
	return history, nil
}

// scoreWithCache returns the cached analysis for identical text when
// available. Cache failures degrade to recomputing; they are never
// surfaced to the caller.
func (s *analysisService) scoreWithCache(ctx context.Context, text string) models.Analysis {
	if s.cache == nil {
		return analysis.Score(text)
	}

	key := analysisCacheKey(text)
	var cached models.Analysis
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		return cached
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Analysis cache read failed", "error", err)
	}

	scored := analysis.Score(text)
	if err := s.cache.Set(ctx, key, scored, analysisCacheTTL); err != nil {
		s.logger.Warn("Analysis cache write failed", "error", err)
	}
	return scored
}

func analysisCacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "analysis:" + hex.EncodeToString(sum[:])
}

// detectWithConfidence runs modality detection and reports whether the
// winning count is strong enough to skip complementary bundles.
func (s *analysisService) detectWithConfidence(text string) (models.Modality, bool) {
	modality := analysis.DetectModality(text)
	if modality == models.ModalityUndetermined {
		return modality, true
	}
	scores := analysis.ScoreModalities(text)
	return modality, scores.Count(modality) < lowConfidenceFloor
}

func (s *analysisService) recordInteraction(ctx context.Context, sub models.Submission, scored models.Analysis, modality models.Modality) error {
	if s.repo == nil || sub.StudentID == "" {
		return nil
	}

	snapshot, err := json.Marshal(scored)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis snapshot: %w", err)
	}

	interaction := &models.Interaction{
		StudentID: sub.StudentID,
		SessionID: sub.SessionID,
		Role:      models.AgentStudent,
		Message:   sub.Text,
		Modality:  modality,
		Analysis:  datatypes.JSON(snapshot),
	}
	if err := s.repo.Interaction().Create(ctx, interaction); err != nil {
		return fmt.Errorf("failed to create interaction: %w", err)
	}
	return nil
}

func (s *analysisService) publishAnalysisEvents(
	ctx context.Context,
	sub models.Submission,
	scored models.Analysis,
	weaknesses []models.Weakness,
	strengths []models.Strength,
	progress analysis.ProgressReport,
) {
	if s.publisher == nil {
		return
	}

	weakCategories := make([]models.SkillCategory, 0, len(weaknesses))
	for _, w := range weaknesses {
		weakCategories = append(weakCategories, w.Category)
	}

	event := &events.Event{
		ID:        newEventID(),
		Type:      events.EventAnalysisCompleted,
		Timestamp: time.Now(),
		Source:    "analysis-service",
		Version:   "1.0",
		Data: events.AnalysisCompletedEvent{
			SessionID:     sub.SessionID,
			StudentID:     sub.StudentID,
			OverallScore:  scored.Overall.Total,
			WeaknessCount: len(weaknesses),
			StrengthCount: len(strengths),
			Categories:    weakCategories,
			AnalyzedAt:    time.Now(),
		},
	}
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish analysis event", "error", err)
	}

	for _, w := range weaknesses {
		if w.Priority != models.PriorityHigh {
			continue
		}
		weaknessEvent := &events.Event{
			ID:        newEventID(),
			Type:      events.EventWeaknessDetected,
			Timestamp: time.Now(),
			Source:    "analysis-service",
			Version:   "1.0",
			Data: events.WeaknessDetectedEvent{
				SessionID: sub.SessionID,
				StudentID: sub.StudentID,
				Category:  w.Category,
				Score:     w.Score,
				Priority:  w.Priority,
			},
		}
		if err := s.publisher.PublishEvent(ctx, weaknessEvent); err != nil {
			s.logger.Error("Failed to publish weakness event", "error", err)
		}
	}

	if progress.Trend == analysis.TrendImproving || progress.Trend == analysis.TrendDeclining {
		trendEvent := &events.Event{
			ID:        newEventID(),
			Type:      events.EventTrendChanged,
			Timestamp: time.Now(),
			Source:    "analysis-service",
			Version:   "1.0",
			Data: events.TrendChangedEvent{
				SessionID:     sub.SessionID,
				Trend:         progress.Trend,
				Improvement:   progress.Improvement,
				CurrentScore:  progress.CurrentScore,
				PreviousScore: progress.PreviousScore,
			},
		}
		if err := s.publisher.PublishEvent(ctx, trendEvent); err != nil {
			s.logger.Error("Failed to publish trend event", "error", err)
		}
	}
}

// newEventID builds a time-ordered event identifier with a random suffix.
func newEventID() string {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "evt-" + strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return "evt-" + strconv.FormatInt(time.Now().UnixNano(), 36) + "-" + hex.EncodeToString(suffix)
}
