package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/argumentor/analysis-service/internal/analysis"
	"github.com/argumentor/analysis-service/internal/events"
	"github.com/argumentor/analysis-service/internal/models"
	"github.com/argumentor/analysis-service/internal/repositories"
	"github.com/argumentor/analysis-service/internal/validator"
)

// defaultRecentLimit bounds how many past interactions a style lookup
// pulls back when the caller does not say.
const defaultRecentLimit = 20

// LearningStyleService detects a learner's preferred modality from
// free text and exposes their recent interaction history.
type LearningStyleService interface {
	DetectStyle(ctx context.Context, req *DetectStyleRequest) (*DetectStyleResponse, error)
	RecentInteractions(ctx context.Context, studentID string, limit int) ([]*models.Interaction, error)
	StudentStats(ctx context.Context, studentID string) (*repositories.InteractionStats, error)
}

// DetectStyleRequest carries one text sample to profile.
type DetectStyleRequest struct {
	Text      string `json:"text" validate:"required"`
	SessionID string `json:"session_id"`
	StudentID string `json:"student_id"`
	Topic     string `json:"topic"`
}

// DetectStyleResponse reports the winning modality, the full per-modality
// hit counts and the adaptations matching the result.
type DetectStyleResponse struct {
	Modality        models.Modality           `json:"modality"`
	Scores          models.ModalityScores     `json:"scores"`
	Determined      bool                      `json:"determined"`
	Recommendations []models.AdaptationBundle `json:"recommendations"`
}

type learningStyleService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewLearningStyleService(
	repo repositories.Repository,
	publisher events.EventPublisher,
	logger *slog.Logger,
	v *validator.Validator,
) LearningStyleService {
	return &learningStyleService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: v,
	}
}

func (s *learningStyleService) DetectStyle(ctx context.Context, req *DetectStyleRequest) (*DetectStyleResponse, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	if req.Text == "" {
		return nil, ErrEmptyText
	}

	scores := analysis.ScoreModalities(req.Text)
	modality := analysis.DetectModality(req.Text)
	determined := modality != models.ModalityUndetermined

	topic := req.Topic
	if topic == "" {
		topic = "el tema"
	}

	s.logger.Info("Detected learning style",
		"student_id", req.StudentID,
		"modality", modality,
		"determined", determined)

	if err := s.recordDetection(ctx, req, modality); err != nil {
		s.logger.Error("Failed to record style detection",
			"student_id", req.StudentID, "error", err)
	}

	if determined {
		s.publishStyleEvent(ctx, req, modality, scores.Count(modality))
	}

	return &DetectStyleResponse{
		Modality:        modality,
		Scores:          scores,
		Determined:      determined,
		Recommendations: analysis.SelectAdaptations(modality, topic, !determined),
	}, nil
}

func (s *learningStyleService) RecentInteractions(ctx context.Context, studentID string, limit int) ([]*models.Interaction, error) {
	if studentID == "" {
		return nil, fmt.Errorf("%w: student id is required", ErrValidationFailed)
	}
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	interactions, err := s.repo.Interaction().GetRecentByStudent(ctx, studentID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load interactions: %w", err)
	}
	if len(interactions) == 0 {
		return nil, ErrStudentNotFound
	}
	return interactions, nil
}

// StudentStats aggregates a student's persisted interactions by
// modality and role.
func (s *learningStyleService) StudentStats(ctx context.Context, studentID string) (*repositories.InteractionStats, error) {
	if studentID == "" {
		return nil, fmt.Errorf("%w: student id is required", ErrValidationFailed)
	}

	stats, err := s.repo.Interaction().GetStatsByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load interaction stats: %w", err)
	}
	if stats.TotalInteractions == 0 {
		return nil, ErrStudentNotFound
	}
	return stats, nil
}

func (s *learningStyleService) recordDetection(ctx context.Context, req *DetectStyleRequest, modality models.Modality) error {
	if s.repo == nil || req.StudentID == "" {
		return nil
	}

	interaction := &models.Interaction{
		StudentID: req.StudentID,
		SessionID: req.SessionID,
		Role:      models.AgentStudent,
		Message:   req.Text,
		Modality:  modality,
	}
	return s.repo.Interaction().Create(ctx, interaction)
}

func (s *learningStyleService) publishStyleEvent(ctx context.Context, req *DetectStyleRequest, modality models.Modality, hits int) {
	if s.publisher == nil {
		return
	}

	event := &events.Event{
		ID:        newEventID(),
		Type:      events.EventStyleDetected,
		Timestamp: time.Now(),
		Source:    "analysis-service",
		Version:   "1.0",
		Data: events.StyleDetectedEvent{
			SessionID:  req.SessionID,
			StudentID:  req.StudentID,
			Modality:   modality,
			HitCount:   hits,
			DetectedAt: time.Now(),
		},
	}
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish style event", "error", err)
	}
}
