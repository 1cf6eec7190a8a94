package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/argumentor/analysis-service/internal/analysis"
	"github.com/argumentor/analysis-service/internal/models"
)

// AgentService dispatches messages between the fixed agent roles and
// keeps the per-session message log. It owns no scoring logic; each
// role handler composes the analysis primitives.
type AgentService interface {
	Route(ctx context.Context, req *RouteRequest) *models.RouteResult
	Messages(sessionID string) []models.AgentMessage
}

// RouteRequest identifies sender, target and payload for one dispatch.
type RouteRequest struct {
	From      models.AgentRole `json:"from" validate:"required,agent_role"`
	To        models.AgentRole `json:"to" validate:"required,agent_role"`
	Payload   string           `json:"payload" validate:"required"`
	SessionID string           `json:"session_id" validate:"required"`
	StudentID string           `json:"student_id"`
	Topic     string           `json:"topic"`
}

// agentHandler processes one routed message for a role.
type agentHandler func(ctx context.Context, req *RouteRequest) (interface{}, error)

type agentService struct {
	analysisService AnalysisService
	store           *analysis.SessionStore
	logger          *slog.Logger

	handlers map[models.AgentRole]agentHandler

	mu       sync.Mutex
	messages map[string][]*models.AgentMessage
	seq      uint64
}

func NewAgentService(analysisService AnalysisService, store *analysis.SessionStore, logger *slog.Logger) AgentService {
	s := &agentService{
		analysisService: analysisService,
		store:           store,
		logger:          logger,
		messages:        make(map[string][]*models.AgentMessage),
	}

	// Closed dispatch table over the role enum; there is no default
	// branch anywhere, unknown roles fail before dispatch.
	s.handlers = map[models.AgentRole]agentHandler{
		models.AgentStudent:  s.handleStudent,
		models.AgentTeacher:  s.handleTeacher,
		models.AgentAnalysis: s.handleAnalysis,
		models.AgentCritique: s.handleCritique,
	}
	return s
}

// Route drives one message through the pending -> processing ->
// completed|failed lifecycle. Every failure is reflected in the
// returned result; nothing escapes as a fault.
func (s *agentService) Route(ctx context.Context, req *RouteRequest) *models.RouteResult {
	msg := s.appendMessage(req)

	if req.Payload == "" {
		return s.fail(msg, ErrEmptyPayload.Error())
	}

	handler, ok := s.handlers[req.To]
	if !ok {
		s.logger.Warn("Route to unknown agent",
			"from", req.From, "to", req.To, "message_id", msg.ID)
		return s.fail(msg, NewRoutingError(msg.ID, req.From, req.To, ErrUnknownAgent.Error()).Error())
	}

	s.setStatus(msg, models.MessageProcessing)

	response, err := s.invoke(ctx, handler, req)
	if err != nil {
		s.logger.Error("Agent handler failed",
			"to", req.To, "message_id", msg.ID, "error", err)
		return s.fail(msg, err.Error())
	}

	s.mu.Lock()
	msg.Status = models.MessageCompleted
	msg.Response = response
	msg.UpdatedAt = time.Now()
	s.mu.Unlock()

	return &models.RouteResult{
		Success:   true,
		MessageID: msg.ID,
		Response:  response,
	}
}

// Messages returns a copy of the session's message log, oldest first.
func (s *agentService) Messages(sessionID string) []models.AgentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.AgentMessage, 0, len(s.messages[sessionID]))
	for _, m := range s.messages[sessionID] {
		out = append(out, *m)
	}
	return out
}

// invoke runs a handler, converting a panic into an error so a broken
// handler degrades to a failed message instead of taking the process.
func (s *agentService) invoke(ctx context.Context, handler agentHandler, req *RouteRequest) (response interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerFailed, r)
		}
	}()
	return handler(ctx, req)
}

func (s *agentService) appendMessage(req *RouteRequest) *models.AgentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	now := time.Now()
	msg := &models.AgentMessage{
		ID:        fmt.Sprintf("msg-%d-%d", now.UnixNano(), s.seq),
		From:      req.From,
		To:        req.To,
		SessionID: req.SessionID,
		Payload:   req.Payload,
		Status:    models.MessagePending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.messages[req.SessionID] = append(s.messages[req.SessionID], msg)
	return msg
}

func (s *agentService) setStatus(msg *models.AgentMessage, status models.MessageStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg.Status = status
	msg.UpdatedAt = time.Now()
}

func (s *agentService) fail(msg *models.AgentMessage, reason string) *models.RouteResult {
	s.mu.Lock()
	msg.Status = models.MessageFailed
	msg.Error = reason
	msg.UpdatedAt = time.Now()
	s.mu.Unlock()

	return &models.RouteResult{
		Success:   false,
		MessageID: msg.ID,
		Error:     reason,
	}
}

// ===== ROLE HANDLERS =====

// handleStudent runs the full analysis pipeline on the payload.
func (s *agentService) handleStudent(ctx context.Context, req *RouteRequest) (interface{}, error) {
	return s.analysisService.Analyze(ctx, &AnalyzeRequest{
		Text:      req.Payload,
		SessionID: req.SessionID,
		StudentID: req.StudentID,
		Topic:     req.Topic,
	})
}

// handleTeacher summarizes the session for a teacher: progress trend
// plus the currently recommended adaptations.
func (s *agentService) handleTeacher(ctx context.Context, req *RouteRequest) (interface{}, error) {
	progress := s.store.CalculateProgress(req.SessionID)

	modality := analysis.DetectModality(req.Payload)
	topic := req.Topic
	if topic == "" {
		topic = "el tema"
	}

	return map[string]interface{}{
		"session_id":      req.SessionID,
		"progress":        progress,
		"entry_count":     s.store.Len(req.SessionID),
		"recommendations": analysis.SelectAdaptations(modality, topic, true),
	}, nil
}

// handleAnalysis scores the payload without feedback generation.
func (s *agentService) handleAnalysis(ctx context.Context, req *RouteRequest) (interface{}, error) {
	scored := analysis.Score(req.Payload)
	weaknesses, strengths := analysis.Classify(scored)

	return map[string]interface{}{
		"analysis":   scored,
		"weaknesses": weaknesses,
		"strengths":  strengths,
	}, nil
}

// handleCritique turns the payload's weaknesses into remedial feedback
// and micro-challenges only.
func (s *agentService) handleCritique(ctx context.Context, req *RouteRequest) (interface{}, error) {
	scored := analysis.Score(req.Payload)
	weaknesses, _ := analysis.Classify(scored)

	return map[string]interface{}{
		"weaknesses":       weaknesses,
		"feedback":         analysis.GenerateFeedback(weaknesses, nil),
		"micro_challenges": analysis.GenerateChallenges(weaknesses),
	}, nil
}
