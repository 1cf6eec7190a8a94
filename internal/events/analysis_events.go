package events

import (
	"time"

	"github.com/argumentor/analysis-service/internal/models"
)

// EventType represents the different analysis lifecycle events
type EventType string

const (
	// Analysis events
	EventAnalysisCompleted EventType = "analysis.completed"
	EventWeaknessDetected  EventType = "analysis.weakness_detected"

	// Learning-style events
	EventStyleDetected EventType = "style.detected"

	// Progress events
	EventTrendChanged EventType = "progress.trend_changed"
)

// Event is the base structure published for every analysis event
type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Analysis event payloads

type AnalysisCompletedEvent struct {
	SessionID     string                 `json:"session_id"`
	StudentID     string                 `json:"student_id,omitempty"`
	OverallScore  float64                `json:"overall_score"`
	WeaknessCount int                    `json:"weakness_count"`
	StrengthCount int                    `json:"strength_count"`
	Categories    []models.SkillCategory `json:"weak_categories,omitempty"`
	AnalyzedAt    time.Time              `json:"analyzed_at"`
}

type WeaknessDetectedEvent struct {
	SessionID string               `json:"session_id"`
	StudentID string               `json:"student_id,omitempty"`
	Category  models.SkillCategory `json:"category"`
	Score     float64              `json:"score"`
	Priority  models.PriorityLevel `json:"priority"`
}

type StyleDetectedEvent struct {
	SessionID  string          `json:"session_id"`
	StudentID  string          `json:"student_id,omitempty"`
	Modality   models.Modality `json:"modality"`
	HitCount   int             `json:"hit_count"`
	DetectedAt time.Time       `json:"detected_at"`
}

type TrendChangedEvent struct {
	SessionID     string  `json:"session_id"`
	Trend         string  `json:"trend"`
	Improvement   float64 `json:"improvement"`
	CurrentScore  float64 `json:"current_score"`
	PreviousScore float64 `json:"previous_score"`
}
