package models

import "time"

// Submission is a learner's free-text input for one analysis pass.
// Immutable once scored.
type Submission struct {
	Text      string    `json:"text" validate:"required"`
	SessionID string    `json:"session_id" validate:"required"`
	StudentID string    `json:"student_id"`
	Timestamp time.Time `json:"timestamp"`
}

// StructureScores covers how the text is organized.
type StructureScores struct {
	Coherence    float64 `json:"coherence"`    // connector density
	Organization float64 `json:"organization"` // ordinal / sequence markers
	Clarity      float64 `json:"clarity"`      // clarification markers
}

// ContentScores covers thesis and argument presence.
type ContentScores struct {
	HasThesis        bool    `json:"has_thesis"`
	ThesisClarity    float64 `json:"thesis_clarity"`
	ArgumentStrength float64 `json:"argument_strength"`
}

// ReasoningScores combines supporting and countervailing signals:
// fallacy/absolutist markers suppress an otherwise-positive quality score.
type ReasoningScores struct {
	LogicalConnection float64 `json:"logical_connection"`
	ReasoningQuality  float64 `json:"reasoning_quality"`
	FallacyRisk       float64 `json:"fallacy_risk"`
}

// EvidenceScores carries the raw indicator count alongside the
// normalized metrics; the classifier thresholds on the count itself.
type EvidenceScores struct {
	Count         int     `json:"count"`
	Usage         float64 `json:"usage"`
	SourceVariety float64 `json:"source_variety"`
}

type CriticalThinkingScores struct {
	Questioning          float64 `json:"questioning"`
	MultiplePerspectives float64 `json:"multiple_perspectives"`
	OverallLevel         float64 `json:"overall_level"`
}

type OriginalityScores struct {
	PersonalVoice    float64 `json:"personal_voice"`
	OriginalityScore float64 `json:"originality_score"`
	SourceDependency float64 `json:"source_dependency"`
}

// OverallScores holds the per-dimension means and their mean as Total.
// Total is the value the progress tracker compares across submissions.
type OverallScores struct {
	Structure        float64 `json:"structure"`
	Content          float64 `json:"content"`
	Reasoning        float64 `json:"reasoning"`
	Evidence         float64 `json:"evidence"`
	CriticalThinking float64 `json:"critical_thinking"`
	Originality      float64 `json:"originality"`
	Total            float64 `json:"total"`
}

// Analysis is the full six-dimension scoring result for one submission.
// Every float in it lies in [0,1]; EvidenceScores.Count is a raw count.
// Produced once per submission and never mutated afterwards.
type Analysis struct {
	Structure        StructureScores        `json:"structure"`
	Content          ContentScores          `json:"content"`
	Reasoning        ReasoningScores        `json:"reasoning"`
	Evidence         EvidenceScores         `json:"evidence"`
	CriticalThinking CriticalThinkingScores `json:"critical_thinking"`
	Originality      OriginalityScores      `json:"originality"`
	Overall          OverallScores          `json:"overall"`
}
