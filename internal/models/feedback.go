package models

// SkillCategory identifies the scored dimension a weakness, strength,
// feedback item or challenge refers to.
type SkillCategory string

const (
	CategoryThesis           SkillCategory = "thesis"
	CategoryEvidence         SkillCategory = "evidence"
	CategoryOriginality      SkillCategory = "originality"
	CategoryReasoning        SkillCategory = "reasoning"
	CategoryCriticalThinking SkillCategory = "critical_thinking"
)

type PriorityLevel string

const (
	PriorityHigh   PriorityLevel = "high"
	PriorityMedium PriorityLevel = "medium"
	PriorityLow    PriorityLevel = "low"
)

// Weakness flags a scored dimension below its fixed threshold.
// Derived per analysis, never persisted as an entity.
type Weakness struct {
	Category SkillCategory `json:"category"`
	Area     string        `json:"area"`
	Score    float64       `json:"score"`
	Priority PriorityLevel `json:"priority"`
}

// Strength flags a scored dimension above its fixed threshold.
type Strength struct {
	Category SkillCategory `json:"category"`
	Area     string        `json:"area"`
	Score    float64       `json:"score"`
	Priority PriorityLevel `json:"priority"`
}

// FeedbackItem is a canned message+suggestion pair looked up from the
// static template table for one weakness or strength.
type FeedbackItem struct {
	Category   SkillCategory `json:"category"`
	Message    string        `json:"message"`
	Suggestion string        `json:"suggestion"`
	Priority   PriorityLevel `json:"priority"`
}

// MicroChallenge is a short targeted practice prompt generated to
// remediate one identified weakness.
type MicroChallenge struct {
	ID                  string        `json:"id"`
	Category            SkillCategory `json:"category"`
	Prompt              string        `json:"prompt"`
	Skill               string        `json:"skill"`
	Hint                string        `json:"hint"`
	AcceptanceCriterion string        `json:"acceptance_criterion"`
	EstimatedTime       string        `json:"estimated_time"`
}
