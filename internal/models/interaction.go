package models

import (
	"time"

	"gorm.io/datatypes"
)

// Interaction is one recorded exchange with a learner: the submitted
// message, the role that produced it and, for analyzed submissions,
// the JSON snapshot of the resulting Analysis.
type Interaction struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	StudentID string         `json:"student_id" gorm:"not null;size:100;index"`
	SessionID string         `json:"session_id" gorm:"not null;size:100;index"`
	Role      AgentRole      `json:"role" gorm:"not null;size:20" validate:"omitempty,agent_role"`
	Message   string         `json:"message" gorm:"type:text;not null"`
	Modality  Modality       `json:"modality" gorm:"size:20" validate:"omitempty,modality"`
	Analysis  datatypes.JSON `json:"analysis,omitempty" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
}

func (Interaction) TableName() string {
	return "interactions"
}
