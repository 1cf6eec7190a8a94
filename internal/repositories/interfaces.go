package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/argumentor/analysis-service/internal/models"
	"gorm.io/gorm"
)

// ===== SHARED FILTER STRUCTS =====

type InteractionFilters struct {
	Role      *models.AgentRole `json:"role"`
	Modality  *models.Modality  `json:"modality"`
	DateFrom  *time.Time        `json:"date_from"`
	DateTo    *time.Time        `json:"date_to"`
	Limit     int               `json:"limit"`
	Offset    int               `json:"offset"`
	SortOrder string            `json:"sort_order"` // "asc", "desc"
}

// ===== REPOSITORY INTERFACES =====

// InteractionRepository persists learner interactions for cross-session
// style detection and teacher review. The in-memory session tracker
// never depends on it.
type InteractionRepository interface {
	Create(ctx context.Context, interaction *models.Interaction) error
	GetByID(ctx context.Context, id uint) (*models.Interaction, error)
	GetRecentByStudent(ctx context.Context, studentID string, limit int) ([]*models.Interaction, error)
	GetBySession(ctx context.Context, sessionID string, filters InteractionFilters) ([]*models.Interaction, int64, error)
	CountByStudent(ctx context.Context, studentID string) (int64, error)
	GetStatsByStudent(ctx context.Context, studentID string) (*InteractionStats, error)
}

// Repository aggregates all repositories behind one handle.
type Repository interface {
	Interaction() InteractionRepository
}

// ===== SHARED STATISTICS STRUCTS =====

// InteractionStats summarizes a student's persisted interactions.
type InteractionStats struct {
	TotalInteractions int64                      `json:"total_interactions"`
	ByModality        map[models.Modality]int64  `json:"by_modality"`
	ByRole            map[models.AgentRole]int64 `json:"by_role"`
}

// IsNotFoundError reports whether err is the driver's missing-record error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
