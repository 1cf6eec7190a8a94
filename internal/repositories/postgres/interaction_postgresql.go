package postgres

import (
	"context"

	"github.com/argumentor/analysis-service/internal/models"
	"github.com/argumentor/analysis-service/internal/repositories"
	"gorm.io/gorm"
)

type InteractionPostgreSQL struct {
	db *gorm.DB
}

func NewInteractionPostgreSQL(db *gorm.DB) repositories.InteractionRepository {
	return &InteractionPostgreSQL{db: db}
}

func (r InteractionPostgreSQL) Create(ctx context.Context, interaction *models.Interaction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

func (r InteractionPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Interaction, error) {
	var interaction models.Interaction
	if err := r.db.WithContext(ctx).First(&interaction, id).Error; err != nil {
		return nil, err
	}
	return &interaction, nil
}

func (r InteractionPostgreSQL) GetRecentByStudent(ctx context.Context, studentID string, limit int) ([]*models.Interaction, error) {
	if limit <= 0 {
		limit = 10
	}

	var interactions []*models.Interaction
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Limit(limit).
		Find(&interactions).Error; err != nil {
		return nil, err
	}
	return interactions, nil
}

func (r InteractionPostgreSQL) GetBySession(ctx context.Context, sessionID string, filters repositories.InteractionFilters) ([]*models.Interaction, int64, error) {
	var interactions []*models.Interaction
	var total int64

	// apply filters first
	query := r.db.WithContext(ctx).Model(&models.Interaction{}).Where("session_id = ?", sessionID)
	query = r.applyFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// then pagination and sorting
	query = r.applyPaginationAndSort(query, filters)

	if err := query.Find(&interactions).Error; err != nil {
		return nil, 0, err
	}
	return interactions, total, nil
}

func (r InteractionPostgreSQL) CountByStudent(ctx context.Context, studentID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Interaction{}).
		Where("student_id = ?", studentID).
		Count(&total).Error
	return total, err
}

func (r InteractionPostgreSQL) GetStatsByStudent(ctx context.Context, studentID string) (*repositories.InteractionStats, error) {
	total, err := r.CountByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	stats := &repositories.InteractionStats{
		TotalInteractions: total,
		ByModality:        make(map[models.Modality]int64),
		ByRole:            make(map[models.AgentRole]int64),
	}
	if total == 0 {
		return stats, nil
	}

	type bucket struct {
		Key   string
		Total int64
	}

	var modalities []bucket
	if err := r.db.WithContext(ctx).
		Model(&models.Interaction{}).
		Select("modality AS key, COUNT(*) AS total").
		Where("student_id = ?", studentID).
		Group("modality").
		Scan(&modalities).Error; err != nil {
		return nil, err
	}
	for _, b := range modalities {
		stats.ByModality[models.Modality(b.Key)] = b.Total
	}

	var roles []bucket
	if err := r.db.WithContext(ctx).
		Model(&models.Interaction{}).
		Select("role AS key, COUNT(*) AS total").
		Where("student_id = ?", studentID).
		Group("role").
		Scan(&roles).Error; err != nil {
		return nil, err
	}
	for _, b := range roles {
		stats.ByRole[models.AgentRole(b.Key)] = b.Total
	}

	return stats, nil
}

func (r InteractionPostgreSQL) applyFilters(query *gorm.DB, filters repositories.InteractionFilters) *gorm.DB {
	if filters.Role != nil {
		query = query.Where("role = ?", *filters.Role)
	}
	if filters.Modality != nil {
		query = query.Where("modality = ?", *filters.Modality)
	}
	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at <= ?", *filters.DateTo)
	}
	return query
}

func (r InteractionPostgreSQL) applyPaginationAndSort(query *gorm.DB, filters repositories.InteractionFilters) *gorm.DB {
	order := "created_at ASC"
	if filters.SortOrder == "desc" {
		order = "created_at DESC"
	}
	query = query.Order(order)

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}
	return query
}

// repository is the aggregate handle over the postgres implementations.
type repository struct {
	interaction repositories.InteractionRepository
}

// NewRepository builds the aggregate repository over one gorm handle.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &repository{
		interaction: NewInteractionPostgreSQL(db),
	}
}

func (r *repository) Interaction() repositories.InteractionRepository {
	return r.interaction
}
