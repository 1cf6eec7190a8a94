package services

import (
	"context"
	"testing"

	"github.com/argumentor/analysis-service/internal/events"
	"github.com/argumentor/analysis-service/internal/models"
	"github.com/argumentor/analysis-service/internal/repositories"
	"github.com/argumentor/analysis-service/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLearningStyleService(t *testing.T) (LearningStyleService, *MockInteractionRepository, *events.MockEventPublisher) {
	t.Helper()

	interactionRepo := new(MockInteractionRepository)
	repo := &mockRepository{interaction: interactionRepo}
	publisher := events.NewMockEventPublisher(testLogger())

	service := NewLearningStyleService(repo, publisher, testLogger(), validator.New())
	return service, interactionRepo, publisher
}

func TestLearningStyleService_DetectStyle(t *testing.T) {
	service, repo, publisher := newTestLearningStyleService(t)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Interaction")).Return(nil)

	resp, err := service.DetectStyle(context.Background(), &DetectStyleRequest{
		Text:      "prefiero ver un diagrama o una imagen, un esquema visual me ayuda",
		StudentID: "student-1",
		SessionID: "session-1",
	})

	require.NoError(t, err)
	assert.Equal(t, models.ModalityVisual, resp.Modality)
	assert.True(t, resp.Determined)
	assert.NotEmpty(t, resp.Recommendations)

	repo.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("*models.Interaction"))

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventStyleDetected, published[0].Type)
}

func TestLearningStyleService_DetectStyle_Undetermined(t *testing.T) {
	service, _, publisher := newTestLearningStyleService(t)

	resp, err := service.DetectStyle(context.Background(), &DetectStyleRequest{
		Text: "hola",
	})

	require.NoError(t, err)
	assert.Equal(t, models.ModalityUndetermined, resp.Modality)
	assert.False(t, resp.Determined)

	// No detection, no event.
	assert.Empty(t, publisher.GetPublishedEvents())
}

func TestLearningStyleService_DetectStyle_EmptyText(t *testing.T) {
	service, _, _ := newTestLearningStyleService(t)

	_, err := service.DetectStyle(context.Background(), &DetectStyleRequest{})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestLearningStyleService_RecentInteractions(t *testing.T) {
	service, repo, _ := newTestLearningStyleService(t)

	t.Run("returns stored interactions", func(t *testing.T) {
		stored := []*models.Interaction{
			{StudentID: "student-1", Message: "primer texto"},
			{StudentID: "student-1", Message: "segundo texto"},
		}
		repo.On("GetRecentByStudent", mock.Anything, "student-1", 5).Return(stored, nil)

		interactions, err := service.RecentInteractions(context.Background(), "student-1", 5)
		require.NoError(t, err)
		assert.Len(t, interactions, 2)
	})

	t.Run("default limit applied", func(t *testing.T) {
		repo.On("GetRecentByStudent", mock.Anything, "student-2", defaultRecentLimit).
			Return([]*models.Interaction{{StudentID: "student-2"}}, nil)

		_, err := service.RecentInteractions(context.Background(), "student-2", 0)
		require.NoError(t, err)
		repo.AssertCalled(t, "GetRecentByStudent", mock.Anything, "student-2", defaultRecentLimit)
	})

	t.Run("no rows means unknown student", func(t *testing.T) {
		repo.On("GetRecentByStudent", mock.Anything, "ghost", 5).Return([]*models.Interaction{}, nil)

		_, err := service.RecentInteractions(context.Background(), "ghost", 5)
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})
}

func TestLearningStyleService_StudentStats(t *testing.T) {
	service, repo, _ := newTestLearningStyleService(t)

	t.Run("aggregates by modality and role", func(t *testing.T) {
		repo.On("GetStatsByStudent", mock.Anything, "student-1").Return(&repositories.InteractionStats{
			TotalInteractions: 3,
			ByModality: map[models.Modality]int64{
				models.ModalityVisual:   2,
				models.ModalityAuditory: 1,
			},
			ByRole: map[models.AgentRole]int64{
				models.AgentStudent: 3,
			},
		}, nil)

		stats, err := service.StudentStats(context.Background(), "student-1")
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.TotalInteractions)
		assert.Equal(t, int64(2), stats.ByModality[models.ModalityVisual])
		assert.Equal(t, int64(3), stats.ByRole[models.AgentStudent])
	})

	t.Run("zero interactions means unknown student", func(t *testing.T) {
		repo.On("GetStatsByStudent", mock.Anything, "ghost").Return(&repositories.InteractionStats{}, nil)

		_, err := service.StudentStats(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})

	t.Run("empty student id", func(t *testing.T) {
		_, err := service.StudentStats(context.Background(), "")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})
}
