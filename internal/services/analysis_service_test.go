package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/argumentor/analysis-service/internal/analysis"
	"github.com/argumentor/analysis-service/internal/events"
	"github.com/argumentor/analysis-service/internal/models"
	"github.com/argumentor/analysis-service/internal/repositories"
	"github.com/argumentor/analysis-service/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===== MOCKS =====

type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) Create(ctx context.Context, interaction *models.Interaction) error {
	args := m.Called(ctx, interaction)
	return args.Error(0)
}

func (m *MockInteractionRepository) GetByID(ctx context.Context, id uint) (*models.Interaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interaction), args.Error(1)
}

func (m *MockInteractionRepository) GetRecentByStudent(ctx context.Context, studentID string, limit int) ([]*models.Interaction, error) {
	args := m.Called(ctx, studentID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Interaction), args.Error(1)
}

func (m *MockInteractionRepository) GetBySession(ctx context.Context, sessionID string, filters repositories.InteractionFilters) ([]*models.Interaction, int64, error) {
	args := m.Called(ctx, sessionID, filters)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Interaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockInteractionRepository) CountByStudent(ctx context.Context, studentID string) (int64, error) {
	args := m.Called(ctx, studentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInteractionRepository) GetStatsByStudent(ctx context.Context, studentID string) (*repositories.InteractionStats, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.InteractionStats), args.Error(1)
}

type mockRepository struct {
	interaction *MockInteractionRepository
}

func (m *mockRepository) Interaction() repositories.InteractionRepository {
	return m.interaction
}

// ===== TEST SETUP =====

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAnalysisService(t *testing.T) (AnalysisService, *MockInteractionRepository, *events.MockEventPublisher, *analysis.SessionStore) {
	t.Helper()

	interactionRepo := new(MockInteractionRepository)
	repo := &mockRepository{interaction: interactionRepo}
	publisher := events.NewMockEventPublisher(testLogger())
	store := analysis.NewSessionStore()

	service := NewAnalysisService(repo, store, nil, publisher, testLogger(), validator.New())
	return service, interactionRepo, publisher, store
}

const sampleText = "Creo que la tecnología mejora la educación porque " +
	"permite acceso universal. Según un estudio reciente, el uso de " +
	"plataformas digitales aumenta la participación. Por lo tanto, " +
	"en mi opinión deberíamos invertir en ellas."

// ===== TESTS =====

func TestAnalysisService_Analyze(t *testing.T) {
	service, repo, publisher, store := newTestAnalysisService(t)

	// The persisted row carries the submission's own text and session.
	repo.On("Create", mock.Anything, mock.MatchedBy(func(i *models.Interaction) bool {
		return i.StudentID == "student-1" &&
			i.SessionID == "session-1" &&
			i.Message == sampleText &&
			len(i.Analysis) > 0
	})).Return(nil)

	resp, err := service.Analyze(context.Background(), &AnalyzeRequest{
		Text:      sampleText,
		SessionID: "session-1",
		StudentID: "student-1",
	})

	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Greater(t, resp.Analysis.Overall.Total, 0.0)
	assert.NotEmpty(t, resp.Feedback)
	assert.Equal(t, 1, store.Len("session-1"))
	assert.Equal(t, analysis.TrendInsufficientData, resp.Progress.Trend)

	repo.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("*models.Interaction"))

	published := publisher.GetPublishedEvents()
	require.NotEmpty(t, published)
	assert.Equal(t, events.EventAnalysisCompleted, published[0].Type)
}

func TestAnalysisService_Analyze_PublishesHighPriorityWeaknesses(t *testing.T) {
	service, _, publisher, _ := newTestAnalysisService(t)

	// Bare text with no thesis or evidence markers produces
	// high-priority weaknesses.
	_, err := service.Analyze(context.Background(), &AnalyzeRequest{
		Text:      "hola",
		SessionID: "session-weak",
	})
	require.NoError(t, err)

	weaknessEvents := 0
	for _, e := range publisher.GetPublishedEvents() {
		if e.Type == events.EventWeaknessDetected {
			weaknessEvents++
		}
	}
	assert.Greater(t, weaknessEvents, 0)
}

func TestAnalysisService_Analyze_ValidationFailures(t *testing.T) {
	service, _, _, _ := newTestAnalysisService(t)

	tests := []struct {
		name string
		req  *AnalyzeRequest
	}{
		{"empty text", &AnalyzeRequest{SessionID: "s"}},
		{"empty session", &AnalyzeRequest{Text: "algo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Analyze(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestAnalysisService_Analyze_RepoFailureIsNonFatal(t *testing.T) {
	service, repo, _, store := newTestAnalysisService(t)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	resp, err := service.Analyze(context.Background(), &AnalyzeRequest{
		Text:      sampleText,
		SessionID: "session-db",
		StudentID: "student-db",
	})

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, 1, store.Len("session-db"))
}

func TestAnalysisService_Analyze_SkipsPersistenceWithoutStudent(t *testing.T) {
	service, repo, _, _ := newTestAnalysisService(t)

	_, err := service.Analyze(context.Background(), &AnalyzeRequest{
		Text:      sampleText,
		SessionID: "session-anon",
	})

	require.NoError(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAnalysisService_Analyze_CachedScoreIsStable(t *testing.T) {
	service, _, _, _ := newTestAnalysisService(t)

	first, err := service.Analyze(context.Background(), &AnalyzeRequest{
		Text:      sampleText,
		SessionID: "session-a",
	})
	require.NoError(t, err)

	second, err := service.Analyze(context.Background(), &AnalyzeRequest{
		Text:      sampleText,
		SessionID: "session-b",
	})
	require.NoError(t, err)

	assert.Equal(t, first.Analysis, second.Analysis)
}

func TestAnalysisService_GetProgress(t *testing.T) {
	service, _, _, store := newTestAnalysisService(t)

	t.Run("empty session id", func(t *testing.T) {
		_, err := service.GetProgress(context.Background(), "")
		assert.ErrorIs(t, err, ErrEmptySessionID)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := service.GetProgress(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrSessionNotFound)
		assert.True(t, IsNotFound(err))
	})

	t.Run("known session", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			store.Append("known", analysis.SessionEntry{})
		}
		report, err := service.GetProgress(context.Background(), "known")
		require.NoError(t, err)
		assert.Equal(t, 2, report.EntryCount)
	})
}

func TestAnalysisService_GetSessionHistory(t *testing.T) {
	service, _, _, _ := newTestAnalysisService(t)

	_, err := service.GetSessionHistory(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = service.Analyze(context.Background(), &AnalyzeRequest{
		Text:      sampleText,
		SessionID: "session-h",
	})
	require.NoError(t, err)

	history, err := service.GetSessionHistory(context.Background(), "session-h")
	require.NoError(t, err)
	assert.Len(t, history, 1)
	assert.NotEmpty(t, history[0].Feedback)
}
