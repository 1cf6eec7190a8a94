package services

import (
	"log/slog"

	"github.com/argumentor/analysis-service/internal/analysis"
	"github.com/argumentor/analysis-service/internal/cache"
	"github.com/argumentor/analysis-service/internal/events"
	"github.com/argumentor/analysis-service/internal/repositories"
	"github.com/argumentor/analysis-service/internal/validator"
)

// ServiceManager hands out the service implementations behind one
// handle so handlers and wiring code depend on a single constructor.
type ServiceManager interface {
	Analysis() AnalysisService
	Agent() AgentService
	LearningStyle() LearningStyleService
	ReportExport() ReportExportService
	SessionStore() *analysis.SessionStore
}

type serviceManager struct {
	analysisService      AnalysisService
	agentService         AgentService
	learningStyleService LearningStyleService
	reportExportService  ReportExportService
	store                *analysis.SessionStore
}

func NewServiceManager(
	repo repositories.Repository,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger *slog.Logger,
	v *validator.Validator,
) ServiceManager {
	store := analysis.NewSessionStore()

	analysisService := NewAnalysisService(repo, store, cacheService, publisher, logger, v)

	return &serviceManager{
		analysisService:      analysisService,
		agentService:         NewAgentService(analysisService, store, logger),
		learningStyleService: NewLearningStyleService(repo, publisher, logger, v),
		reportExportService:  NewReportExportService(store, logger),
		store:                store,
	}
}

func (m *serviceManager) Analysis() AnalysisService            { return m.analysisService }
func (m *serviceManager) Agent() AgentService                  { return m.agentService }
func (m *serviceManager) LearningStyle() LearningStyleService  { return m.learningStyleService }
func (m *serviceManager) ReportExport() ReportExportService    { return m.reportExportService }
func (m *serviceManager) SessionStore() *analysis.SessionStore { return m.store }
