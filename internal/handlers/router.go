package handlers

import (
	"github.com/argumentor/analysis-service/internal/config"
	"github.com/argumentor/analysis-service/internal/services"
	"github.com/argumentor/analysis-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	analysisHandler *AnalysisHandler
	agentHandler    *AgentHandler
	sessionHandler  *SessionHandler
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		analysisHandler: NewAnalysisHandler(serviceManager.Analysis(), serviceManager.LearningStyle(), logger),
		agentHandler:    NewAgentHandler(serviceManager.Agent(), logger),
		sessionHandler:  NewSessionHandler(serviceManager.Analysis(), serviceManager.ReportExport(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine, cfg *config.Config) {
	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "analysis-service",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(AuthMiddleware(cfg))
	{
		// Analysis routes
		analysis := v1.Group("/analysis")
		{
			analysis.POST("/submit", hm.analysisHandler.SubmitAnalysis)
			analysis.POST("/detect-style", hm.analysisHandler.DetectStyle)
		}

		// Agent routing
		agents := v1.Group("/agents")
		{
			agents.POST("/route", hm.agentHandler.RouteMessage)
			agents.GET("/sessions/:id/messages", hm.agentHandler.GetSessionMessages)
		}

		// Session routes
		sessions := v1.Group("/sessions")
		{
			sessions.GET("/:id/progress", hm.sessionHandler.GetProgress)
			sessions.GET("/:id/history", hm.sessionHandler.GetHistory)
			sessions.GET("/:id/report", hm.sessionHandler.ExportReport)
		}

		// Student routes
		students := v1.Group("/students")
		{
			students.GET("/:id/interactions", hm.analysisHandler.GetStudentInteractions)
			students.GET("/:id/stats", hm.analysisHandler.GetStudentStats)
		}
	}
}
