package handlers

import (
	"fmt"
	"net/http"

	"github.com/argumentor/analysis-service/internal/services"
	"github.com/argumentor/analysis-service/internal/utils"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SessionHandler struct {
	BaseHandler
	analysisService     services.AnalysisService
	reportExportService services.ReportExportService
}

func NewSessionHandler(
	analysisService services.AnalysisService,
	reportExportService services.ReportExportService,
	logger utils.Logger,
) *SessionHandler {
	return &SessionHandler{
		BaseHandler:         NewBaseHandler(logger),
		analysisService:     analysisService,
		reportExportService: reportExportService,
	}
}

// GetProgress returns a session's score trend
// @Summary Get session progress
// @Description Compares the most recent scores against the preceding ones and reports the trend
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} analysis.ProgressReport
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/progress [get]
func (h *SessionHandler) GetProgress(c *gin.Context) {
	sessionID := ParseStringIDParam(c, "id")
	if sessionID == "" {
		return
	}

	report, err := h.analysisService.GetProgress(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetHistory returns a session's full analysis history
// @Summary Get session history
// @Description Retrieves every recorded analysis of a session, oldest first
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/history [get]
func (h *SessionHandler) GetHistory(c *gin.Context) {
	sessionID := ParseStringIDParam(c, "id")
	if sessionID == "" {
		return
	}

	history, err := h.analysisService.GetSessionHistory(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "History retrieved", history,
		"session_id", sessionID, "entries", len(history))
}

// ExportReport downloads the session report as an Excel workbook
// @Summary Export session report
// @Description Renders the session's scoring history and trend as an xlsx download
// @Tags sessions
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Session ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/report [get]
func (h *SessionHandler) ExportReport(c *gin.Context) {
	sessionID := ParseStringIDParam(c, "id")
	if sessionID == "" {
		return
	}

	h.LogRequest(c, "Exporting session report", "session_id", sessionID)

	data, err := h.reportExportService.ExportSessionReport(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("session-%s-report.xlsx", sessionID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
