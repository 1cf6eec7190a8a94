package handlers

import (
	"net/http"

	"github.com/argumentor/analysis-service/internal/services"
	"github.com/argumentor/analysis-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	BaseHandler
	analysisService      services.AnalysisService
	learningStyleService services.LearningStyleService
}

func NewAnalysisHandler(
	analysisService services.AnalysisService,
	learningStyleService services.LearningStyleService,
	logger utils.Logger,
) *AnalysisHandler {
	return &AnalysisHandler{
		BaseHandler:          NewBaseHandler(logger),
		analysisService:      analysisService,
		learningStyleService: learningStyleService,
	}
}

// SubmitAnalysis scores a learner submission and returns the full
// analysis with feedback, challenges and adaptations
// @Summary Analyze submission
// @Description Scores a text submission and returns weaknesses, strengths, feedback, micro-challenges and adaptations
// @Tags analysis
// @Accept json
// @Produce json
// @Param submission body services.AnalyzeRequest true "Submission data"
// @Success 200 {object} services.AnalyzeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analysis/submit [post]
func (h *AnalysisHandler) SubmitAnalysis(c *gin.Context) {
	var req services.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Analyzing submission",
		"session_id", req.SessionID, "text_length", len(req.Text))

	response, err := h.analysisService.Analyze(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// DetectStyle profiles a text sample for learning-style markers
// @Summary Detect learning style
// @Description Detects the dominant learning modality of a text sample and returns matching adaptations
// @Tags analysis
// @Accept json
// @Produce json
// @Param sample body services.DetectStyleRequest true "Text sample"
// @Success 200 {object} services.DetectStyleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analysis/detect-style [post]
func (h *AnalysisHandler) DetectStyle(c *gin.Context) {
	var req services.DetectStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	response, err := h.learningStyleService.DetectStyle(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetStudentInteractions returns a student's recent persisted interactions
// @Summary Get student interactions
// @Description Retrieves the most recent persisted interactions for a student
// @Tags analysis
// @Produce json
// @Param id path string true "Student ID"
// @Param limit query int false "Maximum number of interactions"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /students/{id}/interactions [get]
func (h *AnalysisHandler) GetStudentInteractions(c *gin.Context) {
	studentID := ParseStringIDParam(c, "id")
	if studentID == "" {
		return
	}
	limit := parseLimitQuery(c, "limit")

	interactions, err := h.learningStyleService.RecentInteractions(c.Request.Context(), studentID, limit)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Interactions retrieved", interactions,
		"student_id", studentID, "count", len(interactions))
}

// GetStudentStats returns interaction totals grouped by modality and role
// @Summary Get student interaction stats
// @Description Aggregates a student's persisted interactions by modality and role
// @Tags analysis
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} repositories.InteractionStats
// @Failure 404 {object} ErrorResponse
// @Router /students/{id}/stats [get]
func (h *AnalysisHandler) GetStudentStats(c *gin.Context) {
	studentID := ParseStringIDParam(c, "id")
	if studentID == "" {
		return
	}

	stats, err := h.learningStyleService.StudentStats(c.Request.Context(), studentID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
