package handlers

import (
	"net/http"

	"github.com/argumentor/analysis-service/internal/services"
	"github.com/argumentor/analysis-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type AgentHandler struct {
	BaseHandler
	agentService services.AgentService
}

func NewAgentHandler(agentService services.AgentService, logger utils.Logger) *AgentHandler {
	return &AgentHandler{
		BaseHandler:  NewBaseHandler(logger),
		agentService: agentService,
	}
}

// RouteMessage dispatches a message to an agent
// @Summary Route agent message
// @Description Routes a message to the target agent and returns the routing result
// @Tags agents
// @Accept json
// @Produce json
// @Param message body services.RouteRequest true "Message to route"
// @Success 200 {object} models.RouteResult
// @Failure 400 {object} ErrorResponse
// @Router /agents/route [post]
func (h *AgentHandler) RouteMessage(c *gin.Context) {
	var req services.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Routing agent message",
		"from", req.From, "to", req.To, "session_id", req.SessionID)

	// Routing failures are part of the result contract, so the HTTP
	// status stays 200 either way.
	result := h.agentService.Route(c.Request.Context(), &req)
	c.JSON(http.StatusOK, result)
}

// GetSessionMessages returns the message log of a session
// @Summary Get session messages
// @Description Retrieves the routed-message log of a session, oldest first
// @Tags agents
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SuccessResponse
// @Router /agents/sessions/{id}/messages [get]
func (h *AgentHandler) GetSessionMessages(c *gin.Context) {
	sessionID := ParseStringIDParam(c, "id")
	if sessionID == "" {
		return
	}

	messages := h.agentService.Messages(sessionID)
	h.RespondWithSuccess(c, http.StatusOK, "Messages retrieved", messages,
		"session_id", sessionID, "count", len(messages))
}
