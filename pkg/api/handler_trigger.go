package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// createTrigger handles POST /api/v1/triggers: registers a recurring
// cron trigger for an agent.
func (s *Server) createTrigger(c *gin.Context) {
	var req CreateTriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	t, err := s.triggers.CreateCron(c.Request.Context(), req.AgentID, req.Cron)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, triggerResponse(t))
}

// listTriggers handles GET /api/v1/triggers?agent_id=.
func (s *Server) listTriggers(c *gin.Context) {
	agentID := c.Query("agent_id")
	if agentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "agent_id query parameter is required"})
		return
	}

	triggers, err := s.triggers.ListByAgent(c.Request.Context(), agentID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]*TriggerResponse, 0, len(triggers))
	for _, t := range triggers {
		resp = append(resp, triggerResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}
