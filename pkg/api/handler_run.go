package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/pkg/models"
)

// getRun handles GET /api/v1/runs/:id.
func (s *Server) getRun(c *gin.Context) {
	runID := c.Param("id")

	r, err := s.runs.GetRun(c.Request.Context(), runID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, runResponse(r))
}

// listRuns handles GET /api/v1/runs.
func (s *Server) listRuns(c *gin.Context) {
	filters := models.RunFilters{
		ChannelID: c.Query("channel_id"),
		UserID:    c.Query("user_id"),
		RootRunID: c.Query("root_run_id"),
	}

	if v := c.Query("status"); v != "" {
		if err := run.StatusValidator(run.Status(v)); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status: " + v})
			return
		}
		filters.Status = v
	}
	if v := c.Query("kind"); v != "" {
		if err := run.KindValidator(run.Kind(v)); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid kind: " + v})
			return
		}
		filters.Kind = v
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filters.Limit = n
		} else {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit: must be 1-100"})
			return
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		} else {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid offset"})
			return
		}
	}

	runs, total, err := s.runs.ListRuns(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := &RunListResponse{
		Runs:  make([]*RunResponse, 0, len(runs)),
		Total: total,
	}
	for _, r := range runs {
		resp.Runs = append(resp.Runs, runResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// listRunSteps handles GET /api/v1/runs/:id/steps. The after_seq query
// parameter supports incremental polling: only steps with seq greater
// than it are returned.
func (s *Server) listRunSteps(c *gin.Context) {
	runID := c.Param("id")

	afterSeq := 0
	if v := c.Query("after_seq"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid after_seq"})
			return
		}
		afterSeq = n
	}

	// 404 for unknown runs rather than an empty list.
	if _, err := s.runs.GetRun(c.Request.Context(), runID); err != nil {
		respondError(c, err)
		return
	}

	steps, err := s.steps.ListStepsAfter(c.Request.Context(), runID, afterSeq)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := &StepListResponse{
		RunID: runID,
		Steps: make([]*StepResponse, 0, len(steps)),
	}
	for _, st := range steps {
		resp.Steps = append(resp.Steps, stepResponse(st))
	}

	c.JSON(http.StatusOK, resp)
}

// cancelRun handles POST /api/v1/runs/:id/cancel. Cancellation cascades
// to all non-terminal descendants; run-scoped triggers are retired so
// the dispatcher stops waking the tree.
func (s *Server) cancelRun(c *gin.Context) {
	runID := c.Param("id")

	if _, err := s.runs.GetRun(c.Request.Context(), runID); err != nil {
		respondError(c, err)
		return
	}

	count, err := s.runs.CancelCascade(c.Request.Context(), runID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Best effort; the dispatcher also retires triggers whose run went
	// terminal on its own scan.
	if _, err := s.triggers.DisableForRun(c.Request.Context(), runID); err != nil {
		slog.Warn("Failed to retire triggers for cancelled run", "run_id", runID, "error", err)
	}

	c.JSON(http.StatusOK, &CancelResponse{
		RunID:     runID,
		Cancelled: count,
		Message:   "Run cancellation requested",
	})
}
