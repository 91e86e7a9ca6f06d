package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/queue"
)

// postChannelMessage handles POST /api/v1/channels/:id/messages.
// Accepts a user message on an existing channel and answers 202 with the
// coordinator run that will handle it.
func (s *Server) postChannelMessage(c *gin.Context) {
	channelID := c.Param("id")

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ch, err := s.channels.GetChannel(c.Request.Context(), channelID)
	if err != nil {
		respondError(c, err)
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = ch.UserID
	}
	if userID != ch.UserID {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "userId does not match channel owner"})
		return
	}

	s.ingestMessage(c, ch, userID, req.Content, req.Metadata)
}

// postMessage handles POST /api/v1/messages. Provider gateways that only
// know the provider-side identity use this; the channel is resolved or
// created on first contact.
func (s *Server) postMessage(c *gin.Context) {
	var req IngestMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ch, err := s.channels.GetOrCreate(c.Request.Context(), req.UserID, req.Provider, req.DiscordUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	s.ingestMessage(c, ch, req.UserID, req.Content, req.Metadata)
}

// ingestMessage is the shared ingress flow: count the turn against the
// active context (rotating it when full), record the inbound message,
// then route it to the channel's active coordinator or start a new one.
func (s *Server) ingestMessage(c *gin.Context, ch *ent.Channel, userID, content string, metadata map[string]any) {
	ctx := c.Request.Context()

	contextID, closedContextID, err := s.channels.TouchContext(ctx, ch.ID, s.cfg.Memory.MaxTurnsPerContext)
	if err != nil {
		respondError(c, err)
		return
	}

	// A rotated-out context gets its memories extracted in the background.
	if closedContextID != "" {
		if err := s.queue.EnqueueMemoryWrite(ctx, closedContextID, userID, queue.MemoryWriteModeClose, 0); err != nil {
			slog.Error("Failed to enqueue memory write for closed context",
				"context_id", closedContextID,
				"error", err)
		}
	}

	msg, err := s.messages.RecordInbound(ctx, userID, ch.ID, contextID, content, metadata)
	if err != nil {
		respondError(c, err)
		return
	}

	active, err := s.runs.FindActiveCoordinator(ctx, ch.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	if active != nil {
		status, err := s.runs.AppendToInbox(ctx, active.ID, models.InboxEntry{
			FromRunID: "user",
			Message:   content,
			At:        time.Now(),
		})
		if err == nil {
			if status == run.StatusWaiting {
				// The wake handler flips waiting back to pending and
				// enqueues the run job; the dedupe key absorbs repeats.
				if err := s.queue.EnqueueWake(ctx, active.ID, active.TenantID, active.AgentID, "user_message", 0); err != nil {
					slog.Error("Failed to enqueue wake for routed message",
						"run_id", active.ID,
						"error", err)
				}
			}
			c.JSON(http.StatusAccepted, &MessageAcceptedResponse{
				RunID:     active.ID,
				Status:    "routed",
				ChannelID: ch.ID,
				ContextID: contextID,
				MessageID: msg.ID,
			})
			return
		}
		// Lost a race with the run going terminal; start a fresh one.
		slog.Warn("Failed to route message to active coordinator, starting a new run",
			"run_id", active.ID,
			"error", err)
	}

	newRun, err := s.runs.CreateCoordinator(ctx, models.CreateRunRequest{
		TenantID:  s.cfg.Server.TenantID,
		AgentID:   s.cfg.Server.AgentID,
		UserID:    userID,
		ChannelID: ch.ID,
		ContextID: contextID,
		InputText: content,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if err := s.queue.EnqueueRun(ctx, newRun.ID, newRun.TenantID, newRun.AgentID); err != nil {
		slog.Error("Failed to enqueue run job", "run_id", newRun.ID, "error", err)
		// Without a job the run would trap every later message on this
		// channel, so retire it and let the client retry.
		if failErr := s.runs.FailRun(ctx, newRun.ID, "failed to enqueue run job"); failErr != nil {
			slog.Error("Failed to retire unqueued run", "run_id", newRun.ID, "error", failErr)
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusAccepted, &MessageAcceptedResponse{
		RunID:     newRun.ID,
		Status:    "queued",
		ChannelID: ch.ID,
		ContextID: contextID,
		MessageID: msg.ID,
	})
}
