package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conductorhq/conductor/pkg/crypto"
	"github.com/conductorhq/conductor/pkg/services"
)

// getSettings handles GET /api/v1/users/:id/settings.
func (s *Server) getSettings(c *gin.Context) {
	userID := c.Param("id")

	setting, err := s.settings.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settingsResponse(setting))
}

// putSettings handles PUT /api/v1/users/:id/settings. The LLM API key is
// sealed with the server's encryption key before it touches the store.
func (s *Server) putSettings(c *gin.Context) {
	userID := c.Param("id")

	var req PutSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	params := services.UpsertSettingsParams{
		UserID:        userID,
		MemoryEnabled: req.MemoryEnabled,
		KeyMeta:       req.LLMKeyMeta,
		Timezone:      req.Timezone,
	}

	if req.LLMAPIKey != nil {
		if *req.LLMAPIKey == "" {
			empty := ""
			params.EncryptedAPIKey = &empty
		} else {
			// The memory writer needs the provider to route the key.
			if _, ok := req.LLMKeyMeta["provider"].(string); !ok {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "llmKeyMeta.provider is required with llmApiKey"})
				return
			}
			sealed, err := s.cipher.Seal(*req.LLMAPIKey)
			if errors.Is(err, crypto.ErrNotConfigured) {
				c.JSON(http.StatusConflict, ErrorResponse{Error: "per-user keys are disabled: no encryption key configured"})
				return
			}
			if err != nil {
				respondError(c, err)
				return
			}
			params.EncryptedAPIKey = &sealed
		}
	}

	setting, err := s.settings.Upsert(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settingsResponse(setting))
}
