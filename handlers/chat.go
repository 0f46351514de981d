package handlers

import (
	"net/http"

	"staymate/models"
	"staymate/services/assistant"
	"staymate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversational booking assistant over HTTP.
type ChatHandler struct {
	Service assistant.AssistantService
	Logger  *zap.Logger
}

func NewChatHandler(service assistant.AssistantService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Service: service, Logger: logger}
}

// HandleChat processes one chat turn for a session.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("Invalid chat request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	h.Logger.Debug("Chat turn received",
		zap.String("sessionID", req.SessionID),
		zap.Int("messageLen", len(req.Message)))

	resp := h.Service.ProcessMessage(c.Request.Context(), req)
	c.JSON(http.StatusOK, resp)
}
