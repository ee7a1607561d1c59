package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/salonworks/salon-scheduler/internal/assistant"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/httpresp"
	"github.com/salonworks/salon-scheduler/internal/middleware"
)

// AssistantHandler exposes the conversational booking assistant to the
// salon's own frontend. The frontend owns the conversation history and
// sends it with every message.
type AssistantHandler struct {
	assistant *assistant.Assistant
}

func NewAssistantHandler(a *assistant.Assistant) *AssistantHandler {
	return &AssistantHandler{assistant: a}
}

type AssistantMessageRequest struct {
	CustomerName  string              `json:"customer_name" binding:"required"`
	CustomerPhone string              `json:"customer_phone" binding:"required"`
	Message       string              `json:"message" binding:"required"`
	History       []assistant.Message `json:"history"`
}

func (h *AssistantHandler) Message(c *gin.Context) {
	salonID := c.GetUint(middleware.ContextSalonID)

	if h.assistant == nil {
		httperr.Unavailable(c, "assistant_disabled", "The assistant is not configured.")
		return
	}

	var req AssistantMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	result, err := h.assistant.HandleMessage(c.Request.Context(), assistant.HandleInput{
		SalonID:       salonID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Message:       req.Message,
		History:       req.History,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"reply":   result.Reply,
		"booking": result.Booking,
	})
}
