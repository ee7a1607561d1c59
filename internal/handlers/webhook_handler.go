package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salonworks/salon-scheduler/internal/botflow"
	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/infra/session"
	"github.com/salonworks/salon-scheduler/internal/logger"
	"github.com/salonworks/salon-scheduler/internal/whatsapp"
)

// WebhookHandler receives WhatsApp Cloud API callbacks. Each salon points
// its WhatsApp number at /webhook/:slug; the guided flow state lives in
// redis per phone number.
type WebhookHandler struct {
	repo        domain.Repository
	flow        *botflow.Flow
	sessions    *session.Store
	client      *whatsapp.Client
	verifyToken string
}

func NewWebhookHandler(
	repo domain.Repository,
	flow *botflow.Flow,
	sessions *session.Store,
	client *whatsapp.Client,
	verifyToken string,
) *WebhookHandler {
	return &WebhookHandler{
		repo:        repo,
		flow:        flow,
		sessions:    sessions,
		client:      client,
		verifyToken: verifyToken,
	}
}

// Verify answers the Cloud API subscription handshake.
func (h *WebhookHandler) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken {
		c.String(http.StatusOK, challenge)
		return
	}

	c.Status(http.StatusForbidden)
}

// --------- Inbound payload (Cloud API shape, only what we read) ---------

type webhookPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Contacts []struct {
					WaID    string `json:"wa_id"`
					Profile struct {
						Name string `json:"name"`
					} `json:"profile"`
				} `json:"contacts"`
				Messages []struct {
					From string `json:"from"`
					Type string `json:"type"`
					Text struct {
						Body string `json:"body"`
					} `json:"text"`
				} `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// Receive drives the guided booking flow for every inbound text message.
// The Cloud API retries on non-200, so processing errors are logged and
// acknowledged anyway.
func (h *WebhookHandler) Receive(c *gin.Context) {
	salon, err := h.repo.GetSalonBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Status(http.StatusOK)
		return
	}

	var payload webhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Status(http.StatusOK)
		return
	}

	ctx := c.Request.Context()

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			value := change.Value

			names := make(map[string]string, len(value.Contacts))
			for _, contact := range value.Contacts {
				names[contact.WaID] = contact.Profile.Name
			}

			for _, msg := range value.Messages {
				if msg.Type != "text" || msg.Text.Body == "" {
					continue
				}

				name := names[msg.From]
				if name == "" {
					name = msg.From
				}

				state, getErr := h.sessions.Get(ctx, salon.ID, msg.From)
				if getErr != nil {
					logger.L().Warn("webhook: session load failed",
						zap.String("from", msg.From),
						zap.Error(getErr),
					)
					state = botflow.State{}
				}

				next, reply, advErr := h.flow.Advance(
					ctx, salon.ID, name, msg.From, state, msg.Text.Body,
				)
				if advErr != nil {
					logger.L().Error("webhook: flow failed",
						zap.String("from", msg.From),
						zap.Error(advErr),
					)
					reply = "Something went wrong on our side. Please try again in a moment."
					next = botflow.State{}
				}

				if next == (botflow.State{}) {
					_ = h.sessions.Clear(ctx, salon.ID, msg.From)
				} else if err := h.sessions.Save(ctx, salon.ID, msg.From, next); err != nil {
					logger.L().Warn("webhook: session save failed",
						zap.String("from", msg.From),
						zap.Error(err),
					)
				}

				if reply != "" {
					if err := h.client.SendText(ctx, msg.From, reply); err != nil {
						logger.L().Error("webhook: send failed",
							zap.String("to", msg.From),
							zap.Error(err),
						)
					}
				}
			}
		}
	}

	c.Status(http.StatusOK)
}
