package handlers

import (
	"context"
	"net/http"
	"strings"

	"tourdesk/models"
	"tourdesk/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatResponder turns one inbound text into the bot's reply.
type ChatResponder interface {
	HandleMessage(ctx context.Context, phone, text string) (string, error)
}

// WebhookHandler receives WhatsApp Cloud API callbacks.
type WebhookHandler struct {
	Bot         ChatResponder
	Dispatcher  notification.Dispatcher
	VerifyToken string
}

func NewWebhookHandler(bot ChatResponder, dispatcher notification.Dispatcher, verifyToken string) *WebhookHandler {
	return &WebhookHandler{Bot: bot, Dispatcher: dispatcher, VerifyToken: verifyToken}
}

type inboundText struct {
	Body string `json:"body"`
}

type inboundMessage struct {
	From string       `json:"from"`
	ID   string       `json:"id"`
	Type string       `json:"type"`
	Text *inboundText `json:"text,omitempty"`
}

type webhookPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Messages []inboundMessage `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// Verify handles GET /webhooks/whatsapp.
func (h *WebhookHandler) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	if mode == "subscribe" && h.VerifyToken != "" && token == h.VerifyToken {
		c.String(http.StatusOK, c.Query("hub.challenge"))
		return
	}
	getLogger(c).Warn("Webhook verification rejected", zap.String("mode", mode))
	c.String(http.StatusForbidden, "Invalid token")
}

// Receive handles POST /webhooks/whatsapp. The provider always gets 200 so it
// does not redeliver; problems are logged.
func (h *WebhookHandler) Receive(c *gin.Context) {
	logger := getLogger(c)
	var payload webhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Warn("Unreadable webhook payload", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				h.handleInbound(c, msg)
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *WebhookHandler) handleInbound(c *gin.Context, msg inboundMessage) {
	if msg.Type != "text" || msg.Text == nil || msg.From == "" {
		return
	}
	text := strings.TrimSpace(msg.Text.Body)
	if text == "" {
		return
	}
	logger := getLogger(c).With(zap.String("phone", msg.From), zap.String("messageID", msg.ID))

	ctx := c.Request.Context()
	reply, err := h.Bot.HandleMessage(ctx, msg.From, text)
	if err != nil {
		logger.Error("Chatbot failed to handle message", zap.Error(err))
		return
	}
	if reply == "" {
		return
	}
	if err := h.Dispatcher.ChatReply(ctx, models.ChatReplyPayload{Phone: msg.From, Text: reply}); err != nil {
		logger.Error("Failed to queue chatbot reply", zap.Error(err))
	}
}

type testMessageRequest struct {
	Phone string `json:"phone" binding:"required"`
	Text  string `json:"text" binding:"required"`
}

// TestMessage handles POST /test-whatsapp outside production. The reply is
// returned in the response instead of being sent.
func (h *WebhookHandler) TestMessage(c *gin.Context) {
	var req testMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone and text are required"})
		return
	}
	reply, err := h.Bot.HandleMessage(c.Request.Context(), req.Phone, req.Text)
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
