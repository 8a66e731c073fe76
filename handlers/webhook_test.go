package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tourdesk/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBot struct {
	seen  []string
	reply string
	err   error
}

func (b *stubBot) HandleMessage(_ context.Context, phone, text string) (string, error) {
	b.seen = append(b.seen, phone+":"+text)
	return b.reply, b.err
}

type replyRecorder struct {
	replies []models.ChatReplyPayload
}

func (r *replyRecorder) BookingConfirmed(context.Context, models.BookingConfirmedPayload) error {
	return nil
}

func (r *replyRecorder) CompanyWelcome(context.Context, models.CompanyWelcomePayload) error {
	return nil
}

func (r *replyRecorder) ChatReply(_ context.Context, p models.ChatReplyPayload) error {
	r.replies = append(r.replies, p)
	return nil
}

func newWebhookRouter(bot ChatResponder, replies *replyRecorder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewWebhookHandler(bot, replies, "secret-token")
	r := gin.New()
	r.GET("/webhooks/whatsapp", h.Verify)
	r.POST("/webhooks/whatsapp", h.Receive)
	r.POST("/test-whatsapp", h.TestMessage)
	return r
}

func TestWebhookVerify(t *testing.T) {
	r := newWebhookRouter(&stubBot{}, &replyRecorder{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/webhooks/whatsapp?hub.mode=subscribe&hub.verify_token=secret-token&hub.challenge=12345", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12345", w.Body.String())

	for _, q := range []string{
		"hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=1",
		"hub.mode=unsubscribe&hub.verify_token=secret-token&hub.challenge=1",
		"",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/webhooks/whatsapp?"+q, nil))
		assert.Equal(t, http.StatusForbidden, w.Code, q)
		assert.Equal(t, "Invalid token", w.Body.String())
	}
}

const inboundPayload = `{
  "entry": [{
    "changes": [{
      "value": {
        "messages": [
          {"from": "971501234567", "id": "wamid.1", "type": "text", "text": {"body": "  hi  "}},
          {"from": "971501234567", "id": "wamid.2", "type": "image"},
          {"from": "971501234567", "id": "wamid.3", "type": "text", "text": {"body": "   "}}
        ]
      }
    }]
  }]
}`

func TestWebhookReceiveRepliesToTextOnly(t *testing.T) {
	bot := &stubBot{reply: "Welcome!"}
	replies := &replyRecorder{}
	r := newWebhookRouter(bot, replies)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp", strings.NewReader(inboundPayload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Equal(t, []string{"971501234567:hi"}, bot.seen)
	require.Len(t, replies.replies, 1)
	assert.Equal(t, models.ChatReplyPayload{Phone: "971501234567", Text: "Welcome!"}, replies.replies[0])
}

func TestWebhookReceiveAlwaysAcknowledges(t *testing.T) {
	bot := &stubBot{err: errors.New("store down")}
	replies := &replyRecorder{}
	r := newWebhookRouter(bot, replies)

	for _, body := range []string{inboundPayload, `{not json`, `{}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	}
	assert.Empty(t, replies.replies)
}

func TestTestMessageReturnsReply(t *testing.T) {
	bot := &stubBot{reply: "Please choose an option"}
	r := newWebhookRouter(bot, &replyRecorder{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test-whatsapp", strings.NewReader(`{"phone":"123","text":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"reply":"Please choose an option"}`, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/test-whatsapp", strings.NewReader(`{"phone":"123"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRenderActionsEscapes(t *testing.T) {
	out := renderActions(actionLink{Label: `<b>x</b>`, Href: `/a?b="c"`, Method: http.MethodDelete})
	assert.Equal(t, `<a href="/a?b=&#34;c&#34;" class="" data-method="DELETE">&lt;b&gt;x&lt;/b&gt;</a>`, out)
}
