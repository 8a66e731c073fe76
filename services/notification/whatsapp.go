package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tourdesk/utils"

	"go.uber.org/zap"
)

// WhatsAppConfig holds Cloud API credentials.
type WhatsAppConfig struct {
	APIURL        string
	AccessToken   string
	PhoneNumberID string
	Language      string
}

// WhatsAppClient posts to the Cloud API messages endpoint.
type WhatsAppClient struct {
	cfg  WhatsAppConfig
	http *http.Client
}

func NewWhatsAppClient(cfg WhatsAppConfig) *WhatsAppClient {
	if cfg.Language == "" {
		cfg.Language = "en_US"
	}
	return &WhatsAppClient{cfg: cfg, http: &http.Client{Timeout: 10 * time.Second}}
}

// Configured reports whether credentials are present. Without them sends are
// logged and dropped.
func (c *WhatsAppClient) Configured() bool {
	return c.cfg.AccessToken != "" && c.cfg.PhoneNumberID != ""
}

type textBody struct {
	Body string `json:"body"`
}

type templateParam struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type templateComponent struct {
	Type       string          `json:"type"`
	Parameters []templateParam `json:"parameters"`
}

type templateLanguage struct {
	Code string `json:"code"`
}

type templateBody struct {
	Name       string              `json:"name"`
	Language   templateLanguage    `json:"language"`
	Components []templateComponent `json:"components"`
}

type outboundMessage struct {
	MessagingProduct string        `json:"messaging_product"`
	To               string        `json:"to"`
	Type             string        `json:"type"`
	Text             *textBody     `json:"text,omitempty"`
	Template         *templateBody `json:"template,omitempty"`
}

func (c *WhatsAppClient) SendText(ctx context.Context, to, body string) error {
	return c.post(ctx, outboundMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             &textBody{Body: body},
	})
}

func (c *WhatsAppClient) SendTemplate(ctx context.Context, to, name string, params []string) error {
	parameters := make([]templateParam, 0, len(params))
	for _, p := range params {
		parameters = append(parameters, templateParam{Type: "text", Text: p})
	}
	return c.post(ctx, outboundMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "template",
		Template: &templateBody{
			Name:       name,
			Language:   templateLanguage{Code: c.cfg.Language},
			Components: []templateComponent{{Type: "body", Parameters: parameters}},
		},
	})
}

func (c *WhatsAppClient) post(ctx context.Context, msg outboundMessage) error {
	logger := utils.GetLogger()
	if !c.Configured() {
		logger.Warn("whatsapp: credentials missing, message dropped", zap.String("to", msg.To), zap.String("type", msg.Type))
		return nil
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("whatsapp: failed to encode message: %w", err)
	}
	url := strings.TrimRight(c.cfg.APIURL, "/") + "/" + c.cfg.PhoneNumberID + "/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("whatsapp: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("whatsapp: unexpected status %d: %s", resp.StatusCode, string(body))
	}
	logger.Info("whatsapp: message sent", zap.String("to", msg.To), zap.String("type", msg.Type))
	return nil
}
