package chatbot

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// FAQAnswerer answers free-text questions the keyword table does not cover.
type FAQAnswerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

// GeminiAnswerer asks a Gemini model, primed with the company's FAQ facts.
type GeminiAnswerer struct {
	client *genai.Client
	model  *genai.GenerativeModel
	brand  string
}

func NewGeminiAnswerer(ctx context.Context, apiKey, modelName, brand string) (*GeminiAnswerer, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.2)
	model.SetMaxOutputTokens(256)
	return &GeminiAnswerer{client: client, model: model, brand: brand}, nil
}

func (g *GeminiAnswerer) prompt(question string) string {
	return "You are the WhatsApp assistant of " + g.brand + ", a tour operator in the UAE.\n" +
		"Known facts: prices start from AED 150 per person; pickup is available from hotels and homes; " +
		"cash, card and UPI are accepted. Guests can reply BOOK to start a booking.\n" +
		"Answer in at most three short sentences. If you do not know, say the team will follow up.\n\n" +
		"Question: " + question
}

func (g *GeminiAnswerer) Answer(ctx context.Context, question string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(g.prompt(question)))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// Close releases the underlying client.
func (g *GeminiAnswerer) Close() error {
	return g.client.Close()
}
