package client

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/habitloop/backend/internal/config"
)

type PromptClientConfig struct {
	APIKey string
	Model  string
}

// PromptClient generates short idea prompts for idea-generating habits.
type PromptClient struct {
	client *genai.Client
	model  string
}

func NewPromptClient(cfg config.AIConfig) (*PromptClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing AI_API_KEY")
	}
	clientCfg := PromptClientConfig{APIKey: cfg.APIKey, Model: "gemini-2.0-flash"}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: clientCfg.APIKey})
	if err != nil {
		return nil, err
	}
	return &PromptClient{client: client, model: clientCfg.Model}, nil
}

// Generate sends the rendered prompt body and returns a single-line
// suggestion.
func (c *PromptClient) Generate(ctx context.Context, body string) (string, error) {
	res, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(body), nil)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(res.Text())
	if text == "" {
		return "", fmt.Errorf("empty prompt result")
	}
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}
	return text, nil
}
