package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Engine is a thin wrapper over the Gemini SDK. The client is built once at
// startup and shared by all requests; the SDK client is safe for concurrent use.
type Engine struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, apiKey, model string) (*Engine, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini: api key is empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(strings.TrimSpace(apiKey)))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Engine{
		client: client,
		model:  strings.TrimSpace(model),
	}, nil
}

func (e *Engine) Close() error {
	return e.client.Close()
}

// Generate sends the prompt and the image to the model in a single call and
// returns the model's free-form text. No retries: the caller gets exactly one
// outbound request per invocation.
func (e *Engine) Generate(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	m := e.client.GenerativeModel(e.model)
	if m == nil {
		return "", fmt.Errorf("gemini: model is nil")
	}

	resp, err := m.GenerateContent(ctx,
		genai.Text(prompt),
		&genai.Blob{MIMEType: mimeType, Data: image},
	)
	if err != nil {
		return "", err
	}

	txt := firstText(resp)
	if txt == "" {
		return "", fmt.Errorf("gemini: empty response")
	}
	return txt, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}
