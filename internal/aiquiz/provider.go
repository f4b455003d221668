package aiquiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

var ErrEmptyResponse = errors.New("empty response from model")

type Provider interface {
	SendPrompt(ctx context.Context, system, user string) ([]Generated, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider builds a client from GEMINI_API_KEY / GOOGLE_API_KEY.
// GEMINI_MODEL overrides the model name.
func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, system, user string) ([]Generated, error) {
	log := config.WithContext(ctx).WithField("model", p.model)

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			ResponseMIMEType:  "application/json",
		},
	)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return nil, fmt.Errorf("generate content: %w", err)
	}

	raw := result.Text()
	log.Debugf("Raw model response:\n%s", raw)

	questions, err := decodeGenerated(raw)
	if err != nil {
		log.WithError(err).Error("Could not decode model response")
		return nil, err
	}

	log.Infof("Model returned %d questions", len(questions))
	return questions, nil
}

// decodeGenerated strips markdown fences the model sometimes adds.
func decodeGenerated(raw string) ([]Generated, error) {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return nil, ErrEmptyResponse
	}
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`\n ")

	var questions []Generated
	if err := json.Unmarshal([]byte(clean), &questions); err != nil {
		return nil, fmt.Errorf("decode model JSON: %w", err)
	}
	return questions, nil
}
