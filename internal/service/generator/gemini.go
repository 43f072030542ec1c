package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/kingrain94/pitchcraft-api/internal/config"
	"github.com/kingrain94/pitchcraft-api/pkg/logger"
)

type GeminiGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger *logger.Logger
}

func NewGeminiGenerator(ctx context.Context, cfg *config.GeminiConfig, logger *logger.Logger) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(cfg.Temperature)
	if cfg.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(cfg.MaxOutputTokens)
	}

	return &GeminiGenerator{
		client: client,
		model:  model,
		logger: logger.With(zap.String("model", cfg.Model)),
	}, nil
}

func (g *GeminiGenerator) Stream(ctx context.Context, prompt string) (<-chan Chunk, error) {
	iter := g.model.GenerateContentStream(ctx, genai.Text(prompt))
	out := make(chan Chunk)

	go func() {
		defer close(out)
		for {
			resp, err := iter.Next()
			if errors.Is(err, iterator.Done) {
				return
			}
			if err != nil {
				g.logger.Warn("Gemini stream failed", zap.Error(err))
				send(ctx, out, Chunk{Err: fmt.Errorf("gemini stream: %w", err)})
				return
			}
			text := responseText(resp)
			if text == "" {
				continue
			}
			if !send(ctx, out, Chunk{Text: text}) {
				return
			}
		}
	}()

	return out, nil
}

func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text string
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text += string(t)
			}
		}
	}
	return text
}
