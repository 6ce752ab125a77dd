package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"legalgpt-portal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when no model name is configured
const DefaultGeminiModel = "gemini-2.0-flash"

// Generator produces an answer for a prompt
type Generator interface {
	Generate(ctx context.Context, prompt string, params models.GenerationParams) (string, error)
}

// StreamGenerator can deliver an answer incrementally
type StreamGenerator interface {
	Generator
	GenerateStream(ctx context.Context, prompt string, params models.GenerationParams, onChunk func(string)) (string, error)
}

// errNonRetryable marks a generator failure that retrying cannot fix
var errNonRetryable = errors.New("non-retryable generation error")

// GeminiGenerator answers prompts with a Gemini model
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini client for apiKey
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}

// NewGeminiGenerator wraps a Gemini client. An empty model name selects DefaultGeminiModel.
func NewGeminiGenerator(client *genai.Client, model string) *GeminiGenerator {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiGenerator{client: client, model: model}
}

func (g *GeminiGenerator) configure(params models.GenerationParams) *genai.GenerativeModel {
	m := g.client.GenerativeModel(g.model)
	m.SetTemperature(float32(params.Temperature))
	m.SetTopP(float32(params.TopP))
	m.SetTopK(int32(params.TopK))
	m.SetMaxOutputTokens(int32(params.MaxTokens))
	// Gemini has no beam search; beams become alternative candidates.
	m.SetCandidateCount(int32(params.NumBeams))
	return m
}

// Generate returns the first non-empty candidate
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, params models.GenerationParams) (string, error) {
	resp, err := g.configure(params).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return "", fmt.Errorf("%w: prompt blocked: %s", errNonRetryable, resp.PromptFeedback.BlockReason)
	}

	for _, cand := range resp.Candidates {
		if text := candidateText(cand); text != "" {
			return text, nil
		}
	}
	return "", errors.New("API returned empty content")
}

// GenerateStream delivers the answer chunk by chunk and returns the full text.
// Streaming always uses a single candidate.
func (g *GeminiGenerator) GenerateStream(
	ctx context.Context,
	prompt string,
	params models.GenerationParams,
	onChunk func(string),
) (string, error) {
	m := g.configure(params)
	m.SetCandidateCount(1)

	var out strings.Builder
	iter := m.GenerateContentStream(ctx, genai.Text(prompt))
	for {
		resp, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to stream content: %w", err)
		}
		for _, cand := range resp.Candidates {
			chunk := candidateText(cand)
			if chunk == "" {
				continue
			}
			out.WriteString(chunk)
			if onChunk != nil {
				onChunk(chunk)
			}
		}
	}

	if out.Len() == 0 {
		return "", errors.New("API returned empty content")
	}
	return out.String(), nil
}

func candidateText(cand *genai.Candidate) string {
	if cand == nil || cand.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}
