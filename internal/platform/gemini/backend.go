package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/excuse-api/internal/config"
	"github.com/phrazzld/excuse-api/internal/generation"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"
)

// BackendName identifies this backend in logs, metrics and errors.
const BackendName = "gemini"

// SystemInstruction is sent with every request.
const SystemInstruction = "You are a professional excuse generator. Your job is to create vague, " +
	"plausible-sounding excuses that blend corporate jargon with technical " +
	"terminology. The excuses should sound busy and important but be completely " +
	"meaningless upon close inspection.\n\n" +
	"Requirements:\n" +
	"- Keep responses concise (1-3 sentences)\n" +
	"- Mix business and technical terms naturally\n" +
	"- Sound apologetic but professional\n" +
	"- Avoid specific commitments\n" +
	"- Make it sound urgent but vague"

// contentGenerator is the subset of *genai.Models used by the backend.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Backend implements generation.Backend using the Gemini API.
type Backend struct {
	logger *slog.Logger
	models contentGenerator
	model  string
	// contentConfig is built once and shared read-only across calls.
	contentConfig *genai.GenerateContentConfig
	tracer        trace.Tracer
}

var _ generation.Backend = (*Backend)(nil)

// NewBackend creates a Gemini backend from the LLM configuration.
//
// It returns an error wrapping generation.ErrInvalidConfig when the API key or
// model name is empty, or when the genai client cannot be created.
func NewBackend(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Backend, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return newBackend(logger, client.Models, cfg.ModelName)
}

func validateConfig(cfg config.LLMConfig) error {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.ModelName) == "" {
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	return nil
}

func newBackend(logger *slog.Logger, models contentGenerator, model string) (*Backend, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if models == nil {
		return nil, fmt.Errorf("%w: genai models client cannot be nil", generation.ErrInvalidConfig)
	}

	return &Backend{
		logger: logger,
		models: models,
		model:  model,
		contentConfig: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(SystemInstruction, genai.RoleUser),
		},
		tracer: otel.Tracer("github.com/phrazzld/excuse-api/internal/platform/gemini"),
	}, nil
}

// Name implements generation.Backend.
func (b *Backend) Name() string {
	return BackendName
}

// Generate implements generation.Backend. It makes exactly one API call.
func (b *Backend) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", generation.NewFailureError(BackendName, generation.ErrEmptyPrompt)
	}

	ctx, span := b.tracer.Start(ctx, "gemini.generate", trace.WithAttributes(
		attribute.String("gen_ai.system", BackendName),
		attribute.String("gen_ai.request.model", b.model),
	))
	defer span.End()

	b.logger.DebugContext(ctx, "calling Gemini API",
		"model", b.model,
		"prompt_length", len(prompt))

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	resp, err := b.models.GenerateContent(ctx, b.model, contents, b.contentConfig)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate content failed")
		b.logger.ErrorContext(ctx, "Gemini API call failed", "error", err)
		return "", generation.NewFailureError(BackendName, err)
	}

	text, err := extractText(resp)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unusable response")
		b.logger.WarnContext(ctx, "Gemini API returned an unusable response", "error", err)
		return "", generation.NewFailureError(BackendName, err)
	}

	if resp.UsageMetadata != nil {
		span.SetAttributes(
			attribute.Int("gen_ai.usage.input_tokens", int(resp.UsageMetadata.PromptTokenCount)),
			attribute.Int("gen_ai.usage.output_tokens", int(resp.UsageMetadata.CandidatesTokenCount)),
		)
	}

	b.logger.DebugContext(ctx, "Gemini API call successful", "response_length", len(text))
	return text, nil
}

// extractText concatenates the text parts of the first candidate. A candidate
// without text parts yields an empty string.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", ErrNilResponse
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: prompt blocked: %s",
				generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
		}
		return "", ErrNoCandidates
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", generation.ErrContentBlocked
	}
	if candidate.Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
