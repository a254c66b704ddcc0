package format

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/tubenotes/tubenotes/errors"
	"github.com/tubenotes/tubenotes/internal/domain/repositories"
)

// formattingInstructions is appended to every chunk request so output stays
// consistent across chunks of the same transcript.
const formattingInstructions = `Formatting requirements:
- Use minimal spacing between sections
- Use consistent markdown header levels
- Keep paragraphs compact`

// Generator is the text-generation service the pipeline calls per chunk.
type Generator interface {
	Generate(ctx context.Context, promptText string) (string, error)
}

// Service runs the transcript reformatting pipeline
type Service interface {
	// Format reformats a transcript using either a stored template (by id) or
	// a caller-supplied prompt. Exactly one of the two must be provided.
	Format(ctx context.Context, transcript string, templateID *uint, customPrompt string) (string, error)

	// Suggest scores available templates against a sample of the transcript.
	Suggest(ctx context.Context, transcript string) ([]Suggestion, error)
}

type service struct {
	templates repositories.TemplateRepository
	generator Generator
	chunkSize int
	logger    *zap.Logger
}

// NewService constructs a formatting service. chunkSize <= 0 falls back to
// DefaultChunkSize.
func NewService(templates repositories.TemplateRepository, generator Generator, chunkSize int, logger *zap.Logger) Service {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &service{
		templates: templates,
		generator: generator,
		chunkSize: chunkSize,
		logger:    logger,
	}
}

func (s *service) Format(ctx context.Context, transcript string, templateID *uint, customPrompt string) (string, error) {
	prompt, err := s.resolvePrompt(ctx, templateID, customPrompt)
	if err != nil {
		return "", err
	}

	chunks := SplitChunks(transcript, s.chunkSize)

	s.logger.Info("🧩 Processing transcript",
		zap.Int("transcript_length", len(transcript)),
		zap.Int("chunk_count", len(chunks)),
		zap.Int("chunk_size", s.chunkSize),
	)

	// Chunks are sent one at a time; completion order must match chunk order.
	completions := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		completion, err := s.generator.Generate(ctx, buildChunkPrompt(prompt, chunk))
		if err != nil {
			s.logger.Error("❌ Generation failed, aborting pipeline",
				zap.Int("chunk", i+1),
				zap.Int("total", len(chunks)),
				zap.Error(err),
			)
			return "", errors.ErrGenerationFailed(err)
		}
		completions = append(completions, completion)
	}

	formatted := Normalize(strings.Join(completions, "\n"))

	s.logger.Info("✅ Transcript formatted",
		zap.Int("chunk_count", len(chunks)),
		zap.Int("formatted_length", len(formatted)),
	)

	return formatted, nil
}

// resolvePrompt picks the effective instruction text: the referenced
// template's prompt, or the custom prompt verbatim. Neither given is an error.
func (s *service) resolvePrompt(ctx context.Context, templateID *uint, customPrompt string) (string, error) {
	if templateID != nil {
		tmpl, err := s.templates.GetByID(ctx, *templateID)
		if err != nil {
			return "", errors.ErrDBQueryFailed("get template", err)
		}
		if tmpl == nil {
			return "", errors.ErrTemplateNotFound(strconv.FormatUint(uint64(*templateID), 10))
		}
		return tmpl.Prompt, nil
	}

	if strings.TrimSpace(customPrompt) != "" {
		return customPrompt, nil
	}

	return "", errors.ErrNoPromptProvided()
}

func buildChunkPrompt(prompt, chunk string) string {
	return fmt.Sprintf("%s\n\n%s\n\nTranscript:\n%s", prompt, formattingInstructions, chunk)
}
