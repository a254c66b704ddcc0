package format

import (
	"context"
	stdErrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tubenotes/tubenotes/errors"
	"github.com/tubenotes/tubenotes/internal/domain/entities"
)

// fakeTemplateRepo is an in-memory repositories.TemplateRepository.
type fakeTemplateRepo struct {
	templates []entities.FormatTemplate
	listErr   error
}

func (f *fakeTemplateRepo) List(ctx context.Context) ([]entities.FormatTemplate, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.templates, nil
}

func (f *fakeTemplateRepo) GetByID(ctx context.Context, id uint) (*entities.FormatTemplate, error) {
	for i := range f.templates {
		if f.templates[i].ID == id {
			return &f.templates[i], nil
		}
	}
	return nil, nil
}

func (f *fakeTemplateRepo) InsertDefaults(ctx context.Context, templates []entities.FormatTemplate) error {
	f.templates = append(f.templates, templates...)
	return nil
}

// fakeGenerator records every prompt it receives. failAt is the 1-based call
// number that fails; zero means every call succeeds.
type fakeGenerator struct {
	prompts []string
	failAt  int
}

func (g *fakeGenerator) Generate(ctx context.Context, promptText string) (string, error) {
	g.prompts = append(g.prompts, promptText)
	if g.failAt != 0 && len(g.prompts) == g.failAt {
		return "", stdErrors.New("model overloaded")
	}
	return fmt.Sprintf("completion %d", len(g.prompts)), nil
}

func appCode(t *testing.T, err error) errors.ErrorCode {
	t.Helper()
	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Code
}

func TestFormat_CustomPrompt(t *testing.T) {
	gen := &fakeGenerator{}
	svc := NewService(&fakeTemplateRepo{}, gen, 30000, zap.NewNop())

	got, err := svc.Format(context.Background(), "hello transcript", nil, "Summarize this")

	require.NoError(t, err)
	assert.Equal(t, "completion 1", got)
	require.Len(t, gen.prompts, 1)
	assert.True(t, strings.HasPrefix(gen.prompts[0], "Summarize this"))
	assert.Contains(t, gen.prompts[0], "Transcript:\nhello transcript")
}

func TestFormat_TemplatePrompt(t *testing.T) {
	repo := &fakeTemplateRepo{templates: []entities.FormatTemplate{
		{ID: 7, Name: "Summary", Prompt: "Condense the transcript"},
	}}
	gen := &fakeGenerator{}
	svc := NewService(repo, gen, 30000, zap.NewNop())

	id := uint(7)
	_, err := svc.Format(context.Background(), "hello", &id, "")

	require.NoError(t, err)
	require.Len(t, gen.prompts, 1)
	assert.True(t, strings.HasPrefix(gen.prompts[0], "Condense the transcript"))
}

func TestFormat_TemplateWinsOverCustomPrompt(t *testing.T) {
	repo := &fakeTemplateRepo{templates: []entities.FormatTemplate{
		{ID: 1, Name: "Summary", Prompt: "template prompt"},
	}}
	gen := &fakeGenerator{}
	svc := NewService(repo, gen, 30000, zap.NewNop())

	id := uint(1)
	_, err := svc.Format(context.Background(), "hello", &id, "custom prompt")

	require.NoError(t, err)
	require.Len(t, gen.prompts, 1)
	assert.True(t, strings.HasPrefix(gen.prompts[0], "template prompt"))
}

func TestFormat_TemplateNotFound(t *testing.T) {
	gen := &fakeGenerator{}
	svc := NewService(&fakeTemplateRepo{}, gen, 30000, zap.NewNop())

	id := uint(99)
	_, err := svc.Format(context.Background(), "hello", &id, "")

	require.Error(t, err)
	assert.Equal(t, errors.ErrorCode_TEMPLATE_NOT_FOUND, appCode(t, err))
	assert.Empty(t, gen.prompts, "no generation call should happen for an unknown template")
}

func TestFormat_NoPromptProvided(t *testing.T) {
	gen := &fakeGenerator{}
	svc := NewService(&fakeTemplateRepo{}, gen, 30000, zap.NewNop())

	_, err := svc.Format(context.Background(), "hello", nil, "   ")

	require.Error(t, err)
	assert.Equal(t, errors.ErrorCode_NO_PROMPT_PROVIDED, appCode(t, err))
	assert.Empty(t, gen.prompts)
}

func TestFormat_ChunksSentSequentially(t *testing.T) {
	gen := &fakeGenerator{}
	svc := NewService(&fakeTemplateRepo{}, gen, 4, zap.NewNop())

	got, err := svc.Format(context.Background(), "aaaabbbbcc", nil, "fmt")

	require.NoError(t, err)
	require.Len(t, gen.prompts, 3)
	assert.Contains(t, gen.prompts[0], "Transcript:\naaaa")
	assert.Contains(t, gen.prompts[1], "Transcript:\nbbbb")
	assert.Contains(t, gen.prompts[2], "Transcript:\ncc")
	assert.Equal(t, "completion 1\ncompletion 2\ncompletion 3", got)
}

func TestFormat_FailFastMidPipeline(t *testing.T) {
	gen := &fakeGenerator{failAt: 2}
	svc := NewService(&fakeTemplateRepo{}, gen, 4, zap.NewNop())

	_, err := svc.Format(context.Background(), "aaaabbbbcc", nil, "fmt")

	require.Error(t, err)
	assert.Equal(t, errors.ErrorCode_GENERATION_FAILED, appCode(t, err))
	// The third chunk must never be sent after the second one fails.
	assert.Len(t, gen.prompts, 2)
}

func TestFormat_OutputIsNormalized(t *testing.T) {
	gen := &fakeGenerator{}
	svc := NewService(&fakeTemplateRepo{}, gen, 30000, zap.NewNop())

	got, err := svc.Format(context.Background(), "hello", nil, "fmt")

	require.NoError(t, err)
	assert.Equal(t, Normalize(got), got)
}
