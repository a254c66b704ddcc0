package format

import (
	"context"
	stdErrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tubenotes/tubenotes/errors"
	"github.com/tubenotes/tubenotes/internal/domain/entities"
)

// fixedGenerator always returns the same response.
type fixedGenerator struct {
	response string
	err      error
	prompts  []string
}

func (g *fixedGenerator) Generate(ctx context.Context, promptText string) (string, error) {
	g.prompts = append(g.prompts, promptText)
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

func TestSuggest_ScoresByKeywordOverlap(t *testing.T) {
	repo := &fakeTemplateRepo{templates: []entities.FormatTemplate{
		{ID: 1, Name: "Tech Talk", Description: "for technical deep dives"},
		{ID: 2, Name: "Casual", Description: "business chat recap"},
		{ID: 3, Name: "Recipe", Description: "cooking videos"},
	}}
	gen := &fixedGenerator{response: "Technical, Business"}
	svc := NewService(repo, gen, 30000, zap.NewNop())

	got, err := svc.Suggest(context.Background(), "a transcript about APIs")

	require.NoError(t, err)
	require.Len(t, got, 2)
	// Equal scores keep template order; the zero-score template is dropped.
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, 1, got[0].Score)
	assert.Equal(t, uint(2), got[1].ID)
	assert.Equal(t, 1, got[1].Score)
}

func TestSuggest_NameWordMatchesInsideKeyword(t *testing.T) {
	// "tech" from the name matches inside the keyword "technical".
	repo := &fakeTemplateRepo{templates: []entities.FormatTemplate{
		{ID: 1, Name: "Tech Talk", Description: "x"},
		{ID: 2, Name: "Casual", Description: "business chat"},
	}}
	gen := &fixedGenerator{response: "technical, business"}
	svc := NewService(repo, gen, 30000, zap.NewNop())

	got, err := svc.Suggest(context.Background(), "sample")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, 1, got[0].Score)
	assert.Equal(t, uint(2), got[1].ID)
	assert.Equal(t, 1, got[1].Score)
}

func TestSuggest_HigherScoreFirst(t *testing.T) {
	repo := &fakeTemplateRepo{templates: []entities.FormatTemplate{
		{ID: 1, Name: "Plain", Description: "educational"},
		{ID: 2, Name: "Lecture Notes", Description: "educational and technical talks"},
	}}
	gen := &fixedGenerator{response: "technical, educational"}
	svc := NewService(repo, gen, 30000, zap.NewNop())

	got, err := svc.Suggest(context.Background(), "sample")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint(2), got[0].ID)
	assert.Equal(t, 2, got[0].Score)
	assert.Equal(t, uint(1), got[1].ID)
	assert.Equal(t, 1, got[1].Score)
}

func TestSuggest_NoMatches(t *testing.T) {
	repo := &fakeTemplateRepo{templates: []entities.FormatTemplate{
		{ID: 1, Name: "Recipe", Description: "cooking videos"},
	}}
	gen := &fixedGenerator{response: "technical"}
	svc := NewService(repo, gen, 30000, zap.NewNop())

	got, err := svc.Suggest(context.Background(), "sample")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSuggest_SamplesTranscriptHead(t *testing.T) {
	gen := &fixedGenerator{response: "technical"}
	svc := NewService(&fakeTemplateRepo{}, gen, 30000, zap.NewNop())

	long := strings.Repeat("z", 5000)
	_, err := svc.Suggest(context.Background(), long)

	require.NoError(t, err)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], strings.Repeat("z", keywordSampleSize))
	assert.NotContains(t, gen.prompts[0], strings.Repeat("z", keywordSampleSize+1))
}

func TestSuggest_GenerationFailure(t *testing.T) {
	gen := &fixedGenerator{err: stdErrors.New("model offline")}
	svc := NewService(&fakeTemplateRepo{}, gen, 30000, zap.NewNop())

	_, err := svc.Suggest(context.Background(), "sample")

	require.Error(t, err)
	assert.Equal(t, errors.ErrorCode_GENERATION_FAILED, appCode(t, err))
}

func TestParseKeywords(t *testing.T) {
	got := parseKeywords(" Technical, Business ,, educational,")

	assert.Equal(t, []string{"technical", "business", "educational"}, got)
}
