package template

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tubenotes/tubenotes/internal/domain/entities"
)

type fakeTemplateRepo struct {
	templates []entities.FormatTemplate
	inserts   int
}

func (f *fakeTemplateRepo) List(ctx context.Context) ([]entities.FormatTemplate, error) {
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
	f.inserts++
	for i, tmpl := range templates {
		tmpl.ID = uint(i + 1)
		f.templates = append(f.templates, tmpl)
	}
	return nil
}

func TestList_SeedsDefaultsWhenEmpty(t *testing.T) {
	repo := &fakeTemplateRepo{}
	svc := NewService(repo, zap.NewNop())

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, 1, repo.inserts)
	assert.Equal(t, "Summary", got[0].Name)
	assert.Equal(t, "Key Points", got[1].Name)
	assert.Equal(t, "Q&A Format", got[2].Name)
	assert.Equal(t, "Study Notes", got[3].Name)
	assert.Equal(t, "Executive Brief", got[4].Name)
}

func TestList_SeedsOnlyOnce(t *testing.T) {
	repo := &fakeTemplateRepo{}
	svc := NewService(repo, zap.NewNop())

	_, err := svc.List(context.Background())
	require.NoError(t, err)
	_, err = svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.inserts)
}

func TestList_ExistingTemplatesUntouched(t *testing.T) {
	repo := &fakeTemplateRepo{templates: []entities.FormatTemplate{
		{ID: 42, Name: "Custom"},
	}}
	svc := NewService(repo, zap.NewNop())

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint(42), got[0].ID)
	assert.Equal(t, 0, repo.inserts)
}
