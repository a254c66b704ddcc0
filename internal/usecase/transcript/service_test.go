package transcript

import (
	"context"
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tubenotes/tubenotes/errors"
	"github.com/tubenotes/tubenotes/internal/infrastructure/external/youtube"
)

// fakeCaptionSource maps requested language to fragments or an error. The
// zero language key stands for the default track.
type fakeCaptionSource struct {
	fragments map[string][]youtube.CaptionFragment
	errs      map[string]error
	requested []string
}

func (f *fakeCaptionSource) FetchCaptions(ctx context.Context, videoID, lang string) ([]youtube.CaptionFragment, error) {
	f.requested = append(f.requested, lang)
	if err, ok := f.errs[lang]; ok {
		return nil, err
	}
	return f.fragments[lang], nil
}

func TestFetch_PreferredLanguage(t *testing.T) {
	source := &fakeCaptionSource{fragments: map[string][]youtube.CaptionFragment{
		"en": {{Text: "hello"}, {Text: "world"}},
	}}
	svc := NewService(source, "en", zap.NewNop())

	got, err := svc.Fetch(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, []string{"en"}, source.requested)
}

func TestFetch_FallsBackToDefaultTrack(t *testing.T) {
	source := &fakeCaptionSource{
		fragments: map[string][]youtube.CaptionFragment{
			"": {{Text: "hallo"}, {Text: "welt"}},
		},
		errs: map[string]error{"en": youtube.ErrLanguageUnavailable},
	}
	svc := NewService(source, "en", zap.NewNop())

	got, err := svc.Fetch(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, "hallo welt", got)
	assert.Equal(t, []string{"en", ""}, source.requested)
}

func TestFetch_BothTracksFail(t *testing.T) {
	source := &fakeCaptionSource{errs: map[string]error{
		"en": youtube.ErrLanguageUnavailable,
		"":   stdErrors.New("connection reset"),
	}}
	svc := NewService(source, "en", zap.NewNop())

	_, err := svc.Fetch(context.Background(), "abc123")

	require.Error(t, err)
	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorCode_TRANSCRIPT_UNAVAILABLE, appErr.Code)
	assert.Equal(t, "abc123", appErr.Details["video_id"])
}

func TestFetch_DecodesEntities(t *testing.T) {
	source := &fakeCaptionSource{fragments: map[string][]youtube.CaptionFragment{
		"en": {{Text: "tom &amp; jerry"}, {Text: "it&#39;s great"}},
	}}
	svc := NewService(source, "en", zap.NewNop())

	got, err := svc.Fetch(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, "tom & jerry it's great", got)
}

func TestFetch_EmptyVideoID(t *testing.T) {
	source := &fakeCaptionSource{}
	svc := NewService(source, "en", zap.NewNop())

	_, err := svc.Fetch(context.Background(), "")

	require.Error(t, err)
	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorCode_INVALID_ARGUMENT, appErr.Code)
	assert.Empty(t, source.requested)
}
