package transcript

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tubenotes/tubenotes/errors"
	"github.com/tubenotes/tubenotes/internal/infrastructure/external/youtube"
)

// CaptionSource provides ordered caption fragments for a video. An empty lang
// requests the captioning service's default track.
type CaptionSource interface {
	FetchCaptions(ctx context.Context, videoID, lang string) ([]youtube.CaptionFragment, error)
}

// Service fetches full video transcripts
type Service interface {
	// Fetch returns the video's transcript as one decoded, space-joined string.
	Fetch(ctx context.Context, videoID string) (string, error)
}

type service struct {
	captions      CaptionSource
	preferredLang string
	logger        *zap.Logger
}

// NewService constructs a transcript service. preferredLang is tried first;
// on any failure the service falls back once to the default caption track.
func NewService(captions CaptionSource, preferredLang string, logger *zap.Logger) Service {
	return &service{
		captions:      captions,
		preferredLang: preferredLang,
		logger:        logger,
	}
}

func (s *service) Fetch(ctx context.Context, videoID string) (string, error) {
	if videoID == "" {
		return "", errors.ErrInvalidArgument("video ID is required")
	}

	fragments, err := s.captions.FetchCaptions(ctx, videoID, s.preferredLang)
	if err != nil {
		s.logger.Warn("⚠️ Preferred-language captions unavailable, trying default track",
			zap.String("video_id", videoID),
			zap.String("lang", s.preferredLang),
			zap.Error(err),
		)

		fragments, err = s.captions.FetchCaptions(ctx, videoID, "")
		if err != nil {
			s.logger.Error("❌ Transcript fetch failed",
				zap.String("video_id", videoID),
				zap.Error(err),
			)
			return "", errors.ErrTranscriptUnavailable(videoID, err)
		}
	}

	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		parts = append(parts, youtube.DecodeEntities(f.Text))
	}
	transcript := strings.Join(parts, " ")

	s.logger.Info("✅ Transcript fetched",
		zap.String("video_id", videoID),
		zap.Int("fragment_count", len(fragments)),
		zap.Int("length", len(transcript)),
	)

	return transcript, nil
}
