package history

import (
	"context"

	"go.uber.org/zap"

	"github.com/tubenotes/tubenotes/errors"
	"github.com/tubenotes/tubenotes/internal/domain/entities"
	"github.com/tubenotes/tubenotes/internal/domain/repositories"
)

// defaultListLimit caps how many records a history listing returns.
const defaultListLimit = 50

// Service records processed transcripts
type Service interface {
	Save(ctx context.Context, entry *entities.TranscriptHistory) error
	ListRecent(ctx context.Context) ([]entities.TranscriptHistory, error)
}

type service struct {
	history repositories.HistoryRepository
	logger  *zap.Logger
}

// NewService constructs a history service
func NewService(history repositories.HistoryRepository, logger *zap.Logger) Service {
	return &service{
		history: history,
		logger:  logger,
	}
}

func (s *service) Save(ctx context.Context, entry *entities.TranscriptHistory) error {
	if err := s.history.Create(ctx, entry); err != nil {
		return errors.ErrDBQueryFailed("save history", err)
	}

	s.logger.Info("✅ History entry saved",
		zap.String("id", entry.ID.String()),
		zap.String("video_id", entry.VideoID),
	)
	return nil
}

func (s *service) ListRecent(ctx context.Context) ([]entities.TranscriptHistory, error) {
	entries, err := s.history.ListRecent(ctx, defaultListLimit)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("list history", err)
	}
	return entries, nil
}
