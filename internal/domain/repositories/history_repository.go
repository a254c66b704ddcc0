package repositories

import (
	"context"

	"github.com/tubenotes/tubenotes/internal/domain/entities"
)

// HistoryRepository persists processed transcript records.
type HistoryRepository interface {
	Create(ctx context.Context, entry *entities.TranscriptHistory) error

	// ListRecent returns up to limit records, newest first.
	ListRecent(ctx context.Context, limit int) ([]entities.TranscriptHistory, error)
}
