package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tubenotes/tubenotes/internal/domain/entities"
)

// HistoryRepository implements the history repository interface using GORM
type HistoryRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{
		db: db,
	}
}

// Create persists a history record
func (r *HistoryRepository) Create(ctx context.Context, entry *entities.TranscriptHistory) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create history entry: %w", err)
	}
	return nil
}

// ListRecent returns up to limit records, newest first
func (r *HistoryRepository) ListRecent(ctx context.Context, limit int) ([]entities.TranscriptHistory, error) {
	var entries []entities.TranscriptHistory
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return entries, nil
}
