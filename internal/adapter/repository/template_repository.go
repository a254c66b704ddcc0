package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tubenotes/tubenotes/internal/domain/entities"
)

// TemplateRepository implements the template repository interface using GORM
type TemplateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{
		db: db,
	}
}

// List returns all templates in insertion order
func (r *TemplateRepository) List(ctx context.Context) ([]entities.FormatTemplate, error) {
	var templates []entities.FormatTemplate
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

// GetByID returns the template with the given id, or nil when absent
func (r *TemplateRepository) GetByID(ctx context.Context, id uint) (*entities.FormatTemplate, error) {
	var template entities.FormatTemplate
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get template %d: %w", id, err)
	}
	return &template, nil
}

// InsertDefaults seeds the store with the given templates
func (r *TemplateRepository) InsertDefaults(ctx context.Context, templates []entities.FormatTemplate) error {
	if len(templates) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&templates).Error; err != nil {
		return fmt.Errorf("failed to insert default templates: %w", err)
	}
	return nil
}
