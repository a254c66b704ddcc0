package repositories

import (
	"context"

	"github.com/tubenotes/tubenotes/internal/domain/entities"
)

// TemplateRepository defines read access to the format template store.
// Templates are read-mostly: the only write is the one-time default seeding
// when the store is found empty.
type TemplateRepository interface {
	// List returns all templates in insertion order.
	List(ctx context.Context) ([]entities.FormatTemplate, error)

	// GetByID returns the template with the given id, or nil when absent.
	GetByID(ctx context.Context, id uint) (*entities.FormatTemplate, error)

	// InsertDefaults seeds the store with the given templates.
	InsertDefaults(ctx context.Context, templates []entities.FormatTemplate) error
}
