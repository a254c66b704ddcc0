package template

import (
	"context"

	"go.uber.org/zap"

	"github.com/tubenotes/tubenotes/errors"
	"github.com/tubenotes/tubenotes/internal/domain/entities"
	"github.com/tubenotes/tubenotes/internal/domain/repositories"
)

// Service exposes the format template store
type Service interface {
	// List returns all templates, seeding the defaults first when the store
	// is empty.
	List(ctx context.Context) ([]entities.FormatTemplate, error)
}

type service struct {
	templates repositories.TemplateRepository
	logger    *zap.Logger
}

// NewService constructs a template service
func NewService(templates repositories.TemplateRepository, logger *zap.Logger) Service {
	return &service{
		templates: templates,
		logger:    logger,
	}
}

func (s *service) List(ctx context.Context) ([]entities.FormatTemplate, error) {
	list, err := s.templates.List(ctx)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("list templates", err)
	}

	if len(list) > 0 {
		return list, nil
	}

	// First read against an empty store seeds the defaults.
	defaults := entities.DefaultTemplates()
	s.logger.Info("🌱 Template store empty, seeding defaults",
		zap.Int("count", len(defaults)),
	)

	if err := s.templates.InsertDefaults(ctx, defaults); err != nil {
		return nil, errors.ErrDBQueryFailed("seed default templates", err)
	}

	list, err = s.templates.List(ctx)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("list templates", err)
	}
	return list, nil
}
