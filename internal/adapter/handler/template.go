package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tubenotes/tubenotes/internal/usecase/template"
)

// TemplateHandler serves the format template catalog.
type TemplateHandler struct {
	templates template.Service
	logger    *zap.Logger
}

func NewTemplateHandler(templates template.Service, logger *zap.Logger) *TemplateHandler {
	return &TemplateHandler{
		templates: templates,
		logger:    logger,
	}
}

// List handles GET /api/templates.
func (h *TemplateHandler) List(c echo.Context) error {
	list, err := h.templates.List(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, list)
}
