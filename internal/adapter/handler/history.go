package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	historydto "github.com/tubenotes/tubenotes/internal/adapter/dto/history"
	"github.com/tubenotes/tubenotes/errors"
	"github.com/tubenotes/tubenotes/internal/usecase/history"
)

// HistoryHandler serves the processed-transcript history.
type HistoryHandler struct {
	history history.Service
	logger  *zap.Logger
}

func NewHistoryHandler(history history.Service, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		history: history,
		logger:  logger,
	}
}

// Save handles POST /api/history.
func (h *HistoryHandler) Save(c echo.Context) error {
	var req historydto.SaveRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("videoId, videoTitle, originalTranscript and formattedTranscript are required"))
	}

	entry := req.ToEntity()
	if err := h.history.Save(c.Request().Context(), entry); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusCreated, entry)
}

// List handles GET /api/history.
func (h *HistoryHandler) List(c echo.Context) error {
	entries, err := h.history.ListRecent(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, entries)
}
