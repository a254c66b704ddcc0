package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	transcriptdto "github.com/tubenotes/tubenotes/internal/adapter/dto/transcript"
	"github.com/tubenotes/tubenotes/errors"
	"github.com/tubenotes/tubenotes/internal/usecase/format"
	"github.com/tubenotes/tubenotes/internal/usecase/transcript"
)

// TranscriptHandler serves transcript fetching and the formatting pipeline.
type TranscriptHandler struct {
	transcripts transcript.Service
	formats     format.Service
	logger      *zap.Logger
}

func NewTranscriptHandler(transcripts transcript.Service, formats format.Service, logger *zap.Logger) *TranscriptHandler {
	return &TranscriptHandler{
		transcripts: transcripts,
		formats:     formats,
		logger:      logger,
	}
}

// Fetch handles GET /api/transcript/:videoId.
func (h *TranscriptHandler) Fetch(c echo.Context) error {
	videoID := c.Param("videoId")

	text, err := h.transcripts.Fetch(c.Request().Context(), videoID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, transcriptdto.FetchResponse{Transcript: text})
}

// Process handles POST /api/process-transcript.
func (h *TranscriptHandler) Process(c echo.Context) error {
	var req transcriptdto.ProcessRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("transcript is required"))
	}

	formatted, err := h.formats.Format(c.Request().Context(), req.Transcript, req.TemplateID, req.CustomPrompt)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, transcriptdto.ProcessResponse{FormattedTranscript: formatted})
}

// Suggest handles POST /api/suggest-templates.
func (h *TranscriptHandler) Suggest(c echo.Context) error {
	var req transcriptdto.SuggestRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("transcript is required"))
	}

	suggestions, err := h.formats.Suggest(c.Request().Context(), req.Transcript)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, suggestions)
}
