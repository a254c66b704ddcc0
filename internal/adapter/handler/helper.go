package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tubenotes/tubenotes/errors"
)

// errorResponse is the error contract for every endpoint.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HandleError centralizes error handling and logging. AppErrors map to their
// HTTP status with message and underlying detail; anything else is a 500.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		details := ""
		if appErr.Raw != nil {
			details = appErr.Raw.Error()
		}

		return c.JSON(appErr.HTTPCode, errorResponse{
			Error:   appErr.Message,
			Details: details,
		})
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	return c.JSON(http.StatusInternalServerError, errorResponse{
		Error:   "Internal server error",
		Details: err.Error(),
	})
}
