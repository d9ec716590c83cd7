package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "authgate/internal/delivery/context"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/errors"
)

// ErrorMiddleware is the single place that maps core outcomes to transport
// status and user-visible text. Errors leave the handlers untranslated and
// arrive here through Echo's HTTPErrorHandler hook.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Classified
// errors answer with their own status and plain-text message; everything
// else becomes a generic 500 with full detail logged server-side only.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if writeErr := c.String(appErr.HTTPCode(), appErr.Message()); writeErr != nil {
			m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
		}

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		// Router-level outcomes keep Echo's status; the common ones answer
		// with the taxonomy's text, the rest with bare status text.
		if writeErr := c.String(httpErr.Code, routerMessage(httpErr.Code)); writeErr != nil {
			m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
		}

		return
	}

	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	if writeErr := c.String(http.StatusInternalServerError, domainerrors.ErrInternal.Message()); writeErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}

// routerMessage maps router-level statuses to the taxonomy's user-visible text.
func routerMessage(code int) string {
	switch code {
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.Message()
	case http.StatusMethodNotAllowed:
		return domainerrors.ErrMethodNotAllowed.Message()
	default:
		return http.StatusText(code)
	}
}
