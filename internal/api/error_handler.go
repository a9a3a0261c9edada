package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/timbrist/backend-internship-2025/internal/core/domain"
)

// User-facing error messages.
const (
	msgInvalidInput        = "Invalid input parameters"
	msgDeliveryUnavailable = "Delivery not available for this distance"
	msgVenueNotFound       = "Venue data not found"
	msgInternal            = "internal server error"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps pricing failures to their HTTP status codes and fixed messages.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		log.Debug().Err(err).Str("path", c.Path()).Msg("rejected request")
		return http.StatusBadRequest, msgInvalidInput
	case errors.Is(err, domain.ErrDeliveryUnavailable):
		return http.StatusBadRequest, msgDeliveryUnavailable
	case errors.Is(err, domain.ErrVenueNotFound):
		return http.StatusNotFound, msgVenueNotFound
	}

	// Echo's own errors (404 from router, 405, recovered panics etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("http error")
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, msgInternal
}
