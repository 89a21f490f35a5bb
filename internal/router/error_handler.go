package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/loopcinemas/loop-api/internal/logger"
)

// newHTTPErrorHandler converts uncaught errors into the standard
// response envelope. Handler-level failures are already translated
// before they reach this point, so anything landing here is either an
// Echo routing error or a genuine bug.
func newHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := "Internal server error"
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if s, ok := he.Message.(string); ok {
				msg = s
			}
		}

		log := logger.Get()
		if code >= http.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("request failed")
			msg = "Internal server error"
		} else {
			log.Debug().Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("request rejected")
		}

		if err := c.JSON(code, echo.Map{"type": "error", "msg": msg}); err != nil {
			log.Error().Err(err).Msg("failed to write error response")
		}
	}
}
