// Package middleware provides reusable HTTP middleware: session cookie
// authentication, Redis response caching and Redis rate limiting.
package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/loopcinemas/loop-api/internal/utils"
)

// SessionAuth gates protected routes on the session cookie. Outcomes:
//
//	no cookie                      -> 401, no credential supplied
//	cookie fails verification      -> 403 "JWT could not be verified"
//	valid signature, missing claim -> 403 "user_id not found"
//	otherwise                      -> user_id stored in context, next
//
// Handlers behind this middleware read the acting user via
// c.Get("user_id").(string).
func SessionAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(utils.SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"type": "error", "msg": "authentication required"})
			}
			userID, err := utils.VerifySessionToken(secret, cookie.Value)
			if err != nil {
				if errors.Is(err, utils.ErrClaimMissing) {
					return c.JSON(http.StatusForbidden, echo.Map{"type": "error", "msg": "user_id not found"})
				}
				return c.JSON(http.StatusForbidden, echo.Map{"type": "error", "msg": "JWT could not be verified"})
			}
			c.Set("user_id", userID)
			return next(c)
		}
	}
}
