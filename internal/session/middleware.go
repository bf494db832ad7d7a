package session

import (
	"github.com/labstack/echo/v4"
)

// HeaderSessionID carries the caller's session identity. A request without it
// gets a fresh session whose ID is echoed back so the caller can keep it.
const HeaderSessionID = "X-Session-ID"

const contextKey = "phr.session"

// Middleware resolves the request's session from the registry and stores it
// on the echo context.
func Middleware(reg *Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := reg.Get(c.Request().Header.Get(HeaderSessionID))
			c.Response().Header().Set(HeaderSessionID, s.ID)
			c.Set(contextKey, s)
			return next(c)
		}
	}
}

// FromContext returns the session placed on the context by Middleware. It
// panics if the middleware did not run, which is a wiring bug.
func FromContext(c echo.Context) *Session {
	return c.Get(contextKey).(*Session)
}
