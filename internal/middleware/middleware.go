package middleware

import (
	"errors"

	"ad-board/internal/database"
	"ad-board/internal/httperr"
	"ad-board/internal/service"
	"ad-board/internal/store"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

var (
	getUserByName    = store.GetUserByName
	authenticateUser = service.AuthenticateUser
)

// RequireCredentials authenticates the name/password request headers and
// stores the matched *model.User in the echo context. There is no token or
// session layer; every call re-authenticates against the stored hash.
// unknownUserMessage is the 401 body for an unknown name, which differs per
// endpoint.
func RequireCredentials(db database.DB, unknownUserMessage string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			name := c.Request().Header.Get("name")
			if name == "" {
				return httperr.Unauthorized(unknownUserMessage)
			}

			user, err := getUserByName(c.Request().Context(), db, name)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return httperr.Unauthorized(unknownUserMessage)
				}
				return err
			}

			if err := authenticateUser(*user, c.Request().Header.Get("password")); err != nil {
				return httperr.Unauthorized("wrong password")
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}
