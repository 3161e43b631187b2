package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	domainusers "bookings/internal/domain/users"
)

const userContextKey = "user"

type UserResolver interface {
	Get(ctx context.Context, id int64) (domainusers.User, error)
}

// AuthMiddleware resolves the caller from the User-Id header. Real identity
// checks belong to the auth collaborator; the engine only ever sees a
// resolved user.
func AuthMiddleware(users UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := strconv.ParseInt(c.Request().Header.Get("User-Id"), 10, 64)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			user, err := users.Get(c.Request().Context(), id)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			c.Set(userContextKey, user)

			return next(c)
		}
	}
}

func RequireRole(roles ...domainusers.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(userContextKey).(domainusers.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}
	}
}

func currentUser(c echo.Context) (domainusers.User, bool) {
	user, ok := c.Get(userContextKey).(domainusers.User)
	return user, ok
}
