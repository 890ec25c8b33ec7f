package middleware

import (
	"strings"

	"planit-api/core/config"
	"planit-api/core/constants"
	"planit-api/core/controller"
	"planit-api/core/errors"
	"planit-api/core/utils"

	"github.com/labstack/echo/v4"
)

// Middleware bundles the request middlewares shared by module routers
type Middleware struct {
	cfg *config.Config
}

func NewMiddleware(cfg *config.Config) *Middleware {
	return &Middleware{cfg: cfg}
}

// AuthMiddleware validates the bearer token and stores its claims in context
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return controller.NewErrorResponse(401, errors.ErrMissingAuthorizationHeader, "Missing Authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return controller.NewErrorResponse(401, errors.ErrInvalidTokenFormat, "Authorization header must be a Bearer token")
			}

			claims, appErr := utils.ParseToken(parts[1], m.cfg.Auth.JWTSecret)
			if appErr != nil {
				return controller.NewErrorResponse(401, appErr.Code, appErr.Message)
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}
