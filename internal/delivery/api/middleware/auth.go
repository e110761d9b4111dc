// Package middleware contains the admin API's authentication and error handling.
package middleware

import (
	"strings"

	deliverycontext "careadmin/internal/delivery/context"
	"careadmin/internal/domain/entity"
	domainerrors "careadmin/internal/domain/errors"
	"careadmin/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates bearer tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and puts the caller on the
// request context, where the audit trail picks it up as the actor.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return domainerrors.ErrUnauthorized.WithDetails("must be a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		ctx := deliverycontext.WithActor(c.Request().Context(), claims.UserID, claims.Roles)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole rejects callers without role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !deliverycontext.HasRole(c.Request().Context(), role.String()) {
				return domainerrors.ErrForbidden.WithDetails("requires the " + role.String() + " role")
			}

			return next(c)
		}
	}
}

// RequireRoleForWrites applies RequireRole to every method except GET and HEAD.
func (m *AuthMiddleware) RequireRoleForWrites(role entity.Role) echo.MiddlewareFunc {
	requireRole := m.RequireRole(role)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		guarded := requireRole(next)

		return func(c echo.Context) error {
			switch c.Request().Method {
			case echo.GET, echo.HEAD:
				return next(c)
			default:
				return guarded(c)
			}
		}
	}
}
