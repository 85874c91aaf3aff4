package routes

import (
	"net/http"
	"slices"
	"strings"

	"github.com/Gyan0205/hospital-management/cmd/internal/domain/entity"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils/apierror"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils/token"
	"github.com/labstack/echo/v4"
)

type TokenParser interface {
	Parse(raw string) (*token.Claims, error)
}

// RoleGate requires a bearer token whose role is one of roles. The parsed
// claims are stored on the context under utils.TokenDataKey.
func RoleGate(parser TokenParser, roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			claims, err := parser.Parse(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}
			if !slices.Contains(roles, entity.Role(claims.Role)) {
				return c.JSON(http.StatusForbidden, apierror.RoleNotAllowedError)
			}

			c.Set(utils.TokenDataKey, claims)
			return next(c)
		}
	}
}
