package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"aqarverse/internal/domain/entity"
	"aqarverse/internal/usecase"
)

type RoleMiddleware struct {
	roleResolver *usecase.RoleResolver
}

func NewRoleMiddleware(roleResolver *usecase.RoleResolver) *RoleMiddleware {
	return &RoleMiddleware{
		roleResolver: roleResolver,
	}
}

// Require gates a route to callers whose resolved role is one of the given
// roles. Must run after Authenticate.
func (m *RoleMiddleware) Require(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := c.Get("uid").(string)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			role, err := m.roleResolver.Resolve(c.Request().Context(), uid)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify account role")
			}

			for _, allowed := range roles {
				if role == allowed {
					c.Set("role", role)
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden, "Insufficient privileges")
		}
	}
}

func (m *RoleMiddleware) CompanyOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.Require(entity.RoleCompany)(next)
}

func (m *RoleMiddleware) CustomerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.Require(entity.RoleCustomer)(next)
}

func (m *RoleMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.Require(entity.RoleAdmin)(next)
}
