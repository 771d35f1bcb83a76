package router

import (
	"github.com/labstack/echo/v4"

	"aqarverse/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupPropertyRouter(e, authMiddleware, roleMiddleware)
	SetupAdminRouter(e, authMiddleware, roleMiddleware)
	SetupFavoriteRouter(e, authMiddleware, roleMiddleware)
	SetupProfileRouter(e, authMiddleware, roleMiddleware)
	SetupPartnerRouter(e)
	SetupStreamRouter(e, authMiddleware, roleMiddleware)
	SetupHealthRouter(e)
}
