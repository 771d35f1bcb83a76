package router

import (
	"github.com/labstack/echo/v4"

	"aqarverse/internal/adapter/api/handler"
	"aqarverse/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin/properties")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.GET("", adminHandler.ListProperties)
	admin.GET("/:id", adminHandler.GetProperty)
	admin.POST("/:id/approve", adminHandler.Approve)
	admin.POST("/:id/reject", adminHandler.Reject)
}
