package router

import (
	"github.com/labstack/echo/v4"

	"aqarverse/internal/adapter/api/handler"
	"aqarverse/internal/adapter/api/middleware"
)

func SetupStreamRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	streamHandler := handler.GetStreamHandler()

	ws := e.Group("/ws")
	ws.Use(authMiddleware.Authenticate)
	ws.GET("/my-properties", streamHandler.MyProperties, roleMiddleware.CompanyOnly)
	ws.GET("/review-queue", streamHandler.ReviewQueue, roleMiddleware.AdminOnly)
	ws.GET("/favorites", streamHandler.Favorites, roleMiddleware.CustomerOnly)
}
