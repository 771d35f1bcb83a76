package router

import (
	"github.com/labstack/echo/v4"

	"aqarverse/internal/adapter/api/handler"
	"aqarverse/internal/adapter/api/middleware"
)

func SetupFavoriteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	favoriteHandler := handler.GetFavoriteHandler()

	favorites := e.Group("/v1/favorites")
	favorites.Use(authMiddleware.Authenticate)
	favorites.Use(roleMiddleware.CustomerOnly)
	favorites.GET("", favoriteHandler.List)
	favorites.GET("/:propertyId", favoriteHandler.IsFavorited)
	favorites.POST("/:propertyId/toggle", favoriteHandler.Toggle)
}
