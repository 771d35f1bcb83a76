package router

import (
	"github.com/labstack/echo/v4"

	"aqarverse/internal/adapter/api/handler"
	"aqarverse/internal/adapter/api/middleware"
)

func SetupPropertyRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	propertyHandler := handler.GetPropertyHandler()

	listings := e.Group("/v1/listings")
	listings.GET("", propertyHandler.ListApproved)
	listings.GET("/:id", propertyHandler.GetApproved)

	myProperties := e.Group("/v1/my-properties")
	myProperties.Use(authMiddleware.Authenticate)
	myProperties.Use(roleMiddleware.CompanyOnly)
	myProperties.GET("", propertyHandler.ListMine)
	myProperties.POST("", propertyHandler.Create)
	myProperties.GET("/:id", propertyHandler.GetMine)
	myProperties.PUT("/:id", propertyHandler.Update)
	myProperties.DELETE("/:id", propertyHandler.Delete)
	myProperties.POST("/:id/submit", propertyHandler.SubmitForReview)
}
