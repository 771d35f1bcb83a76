package router

import (
	"github.com/labstack/echo/v4"

	"aqarverse/internal/adapter/api/handler"
	"aqarverse/internal/adapter/api/middleware"
)

func SetupProfileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	profileHandler := handler.GetProfileHandler()

	company := e.Group("/v1/profile/company")
	company.Use(authMiddleware.Authenticate)
	company.Use(roleMiddleware.CompanyOnly)
	company.GET("", profileHandler.GetCompanyProfile)
	company.PUT("", profileHandler.UpdateCompanyProfile)

	customer := e.Group("/v1/profile/customer")
	customer.Use(authMiddleware.Authenticate)
	customer.Use(roleMiddleware.CustomerOnly)
	customer.GET("", profileHandler.GetCustomerProfile)
	customer.PUT("", profileHandler.UpdateCustomerProfile)
}
