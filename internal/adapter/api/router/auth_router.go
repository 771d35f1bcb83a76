package router

import (
	"github.com/labstack/echo/v4"

	"aqarverse/internal/adapter/api/handler"
	"aqarverse/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/register/company", authHandler.RegisterCompany)
	auth.POST("/register/customer", authHandler.RegisterCustomer)
	auth.POST("/login", authHandler.Login)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)

	auth.POST("/logout", authHandler.Logout, authMiddleware.Authenticate)
}
