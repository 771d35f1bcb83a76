package router

import (
	"github.com/labstack/echo/v4"

	"aqarverse/internal/adapter/api/handler"
)

func SetupPartnerRouter(e *echo.Echo) {
	partnerHandler := handler.GetPartnerHandler()

	e.GET("/v1/partners", partnerHandler.ListPartners)
}
