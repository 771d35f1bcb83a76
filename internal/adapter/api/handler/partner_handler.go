package handler

import (
	"github.com/labstack/echo/v4"

	"aqarverse/internal/usecase"
	"aqarverse/pkg/response"
	"aqarverse/pkg/utils"
)

// PartnerHandler serves the public partner directory.
type PartnerHandler struct {
	profileUseCase *usecase.ProfileUseCase
}

func NewPartnerHandler(profileUseCase *usecase.ProfileUseCase) *PartnerHandler {
	return &PartnerHandler{
		profileUseCase: profileUseCase,
	}
}

func (h *PartnerHandler) ListPartners(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	partners, total, err := h.profileUseCase.ListPartners(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, partners, total, pagination.Page, pagination.PageSize)
}
