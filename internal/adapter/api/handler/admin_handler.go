package handler

import (
	"github.com/labstack/echo/v4"

	"aqarverse/internal/domain/entity"
	"aqarverse/internal/usecase"
	"aqarverse/pkg/response"
	"aqarverse/pkg/utils"
)

type AdminHandler struct {
	propertyUseCase *usecase.PropertyUseCase
}

func NewAdminHandler(propertyUseCase *usecase.PropertyUseCase) *AdminHandler {
	return &AdminHandler{
		propertyUseCase: propertyUseCase,
	}
}

type rejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// ListProperties returns the review queue by default; a status query param
// widens it to any lifecycle state.
func (h *AdminHandler) ListProperties(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	status := entity.PropertyStatus(c.QueryParam("status"))
	if c.QueryParam("status") == "" {
		status = entity.StatusPendingReview
	}

	properties, total, err := h.propertyUseCase.ListByStatus(c.Request().Context(), status, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, properties, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) GetProperty(c echo.Context) error {
	property, err := h.propertyUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}

func (h *AdminHandler) Approve(c echo.Context) error {
	property, err := h.propertyUseCase.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}

func (h *AdminHandler) Reject(c echo.Context) error {
	var req rejectRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	property, err := h.propertyUseCase.Reject(c.Request().Context(), c.Param("id"), req.Reason)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}
