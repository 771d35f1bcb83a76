package handler

import (
	"github.com/labstack/echo/v4"

	"aqarverse/internal/usecase"
	"aqarverse/pkg/response"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

func (h *FavoriteHandler) Toggle(c echo.Context) error {
	uid := c.Get("uid").(string)
	propertyID := c.Param("propertyId")

	favorited, err := h.favoriteUseCase.Toggle(c.Request().Context(), uid, propertyID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"favorited": favorited})
}

func (h *FavoriteHandler) List(c echo.Context) error {
	uid := c.Get("uid").(string)

	favorites, err := h.favoriteUseCase.List(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, favorites)
}

func (h *FavoriteHandler) IsFavorited(c echo.Context) error {
	uid := c.Get("uid").(string)
	propertyID := c.Param("propertyId")

	favorited, err := h.favoriteUseCase.IsFavorited(c.Request().Context(), uid, propertyID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"favorited": favorited})
}
