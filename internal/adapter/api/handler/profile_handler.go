package handler

import (
	"github.com/labstack/echo/v4"

	"aqarverse/internal/usecase"
	"aqarverse/pkg/response"
)

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

type updateCustomerProfileRequest struct {
	Name  string `json:"name" validate:"omitempty,min=2,max=100"`
	Phone string `json:"phone" validate:"omitempty,e164"`
}

func (h *ProfileHandler) GetCompanyProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	company, err := h.profileUseCase.GetCompany(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, company)
}

// UpdateCompanyProfile takes a multipart form so the profile photo can ride
// along with the text fields.
func (h *ProfileHandler) UpdateCompanyProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	input := usecase.UpdateCompanyProfileInput{
		CompanyName: c.FormValue("companyName"),
		Phone:       c.FormValue("phone"),
		Location:    c.FormValue("location"),
	}

	photo, err := formUpload(c, "photo")
	if err != nil {
		return response.Error(c, err)
	}
	defer closeUploads(photo)

	company, err := h.profileUseCase.UpdateCompany(c.Request().Context(), uid, input, photo)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, company)
}

func (h *ProfileHandler) GetCustomerProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	customer, err := h.profileUseCase.GetCustomer(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, customer)
}

func (h *ProfileHandler) UpdateCustomerProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateCustomerProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	customer, err := h.profileUseCase.UpdateCustomer(c.Request().Context(), uid, usecase.UpdateCustomerProfileInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, customer)
}
