package handler

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"aqarverse/internal/domain/entity"
	"aqarverse/internal/usecase"
	"aqarverse/pkg/errors"
	"aqarverse/pkg/response"
	"aqarverse/pkg/utils"
)

type PropertyHandler struct {
	propertyUseCase *usecase.PropertyUseCase
}

func NewPropertyHandler(propertyUseCase *usecase.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{
		propertyUseCase: propertyUseCase,
	}
}

// respondError routes per-field lifecycle validation failures to the field
// error envelope and everything else to the generic one.
func respondError(c echo.Context, err error) error {
	var ve *usecase.ValidationError
	if stderrors.As(err, &ve) {
		return response.FieldErrors(c, ve.Fields)
	}
	return response.Error(c, err)
}

func (h *PropertyHandler) Create(c echo.Context) error {
	ownerUID := c.Get("uid").(string)

	input, model, image, targetStatus, err := parsePropertyForm(c)
	if err != nil {
		return response.Error(c, err)
	}
	defer closeUploads(model, image)

	property, err := h.propertyUseCase.Create(c.Request().Context(), ownerUID, input, model, image, targetStatus)
	if err != nil {
		return respondError(c, err)
	}

	return response.Created(c, property)
}

func (h *PropertyHandler) Update(c echo.Context) error {
	ownerUID := c.Get("uid").(string)
	id := c.Param("id")

	input, model, image, targetStatus, err := parsePropertyForm(c)
	if err != nil {
		return response.Error(c, err)
	}
	defer closeUploads(model, image)

	property, err := h.propertyUseCase.Update(c.Request().Context(), ownerUID, id, input, model, image, targetStatus)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, property)
}

func (h *PropertyHandler) SubmitForReview(c echo.Context) error {
	ownerUID := c.Get("uid").(string)
	id := c.Param("id")

	property, err := h.propertyUseCase.SubmitForReview(c.Request().Context(), ownerUID, id)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, property)
}

func (h *PropertyHandler) Delete(c echo.Context) error {
	ownerUID := c.Get("uid").(string)
	id := c.Param("id")

	if err := h.propertyUseCase.Delete(c.Request().Context(), ownerUID, id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Property deleted"})
}

func (h *PropertyHandler) GetMine(c echo.Context) error {
	ownerUID := c.Get("uid").(string)
	id := c.Param("id")

	property, err := h.propertyUseCase.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	if property.OwnerUID != ownerUID {
		return response.Error(c, errors.Forbidden("You don't have permission to view this property", nil))
	}

	return response.Success(c, property)
}

func (h *PropertyHandler) ListMine(c echo.Context) error {
	ownerUID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)
	status := entity.PropertyStatus(c.QueryParam("status"))

	properties, total, err := h.propertyUseCase.ListByOwner(c.Request().Context(), ownerUID, status, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, properties, total, pagination.Page, pagination.PageSize)
}

// ListApproved is the public browse endpoint; only live listings show up.
func (h *PropertyHandler) ListApproved(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	properties, total, err := h.propertyUseCase.ListByStatus(c.Request().Context(), entity.StatusApproved, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, properties, total, pagination.Page, pagination.PageSize)
}

func (h *PropertyHandler) GetApproved(c echo.Context) error {
	id := c.Param("id")

	property, err := h.propertyUseCase.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	if property.Status != entity.StatusApproved {
		return response.Error(c, errors.NotFound("Property", nil))
	}

	return response.Success(c, property)
}

// parsePropertyForm reads the multipart listing form. Empty numeric fields
// stay zero so the draft path can skip them.
func parsePropertyForm(c echo.Context) (usecase.PropertyInput, *usecase.Upload, *usecase.Upload, entity.PropertyStatus, error) {
	var input usecase.PropertyInput

	input.Title = c.FormValue("title")
	input.Type = c.FormValue("type")
	input.City = c.FormValue("city")
	input.Neighborhood = c.FormValue("neighborhood")

	var err error
	if input.Price, err = formFloat(c, "price"); err != nil {
		return input, nil, nil, "", err
	}
	if input.Size, err = formFloat(c, "size"); err != nil {
		return input, nil, nil, "", err
	}
	if input.Bedrooms, err = formInt(c, "bedrooms"); err != nil {
		return input, nil, nil, "", err
	}
	if input.Bathrooms, err = formInt(c, "bathrooms"); err != nil {
		return input, nil, nil, "", err
	}
	if input.Kitchens, err = formInt(c, "kitchens"); err != nil {
		return input, nil, nil, "", err
	}
	if input.LivingRooms, err = formInt(c, "livingRooms"); err != nil {
		return input, nil, nil, "", err
	}

	targetStatus := entity.PropertyStatus(c.FormValue("status"))
	if targetStatus == "" {
		targetStatus = entity.StatusDraft
	}

	model, err := formUpload(c, "file")
	if err != nil {
		return input, nil, nil, "", err
	}
	image, err := formUpload(c, "image")
	if err != nil {
		closeUploads(model)
		return input, nil, nil, "", err
	}

	return input, model, image, targetStatus, nil
}

func formFloat(c echo.Context, name string) (float64, error) {
	value := c.FormValue(name)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.BadRequest(name+" must be a number", err)
	}
	return n, nil
}

func formInt(c echo.Context, name string) (int, error) {
	value := c.FormValue(name)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.BadRequest(name+" must be an integer", err)
	}
	return n, nil
}

func formUpload(c echo.Context, name string) (*usecase.Upload, error) {
	fileHeader, err := c.FormFile(name)
	if err != nil {
		// Missing file is fine; validation decides whether it was required.
		if stderrors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, errors.BadRequest("Failed to read uploaded "+name, err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, errors.BadRequest("Failed to read uploaded "+name, err)
	}

	return &usecase.Upload{
		Meta: usecase.FileInput{
			Filename:    fileHeader.Filename,
			Size:        fileHeader.Size,
			ContentType: fileHeader.Header.Get("Content-Type"),
		},
		Body: src,
	}, nil
}

func closeUploads(uploads ...*usecase.Upload) {
	for _, upload := range uploads {
		if upload == nil {
			continue
		}
		if closer, ok := upload.Body.(interface{ Close() error }); ok {
			closer.Close()
		}
	}
}
