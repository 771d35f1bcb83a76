package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqarverse/internal/domain/entity"
	"aqarverse/internal/usecase"
	"aqarverse/pkg/errors"
)

func multipartContext(t *testing.T, fields map[string]string, files map[string][2]string) echo.Context {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for name, file := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+name+`"; filename="`+file[0]+`"`)
		header.Set("Content-Type", file[1])
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("payload"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/my-properties", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestParsePropertyForm(t *testing.T) {
	c := multipartContext(t, map[string]string{
		"title":        "Sunset Villa",
		"type":         "Villa",
		"city":         "Riyadh",
		"neighborhood": "Al Olaya",
		"price":        "1250000",
		"size":         "420.5",
		"bedrooms":     "2",
		"bathrooms":    "1",
		"kitchens":     "1",
		"livingRooms":  "0",
		"status":       "pending_review",
	}, map[string][2]string{
		"file":  {"villa.glb", "model/gltf-binary"},
		"image": {"cover.png", "image/png"},
	})

	input, model, image, status, err := parsePropertyForm(c)
	require.NoError(t, err)
	defer closeUploads(model, image)

	assert.Equal(t, "Sunset Villa", input.Title)
	assert.Equal(t, "Villa", input.Type)
	assert.Equal(t, 1250000.0, input.Price)
	assert.Equal(t, 420.5, input.Size)
	assert.Equal(t, 2, input.Bedrooms)
	assert.Equal(t, 0, input.LivingRooms)
	assert.Equal(t, entity.StatusPendingReview, status)

	require.NotNil(t, model)
	assert.Equal(t, "villa.glb", model.Meta.Filename)
	assert.Equal(t, "model/gltf-binary", model.Meta.ContentType)

	require.NotNil(t, image)
	assert.Equal(t, "image/png", image.Meta.ContentType)
}

func TestParsePropertyFormDefaultsToDraft(t *testing.T) {
	c := multipartContext(t, map[string]string{"title": "Early idea"}, nil)

	input, model, image, status, err := parsePropertyForm(c)
	require.NoError(t, err)

	assert.Equal(t, "Early idea", input.Title)
	assert.Equal(t, entity.StatusDraft, status)
	assert.Nil(t, model)
	assert.Nil(t, image)
	assert.Zero(t, input.Price)
}

func TestParsePropertyFormTruncatedBody(t *testing.T) {
	e := echo.New()
	body := "--cut\r\nContent-Disposition: form-data; name=\"file\"; filename=\"villa.glb\"\r\n"
	req := httptest.NewRequest(http.MethodPost, "/v1/my-properties", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, "multipart/form-data; boundary=cut")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_, _, _, _, err := parsePropertyForm(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestParsePropertyFormBadNumber(t *testing.T) {
	c := multipartContext(t, map[string]string{"price": "lots"}, nil)

	_, _, _, _, err := parsePropertyForm(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestRespondErrorFieldEnvelope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := respondError(c, &usecase.ValidationError{Fields: map[string]string{
		"title": "Please enter a valid property title.",
	}})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, rec.Body.String(), "Please enter a valid property title.")
}
