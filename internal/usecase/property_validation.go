package usecase

import (
	"fmt"
	"math"
	"path"
	"strings"
	"time"

	"aqarverse/internal/domain/entity"
)

// ValidationMode selects how strictly listing input is checked. Submissions
// headed for review validate every field; drafts validate only what the
// caller actually filled in.
type ValidationMode int

const (
	ModeSubmit ValidationMode = iota
	ModeDraft
)

const (
	maxModelFileSize = 50 * 1024 * 1024
	maxImageFileSize = 10 * 1024 * 1024
)

var modelFileExtensions = []string{".fbx", ".glb", ".gltf"}

var imageContentTypes = []string{"image/png", "image/jpeg", "image/webp"}

// FileInput carries metadata about an incoming upload. Size and content type
// come from the multipart header, the extension from the filename.
type FileInput struct {
	Filename    string
	Size        int64
	ContentType string
}

// ValidationError aggregates per-field failures from listing validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	return fmt.Sprintf("invalid fields: %s", strings.Join(keys, ", "))
}

// PropertyInput is the writable surface of a listing.
type PropertyInput struct {
	Title        string
	Type         string
	City         string
	Neighborhood string
	Price        float64
	Size         float64
	Bedrooms     int
	Bathrooms    int
	Kitchens     int
	LivingRooms  int

	Model *FileInput
	Image *FileInput

	// HasExistingModel relaxes the model-file requirement on edits where a
	// model is already on file.
	HasExistingModel bool
}

// NormalizeTitle trims and collapses internal whitespace; length rules apply
// to the normalized form, which is also what gets stored.
func NormalizeTitle(title string) string {
	return strings.Join(strings.Fields(title), " ")
}

// ValidatePropertyInput checks in against the lifecycle rules for the given
// mode and returns nil when everything passes.
func ValidatePropertyInput(in *PropertyInput, mode ValidationMode) *ValidationError {
	e := map[string]string{}
	required := mode == ModeSubmit

	title := NormalizeTitle(in.Title)
	if required || title != "" {
		if len(title) < 3 || len(title) > 100 {
			e["title"] = "Please enter a valid property title."
		}
	}

	if required || in.Type != "" {
		if !entity.IsValidPropertyType(in.Type) {
			e["type"] = "Please select a property type."
		}
	}

	city := strings.TrimSpace(in.City)
	if required || city != "" {
		if len(city) < 2 || len(city) > 100 {
			e["city"] = "Please enter a valid city."
		}
	}

	neighborhood := strings.TrimSpace(in.Neighborhood)
	if required || neighborhood != "" {
		if len(neighborhood) < 2 || len(neighborhood) > 100 {
			e["neighborhood"] = "Please enter a valid neighborhood."
		}
	}

	if required || in.Price != 0 {
		if !isFinitePositive(in.Price) {
			e["price"] = "Enter a valid positive price."
		}
	}

	if required || in.Size != 0 {
		if !isFinitePositive(in.Size) {
			e["size"] = "Enter a valid positive size."
		}
	}

	if in.Bedrooms < 0 {
		e["bedrooms"] = "Bedrooms must be an integer >= 0."
	}
	if in.Bathrooms < 0 {
		e["bathrooms"] = "Bathrooms must be an integer >= 0."
	}
	if in.Kitchens < 0 {
		e["kitchens"] = "Kitchens must be an integer >= 0."
	}
	if in.LivingRooms < 0 {
		e["livingRooms"] = "Living rooms must be an integer >= 0."
	}

	if required && in.Model == nil && !in.HasExistingModel {
		e["file"] = "3D model file is required"
	}
	if in.Model != nil {
		if !hasModelExtension(in.Model.Filename) {
			e["file"] = "Unsupported file type (.fbx, .glb, .gltf only)."
		} else if in.Model.Size > maxModelFileSize {
			e["file"] = "File size exceeds 50MB."
		}
	}

	if in.Image != nil {
		if !isImageContentType(in.Image.ContentType) {
			e["image"] = "Image must be PNG/JPEG/WEBP."
		}
		if in.Image.Size > maxImageFileSize {
			e["image"] = "Image size exceeds 10MB."
		}
	}

	if len(e) == 0 {
		return nil
	}
	return &ValidationError{Fields: e}
}

func isFinitePositive(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0) && n > 0
}

func hasModelExtension(filename string) bool {
	ext := strings.ToLower(path.Ext(filename))
	for _, allowed := range modelFileExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func isImageContentType(contentType string) bool {
	for _, allowed := range imageContentTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

const (
	modelPathPrefix        = "models"
	imagePathPrefix        = "images"
	companyPhotoPathPrefix = "company-photos"
)

// buildObjectPath yields {prefix}/{uid}/{timestamp}_{filename} with
// whitespace in the filename collapsed to underscores.
func buildObjectPath(prefix, uid, filename string) string {
	safeName := strings.Join(strings.Fields(filename), "_")
	return fmt.Sprintf("%s/%s/%d_%s", prefix, uid, time.Now().UnixMilli(), safeName)
}
