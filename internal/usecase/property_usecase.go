package usecase

import (
	"context"
	"io"

	"aqarverse/internal/domain/entity"
	"aqarverse/internal/domain/repository"
	"aqarverse/internal/domain/service"
	"aqarverse/pkg/errors"
	"aqarverse/pkg/logger"
)

type PropertyUseCase struct {
	propertyRepo   repository.PropertyRepository
	fileService    service.FileUploadService
	storageEnabled bool
}

func NewPropertyUseCase(
	propertyRepo repository.PropertyRepository,
	fileService service.FileUploadService,
	storageEnabled bool,
) *PropertyUseCase {
	return &PropertyUseCase{
		propertyRepo:   propertyRepo,
		fileService:    fileService,
		storageEnabled: storageEnabled,
	}
}

// Upload bundles file metadata with its content stream.
type Upload struct {
	Meta FileInput
	Body io.Reader
}

func modeFor(status entity.PropertyStatus) ValidationMode {
	if status == entity.StatusDraft {
		return ModeDraft
	}
	return ModeSubmit
}

// Create stores a new listing owned by ownerUID. Target status must be draft
// or pending_review; the review path takes full validation, drafts only
// check the fields that were filled in.
func (uc *PropertyUseCase) Create(ctx context.Context, ownerUID string, input PropertyInput, model, image *Upload, targetStatus entity.PropertyStatus) (*entity.Property, error) {
	if targetStatus != entity.StatusDraft && targetStatus != entity.StatusPendingReview {
		return nil, errors.BadRequest("Target status must be draft or pending_review", nil)
	}

	if model != nil {
		input.Model = &model.Meta
	}
	if image != nil {
		input.Image = &image.Meta
	}
	if err := ValidatePropertyInput(&input, modeFor(targetStatus)); err != nil {
		return nil, err
	}

	property := &entity.Property{
		OwnerUID:     ownerUID,
		Title:        NormalizeTitle(input.Title),
		Type:         input.Type,
		City:         input.City,
		Neighborhood: input.Neighborhood,
		Description:  entity.BuildDescription(input.Bedrooms, input.Bathrooms, input.Kitchens, input.LivingRooms),
		Price:        input.Price,
		Size:         input.Size,
		Bedrooms:     input.Bedrooms,
		Bathrooms:    input.Bathrooms,
		Kitchens:     input.Kitchens,
		LivingRooms:  input.LivingRooms,
		Status:       targetStatus,
	}

	if err := uc.attachModel(ctx, property, ownerUID, model); err != nil {
		return nil, err
	}
	if err := uc.attachImage(ctx, property, ownerUID, image); err != nil {
		return nil, err
	}

	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

// Update edits an owned listing. A new model file is required only when none
// is on file; targetStatus pending_review is honored only from draft or
// rejected, otherwise the current status is kept. Validation follows the
// status the listing ends up with, so a submitted or live listing cannot be
// hollowed out through the relaxed draft checks.
func (uc *PropertyUseCase) Update(ctx context.Context, ownerUID, id string, input PropertyInput, model, image *Upload, targetStatus entity.PropertyStatus) (*entity.Property, error) {
	property, err := uc.ownedProperty(ctx, ownerUID, id)
	if err != nil {
		return nil, err
	}

	resultStatus := property.Status
	if targetStatus == entity.StatusPendingReview && property.CanSubmit() {
		resultStatus = entity.StatusPendingReview
	}

	mode := ModeDraft
	if resultStatus == entity.StatusPendingReview || resultStatus == entity.StatusApproved {
		mode = ModeSubmit
	}

	input.HasExistingModel = property.HasModel()
	if model != nil {
		input.Model = &model.Meta
	}
	if image != nil {
		input.Image = &image.Meta
	}
	if err := ValidatePropertyInput(&input, mode); err != nil {
		return nil, err
	}

	property.Title = NormalizeTitle(input.Title)
	property.Type = input.Type
	property.City = input.City
	property.Neighborhood = input.Neighborhood
	property.Description = entity.BuildDescription(input.Bedrooms, input.Bathrooms, input.Kitchens, input.LivingRooms)
	property.Price = input.Price
	property.Size = input.Size
	property.Bedrooms = input.Bedrooms
	property.Bathrooms = input.Bathrooms
	property.Kitchens = input.Kitchens
	property.LivingRooms = input.LivingRooms

	if resultStatus != property.Status {
		property.Status = resultStatus
		property.RejectionReason = ""
	}

	if model != nil {
		uc.removeBlob(ctx, property.FilePath)
		if err := uc.attachModel(ctx, property, ownerUID, model); err != nil {
			return nil, err
		}
	}
	if image != nil {
		uc.removeBlob(ctx, property.ImagePath)
		if err := uc.attachImage(ctx, property, ownerUID, image); err != nil {
			return nil, err
		}
	}

	if err := uc.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

// SubmitForReview moves a draft or rejected listing into the review queue.
// The full submission validation runs against the stored fields.
func (uc *PropertyUseCase) SubmitForReview(ctx context.Context, ownerUID, id string) (*entity.Property, error) {
	property, err := uc.ownedProperty(ctx, ownerUID, id)
	if err != nil {
		return nil, err
	}

	if !property.CanSubmit() {
		return nil, errors.Conflict("Only draft or rejected properties can be submitted for review")
	}

	input := PropertyInput{
		Title:            property.Title,
		Type:             property.Type,
		City:             property.City,
		Neighborhood:     property.Neighborhood,
		Price:            property.Price,
		Size:             property.Size,
		Bedrooms:         property.Bedrooms,
		Bathrooms:        property.Bathrooms,
		Kitchens:         property.Kitchens,
		LivingRooms:      property.LivingRooms,
		HasExistingModel: property.HasModel(),
	}
	if err := ValidatePropertyInput(&input, ModeSubmit); err != nil {
		return nil, err
	}

	if err := uc.propertyRepo.UpdateStatus(ctx, id, entity.StatusPendingReview, ""); err != nil {
		return nil, err
	}

	property.Status = entity.StatusPendingReview
	property.RejectionReason = ""
	return property, nil
}

// Approve sets the listing live and clears any earlier rejection reason.
func (uc *PropertyUseCase) Approve(ctx context.Context, id string) (*entity.Property, error) {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !property.CanApprove() {
		return nil, errors.Conflict("Property cannot be approved from its current status")
	}

	if err := uc.propertyRepo.UpdateStatus(ctx, id, entity.StatusApproved, ""); err != nil {
		return nil, err
	}

	property.Status = entity.StatusApproved
	property.RejectionReason = ""
	return property, nil
}

// Reject sends the listing back to its owner with the given reason.
func (uc *PropertyUseCase) Reject(ctx context.Context, id, reason string) (*entity.Property, error) {
	if reason == "" {
		return nil, errors.BadRequest("Rejection reason is required", nil)
	}

	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !property.CanReject() {
		return nil, errors.Conflict("Property cannot be rejected from its current status")
	}

	if err := uc.propertyRepo.UpdateStatus(ctx, id, entity.StatusRejected, reason); err != nil {
		return nil, err
	}

	property.Status = entity.StatusRejected
	property.RejectionReason = reason
	return property, nil
}

// Delete removes an owned listing in any status, along with its blobs.
func (uc *PropertyUseCase) Delete(ctx context.Context, ownerUID, id string) error {
	property, err := uc.ownedProperty(ctx, ownerUID, id)
	if err != nil {
		return err
	}

	uc.removeBlob(ctx, property.FilePath)
	uc.removeBlob(ctx, property.ImagePath)

	return uc.propertyRepo.Delete(ctx, id)
}

func (uc *PropertyUseCase) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	return uc.propertyRepo.GetByID(ctx, id)
}

func (uc *PropertyUseCase) ListByOwner(ctx context.Context, ownerUID string, status entity.PropertyStatus, limit, offset int) ([]*entity.Property, int64, error) {
	if status != "" && !entity.IsValidStatus(status) {
		return nil, 0, errors.BadRequest("Unknown property status", nil)
	}
	return uc.propertyRepo.ListByOwner(ctx, ownerUID, status, limit, offset)
}

func (uc *PropertyUseCase) ListByStatus(ctx context.Context, status entity.PropertyStatus, limit, offset int) ([]*entity.Property, int64, error) {
	if status != "" && !entity.IsValidStatus(status) {
		return nil, 0, errors.BadRequest("Unknown property status", nil)
	}
	return uc.propertyRepo.ListByStatus(ctx, status, limit, offset)
}

func (uc *PropertyUseCase) WatchByOwner(ctx context.Context, ownerUID string) (<-chan []*entity.Property, error) {
	return uc.propertyRepo.WatchByOwner(ctx, ownerUID)
}

func (uc *PropertyUseCase) WatchReviewQueue(ctx context.Context) (<-chan []*entity.Property, error) {
	return uc.propertyRepo.WatchByStatus(ctx, entity.StatusPendingReview)
}

func (uc *PropertyUseCase) ownedProperty(ctx context.Context, ownerUID, id string) (*entity.Property, error) {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property.OwnerUID != ownerUID {
		return nil, errors.Forbidden("You don't have permission to modify this property", nil)
	}
	return property, nil
}

func (uc *PropertyUseCase) attachModel(ctx context.Context, property *entity.Property, ownerUID string, model *Upload) error {
	if model == nil {
		return nil
	}

	property.FileName = model.Meta.Filename
	property.FileSize = model.Meta.Size
	property.FileType = model.Meta.ContentType

	if !uc.storageEnabled {
		return nil
	}

	result, err := uc.fileService.Upload(ctx, model.Body, model.Meta.ContentType, buildObjectPath(modelPathPrefix, ownerUID, model.Meta.Filename))
	if err != nil {
		return err
	}
	property.FilePath = result.Path
	property.FileURL = result.URL
	return nil
}

func (uc *PropertyUseCase) attachImage(ctx context.Context, property *entity.Property, ownerUID string, image *Upload) error {
	if image == nil {
		return nil
	}

	property.ImageName = image.Meta.Filename
	property.ImageSize = image.Meta.Size
	property.ImageType = image.Meta.ContentType

	if !uc.storageEnabled {
		return nil
	}

	result, err := uc.fileService.Upload(ctx, image.Body, image.Meta.ContentType, buildObjectPath(imagePathPrefix, ownerUID, image.Meta.Filename))
	if err != nil {
		return err
	}
	property.ImagePath = result.Path
	property.ImageURL = result.URL
	return nil
}

// removeBlob is best effort; an orphaned object is not worth failing the
// request over.
func (uc *PropertyUseCase) removeBlob(ctx context.Context, objectPath string) {
	if objectPath == "" || !uc.storageEnabled {
		return
	}
	if err := uc.fileService.Delete(ctx, objectPath); err != nil {
		logger.Warn("Failed to delete blob %s: %v", objectPath, err)
	}
}
