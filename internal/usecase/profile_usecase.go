package usecase

import (
	"context"

	"aqarverse/internal/domain/entity"
	"aqarverse/internal/domain/repository"
	"aqarverse/internal/domain/service"
)

type ProfileUseCase struct {
	companyRepo    repository.CompanyRepository
	customerRepo   repository.CustomerRepository
	fileService    service.FileUploadService
	storageEnabled bool
}

func NewProfileUseCase(
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
	fileService service.FileUploadService,
	storageEnabled bool,
) *ProfileUseCase {
	return &ProfileUseCase{
		companyRepo:    companyRepo,
		customerRepo:   customerRepo,
		fileService:    fileService,
		storageEnabled: storageEnabled,
	}
}

type UpdateCompanyProfileInput struct {
	CompanyName string
	Phone       string
	Location    string
}

type UpdateCustomerProfileInput struct {
	Name  string
	Phone string
}

func (uc *ProfileUseCase) GetCompany(ctx context.Context, uid string) (*entity.Company, error) {
	return uc.companyRepo.GetByID(ctx, uid)
}

func (uc *ProfileUseCase) GetCustomer(ctx context.Context, uid string) (*entity.Customer, error) {
	return uc.customerRepo.GetByID(ctx, uid)
}

// UpdateCompany edits the caller's own company profile. An optional photo
// replaces the current one; empty fields are left untouched by the
// repository's merge write.
func (uc *ProfileUseCase) UpdateCompany(ctx context.Context, uid string, input UpdateCompanyProfileInput, photo *Upload) (*entity.Company, error) {
	company, err := uc.companyRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	company.CompanyName = input.CompanyName
	company.Phone = input.Phone
	company.Location = input.Location

	if photo != nil && uc.storageEnabled {
		result, err := uc.fileService.Upload(ctx, photo.Body, photo.Meta.ContentType, buildObjectPath(companyPhotoPathPrefix, uid, photo.Meta.Filename))
		if err != nil {
			return nil, err
		}
		company.PhotoURL = result.URL
	}

	if err := uc.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	return uc.companyRepo.GetByID(ctx, uid)
}

func (uc *ProfileUseCase) UpdateCustomer(ctx context.Context, uid string, input UpdateCustomerProfileInput) (*entity.Customer, error) {
	customer, err := uc.customerRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	customer.Name = input.Name
	customer.Phone = input.Phone

	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return uc.customerRepo.GetByID(ctx, uid)
}

// ListPartners is the public partner directory.
func (uc *ProfileUseCase) ListPartners(ctx context.Context, limit, offset int) ([]*entity.Company, int64, error) {
	return uc.companyRepo.List(ctx, limit, offset)
}
