package usecase

import (
	"context"
	"strings"

	"aqarverse/internal/domain/entity"
	"aqarverse/internal/domain/repository"
	"aqarverse/internal/domain/service"
	"aqarverse/pkg/logger"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	propertyRepo repository.PropertyRepository
	companyRepo  repository.CompanyRepository
	fileService  service.FileUploadService
}

func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	propertyRepo repository.PropertyRepository,
	companyRepo repository.CompanyRepository,
	fileService service.FileUploadService,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		propertyRepo: propertyRepo,
		companyRepo:  companyRepo,
		fileService:  fileService,
	}
}

// Toggle flips the favorite marker for a listing and returns the new state.
func (uc *FavoriteUseCase) Toggle(ctx context.Context, customerUID, propertyID string) (bool, error) {
	if _, err := uc.propertyRepo.GetByID(ctx, propertyID); err != nil {
		return false, err
	}
	return uc.favoriteRepo.Toggle(ctx, customerUID, propertyID)
}

func (uc *FavoriteUseCase) IsFavorited(ctx context.Context, customerUID, propertyID string) (bool, error) {
	return uc.favoriteRepo.Exists(ctx, customerUID, propertyID)
}

// List returns the customer's favorited listings joined with the owning
// company's name and a usable cover URL. Property documents are fetched in
// "in"-query batches of at most MaxInQueryIDs ids.
func (uc *FavoriteUseCase) List(ctx context.Context, customerUID string) ([]*entity.FavoriteProperty, error) {
	ids, err := uc.favoriteRepo.ListIDs(ctx, customerUID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*entity.FavoriteProperty{}, nil
	}

	byID := make(map[string]*entity.Property, len(ids))
	for start := 0; start < len(ids); start += repository.MaxInQueryIDs {
		end := start + repository.MaxInQueryIDs
		if end > len(ids) {
			end = len(ids)
		}

		batch, err := uc.propertyRepo.GetByIDs(ctx, ids[start:end])
		if err != nil {
			return nil, err
		}
		for _, property := range batch {
			byID[property.ID] = property
		}
	}

	companyNames := map[string]string{}
	favorites := make([]*entity.FavoriteProperty, 0, len(ids))
	for _, id := range ids {
		property, ok := byID[id]
		if !ok {
			// Marker outlived its listing; skip it.
			continue
		}

		favorites = append(favorites, &entity.FavoriteProperty{
			Property:    property,
			CompanyName: uc.companyName(ctx, companyNames, property.OwnerUID),
			CoverURL:    uc.coverURL(ctx, property),
		})
	}

	return favorites, nil
}

func (uc *FavoriteUseCase) WatchIDs(ctx context.Context, customerUID string) (<-chan []string, error) {
	return uc.favoriteRepo.WatchIDs(ctx, customerUID)
}

func (uc *FavoriteUseCase) companyName(ctx context.Context, cache map[string]string, ownerUID string) string {
	if name, ok := cache[ownerUID]; ok {
		return name
	}

	name := ""
	if company, err := uc.companyRepo.GetByID(ctx, ownerUID); err == nil {
		name = company.CompanyName
	}
	cache[ownerUID] = name
	return name
}

// coverURL prefers the stored image URL when it is already addressable and
// falls back to signing the storage path.
func (uc *FavoriteUseCase) coverURL(ctx context.Context, property *entity.Property) string {
	if strings.HasPrefix(property.ImageURL, "http://") || strings.HasPrefix(property.ImageURL, "https://") {
		return property.ImageURL
	}
	if property.ImagePath == "" || uc.fileService == nil {
		return ""
	}

	url, err := uc.fileService.DownloadURL(ctx, property.ImagePath)
	if err != nil {
		logger.Warn("Failed to resolve cover URL for %s: %v", property.ID, err)
		return ""
	}
	return url
}
