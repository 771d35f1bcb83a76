package repository

import (
	"context"

	"aqarverse/internal/domain/entity"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	// GetByIDs fetches listings with a single "in" query. Callers must pass
	// at most MaxInQueryIDs ids per call.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Property, error)
	Update(ctx context.Context, property *entity.Property) error
	UpdateStatus(ctx context.Context, id string, status entity.PropertyStatus, rejectionReason string) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerUID string, status entity.PropertyStatus, limit, offset int) ([]*entity.Property, int64, error)
	ListByStatus(ctx context.Context, status entity.PropertyStatus, limit, offset int) ([]*entity.Property, int64, error)
	WatchByOwner(ctx context.Context, ownerUID string) (<-chan []*entity.Property, error)
	WatchByStatus(ctx context.Context, status entity.PropertyStatus) (<-chan []*entity.Property, error)
}

// MaxInQueryIDs is the backend's limit on ids per "in" query.
const MaxInQueryIDs = 10
