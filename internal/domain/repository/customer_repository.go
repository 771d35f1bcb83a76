package repository

import (
	"context"

	"aqarverse/internal/domain/entity"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, uid string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
}
