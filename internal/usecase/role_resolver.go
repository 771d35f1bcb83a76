package usecase

import (
	"context"

	"aqarverse/internal/domain/entity"
	"aqarverse/internal/domain/repository"
	"aqarverse/pkg/errors"
)

// RoleResolver maps an authenticated uid to its account role by probing the
// profile collections in a fixed order: company, then customer, then the
// admin marker. First match wins.
type RoleResolver struct {
	companyRepo  repository.CompanyRepository
	customerRepo repository.CustomerRepository
	adminRepo    repository.AdminRepository
	cache        RoleCache
}

func NewRoleResolver(
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
	adminRepo repository.AdminRepository,
	cache RoleCache,
) *RoleResolver {
	return &RoleResolver{
		companyRepo:  companyRepo,
		customerRepo: customerRepo,
		adminRepo:    adminRepo,
		cache:        cache,
	}
}

func (r *RoleResolver) Resolve(ctx context.Context, uid string) (entity.Role, error) {
	if role := r.cache.Get(ctx, uid); role != entity.RoleNone {
		return role, nil
	}

	role, err := r.probe(ctx, uid)
	if err != nil {
		return entity.RoleNone, err
	}

	r.cache.Set(ctx, uid, role)
	return role, nil
}

func (r *RoleResolver) probe(ctx context.Context, uid string) (entity.Role, error) {
	if _, err := r.companyRepo.GetByID(ctx, uid); err == nil {
		return entity.RoleCompany, nil
	} else if !errors.Is(err, "NOT_FOUND") {
		return entity.RoleNone, err
	}

	if _, err := r.customerRepo.GetByID(ctx, uid); err == nil {
		return entity.RoleCustomer, nil
	} else if !errors.Is(err, "NOT_FOUND") {
		return entity.RoleNone, err
	}

	isAdmin, err := r.adminRepo.IsAdmin(ctx, uid)
	if err != nil {
		return entity.RoleNone, err
	}
	if isAdmin {
		return entity.RoleAdmin, nil
	}

	return entity.RoleNone, nil
}

// Invalidate drops the cached role, typically after a profile is created or
// removed.
func (r *RoleResolver) Invalidate(ctx context.Context, uid string) {
	r.cache.Invalidate(ctx, uid)
}
