package usecase

import (
	"context"
	"fmt"
	"io"

	"aqarverse/internal/domain/entity"
	"aqarverse/internal/domain/repository"
	"aqarverse/internal/domain/service"
	"aqarverse/pkg/errors"
)

type fakePropertyRepo struct {
	properties map[string]*entity.Property
	nextID     int

	getByIDsCalls   int
	getByIDsBatches [][]string
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{properties: map[string]*entity.Property{}}
}

func (f *fakePropertyRepo) Create(ctx context.Context, property *entity.Property) error {
	if property.ID == "" {
		f.nextID++
		property.ID = fmt.Sprintf("prop-%d", f.nextID)
	}
	clone := *property
	f.properties[property.ID] = &clone
	return nil
}

func (f *fakePropertyRepo) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	property, ok := f.properties[id]
	if !ok {
		return nil, errors.NotFound("Property", nil)
	}
	clone := *property
	return &clone, nil
}

func (f *fakePropertyRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Property, error) {
	if len(ids) > repository.MaxInQueryIDs {
		return nil, errors.BadRequest("Too many ids for a single batched query", nil)
	}
	f.getByIDsCalls++
	f.getByIDsBatches = append(f.getByIDsBatches, ids)

	var out []*entity.Property
	for _, id := range ids {
		if property, ok := f.properties[id]; ok {
			clone := *property
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakePropertyRepo) Update(ctx context.Context, property *entity.Property) error {
	if _, ok := f.properties[property.ID]; !ok {
		return errors.NotFound("Property", nil)
	}
	clone := *property
	f.properties[property.ID] = &clone
	return nil
}

func (f *fakePropertyRepo) UpdateStatus(ctx context.Context, id string, status entity.PropertyStatus, rejectionReason string) error {
	property, ok := f.properties[id]
	if !ok {
		return errors.NotFound("Property", nil)
	}
	property.Status = status
	property.RejectionReason = rejectionReason
	return nil
}

func (f *fakePropertyRepo) Delete(ctx context.Context, id string) error {
	delete(f.properties, id)
	return nil
}

func (f *fakePropertyRepo) ListByOwner(ctx context.Context, ownerUID string, status entity.PropertyStatus, limit, offset int) ([]*entity.Property, int64, error) {
	var out []*entity.Property
	for _, property := range f.properties {
		if property.OwnerUID != ownerUID {
			continue
		}
		if status != "" && property.Status != status {
			continue
		}
		clone := *property
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (f *fakePropertyRepo) ListByStatus(ctx context.Context, status entity.PropertyStatus, limit, offset int) ([]*entity.Property, int64, error) {
	var out []*entity.Property
	for _, property := range f.properties {
		if status != "" && property.Status != status {
			continue
		}
		clone := *property
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (f *fakePropertyRepo) WatchByOwner(ctx context.Context, ownerUID string) (<-chan []*entity.Property, error) {
	ch := make(chan []*entity.Property)
	close(ch)
	return ch, nil
}

func (f *fakePropertyRepo) WatchByStatus(ctx context.Context, status entity.PropertyStatus) (<-chan []*entity.Property, error) {
	ch := make(chan []*entity.Property)
	close(ch)
	return ch, nil
}

type fakeFavoriteRepo struct {
	markers map[string]map[string]bool
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{markers: map[string]map[string]bool{}}
}

func (f *fakeFavoriteRepo) Toggle(ctx context.Context, customerUID, propertyID string) (bool, error) {
	if f.markers[customerUID] == nil {
		f.markers[customerUID] = map[string]bool{}
	}
	if f.markers[customerUID][propertyID] {
		delete(f.markers[customerUID], propertyID)
		return false, nil
	}
	f.markers[customerUID][propertyID] = true
	return true, nil
}

func (f *fakeFavoriteRepo) Exists(ctx context.Context, customerUID, propertyID string) (bool, error) {
	return f.markers[customerUID][propertyID], nil
}

func (f *fakeFavoriteRepo) ListIDs(ctx context.Context, customerUID string) ([]string, error) {
	var ids []string
	for id := range f.markers[customerUID] {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeFavoriteRepo) WatchIDs(ctx context.Context, customerUID string) (<-chan []string, error) {
	ch := make(chan []string)
	close(ch)
	return ch, nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*entity.Company{}}
}

func (f *fakeCompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	company.Role = entity.RoleCompany
	f.companies[company.ID] = company
	return nil
}

func (f *fakeCompanyRepo) GetByID(ctx context.Context, uid string) (*entity.Company, error) {
	company, ok := f.companies[uid]
	if !ok {
		return nil, errors.NotFound("Company", nil)
	}
	return company, nil
}

func (f *fakeCompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	f.companies[company.ID] = company
	return nil
}

func (f *fakeCompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, int64, error) {
	var out []*entity.Company
	for _, company := range f.companies {
		out = append(out, company)
	}
	return out, int64(len(out)), nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	customer.Role = entity.RoleCustomer
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, uid string) (*entity.Customer, error) {
	customer, ok := f.customers[uid]
	if !ok {
		return nil, errors.NotFound("Customer", nil)
	}
	return customer, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	f.customers[customer.ID] = customer
	return nil
}

type fakeAdminRepo struct {
	admins map[string]bool
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]bool{}}
}

func (f *fakeAdminRepo) IsAdmin(ctx context.Context, uid string) (bool, error) {
	return f.admins[uid], nil
}

type fakeRoleCache struct {
	roles map[string]entity.Role

	hits   int
	misses int
}

func newFakeRoleCache() *fakeRoleCache {
	return &fakeRoleCache{roles: map[string]entity.Role{}}
}

func (f *fakeRoleCache) Get(ctx context.Context, uid string) entity.Role {
	role := f.roles[uid]
	if role == entity.RoleNone {
		f.misses++
	} else {
		f.hits++
	}
	return role
}

func (f *fakeRoleCache) Set(ctx context.Context, uid string, role entity.Role) {
	if role != entity.RoleNone {
		f.roles[uid] = role
	}
}

func (f *fakeRoleCache) Invalidate(ctx context.Context, uid string) {
	delete(f.roles, uid)
}

type fakeFileService struct {
	uploads []string
	deletes []string
}

func (f *fakeFileService) Upload(ctx context.Context, file io.Reader, contentType, objectPath string) (*service.UploadResult, error) {
	f.uploads = append(f.uploads, objectPath)
	var size int64
	if file != nil {
		size, _ = io.Copy(io.Discard, file)
	}
	return &service.UploadResult{
		Path: objectPath,
		URL:  "https://storage.example.com/" + objectPath,
		Size: size,
	}, nil
}

func (f *fakeFileService) Delete(ctx context.Context, objectPath string) error {
	f.deletes = append(f.deletes, objectPath)
	return nil
}

func (f *fakeFileService) DownloadURL(ctx context.Context, objectPath string) (string, error) {
	return "https://signed.example.com/" + objectPath, nil
}

func (f *fakeFileService) Close() error {
	return nil
}
