package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqarverse/internal/domain/entity"
)

func newResolverFixture() (*RoleResolver, *fakeCompanyRepo, *fakeCustomerRepo, *fakeAdminRepo, *fakeRoleCache) {
	companies := newFakeCompanyRepo()
	customers := newFakeCustomerRepo()
	admins := newFakeAdminRepo()
	cache := newFakeRoleCache()
	return NewRoleResolver(companies, customers, admins, cache), companies, customers, admins, cache
}

func TestResolveCompany(t *testing.T) {
	resolver, companies, _, _, _ := newResolverFixture()
	companies.companies["u1"] = &entity.Company{ID: "u1"}

	role, err := resolver.Resolve(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCompany, role)
}

func TestResolveCustomer(t *testing.T) {
	resolver, _, customers, _, _ := newResolverFixture()
	customers.customers["u1"] = &entity.Customer{ID: "u1"}

	role, err := resolver.Resolve(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, role)
}

func TestResolveAdmin(t *testing.T) {
	resolver, _, _, admins, _ := newResolverFixture()
	admins.admins["u1"] = true

	role, err := resolver.Resolve(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)
}

// A uid with both a company and a customer profile resolves to company; the
// probe order is fixed.
func TestResolveCompanyWinsOverCustomer(t *testing.T) {
	resolver, companies, customers, _, _ := newResolverFixture()
	companies.companies["u1"] = &entity.Company{ID: "u1"}
	customers.customers["u1"] = &entity.Customer{ID: "u1"}

	role, err := resolver.Resolve(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCompany, role)
}

func TestResolveNoProfile(t *testing.T) {
	resolver, _, _, _, _ := newResolverFixture()

	role, err := resolver.Resolve(context.Background(), "stranger")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleNone, role)
}

func TestResolveUsesCache(t *testing.T) {
	resolver, companies, _, _, cache := newResolverFixture()
	companies.companies["u1"] = &entity.Company{ID: "u1"}

	role, err := resolver.Resolve(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCompany, role)

	// Second resolution must not probe again.
	delete(companies.companies, "u1")
	role, err = resolver.Resolve(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCompany, role)
	assert.Equal(t, 1, cache.hits)
}

func TestInvalidateForcesReprobe(t *testing.T) {
	resolver, companies, customers, _, _ := newResolverFixture()
	companies.companies["u1"] = &entity.Company{ID: "u1"}

	_, err := resolver.Resolve(context.Background(), "u1")
	require.NoError(t, err)

	delete(companies.companies, "u1")
	customers.customers["u1"] = &entity.Customer{ID: "u1"}
	resolver.Invalidate(context.Background(), "u1")

	role, err := resolver.Resolve(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, role)
}
