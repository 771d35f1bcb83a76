package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqarverse/internal/domain/entity"
)

func TestCompanyFromDocCanonicalFields(t *testing.T) {
	now := time.Now()

	company, err := companyFromDoc("uid-1", map[string]interface{}{
		"companyName":   "Desert Homes",
		"email":         "info@deserthomes.example",
		"phone":         "+966500000000",
		"location":      "Riyadh",
		"licenseNumber": "LIC-42",
		"photoUrl":      "https://example.com/logo.png",
		"createdAt":     now,
		"updatedAt":     now,
	})
	require.NoError(t, err)

	assert.Equal(t, "uid-1", company.ID)
	assert.Equal(t, "Desert Homes", company.CompanyName)
	assert.Equal(t, "Riyadh", company.Location)
	assert.Equal(t, "https://example.com/logo.png", company.PhotoURL)
	assert.Equal(t, entity.RoleCompany, company.Role)
	assert.Equal(t, now, company.CreatedAt)
}

func TestCompanyFromDocLegacyCasing(t *testing.T) {
	company, err := companyFromDoc("uid-1", map[string]interface{}{
		"companyName": "Old Partner",
		"Location":    "Jeddah",
		"photoURL":    "https://example.com/old.png",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jeddah", company.Location)
	assert.Equal(t, "https://example.com/old.png", company.PhotoURL)
}

func TestCompanyFromDocCanonicalWinsOverLegacy(t *testing.T) {
	company, err := companyFromDoc("uid-1", map[string]interface{}{
		"location": "Riyadh",
		"Location": "Jeddah",
		"photoUrl": "https://example.com/new.png",
		"imageUrl": "https://example.com/older.png",
	})
	require.NoError(t, err)

	assert.Equal(t, "Riyadh", company.Location)
	assert.Equal(t, "https://example.com/new.png", company.PhotoURL)
}

func TestCompanyFromDocImageUrlFallback(t *testing.T) {
	company, err := companyFromDoc("uid-1", map[string]interface{}{
		"imageUrl": "https://example.com/oldest.png",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/oldest.png", company.PhotoURL)
}

func TestCompanyFromDocNilData(t *testing.T) {
	_, err := companyFromDoc("uid-1", nil)
	assert.Error(t, err)
}

func TestStringFieldSkipsNonStrings(t *testing.T) {
	data := map[string]interface{}{
		"a": 7,
		"b": "",
		"c": "value",
	}

	assert.Equal(t, "value", stringField(data, "a", "b", "c"))
	assert.Equal(t, "", stringField(data, "a", "b"))
	assert.Equal(t, "", stringField(data, "missing"))
}
