package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"aqarverse/internal/domain/entity"
	"aqarverse/internal/domain/repository"
	"aqarverse/pkg/errors"
)

const companyCollection = "company"

type firestoreCompanyRepository struct {
	client *firestore.Client
}

func NewFirestoreCompanyRepository(client *firestore.Client) repository.CompanyRepository {
	return &firestoreCompanyRepository{
		client: client,
	}
}

func (r *firestoreCompanyRepository) Create(ctx context.Context, company *entity.Company) error {
	now := time.Now()
	if company.CreatedAt.IsZero() {
		company.CreatedAt = now
	}
	company.UpdatedAt = now
	company.Role = entity.RoleCompany

	_, err := r.client.Collection(companyCollection).Doc(company.ID).Set(ctx, company)
	if err != nil {
		return errors.Internal("Failed to create company profile", err)
	}

	return nil
}

func (r *firestoreCompanyRepository) GetByID(ctx context.Context, uid string) (*entity.Company, error) {
	doc, err := r.client.Collection(companyCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Company", err)
		}
		return nil, errors.Internal("Failed to get company profile", err)
	}

	company, err := companyFromDoc(doc.Ref.ID, doc.Data())
	if err != nil {
		return nil, err
	}

	return company, nil
}

func (r *firestoreCompanyRepository) Update(ctx context.Context, company *entity.Company) error {
	updateData := map[string]interface{}{
		"companyName": company.CompanyName,
		"phone":       company.Phone,
		"location":    company.Location,
		"photoUrl":    company.PhotoURL,
		"updatedAt":   time.Now(),
	}

	// Drop empty values so a partial edit never clears existing data, and
	// remove legacy-cased duplicates superseded by the canonical fields.
	cleanUpdateData := map[string]interface{}{
		"Location": firestore.Delete,
		"photoURL": firestore.Delete,
		"imageUrl": firestore.Delete,
	}
	for key, value := range updateData {
		if strVal, ok := value.(string); ok && strVal == "" {
			continue
		}
		cleanUpdateData[key] = value
	}

	_, err := r.client.Collection(companyCollection).Doc(company.ID).Set(ctx, cleanUpdateData, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update company profile", err)
	}

	return nil
}

func (r *firestoreCompanyRepository) List(ctx context.Context, limit, offset int) ([]*entity.Company, int64, error) {
	query := r.client.Collection(companyCollection).Query

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count companies", err)
	}
	total := int64(len(allDocs))

	query = query.OrderBy("companyName", firestore.Asc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var companies []*entity.Company

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate companies", err)
		}

		company, err := companyFromDoc(doc.Ref.ID, doc.Data())
		if err != nil {
			continue
		}
		companies = append(companies, company)
	}

	return companies, total, nil
}

// companyFromDoc normalizes a raw company document into the canonical
// schema. Legacy documents use inconsistent field casing ("Location" vs
// "location") and several photo field names; the ambiguity stops here.
func companyFromDoc(id string, data map[string]interface{}) (*entity.Company, error) {
	if data == nil {
		return nil, errors.Internal("Empty company document", nil)
	}

	company := &entity.Company{
		ID:            id,
		CompanyName:   stringField(data, "companyName"),
		Email:         stringField(data, "email"),
		Phone:         stringField(data, "phone"),
		Location:      stringField(data, "location", "Location"),
		LicenseNumber: stringField(data, "licenseNumber"),
		PhotoURL:      stringField(data, "photoUrl", "photoURL", "imageUrl"),
		Role:          entity.RoleCompany,
	}

	if t, ok := data["createdAt"].(time.Time); ok {
		company.CreatedAt = t
	}
	if t, ok := data["updatedAt"].(time.Time); ok {
		company.UpdatedAt = t
	}

	return company, nil
}

// stringField returns the first non-empty string among the given keys.
func stringField(data map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value, ok := data[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}
