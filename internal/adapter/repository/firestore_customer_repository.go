package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"aqarverse/internal/domain/entity"
	"aqarverse/internal/domain/repository"
	"aqarverse/pkg/errors"
)

const customerCollection = "Customer"

type firestoreCustomerRepository struct {
	client *firestore.Client
}

func NewFirestoreCustomerRepository(client *firestore.Client) repository.CustomerRepository {
	return &firestoreCustomerRepository{
		client: client,
	}
}

func (r *firestoreCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	now := time.Now()
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = now
	}
	customer.UpdatedAt = now
	customer.Role = entity.RoleCustomer

	_, err := r.client.Collection(customerCollection).Doc(customer.ID).Set(ctx, customer)
	if err != nil {
		return errors.Internal("Failed to create customer profile", err)
	}

	return nil
}

func (r *firestoreCustomerRepository) GetByID(ctx context.Context, uid string) (*entity.Customer, error) {
	doc, err := r.client.Collection(customerCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Customer", err)
		}
		return nil, errors.Internal("Failed to get customer profile", err)
	}

	var customer entity.Customer
	if err := doc.DataTo(&customer); err != nil {
		return nil, errors.Internal("Failed to parse customer data", err)
	}
	customer.ID = doc.Ref.ID

	return &customer, nil
}

func (r *firestoreCustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	updateData := map[string]interface{}{
		"name":      customer.Name,
		"phone":     customer.Phone,
		"updatedAt": time.Now(),
	}

	cleanUpdateData := make(map[string]interface{})
	for key, value := range updateData {
		if strVal, ok := value.(string); ok && strVal == "" {
			continue
		}
		cleanUpdateData[key] = value
	}

	_, err := r.client.Collection(customerCollection).Doc(customer.ID).Set(ctx, cleanUpdateData, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update customer profile", err)
	}

	return nil
}
