package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"aqarverse/internal/domain/repository"
	"aqarverse/pkg/errors"
)

const adminCollection = "admin"

type firestoreAdminRepository struct {
	client *firestore.Client
}

func NewFirestoreAdminRepository(client *firestore.Client) repository.AdminRepository {
	return &firestoreAdminRepository{
		client: client,
	}
}

func (r *firestoreAdminRepository) IsAdmin(ctx context.Context, uid string) (bool, error) {
	doc, err := r.client.Collection(adminCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, errors.Internal("Failed to check admin marker", err)
	}

	role, _ := doc.Data()["role"].(string)
	return role == "admin", nil
}
