package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"aqarverse/internal/domain/entity"
	"aqarverse/internal/domain/repository"
	"aqarverse/pkg/errors"
	"aqarverse/pkg/logger"
)

const propertyCollection = "Property"

type firestorePropertyRepository struct {
	client *firestore.Client
}

func NewFirestorePropertyRepository(client *firestore.Client) repository.PropertyRepository {
	return &firestorePropertyRepository{
		client: client,
	}
}

func (r *firestorePropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	if property.ID == "" {
		property.ID = uuid.New().String()
	}

	now := time.Now()
	if property.CreatedAt.IsZero() {
		property.CreatedAt = now
	}
	property.UpdatedAt = now

	_, err := r.client.Collection(propertyCollection).Doc(property.ID).Set(ctx, property)
	if err != nil {
		return errors.Internal("Failed to create property", err)
	}

	return nil
}

func (r *firestorePropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	doc, err := r.client.Collection(propertyCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Property", err)
		}
		return nil, errors.Internal("Failed to get property", err)
	}

	var property entity.Property
	if err := doc.DataTo(&property); err != nil {
		return nil, errors.Internal("Failed to parse property data", err)
	}
	property.ID = doc.Ref.ID

	return &property, nil
}

func (r *firestorePropertyRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Property, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > repository.MaxInQueryIDs {
		return nil, errors.BadRequest("Too many ids for a single batched query", nil)
	}

	refs := make([]*firestore.DocumentRef, len(ids))
	for i, id := range ids {
		refs[i] = r.client.Collection(propertyCollection).Doc(id)
	}

	iter := r.client.Collection(propertyCollection).
		Query.Where(firestore.DocumentID, "in", refs).
		Documents(ctx)

	var properties []*entity.Property
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to batch fetch properties", err)
		}

		var property entity.Property
		if err := doc.DataTo(&property); err != nil {
			logger.Warn("Skipping unparsable property %s: %v", doc.Ref.ID, err)
			continue
		}
		property.ID = doc.Ref.ID
		properties = append(properties, &property)
	}

	return properties, nil
}

func (r *firestorePropertyRepository) Update(ctx context.Context, property *entity.Property) error {
	property.UpdatedAt = time.Now()

	_, err := r.client.Collection(propertyCollection).Doc(property.ID).Set(ctx, property)
	if err != nil {
		return errors.Internal("Failed to update property", err)
	}

	return nil
}

func (r *firestorePropertyRepository) UpdateStatus(ctx context.Context, id string, s entity.PropertyStatus, rejectionReason string) error {
	_, err := r.client.Collection(propertyCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(s)},
		{Path: "rejectionReason", Value: rejectionReason},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Property", err)
		}
		return errors.Internal("Failed to update property status", err)
	}

	return nil
}

func (r *firestorePropertyRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(propertyCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete property", err)
	}

	return nil
}

func (r *firestorePropertyRepository) ListByOwner(ctx context.Context, ownerUID string, s entity.PropertyStatus, limit, offset int) ([]*entity.Property, int64, error) {
	query := r.client.Collection(propertyCollection).Query.Where("ownerUid", "==", ownerUID)
	if s != "" {
		query = query.Where("status", "==", string(s))
	}
	return r.list(ctx, query, limit, offset)
}

func (r *firestorePropertyRepository) ListByStatus(ctx context.Context, s entity.PropertyStatus, limit, offset int) ([]*entity.Property, int64, error) {
	query := r.client.Collection(propertyCollection).Query
	if s != "" {
		query = query.Where("status", "==", string(s))
	}
	return r.list(ctx, query, limit, offset)
}

func (r *firestorePropertyRepository) list(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.Property, int64, error) {
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count properties", err)
	}
	total := int64(len(allDocs))

	query = query.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var properties []*entity.Property

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate properties", err)
		}

		var property entity.Property
		if err := doc.DataTo(&property); err != nil {
			return nil, 0, errors.Internal("Failed to parse property data", err)
		}
		property.ID = doc.Ref.ID
		properties = append(properties, &property)
	}

	return properties, total, nil
}

func (r *firestorePropertyRepository) WatchByOwner(ctx context.Context, ownerUID string) (<-chan []*entity.Property, error) {
	query := r.client.Collection(propertyCollection).Query.Where("ownerUid", "==", ownerUID)
	return r.watch(ctx, query), nil
}

func (r *firestorePropertyRepository) WatchByStatus(ctx context.Context, s entity.PropertyStatus) (<-chan []*entity.Property, error) {
	query := r.client.Collection(propertyCollection).Query.Where("status", "==", string(s))
	return r.watch(ctx, query), nil
}

// watch streams the query result set on every backend-side change until the
// context is cancelled.
func (r *firestorePropertyRepository) watch(ctx context.Context, query firestore.Query) <-chan []*entity.Property {
	ch := make(chan []*entity.Property, 1)

	go func() {
		defer close(ch)

		snapshots := query.Snapshots(ctx)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logger.Error("Property watch terminated: %v", err)
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.Warn("Failed to read property snapshot: %v", err)
				continue
			}

			properties := make([]*entity.Property, 0, len(docs))
			for _, doc := range docs {
				var property entity.Property
				if err := doc.DataTo(&property); err != nil {
					continue
				}
				property.ID = doc.Ref.ID
				properties = append(properties, &property)
			}

			select {
			case ch <- properties:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}
