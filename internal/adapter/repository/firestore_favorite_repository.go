package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"aqarverse/internal/domain/repository"
	"aqarverse/pkg/errors"
	"aqarverse/pkg/logger"
)

const favoritesSubcollection = "favorites"

// Favorites live as empty marker documents under
// Customer/{uid}/favorites/{propertyID}; the document's existence is the
// whole signal.
type firestoreFavoriteRepository struct {
	client *firestore.Client
}

func NewFirestoreFavoriteRepository(client *firestore.Client) repository.FavoriteRepository {
	return &firestoreFavoriteRepository{
		client: client,
	}
}

func (r *firestoreFavoriteRepository) favoriteRef(customerUID, propertyID string) *firestore.DocumentRef {
	return r.client.Collection(customerCollection).
		Doc(customerUID).
		Collection(favoritesSubcollection).
		Doc(propertyID)
}

// Toggle flips the favorite marker inside a transaction so two concurrent
// taps on the same heart cannot leave the document half-written. Returns the
// resulting state: true when the property is now favorited.
func (r *firestoreFavoriteRepository) Toggle(ctx context.Context, customerUID, propertyID string) (bool, error) {
	ref := r.favoriteRef(customerUID, propertyID)
	var favorited bool

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		_, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				favorited = true
				return tx.Set(ref, map[string]interface{}{})
			}
			return err
		}
		favorited = false
		return tx.Delete(ref)
	})
	if err != nil {
		return false, errors.Internal("Failed to toggle favorite", err)
	}

	return favorited, nil
}

func (r *firestoreFavoriteRepository) Exists(ctx context.Context, customerUID, propertyID string) (bool, error) {
	_, err := r.favoriteRef(customerUID, propertyID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, errors.Internal("Failed to check favorite", err)
	}
	return true, nil
}

func (r *firestoreFavoriteRepository) ListIDs(ctx context.Context, customerUID string) ([]string, error) {
	iter := r.client.Collection(customerCollection).
		Doc(customerUID).
		Collection(favoritesSubcollection).
		Documents(ctx)

	var ids []string
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list favorites", err)
		}
		ids = append(ids, doc.Ref.ID)
	}

	return ids, nil
}

func (r *firestoreFavoriteRepository) WatchIDs(ctx context.Context, customerUID string) (<-chan []string, error) {
	ch := make(chan []string, 1)

	go func() {
		defer close(ch)

		snapshots := r.client.Collection(customerCollection).
			Doc(customerUID).
			Collection(favoritesSubcollection).
			Snapshots(ctx)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logger.Error("Favorite watch terminated: %v", err)
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.Warn("Failed to read favorite snapshot: %v", err)
				continue
			}

			ids := make([]string, 0, len(docs))
			for _, doc := range docs {
				ids = append(ids, doc.Ref.ID)
			}

			select {
			case ch <- ids:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}
