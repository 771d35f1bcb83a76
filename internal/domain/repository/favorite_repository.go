package repository

import (
	"context"
)

type FavoriteRepository interface {
	// Toggle atomically creates the marker if absent or deletes it if
	// present, and returns the resulting favorited state.
	Toggle(ctx context.Context, customerUID, propertyID string) (bool, error)
	Exists(ctx context.Context, customerUID, propertyID string) (bool, error)
	ListIDs(ctx context.Context, customerUID string) ([]string, error)
	WatchIDs(ctx context.Context, customerUID string) (<-chan []string, error)
}
