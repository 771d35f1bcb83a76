package repository

import (
	"context"
)

type AdminRepository interface {
	// IsAdmin reports whether an admin marker document exists for the uid
	// with its role field set to "admin".
	IsAdmin(ctx context.Context, uid string) (bool, error)
}
