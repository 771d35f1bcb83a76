package usecase

import (
	"context"

	"aqarverse/internal/domain/entity"
)

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
	RevokeRefreshTokens(ctx context.Context, uid string) error
	SignInWithEmailPassword(ctx context.Context, email, password string) (string, string, error)
	SendPasswordResetEmail(ctx context.Context, email string) error
	SendEmailVerification(ctx context.Context, idToken string) error
	ConfirmPasswordReset(ctx context.Context, oobCode, newPassword string) error
}

// RoleCache remembers resolved roles between requests. Implementations must
// treat failures as misses.
type RoleCache interface {
	Get(ctx context.Context, uid string) entity.Role
	Set(ctx context.Context, uid string, role entity.Role)
	Invalidate(ctx context.Context, uid string)
}
