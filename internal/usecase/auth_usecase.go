package usecase

import (
	"context"

	"aqarverse/internal/domain/entity"
	"aqarverse/internal/domain/repository"
	"aqarverse/pkg/errors"
	"aqarverse/pkg/logger"
)

type AuthUseCase struct {
	firebaseAuth FirebaseAuthClient
	companyRepo  repository.CompanyRepository
	customerRepo repository.CustomerRepository
	roleResolver *RoleResolver
}

func NewAuthUseCase(
	firebaseAuth FirebaseAuthClient,
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
	roleResolver *RoleResolver,
) *AuthUseCase {
	return &AuthUseCase{
		firebaseAuth: firebaseAuth,
		companyRepo:  companyRepo,
		customerRepo: customerRepo,
		roleResolver: roleResolver,
	}
}

type RegisterCompanyInput struct {
	Email         string
	Password      string
	CompanyName   string
	Phone         string
	Location      string
	LicenseNumber string
}

type RegisterCustomerInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

type AuthResult struct {
	UID          string      `json:"uid"`
	Role         entity.Role `json:"role"`
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
}

// RegisterCompany creates the auth user and the company profile document,
// then signs the new account in. The auth user is removed again if the
// profile write fails, so a half-registered account never lingers.
func (uc *AuthUseCase) RegisterCompany(ctx context.Context, input RegisterCompanyInput) (*AuthResult, error) {
	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.CompanyName)
	if err != nil {
		return nil, errors.FromAuthError(err)
	}

	company := &entity.Company{
		ID:            uid,
		CompanyName:   input.CompanyName,
		Email:         input.Email,
		Phone:         input.Phone,
		Location:      input.Location,
		LicenseNumber: input.LicenseNumber,
	}
	if err := uc.companyRepo.Create(ctx, company); err != nil {
		uc.cleanupAuthUser(ctx, uid)
		return nil, err
	}

	return uc.finishRegistration(ctx, uid, entity.RoleCompany, input.Email, input.Password)
}

// RegisterCustomer mirrors RegisterCompany for buyer accounts.
func (uc *AuthUseCase) RegisterCustomer(ctx context.Context, input RegisterCustomerInput) (*AuthResult, error) {
	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		return nil, errors.FromAuthError(err)
	}

	customer := &entity.Customer{
		ID:    uid,
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}
	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		uc.cleanupAuthUser(ctx, uid)
		return nil, err
	}

	return uc.finishRegistration(ctx, uid, entity.RoleCustomer, input.Email, input.Password)
}

func (uc *AuthUseCase) finishRegistration(ctx context.Context, uid string, role entity.Role, email, password string) (*AuthResult, error) {
	uc.roleResolver.Invalidate(ctx, uid)

	token, refreshToken, err := uc.firebaseAuth.SignInWithEmailPassword(ctx, email, password)
	if err != nil {
		return nil, errors.FromAuthError(err)
	}

	if err := uc.firebaseAuth.SendEmailVerification(ctx, token); err != nil {
		logger.Warn("Failed to send verification email to %s: %v", uid, err)
	}

	return &AuthResult{
		UID:          uid,
		Role:         role,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

// Login signs in with email and password and resolves the account's role.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, refreshToken, err := uc.firebaseAuth.SignInWithEmailPassword(ctx, email, password)
	if err != nil {
		return nil, errors.FromAuthError(err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Unauthorized("Invalid authentication token", err)
	}

	role, err := uc.roleResolver.Resolve(ctx, uid)
	if err != nil {
		return nil, err
	}
	if role == entity.RoleNone {
		return nil, errors.Forbidden("Account has no profile; contact support", nil)
	}

	return &AuthResult{
		UID:          uid,
		Role:         role,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	if err := uc.firebaseAuth.SendPasswordResetEmail(ctx, email); err != nil {
		return errors.FromAuthError(err)
	}
	return nil
}

func (uc *AuthUseCase) ResetPassword(ctx context.Context, oobCode, newPassword string) error {
	if err := uc.firebaseAuth.ConfirmPasswordReset(ctx, oobCode, newPassword); err != nil {
		return errors.FromAuthError(err)
	}
	return nil
}

// Logout revokes the account's refresh tokens. Existing ID tokens stay
// valid until they expire.
func (uc *AuthUseCase) Logout(ctx context.Context, uid string) error {
	if err := uc.firebaseAuth.RevokeRefreshTokens(ctx, uid); err != nil {
		return errors.Internal("Failed to revoke session", err)
	}
	return nil
}

func (uc *AuthUseCase) cleanupAuthUser(ctx context.Context, uid string) {
	if err := uc.firebaseAuth.DeleteUser(ctx, uid); err != nil {
		logger.Error("Failed to clean up auth user %s after registration failure: %v", uid, err)
	}
}
