package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqarverse/internal/domain/entity"
	"aqarverse/pkg/errors"
)

type fakeAuthClient struct {
	nextUID   int
	passwords map[string]string // email -> password
	uids      map[string]string // email -> uid

	deleted       []string
	revoked       []string
	resetEmails   []string
	verifications int

	createErr error
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{
		passwords: map[string]string{},
		uids:      map[string]string{},
	}
}

func (f *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	if _, exists := f.uids[email]; exists {
		return "", fmt.Errorf("EMAIL_EXISTS")
	}
	f.nextUID++
	uid := fmt.Sprintf("uid-%d", f.nextUID)
	f.uids[email] = uid
	f.passwords[email] = password
	return uid, nil
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	// Tokens are "token-for-<uid>".
	var uid string
	if _, err := fmt.Sscanf(token, "token-for-%s", &uid); err != nil {
		return "", fmt.Errorf("invalid token")
	}
	return uid, nil
}

func (f *fakeAuthClient) DeleteUser(ctx context.Context, uid string) error {
	f.deleted = append(f.deleted, uid)
	for email, id := range f.uids {
		if id == uid {
			delete(f.uids, email)
			delete(f.passwords, email)
		}
	}
	return nil
}

func (f *fakeAuthClient) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	return nil
}

func (f *fakeAuthClient) RevokeRefreshTokens(ctx context.Context, uid string) error {
	f.revoked = append(f.revoked, uid)
	return nil
}

func (f *fakeAuthClient) SignInWithEmailPassword(ctx context.Context, email, password string) (string, string, error) {
	uid, ok := f.uids[email]
	if !ok || f.passwords[email] != password {
		return "", "", fmt.Errorf("INVALID_LOGIN_CREDENTIALS")
	}
	return "token-for-" + uid, "refresh-" + uid, nil
}

func (f *fakeAuthClient) SendPasswordResetEmail(ctx context.Context, email string) error {
	f.resetEmails = append(f.resetEmails, email)
	return nil
}

func (f *fakeAuthClient) SendEmailVerification(ctx context.Context, idToken string) error {
	f.verifications++
	return nil
}

func (f *fakeAuthClient) ConfirmPasswordReset(ctx context.Context, oobCode, newPassword string) error {
	if oobCode != "valid-code" {
		return fmt.Errorf("INVALID_OOB_CODE")
	}
	return nil
}

type failingCustomerRepo struct {
	*fakeCustomerRepo
}

func (f *failingCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	return errors.Internal("write failed", nil)
}

func newAuthFixture() (*AuthUseCase, *fakeAuthClient, *fakeCompanyRepo, *fakeCustomerRepo) {
	auth := newFakeAuthClient()
	companies := newFakeCompanyRepo()
	customers := newFakeCustomerRepo()
	resolver := NewRoleResolver(companies, customers, newFakeAdminRepo(), newFakeRoleCache())
	return NewAuthUseCase(auth, companies, customers, resolver), auth, companies, customers
}

func TestRegisterCompany(t *testing.T) {
	uc, auth, companies, _ := newAuthFixture()

	result, err := uc.RegisterCompany(context.Background(), RegisterCompanyInput{
		Email:         "sales@deserthomes.example",
		Password:      "correct-horse",
		CompanyName:   "Desert Homes",
		Location:      "Riyadh",
		LicenseNumber: "LIC-42",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleCompany, result.Role)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, 1, auth.verifications)

	company, err := companies.GetByID(context.Background(), result.UID)
	require.NoError(t, err)
	assert.Equal(t, "Desert Homes", company.CompanyName)
	assert.Equal(t, entity.RoleCompany, company.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _, _, _ := newAuthFixture()

	input := RegisterCustomerInput{Email: "a@b.example", Password: "pw-123456", Name: "Amal"}
	_, err := uc.RegisterCustomer(context.Background(), input)
	require.NoError(t, err)

	_, err = uc.RegisterCustomer(context.Background(), input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Contains(t, err.Error(), "Email already in use")
}

func TestRegisterCleansUpOnProfileFailure(t *testing.T) {
	auth := newFakeAuthClient()
	companies := newFakeCompanyRepo()
	customers := &failingCustomerRepo{newFakeCustomerRepo()}
	resolver := NewRoleResolver(companies, customers, newFakeAdminRepo(), newFakeRoleCache())
	uc := NewAuthUseCase(auth, companies, customers, resolver)

	_, err := uc.RegisterCustomer(context.Background(), RegisterCustomerInput{
		Email:    "a@b.example",
		Password: "pw-123456",
		Name:     "Amal",
	})
	require.Error(t, err)
	assert.Len(t, auth.deleted, 1)
}

func TestLoginResolvesRole(t *testing.T) {
	uc, _, _, customers := newAuthFixture()

	reg, err := uc.RegisterCustomer(context.Background(), RegisterCustomerInput{
		Email:    "a@b.example",
		Password: "pw-123456",
		Name:     "Amal",
	})
	require.NoError(t, err)
	require.NotNil(t, customers.customers[reg.UID])

	result, err := uc.Login(context.Background(), "a@b.example", "pw-123456")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, result.Role)
	assert.Equal(t, reg.UID, result.UID)
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _, _, _ := newAuthFixture()

	_, err := uc.RegisterCustomer(context.Background(), RegisterCustomerInput{
		Email:    "a@b.example",
		Password: "pw-123456",
		Name:     "Amal",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), "a@b.example", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
	assert.Contains(t, err.Error(), "Invalid email or password")
}

func TestForgotAndResetPassword(t *testing.T) {
	uc, auth, _, _ := newAuthFixture()

	require.NoError(t, uc.ForgotPassword(context.Background(), "a@b.example"))
	assert.Equal(t, []string{"a@b.example"}, auth.resetEmails)

	require.NoError(t, uc.ResetPassword(context.Background(), "valid-code", "new-password"))
	assert.Error(t, uc.ResetPassword(context.Background(), "bogus", "new-password"))
}

func TestLogoutRevokesTokens(t *testing.T) {
	uc, auth, _, _ := newAuthFixture()

	require.NoError(t, uc.Logout(context.Background(), "uid-9"))
	assert.Equal(t, []string{"uid-9"}, auth.revoked)
}
