package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"firebase.google.com/go/v4/auth"

	"aqarverse/pkg/errors"
)

const identityToolkitBaseURL = "https://identitytoolkit.googleapis.com/v1"

type FirebaseAuthClient struct {
	client  *auth.Client
	apiKey  string
	httpCli *http.Client
}

func NewFirebaseAuthClient(client *auth.Client, apiKey string) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client:  client,
		apiKey:  apiKey,
		httpCli: http.DefaultClient,
	}
}

func (f *FirebaseAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

func (f *FirebaseAuthClient) DeleteUser(ctx context.Context, uid string) error {
	return f.client.DeleteUser(ctx, uid)
}

func (f *FirebaseAuthClient) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	params := (&auth.UserToUpdate{}).
		Password(newPassword)

	_, err := f.client.UpdateUser(ctx, uid, params)
	if err != nil {
		return err
	}

	return nil
}

// RevokeRefreshTokens invalidates every refresh token the user holds. ID
// tokens already in flight stay valid until they expire.
func (f *FirebaseAuthClient) RevokeRefreshTokens(ctx context.Context, uid string) error {
	return f.client.RevokeRefreshTokens(ctx, uid)
}

// SignInWithEmailPassword exchanges credentials for tokens via the Identity
// Toolkit REST API; the admin SDK has no password sign-in.
func (f *FirebaseAuthClient) SignInWithEmailPassword(ctx context.Context, email, password string) (string, string, error) {
	body := map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	var result struct {
		IDToken      string `json:"idToken"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := f.postIdentityToolkit(ctx, "accounts:signInWithPassword", body, &result); err != nil {
		return "", "", err
	}

	return result.IDToken, result.RefreshToken, nil
}

func (f *FirebaseAuthClient) SendPasswordResetEmail(ctx context.Context, email string) error {
	body := map[string]interface{}{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}
	return f.postIdentityToolkit(ctx, "accounts:sendOobCode", body, nil)
}

func (f *FirebaseAuthClient) SendEmailVerification(ctx context.Context, idToken string) error {
	body := map[string]interface{}{
		"requestType": "VERIFY_EMAIL",
		"idToken":     idToken,
	}
	return f.postIdentityToolkit(ctx, "accounts:sendOobCode", body, nil)
}

// ConfirmPasswordReset applies the oobCode a reset email carried together
// with the user's new password.
func (f *FirebaseAuthClient) ConfirmPasswordReset(ctx context.Context, oobCode, newPassword string) error {
	body := map[string]interface{}{
		"oobCode":     oobCode,
		"newPassword": newPassword,
	}
	return f.postIdentityToolkit(ctx, "accounts:resetPassword", body, nil)
}

func (f *FirebaseAuthClient) postIdentityToolkit(ctx context.Context, endpoint string, body map[string]interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Internal("Failed to encode auth request", err)
	}

	url := fmt.Sprintf("%s/%s?key=%s", identityToolkitBaseURL, endpoint, f.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.Internal("Failed to build auth request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpCli.Do(req)
	if err != nil {
		return errors.Internal("Auth request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			return errors.Internal("Auth request rejected", err)
		}
		return errors.FromAuthError(fmt.Errorf("identitytoolkit: %s", errResp.Error.Message))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Internal("Failed to decode auth response", err)
	}

	return nil
}
