package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// AuthClient wraps the Firebase Admin SDK token verifier. It is the only
// place the external identity provider is touched; everything downstream
// works with the verified uid and email.
type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

// VerifyToken checks the ID token and returns the verified uid together
// with the email claim when the token carries one.
func (f *AuthClient) VerifyToken(ctx context.Context, idToken string) (string, string, error) {
	result, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", "", err
	}

	email := ""
	if claim, ok := result.Claims["email"].(string); ok {
		email = claim
	}

	return result.UID, email, nil
}
