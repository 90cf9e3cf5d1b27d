package usecase

import "context"

// TokenVerifier maps an opaque ID token to a verified external identity.
// Implemented by the Firebase auth client; treated as a black box here.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, idToken string) (uid string, email string, err error)
}
