package usecase

import (
	"context"

	"reparex/internal/domain/entity"
	"reparex/internal/domain/repository"
	"reparex/pkg/errors"
	"reparex/pkg/logger"
)

type AuthUseCase struct {
	clientRepo repository.ClientRepository
	verifier   TokenVerifier
}

func NewAuthUseCase(clientRepo repository.ClientRepository, verifier TokenVerifier) *AuthUseCase {
	return &AuthUseCase{
		clientRepo: clientRepo,
		verifier:   verifier,
	}
}

// LoginResult reports whether the verified identity already has a local
// client. When it does not, the resolved uid and email are handed back so
// the caller can register.
type LoginResult struct {
	Registered  bool
	Client      *entity.Client
	FirebaseUID string
	Email       string
}

type RegisterInput struct {
	Nombre   string
	Apellido string
	Email    string
	Telefono string
	DNI      string
	Zone     entity.Zone
}

func (uc *AuthUseCase) Login(ctx context.Context, idToken string) (*LoginResult, error) {
	uid, email, err := uc.verifier.VerifyToken(ctx, idToken)
	if err != nil {
		return nil, errors.Unauthorized("Invalid or expired token", err)
	}

	client, err := uc.clientRepo.GetByFirebaseUID(ctx, uid)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return &LoginResult{
				Registered:  false,
				FirebaseUID: uid,
				Email:       email,
			}, nil
		}
		return nil, err
	}

	return &LoginResult{
		Registered: true,
		Client:     client,
	}, nil
}

// Register creates the local client for an already verified identity. The
// uid and email come from the auth middleware, which has validated the
// bearer token before the handler runs.
func (uc *AuthUseCase) Register(ctx context.Context, uid, email string, input RegisterInput) (*entity.Client, error) {
	existing, err := uc.clientRepo.GetByFirebaseUID(ctx, uid)
	if err == nil && existing != nil {
		return nil, errors.Conflict("A client is already registered for this identity", nil)
	}
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	if input.Email == "" {
		input.Email = email
	}

	client := &entity.Client{
		Nombre:      input.Nombre,
		Apellido:    input.Apellido,
		Email:       input.Email,
		Telefono:    input.Telefono,
		DNI:         input.DNI,
		FirebaseUID: &uid,
	}

	// The unique constraint on uid_firebase still backstops a concurrent
	// registration between the lookup above and this insert.
	zone := input.Zone
	if err := uc.clientRepo.Create(ctx, client, &zone); err != nil {
		return nil, err
	}

	logger.Info("registered client %d for identity %s", client.ID, uid)

	return client, nil
}
