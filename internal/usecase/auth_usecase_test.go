package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reparex/internal/domain/entity"
	"reparex/pkg/errors"
)

func TestLoginInvalidToken(t *testing.T) {
	uc := NewAuthUseCase(&mockClientRepo{}, &mockVerifier{err: assert.AnError})

	_, err := uc.Login(context.Background(), "bad-token")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLoginRegistered(t *testing.T) {
	clientRepo := &mockClientRepo{
		getByFirebaseUIDFn: func(ctx context.Context, uid string) (*entity.Client, error) {
			return &entity.Client{ID: 4, Nombre: "Ana"}, nil
		},
	}
	uc := NewAuthUseCase(clientRepo, &mockVerifier{uid: "uid-1", email: "ana@example.com"})

	result, err := uc.Login(context.Background(), "token")

	require.NoError(t, err)
	assert.True(t, result.Registered)
	require.NotNil(t, result.Client)
	assert.Equal(t, int64(4), result.Client.ID)
}

func TestLoginUnregistered(t *testing.T) {
	clientRepo := &mockClientRepo{
		getByFirebaseUIDFn: func(ctx context.Context, uid string) (*entity.Client, error) {
			return nil, errors.NotFound("Client", nil)
		},
	}
	uc := NewAuthUseCase(clientRepo, &mockVerifier{uid: "uid-1", email: "ana@example.com"})

	result, err := uc.Login(context.Background(), "token")

	require.NoError(t, err)
	assert.False(t, result.Registered)
	assert.Nil(t, result.Client)
	assert.Equal(t, "uid-1", result.FirebaseUID)
	assert.Equal(t, "ana@example.com", result.Email)
}

func TestRegisterConflict(t *testing.T) {
	clientRepo := &mockClientRepo{
		getByFirebaseUIDFn: func(ctx context.Context, uid string) (*entity.Client, error) {
			return &entity.Client{ID: 4}, nil
		},
	}
	uc := NewAuthUseCase(clientRepo, &mockVerifier{})

	_, err := uc.Register(context.Background(), "uid-1", "ana@example.com", RegisterInput{Nombre: "Ana"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestRegisterPropagatesLookupFailure(t *testing.T) {
	clientRepo := &mockClientRepo{
		getByFirebaseUIDFn: func(ctx context.Context, uid string) (*entity.Client, error) {
			return nil, errors.Internal("Failed to get client", assert.AnError)
		},
	}
	uc := NewAuthUseCase(clientRepo, &mockVerifier{})

	// createFn is left unset: reaching the insert would panic the test.
	_, err := uc.Register(context.Background(), "uid-1", "ana@example.com", RegisterInput{Nombre: "Ana"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))
}

func TestRegisterFallsBackToTokenEmail(t *testing.T) {
	var created *entity.Client
	clientRepo := &mockClientRepo{
		getByFirebaseUIDFn: func(ctx context.Context, uid string) (*entity.Client, error) {
			return nil, errors.NotFound("Client", nil)
		},
		createFn: func(ctx context.Context, client *entity.Client, inlineZone *entity.Zone) error {
			client.ID = 10
			created = client
			return nil
		},
	}
	uc := NewAuthUseCase(clientRepo, &mockVerifier{})

	client, err := uc.Register(context.Background(), "uid-1", "ana@example.com", RegisterInput{
		Nombre: "Ana",
		Zone:   entity.Zone{Calle: "Belgrano 55", Ciudad: "Rosario", Provincia: "Santa Fe"},
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(10), client.ID)
	assert.Equal(t, "ana@example.com", client.Email)
	require.NotNil(t, client.FirebaseUID)
	assert.Equal(t, "uid-1", *client.FirebaseUID)
}
