package repository

import (
	"context"

	"reparex/internal/domain/entity"
)

type ClientFilter struct {
	FirebaseUID *string
}

type ClientRepository interface {
	// Create inserts the client. When inlineZone is non-nil it is resolved
	// or created first and the client references it; both steps run in one
	// transaction.
	Create(ctx context.Context, client *entity.Client, inlineZone *entity.Zone) error
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	GetByFirebaseUID(ctx context.Context, uid string) (*entity.Client, error)
	List(ctx context.Context, filter ClientFilter) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id int64) error
}
