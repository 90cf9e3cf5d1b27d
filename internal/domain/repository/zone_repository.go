package repository

import (
	"context"

	"reparex/internal/domain/entity"
)

type ZoneRepository interface {
	// Create resolves the (calle, ciudad, provincia) tuple to an existing
	// row or inserts a new one, filling zone.ID either way.
	Create(ctx context.Context, zone *entity.Zone) error
	GetByID(ctx context.Context, id int64) (*entity.Zone, error)
	List(ctx context.Context) ([]*entity.Zone, error)
	Update(ctx context.Context, zone *entity.Zone) error
	Delete(ctx context.Context, id int64) error
}
