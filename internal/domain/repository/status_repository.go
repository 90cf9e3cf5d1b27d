package repository

import (
	"context"

	"reparex/internal/domain/entity"
)

type StatusRepository interface {
	Create(ctx context.Context, status *entity.Status) error
	GetByID(ctx context.Context, id int64) (*entity.Status, error)
	GetByDescription(ctx context.Context, descripcion string) (*entity.Status, error)
	List(ctx context.Context) ([]*entity.Status, error)
	Update(ctx context.Context, status *entity.Status) error
	Delete(ctx context.Context, id int64) error
}
