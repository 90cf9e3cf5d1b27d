package repository

import (
	"context"

	"reparex/internal/domain/entity"
)

type ApplicationFilter struct {
	JobID    *int64
	WorkerID *int64
}

type ApplicationRepository interface {
	Create(ctx context.Context, application *entity.Application) error
	GetByID(ctx context.Context, id int64) (*entity.Application, error)
	List(ctx context.Context, filter ApplicationFilter) ([]*entity.Application, error)
	Delete(ctx context.Context, id int64) error
}
