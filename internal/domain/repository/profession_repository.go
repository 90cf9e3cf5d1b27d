package repository

import (
	"context"

	"reparex/internal/domain/entity"
)

type ProfessionRepository interface {
	Create(ctx context.Context, profession *entity.Profession) error
	GetByID(ctx context.Context, id int64) (*entity.Profession, error)
	List(ctx context.Context) ([]*entity.Profession, error)
	Update(ctx context.Context, profession *entity.Profession) error
	Delete(ctx context.Context, id int64) error
}
