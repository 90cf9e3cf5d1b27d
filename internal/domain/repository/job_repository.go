package repository

import (
	"context"

	"reparex/internal/domain/entity"
)

type JobFilter struct {
	ClientID      *int64
	ProfessionIDs []int64
}

type JobRepository interface {
	// Create inserts the job, resolving or creating inlineZone first in the
	// same transaction when it is non-nil.
	Create(ctx context.Context, job *entity.Job, inlineZone *entity.Zone) error
	GetByID(ctx context.Context, id int64) (*entity.Job, error)
	// List returns jobs newest-first.
	List(ctx context.Context, filter JobFilter) ([]*entity.Job, error)
	Update(ctx context.Context, job *entity.Job) error
	Delete(ctx context.Context, id int64) error
}
