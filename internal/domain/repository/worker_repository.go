package repository

import (
	"context"

	"reparex/internal/domain/entity"
)

type WorkerFilter struct {
	ClientID *int64
}

type WorkerRepository interface {
	// Create inserts the worker, resolving or creating inlineZone first in
	// the same transaction when it is non-nil.
	Create(ctx context.Context, worker *entity.Worker, inlineZone *entity.Zone) error
	GetByID(ctx context.Context, id int64) (*entity.Worker, error)
	List(ctx context.Context, filter WorkerFilter) ([]*entity.Worker, error)
	Update(ctx context.Context, worker *entity.Worker) error
	Delete(ctx context.Context, id int64) error
	// HoldsProfession reports whether the worker has been granted the
	// profession through the join table.
	HoldsProfession(ctx context.Context, workerID, professionID int64) (bool, error)
}

type WorkerProfessionFilter struct {
	WorkerID *int64
}

type WorkerProfessionRepository interface {
	Create(ctx context.Context, grant *entity.WorkerProfession) error
	GetByID(ctx context.Context, id int64) (*entity.WorkerProfession, error)
	List(ctx context.Context, filter WorkerProfessionFilter) ([]*entity.WorkerProfession, error)
	Update(ctx context.Context, grant *entity.WorkerProfession) error
	Delete(ctx context.Context, id int64) error
}
