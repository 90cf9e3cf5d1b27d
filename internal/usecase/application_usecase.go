package usecase

import (
	"context"

	"reparex/internal/domain/entity"
	"reparex/internal/domain/repository"
)

type ApplicationUseCase struct {
	applicationRepo repository.ApplicationRepository
}

func NewApplicationUseCase(applicationRepo repository.ApplicationRepository) *ApplicationUseCase {
	return &ApplicationUseCase{
		applicationRepo: applicationRepo,
	}
}

type CreateApplicationInput struct {
	JobID    int64
	WorkerID int64
}

// CreateApplication records a worker's interest in a job. The timestamp is
// set by the store, never by the caller.
func (uc *ApplicationUseCase) CreateApplication(ctx context.Context, input CreateApplicationInput) (*entity.Application, error) {
	application := &entity.Application{
		JobID:    input.JobID,
		WorkerID: input.WorkerID,
	}

	if err := uc.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	return application, nil
}

func (uc *ApplicationUseCase) GetApplicationByID(ctx context.Context, id int64) (*entity.Application, error) {
	return uc.applicationRepo.GetByID(ctx, id)
}

func (uc *ApplicationUseCase) ListApplications(ctx context.Context, jobID, workerID *int64) ([]*entity.Application, error) {
	return uc.applicationRepo.List(ctx, repository.ApplicationFilter{
		JobID:    jobID,
		WorkerID: workerID,
	})
}

func (uc *ApplicationUseCase) DeleteApplication(ctx context.Context, id int64) error {
	return uc.applicationRepo.Delete(ctx, id)
}
