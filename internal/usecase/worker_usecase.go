package usecase

import (
	"context"

	"reparex/internal/domain/entity"
	"reparex/internal/domain/repository"
)

type WorkerUseCase struct {
	workerRepo repository.WorkerRepository
}

func NewWorkerUseCase(workerRepo repository.WorkerRepository) *WorkerUseCase {
	return &WorkerUseCase{
		workerRepo: workerRepo,
	}
}

type CreateWorkerInput struct {
	ClientID int64
	ZoneID   *int64
	Zone     *ZoneInput
	Telefono string
	Email    string
}

func (uc *WorkerUseCase) CreateWorker(ctx context.Context, input CreateWorkerInput) (*entity.Worker, error) {
	worker := &entity.Worker{
		ClientID: input.ClientID,
		ZoneID:   input.ZoneID,
		Telefono: input.Telefono,
		Email:    input.Email,
	}

	var inlineZone *entity.Zone
	if input.ZoneID == nil && input.Zone != nil {
		inlineZone = &entity.Zone{
			Calle:     input.Zone.Calle,
			Ciudad:    input.Zone.Ciudad,
			Provincia: input.Zone.Provincia,
		}
	}

	if err := uc.workerRepo.Create(ctx, worker, inlineZone); err != nil {
		return nil, err
	}

	return worker, nil
}

func (uc *WorkerUseCase) GetWorkerByID(ctx context.Context, id int64) (*entity.Worker, error) {
	return uc.workerRepo.GetByID(ctx, id)
}

func (uc *WorkerUseCase) ListWorkers(ctx context.Context, clientID *int64) ([]*entity.Worker, error) {
	return uc.workerRepo.List(ctx, repository.WorkerFilter{ClientID: clientID})
}

type UpdateWorkerInput struct {
	ZoneID   *int64
	Telefono *string
	Email    *string
}

func (uc *WorkerUseCase) UpdateWorker(ctx context.Context, id int64, input UpdateWorkerInput) (*entity.Worker, error) {
	worker, err := uc.workerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ZoneID != nil {
		worker.ZoneID = input.ZoneID
	}
	if input.Telefono != nil {
		worker.Telefono = *input.Telefono
	}
	if input.Email != nil {
		worker.Email = *input.Email
	}

	if err := uc.workerRepo.Update(ctx, worker); err != nil {
		return nil, err
	}

	return worker, nil
}

func (uc *WorkerUseCase) DeleteWorker(ctx context.Context, id int64) error {
	return uc.workerRepo.Delete(ctx, id)
}
