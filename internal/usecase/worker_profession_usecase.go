package usecase

import (
	"context"

	"reparex/internal/domain/entity"
	"reparex/internal/domain/repository"
)

type WorkerProfessionUseCase struct {
	grantRepo repository.WorkerProfessionRepository
}

func NewWorkerProfessionUseCase(grantRepo repository.WorkerProfessionRepository) *WorkerProfessionUseCase {
	return &WorkerProfessionUseCase{
		grantRepo: grantRepo,
	}
}

type CreateWorkerProfessionInput struct {
	WorkerID     int64
	ProfessionID int64
	Matricula    *string
}

func (uc *WorkerProfessionUseCase) CreateGrant(ctx context.Context, input CreateWorkerProfessionInput) (*entity.WorkerProfession, error) {
	grant := &entity.WorkerProfession{
		WorkerID:     input.WorkerID,
		ProfessionID: input.ProfessionID,
		Matricula:    input.Matricula,
	}

	if err := uc.grantRepo.Create(ctx, grant); err != nil {
		return nil, err
	}

	return grant, nil
}

func (uc *WorkerProfessionUseCase) GetGrantByID(ctx context.Context, id int64) (*entity.WorkerProfession, error) {
	return uc.grantRepo.GetByID(ctx, id)
}

func (uc *WorkerProfessionUseCase) ListGrants(ctx context.Context, workerID *int64) ([]*entity.WorkerProfession, error) {
	return uc.grantRepo.List(ctx, repository.WorkerProfessionFilter{WorkerID: workerID})
}

type UpdateWorkerProfessionInput struct {
	Matricula *string
}

func (uc *WorkerProfessionUseCase) UpdateGrant(ctx context.Context, id int64, input UpdateWorkerProfessionInput) (*entity.WorkerProfession, error) {
	grant, err := uc.grantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Matricula != nil {
		grant.Matricula = input.Matricula
	}

	if err := uc.grantRepo.Update(ctx, grant); err != nil {
		return nil, err
	}

	return grant, nil
}

func (uc *WorkerProfessionUseCase) DeleteGrant(ctx context.Context, id int64) error {
	return uc.grantRepo.Delete(ctx, id)
}
