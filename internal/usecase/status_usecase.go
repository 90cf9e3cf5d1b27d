package usecase

import (
	"context"

	"reparex/internal/domain/entity"
	"reparex/internal/domain/repository"
)

type StatusUseCase struct {
	statusRepo repository.StatusRepository
}

func NewStatusUseCase(statusRepo repository.StatusRepository) *StatusUseCase {
	return &StatusUseCase{
		statusRepo: statusRepo,
	}
}

func (uc *StatusUseCase) CreateStatus(ctx context.Context, descripcion string) (*entity.Status, error) {
	status := &entity.Status{
		Descripcion: descripcion,
	}

	if err := uc.statusRepo.Create(ctx, status); err != nil {
		return nil, err
	}

	return status, nil
}

func (uc *StatusUseCase) GetStatusByID(ctx context.Context, id int64) (*entity.Status, error) {
	return uc.statusRepo.GetByID(ctx, id)
}

func (uc *StatusUseCase) ListStatuses(ctx context.Context) ([]*entity.Status, error) {
	return uc.statusRepo.List(ctx)
}

func (uc *StatusUseCase) UpdateStatus(ctx context.Context, id int64, descripcion *string) (*entity.Status, error) {
	status, err := uc.statusRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if descripcion != nil {
		status.Descripcion = *descripcion
	}

	if err := uc.statusRepo.Update(ctx, status); err != nil {
		return nil, err
	}

	return status, nil
}

func (uc *StatusUseCase) DeleteStatus(ctx context.Context, id int64) error {
	return uc.statusRepo.Delete(ctx, id)
}
