package usecase

import (
	"context"

	"reparex/internal/domain/entity"
	"reparex/internal/domain/repository"
)

type ProfessionUseCase struct {
	professionRepo repository.ProfessionRepository
}

func NewProfessionUseCase(professionRepo repository.ProfessionRepository) *ProfessionUseCase {
	return &ProfessionUseCase{
		professionRepo: professionRepo,
	}
}

func (uc *ProfessionUseCase) CreateProfession(ctx context.Context, nombre string) (*entity.Profession, error) {
	profession := &entity.Profession{
		Nombre: nombre,
	}

	if err := uc.professionRepo.Create(ctx, profession); err != nil {
		return nil, err
	}

	return profession, nil
}

func (uc *ProfessionUseCase) GetProfessionByID(ctx context.Context, id int64) (*entity.Profession, error) {
	return uc.professionRepo.GetByID(ctx, id)
}

func (uc *ProfessionUseCase) ListProfessions(ctx context.Context) ([]*entity.Profession, error) {
	return uc.professionRepo.List(ctx)
}

func (uc *ProfessionUseCase) UpdateProfession(ctx context.Context, id int64, nombre *string) (*entity.Profession, error) {
	profession, err := uc.professionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if nombre != nil {
		profession.Nombre = *nombre
	}

	if err := uc.professionRepo.Update(ctx, profession); err != nil {
		return nil, err
	}

	return profession, nil
}

func (uc *ProfessionUseCase) DeleteProfession(ctx context.Context, id int64) error {
	return uc.professionRepo.Delete(ctx, id)
}
