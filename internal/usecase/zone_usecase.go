package usecase

import (
	"context"

	"reparex/internal/domain/entity"
	"reparex/internal/domain/repository"
)

type ZoneUseCase struct {
	zoneRepo repository.ZoneRepository
}

func NewZoneUseCase(zoneRepo repository.ZoneRepository) *ZoneUseCase {
	return &ZoneUseCase{
		zoneRepo: zoneRepo,
	}
}

type ZoneInput struct {
	Calle     string
	Ciudad    string
	Provincia string
}

// CreateZone resolves an existing zone with the same address or creates a
// new one; it never duplicates the tuple.
func (uc *ZoneUseCase) CreateZone(ctx context.Context, input ZoneInput) (*entity.Zone, error) {
	zone := &entity.Zone{
		Calle:     input.Calle,
		Ciudad:    input.Ciudad,
		Provincia: input.Provincia,
	}

	if err := uc.zoneRepo.Create(ctx, zone); err != nil {
		return nil, err
	}

	return zone, nil
}

func (uc *ZoneUseCase) GetZoneByID(ctx context.Context, id int64) (*entity.Zone, error) {
	return uc.zoneRepo.GetByID(ctx, id)
}

func (uc *ZoneUseCase) ListZones(ctx context.Context) ([]*entity.Zone, error) {
	return uc.zoneRepo.List(ctx)
}

type UpdateZoneInput struct {
	Calle     *string
	Ciudad    *string
	Provincia *string
}

func (uc *ZoneUseCase) UpdateZone(ctx context.Context, id int64, input UpdateZoneInput) (*entity.Zone, error) {
	zone, err := uc.zoneRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Calle != nil {
		zone.Calle = *input.Calle
	}
	if input.Ciudad != nil {
		zone.Ciudad = *input.Ciudad
	}
	if input.Provincia != nil {
		zone.Provincia = *input.Provincia
	}

	if err := uc.zoneRepo.Update(ctx, zone); err != nil {
		return nil, err
	}

	return zone, nil
}

func (uc *ZoneUseCase) DeleteZone(ctx context.Context, id int64) error {
	return uc.zoneRepo.Delete(ctx, id)
}
