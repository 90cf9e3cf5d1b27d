package usecase

import (
	"context"

	"reparex/internal/domain/entity"
	"reparex/internal/domain/repository"
)

type ClientUseCase struct {
	clientRepo repository.ClientRepository
}

func NewClientUseCase(clientRepo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{
		clientRepo: clientRepo,
	}
}

type CreateClientInput struct {
	ZoneID      *int64
	Zone        *ZoneInput
	Nombre      string
	Apellido    string
	Email       string
	Telefono    string
	DNI         string
	FirebaseUID *string
}

func (uc *ClientUseCase) CreateClient(ctx context.Context, input CreateClientInput) (*entity.Client, error) {
	client := &entity.Client{
		ZoneID:      input.ZoneID,
		Nombre:      input.Nombre,
		Apellido:    input.Apellido,
		Email:       input.Email,
		Telefono:    input.Telefono,
		DNI:         input.DNI,
		FirebaseUID: input.FirebaseUID,
	}

	var inlineZone *entity.Zone
	if input.ZoneID == nil && input.Zone != nil {
		inlineZone = &entity.Zone{
			Calle:     input.Zone.Calle,
			Ciudad:    input.Zone.Ciudad,
			Provincia: input.Zone.Provincia,
		}
	}

	if err := uc.clientRepo.Create(ctx, client, inlineZone); err != nil {
		return nil, err
	}

	return client, nil
}

func (uc *ClientUseCase) GetClientByID(ctx context.Context, id int64) (*entity.Client, error) {
	return uc.clientRepo.GetByID(ctx, id)
}

func (uc *ClientUseCase) ListClients(ctx context.Context, firebaseUID string) ([]*entity.Client, error) {
	filter := repository.ClientFilter{}
	if firebaseUID != "" {
		filter.FirebaseUID = &firebaseUID
	}

	return uc.clientRepo.List(ctx, filter)
}

type UpdateClientInput struct {
	ZoneID   *int64
	Nombre   *string
	Apellido *string
	Email    *string
	Telefono *string
	DNI      *string
}

func (uc *ClientUseCase) UpdateClient(ctx context.Context, id int64, input UpdateClientInput) (*entity.Client, error) {
	client, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ZoneID != nil {
		client.ZoneID = input.ZoneID
	}
	if input.Nombre != nil {
		client.Nombre = *input.Nombre
	}
	if input.Apellido != nil {
		client.Apellido = *input.Apellido
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Telefono != nil {
		client.Telefono = *input.Telefono
	}
	if input.DNI != nil {
		client.DNI = *input.DNI
	}

	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

func (uc *ClientUseCase) DeleteClient(ctx context.Context, id int64) error {
	return uc.clientRepo.Delete(ctx, id)
}
