package repository

import (
	"context"

	"reparex/internal/domain/entity"
)

type RatingRepository interface {
	// Worker ratings (client rates worker).
	CreateWorkerRating(ctx context.Context, rating *entity.WorkerRating) error
	GetWorkerRatingByID(ctx context.Context, id int64) (*entity.WorkerRating, error)
	ListWorkerRatings(ctx context.Context, limit int) ([]*entity.WorkerRating, error)

	// Client ratings (worker rates client).
	CreateClientRating(ctx context.Context, rating *entity.ClientRating) error
	GetClientRatingByID(ctx context.Context, id int64) (*entity.ClientRating, error)
	ListClientRatings(ctx context.Context, limit int) ([]*entity.ClientRating, error)
}
