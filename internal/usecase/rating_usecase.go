package usecase

import (
	"context"

	"reparex/internal/domain/entity"
	"reparex/internal/domain/repository"
	"reparex/pkg/errors"
)

// combinedRatingsLimit caps each side of the merged read-only view.
const combinedRatingsLimit = 20

type RatingUseCase struct {
	ratingRepo repository.RatingRepository
	jobRepo    repository.JobRepository
	statusRepo repository.StatusRepository
}

func NewRatingUseCase(
	ratingRepo repository.RatingRepository,
	jobRepo repository.JobRepository,
	statusRepo repository.StatusRepository,
) *RatingUseCase {
	return &RatingUseCase{
		ratingRepo: ratingRepo,
		jobRepo:    jobRepo,
		statusRepo: statusRepo,
	}
}

type CreateRatingInput struct {
	ClientID   int64
	WorkerID   int64
	JobID      int64
	Puntuacion float64
	Comentario string
}

// completedJob verifies the rated job exists and has reached its terminal
// completed state; ratings are only accepted after that.
func (uc *RatingUseCase) completedJob(ctx context.Context, jobID int64) error {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}

	status, err := uc.statusRepo.GetByID(ctx, job.StatusID)
	if err != nil {
		return err
	}

	if status.Descripcion != entity.StatusCompletado {
		return errors.BadRequest("Job is not completed", nil)
	}

	return nil
}

func validateScore(puntuacion float64) error {
	if puntuacion < 1.0 || puntuacion > 5.0 {
		return errors.BadRequest("Score must be between 1.0 and 5.0", nil)
	}
	return nil
}

func (uc *RatingUseCase) CreateWorkerRating(ctx context.Context, input CreateRatingInput) (*entity.WorkerRating, error) {
	if err := validateScore(input.Puntuacion); err != nil {
		return nil, err
	}
	if err := uc.completedJob(ctx, input.JobID); err != nil {
		return nil, err
	}

	rating := &entity.WorkerRating{
		ClientID:   input.ClientID,
		WorkerID:   input.WorkerID,
		JobID:      input.JobID,
		Puntuacion: input.Puntuacion,
		Comentario: input.Comentario,
	}

	if err := uc.ratingRepo.CreateWorkerRating(ctx, rating); err != nil {
		return nil, err
	}

	return rating, nil
}

func (uc *RatingUseCase) CreateClientRating(ctx context.Context, input CreateRatingInput) (*entity.ClientRating, error) {
	if err := validateScore(input.Puntuacion); err != nil {
		return nil, err
	}
	if err := uc.completedJob(ctx, input.JobID); err != nil {
		return nil, err
	}

	rating := &entity.ClientRating{
		ClientID:   input.ClientID,
		WorkerID:   input.WorkerID,
		JobID:      input.JobID,
		Puntuacion: input.Puntuacion,
		Comentario: input.Comentario,
	}

	if err := uc.ratingRepo.CreateClientRating(ctx, rating); err != nil {
		return nil, err
	}

	return rating, nil
}

func (uc *RatingUseCase) GetWorkerRatingByID(ctx context.Context, id int64) (*entity.WorkerRating, error) {
	return uc.ratingRepo.GetWorkerRatingByID(ctx, id)
}

func (uc *RatingUseCase) GetClientRatingByID(ctx context.Context, id int64) (*entity.ClientRating, error) {
	return uc.ratingRepo.GetClientRatingByID(ctx, id)
}

func (uc *RatingUseCase) ListWorkerRatings(ctx context.Context) ([]*entity.WorkerRating, error) {
	return uc.ratingRepo.ListWorkerRatings(ctx, 0)
}

func (uc *RatingUseCase) ListClientRatings(ctx context.Context) ([]*entity.ClientRating, error) {
	return uc.ratingRepo.ListClientRatings(ctx, 0)
}

// CombinedRatings is the read-only merged feed: the newest ratings of each
// kind, newest-first.
type CombinedRatings struct {
	WorkerRatings []*entity.WorkerRating `json:"calificaciones_a_trabajadores"`
	ClientRatings []*entity.ClientRating `json:"calificaciones_a_contratadores"`
}

func (uc *RatingUseCase) ListCombinedRatings(ctx context.Context) (*CombinedRatings, error) {
	workerRatings, err := uc.ratingRepo.ListWorkerRatings(ctx, combinedRatingsLimit)
	if err != nil {
		return nil, err
	}

	clientRatings, err := uc.ratingRepo.ListClientRatings(ctx, combinedRatingsLimit)
	if err != nil {
		return nil, err
	}

	return &CombinedRatings{
		WorkerRatings: workerRatings,
		ClientRatings: clientRatings,
	}, nil
}
