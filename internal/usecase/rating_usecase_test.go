package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reparex/internal/domain/entity"
	"reparex/pkg/errors"
)

func completedJobRepo() *mockJobRepo {
	return &mockJobRepo{
		getByIDFn: func(ctx context.Context, id int64) (*entity.Job, error) {
			return &entity.Job{ID: id, StatusID: 3}, nil
		},
	}
}

func TestCreateWorkerRatingScoreBounds(t *testing.T) {
	ratingRepo := &mockRatingRepo{
		createWorkerRatingFn: func(ctx context.Context, rating *entity.WorkerRating) error {
			rating.ID = 1
			return nil
		},
	}
	uc := NewRatingUseCase(ratingRepo, completedJobRepo(), newMockStatusRepo())

	cases := []struct {
		puntuacion float64
		ok         bool
	}{
		{0.5, false},
		{1.0, true},
		{3.5, true},
		{5.0, true},
		{5.5, false},
	}

	for _, tc := range cases {
		_, err := uc.CreateWorkerRating(context.Background(), CreateRatingInput{
			ClientID:   1,
			WorkerID:   2,
			JobID:      3,
			Puntuacion: tc.puntuacion,
		})
		if tc.ok {
			assert.NoError(t, err, "puntuacion %v", tc.puntuacion)
		} else {
			assert.True(t, errors.Is(err, "VALIDATION_ERROR"), "puntuacion %v", tc.puntuacion)
		}
	}
}

func TestCreateWorkerRatingRequiresCompletedJob(t *testing.T) {
	jobRepo := &mockJobRepo{
		getByIDFn: func(ctx context.Context, id int64) (*entity.Job, error) {
			return &entity.Job{ID: id, StatusID: 2}, nil
		},
	}
	uc := NewRatingUseCase(&mockRatingRepo{}, jobRepo, newMockStatusRepo())

	_, err := uc.CreateWorkerRating(context.Background(), CreateRatingInput{
		ClientID:   1,
		WorkerID:   2,
		JobID:      3,
		Puntuacion: 4.0,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}

func TestCreateWorkerRatingUnknownJob(t *testing.T) {
	jobRepo := &mockJobRepo{
		getByIDFn: func(ctx context.Context, id int64) (*entity.Job, error) {
			return nil, errors.NotFound("Job", nil)
		},
	}
	uc := NewRatingUseCase(&mockRatingRepo{}, jobRepo, newMockStatusRepo())

	_, err := uc.CreateWorkerRating(context.Background(), CreateRatingInput{
		ClientID:   1,
		WorkerID:   2,
		JobID:      99,
		Puntuacion: 4.0,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestCreateClientRating(t *testing.T) {
	var created *entity.ClientRating
	ratingRepo := &mockRatingRepo{
		createClientRatingFn: func(ctx context.Context, rating *entity.ClientRating) error {
			rating.ID = 11
			created = rating
			return nil
		},
	}
	uc := NewRatingUseCase(ratingRepo, completedJobRepo(), newMockStatusRepo())

	rating, err := uc.CreateClientRating(context.Background(), CreateRatingInput{
		ClientID:   1,
		WorkerID:   2,
		JobID:      3,
		Puntuacion: 4.5,
		Comentario: "pago puntual",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(11), rating.ID)
	assert.Equal(t, 4.5, rating.Puntuacion)
}

func TestListCombinedRatingsCapsBothSides(t *testing.T) {
	var workerLimit, clientLimit int
	ratingRepo := &mockRatingRepo{
		listWorkerRatingsFn: func(ctx context.Context, limit int) ([]*entity.WorkerRating, error) {
			workerLimit = limit
			return []*entity.WorkerRating{{ID: 1}}, nil
		},
		listClientRatingsFn: func(ctx context.Context, limit int) ([]*entity.ClientRating, error) {
			clientLimit = limit
			return []*entity.ClientRating{{ID: 2}}, nil
		},
	}
	uc := NewRatingUseCase(ratingRepo, completedJobRepo(), newMockStatusRepo())

	combined, err := uc.ListCombinedRatings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, combinedRatingsLimit, workerLimit)
	assert.Equal(t, combinedRatingsLimit, clientLimit)
	assert.Len(t, combined.WorkerRatings, 1)
	assert.Len(t, combined.ClientRatings, 1)
}
