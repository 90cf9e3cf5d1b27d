package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reparex/internal/domain/entity"
	"reparex/internal/domain/repository"
	"reparex/pkg/errors"
)

func int64Ptr(v int64) *int64 { return &v }

func TestTransitionAllowed(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{entity.StatusPendiente, entity.StatusAceptado, true},
		{entity.StatusPendiente, entity.StatusCancelado, true},
		{entity.StatusPendiente, entity.StatusCompletado, false},
		{entity.StatusAceptado, entity.StatusCompletado, true},
		{entity.StatusAceptado, entity.StatusCancelado, true},
		{entity.StatusAceptado, entity.StatusPendiente, false},
		{entity.StatusCompletado, entity.StatusPendiente, false},
		{entity.StatusCompletado, entity.StatusCancelado, false},
		{entity.StatusCancelado, entity.StatusAceptado, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, transitionAllowed(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCreateJobRequiresZone(t *testing.T) {
	uc := NewJobUseCase(&mockJobRepo{}, &mockWorkerRepo{}, &mockClientRepo{}, newMockStatusRepo())

	_, err := uc.CreateJob(context.Background(), CreateJobInput{
		ClientID:     1,
		ProfessionID: 2,
		Descripcion:  "leaking pipe",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}

func TestCreateJobStartsPendingAndUnassigned(t *testing.T) {
	var created *entity.Job
	jobRepo := &mockJobRepo{
		createFn: func(ctx context.Context, job *entity.Job, inlineZone *entity.Zone) error {
			job.ID = 7
			created = job
			return nil
		},
	}
	uc := NewJobUseCase(jobRepo, &mockWorkerRepo{}, &mockClientRepo{}, newMockStatusRepo())

	job, err := uc.CreateJob(context.Background(), CreateJobInput{
		ClientID:     1,
		ProfessionID: 2,
		ZoneID:       int64Ptr(3),
		Titulo:       "Plomeria",
		Descripcion:  "leaking pipe",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(7), job.ID)
	assert.Equal(t, int64(1), job.StatusID)
	assert.Nil(t, job.WorkerID)
}

func TestCreateJobResolvesInlineZone(t *testing.T) {
	var gotZone *entity.Zone
	jobRepo := &mockJobRepo{
		createFn: func(ctx context.Context, job *entity.Job, inlineZone *entity.Zone) error {
			gotZone = inlineZone
			return nil
		},
	}
	uc := NewJobUseCase(jobRepo, &mockWorkerRepo{}, &mockClientRepo{}, newMockStatusRepo())

	_, err := uc.CreateJob(context.Background(), CreateJobInput{
		ClientID:     1,
		ProfessionID: 2,
		Zone:         &ZoneInput{Calle: "San Martin 120", Ciudad: "Cordoba", Provincia: "Cordoba"},
		Descripcion:  "leaking pipe",
	})

	require.NoError(t, err)
	require.NotNil(t, gotZone)
	assert.Equal(t, "San Martin 120", gotZone.Calle)
}

func TestUpdateJobRejectsInvalidTransition(t *testing.T) {
	jobRepo := &mockJobRepo{
		getByIDFn: func(ctx context.Context, id int64) (*entity.Job, error) {
			return &entity.Job{ID: id, StatusID: 1}, nil
		},
	}
	uc := NewJobUseCase(jobRepo, &mockWorkerRepo{}, &mockClientRepo{}, newMockStatusRepo())

	// pendiente -> completado skips aceptado.
	_, err := uc.UpdateJob(context.Background(), 1, UpdateJobInput{StatusID: int64Ptr(3)})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_TRANSITION"))
}

func TestUpdateJobRejectsLeavingTerminalStatus(t *testing.T) {
	jobRepo := &mockJobRepo{
		getByIDFn: func(ctx context.Context, id int64) (*entity.Job, error) {
			return &entity.Job{ID: id, StatusID: 3}, nil
		},
	}
	uc := NewJobUseCase(jobRepo, &mockWorkerRepo{}, &mockClientRepo{}, newMockStatusRepo())

	_, err := uc.UpdateJob(context.Background(), 1, UpdateJobInput{StatusID: int64Ptr(1)})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_TRANSITION"))
}

func TestUpdateJobAllowsValidTransition(t *testing.T) {
	jobRepo := &mockJobRepo{
		getByIDFn: func(ctx context.Context, id int64) (*entity.Job, error) {
			return &entity.Job{ID: id, StatusID: 2}, nil
		},
		updateFn: func(ctx context.Context, job *entity.Job) error { return nil },
	}
	uc := NewJobUseCase(jobRepo, &mockWorkerRepo{}, &mockClientRepo{}, newMockStatusRepo())

	job, err := uc.UpdateJob(context.Background(), 1, UpdateJobInput{StatusID: int64Ptr(3)})

	require.NoError(t, err)
	assert.Equal(t, int64(3), job.StatusID)
}

func TestUpdateJobAssignmentRequiresProfession(t *testing.T) {
	jobRepo := &mockJobRepo{
		getByIDFn: func(ctx context.Context, id int64) (*entity.Job, error) {
			return &entity.Job{ID: id, ProfessionID: 5, StatusID: 1}, nil
		},
	}
	workerRepo := &mockWorkerRepo{
		holdsProfessionFn: func(ctx context.Context, workerID, professionID int64) (bool, error) {
			return false, nil
		},
	}
	uc := NewJobUseCase(jobRepo, workerRepo, &mockClientRepo{}, newMockStatusRepo())

	_, err := uc.UpdateJob(context.Background(), 1, UpdateJobInput{WorkerID: int64Ptr(9)})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}

func TestUpdateJobAssignmentAcceptsPendingJob(t *testing.T) {
	jobRepo := &mockJobRepo{
		getByIDFn: func(ctx context.Context, id int64) (*entity.Job, error) {
			return &entity.Job{ID: id, ProfessionID: 5, StatusID: 1}, nil
		},
		updateFn: func(ctx context.Context, job *entity.Job) error { return nil },
	}
	workerRepo := &mockWorkerRepo{
		holdsProfessionFn: func(ctx context.Context, workerID, professionID int64) (bool, error) {
			return true, nil
		},
	}
	uc := NewJobUseCase(jobRepo, workerRepo, &mockClientRepo{}, newMockStatusRepo())

	job, err := uc.UpdateJob(context.Background(), 1, UpdateJobInput{WorkerID: int64Ptr(9)})

	require.NoError(t, err)
	require.NotNil(t, job.WorkerID)
	assert.Equal(t, int64(9), *job.WorkerID)
	assert.Equal(t, int64(2), job.StatusID)
}

func TestUpdateJobAssignmentRejectedOnFinishedJob(t *testing.T) {
	workerRepo := &mockWorkerRepo{
		holdsProfessionFn: func(ctx context.Context, workerID, professionID int64) (bool, error) {
			return true, nil
		},
	}

	// completado (3) and cancelado (4) are both terminal.
	for _, statusID := range []int64{3, 4} {
		jobRepo := &mockJobRepo{
			getByIDFn: func(ctx context.Context, id int64) (*entity.Job, error) {
				return &entity.Job{ID: id, ProfessionID: 5, StatusID: statusID}, nil
			},
		}
		uc := NewJobUseCase(jobRepo, workerRepo, &mockClientRepo{}, newMockStatusRepo())

		_, err := uc.UpdateJob(context.Background(), 1, UpdateJobInput{WorkerID: int64Ptr(9)})

		require.Error(t, err, "status %d", statusID)
		assert.True(t, errors.Is(err, "CONFLICT"), "status %d", statusID)
	}
}

func TestListJobsResolvesFirebaseUID(t *testing.T) {
	var gotFilter repository.JobFilter
	jobRepo := &mockJobRepo{
		listFn: func(ctx context.Context, filter repository.JobFilter) ([]*entity.Job, error) {
			gotFilter = filter
			return []*entity.Job{{ID: 1}}, nil
		},
	}
	clientRepo := &mockClientRepo{
		getByFirebaseUIDFn: func(ctx context.Context, uid string) (*entity.Client, error) {
			return &entity.Client{ID: 42}, nil
		},
	}
	uc := NewJobUseCase(jobRepo, &mockWorkerRepo{}, clientRepo, newMockStatusRepo())

	jobs, err := uc.ListJobs(context.Background(), ListJobsInput{FirebaseUID: "abc"})

	require.NoError(t, err)
	assert.Len(t, jobs, 1)
	require.NotNil(t, gotFilter.ClientID)
	assert.Equal(t, int64(42), *gotFilter.ClientID)
}

func TestListJobsUnknownFirebaseUIDReturnsEmpty(t *testing.T) {
	clientRepo := &mockClientRepo{
		getByFirebaseUIDFn: func(ctx context.Context, uid string) (*entity.Client, error) {
			return nil, errors.NotFound("Client", nil)
		},
	}
	uc := NewJobUseCase(&mockJobRepo{}, &mockWorkerRepo{}, clientRepo, newMockStatusRepo())

	jobs, err := uc.ListJobs(context.Background(), ListJobsInput{FirebaseUID: "missing"})

	require.NoError(t, err)
	assert.Empty(t, jobs)
}
