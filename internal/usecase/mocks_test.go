package usecase

import (
	"context"

	"reparex/internal/domain/entity"
	"reparex/internal/domain/repository"
	"reparex/pkg/errors"
)

// Hand-rolled function-field mocks; tests fill in only what they exercise.

type mockClientRepo struct {
	createFn           func(ctx context.Context, client *entity.Client, inlineZone *entity.Zone) error
	getByIDFn          func(ctx context.Context, id int64) (*entity.Client, error)
	getByFirebaseUIDFn func(ctx context.Context, uid string) (*entity.Client, error)
	listFn             func(ctx context.Context, filter repository.ClientFilter) ([]*entity.Client, error)
	updateFn           func(ctx context.Context, client *entity.Client) error
	deleteFn           func(ctx context.Context, id int64) error
}

func (m *mockClientRepo) Create(ctx context.Context, client *entity.Client, inlineZone *entity.Zone) error {
	return m.createFn(ctx, client, inlineZone)
}

func (m *mockClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockClientRepo) GetByFirebaseUID(ctx context.Context, uid string) (*entity.Client, error) {
	return m.getByFirebaseUIDFn(ctx, uid)
}

func (m *mockClientRepo) List(ctx context.Context, filter repository.ClientFilter) ([]*entity.Client, error) {
	return m.listFn(ctx, filter)
}

func (m *mockClientRepo) Update(ctx context.Context, client *entity.Client) error {
	return m.updateFn(ctx, client)
}

func (m *mockClientRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockWorkerRepo struct {
	createFn          func(ctx context.Context, worker *entity.Worker, inlineZone *entity.Zone) error
	getByIDFn         func(ctx context.Context, id int64) (*entity.Worker, error)
	listFn            func(ctx context.Context, filter repository.WorkerFilter) ([]*entity.Worker, error)
	updateFn          func(ctx context.Context, worker *entity.Worker) error
	deleteFn          func(ctx context.Context, id int64) error
	holdsProfessionFn func(ctx context.Context, workerID, professionID int64) (bool, error)
}

func (m *mockWorkerRepo) Create(ctx context.Context, worker *entity.Worker, inlineZone *entity.Zone) error {
	return m.createFn(ctx, worker, inlineZone)
}

func (m *mockWorkerRepo) GetByID(ctx context.Context, id int64) (*entity.Worker, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockWorkerRepo) List(ctx context.Context, filter repository.WorkerFilter) ([]*entity.Worker, error) {
	return m.listFn(ctx, filter)
}

func (m *mockWorkerRepo) Update(ctx context.Context, worker *entity.Worker) error {
	return m.updateFn(ctx, worker)
}

func (m *mockWorkerRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockWorkerRepo) HoldsProfession(ctx context.Context, workerID, professionID int64) (bool, error) {
	return m.holdsProfessionFn(ctx, workerID, professionID)
}

type mockJobRepo struct {
	createFn  func(ctx context.Context, job *entity.Job, inlineZone *entity.Zone) error
	getByIDFn func(ctx context.Context, id int64) (*entity.Job, error)
	listFn    func(ctx context.Context, filter repository.JobFilter) ([]*entity.Job, error)
	updateFn  func(ctx context.Context, job *entity.Job) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockJobRepo) Create(ctx context.Context, job *entity.Job, inlineZone *entity.Zone) error {
	return m.createFn(ctx, job, inlineZone)
}

func (m *mockJobRepo) GetByID(ctx context.Context, id int64) (*entity.Job, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockJobRepo) List(ctx context.Context, filter repository.JobFilter) ([]*entity.Job, error) {
	return m.listFn(ctx, filter)
}

func (m *mockJobRepo) Update(ctx context.Context, job *entity.Job) error {
	return m.updateFn(ctx, job)
}

func (m *mockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// mockStatusRepo serves the four seeded lifecycle statuses by default.
type mockStatusRepo struct {
	statuses []*entity.Status
}

func newMockStatusRepo() *mockStatusRepo {
	return &mockStatusRepo{
		statuses: []*entity.Status{
			{ID: 1, Descripcion: entity.StatusPendiente},
			{ID: 2, Descripcion: entity.StatusAceptado},
			{ID: 3, Descripcion: entity.StatusCompletado},
			{ID: 4, Descripcion: entity.StatusCancelado},
		},
	}
}

func (m *mockStatusRepo) Create(ctx context.Context, status *entity.Status) error {
	status.ID = int64(len(m.statuses) + 1)
	m.statuses = append(m.statuses, status)
	return nil
}

func (m *mockStatusRepo) GetByID(ctx context.Context, id int64) (*entity.Status, error) {
	for _, status := range m.statuses {
		if status.ID == id {
			return status, nil
		}
	}
	return nil, errors.NotFound("Status", nil)
}

func (m *mockStatusRepo) GetByDescription(ctx context.Context, descripcion string) (*entity.Status, error) {
	for _, status := range m.statuses {
		if status.Descripcion == descripcion {
			return status, nil
		}
	}
	return nil, errors.NotFound("Status", nil)
}

func (m *mockStatusRepo) List(ctx context.Context) ([]*entity.Status, error) {
	return m.statuses, nil
}

func (m *mockStatusRepo) Update(ctx context.Context, status *entity.Status) error {
	return nil
}

func (m *mockStatusRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

type mockRatingRepo struct {
	createWorkerRatingFn  func(ctx context.Context, rating *entity.WorkerRating) error
	getWorkerRatingByIDFn func(ctx context.Context, id int64) (*entity.WorkerRating, error)
	listWorkerRatingsFn   func(ctx context.Context, limit int) ([]*entity.WorkerRating, error)
	createClientRatingFn  func(ctx context.Context, rating *entity.ClientRating) error
	getClientRatingByIDFn func(ctx context.Context, id int64) (*entity.ClientRating, error)
	listClientRatingsFn   func(ctx context.Context, limit int) ([]*entity.ClientRating, error)
}

func (m *mockRatingRepo) CreateWorkerRating(ctx context.Context, rating *entity.WorkerRating) error {
	return m.createWorkerRatingFn(ctx, rating)
}

func (m *mockRatingRepo) GetWorkerRatingByID(ctx context.Context, id int64) (*entity.WorkerRating, error) {
	return m.getWorkerRatingByIDFn(ctx, id)
}

func (m *mockRatingRepo) ListWorkerRatings(ctx context.Context, limit int) ([]*entity.WorkerRating, error) {
	return m.listWorkerRatingsFn(ctx, limit)
}

func (m *mockRatingRepo) CreateClientRating(ctx context.Context, rating *entity.ClientRating) error {
	return m.createClientRatingFn(ctx, rating)
}

func (m *mockRatingRepo) GetClientRatingByID(ctx context.Context, id int64) (*entity.ClientRating, error) {
	return m.getClientRatingByIDFn(ctx, id)
}

func (m *mockRatingRepo) ListClientRatings(ctx context.Context, limit int) ([]*entity.ClientRating, error) {
	return m.listClientRatingsFn(ctx, limit)
}

type mockVerifier struct {
	uid   string
	email string
	err   error
}

func (m *mockVerifier) VerifyToken(ctx context.Context, idToken string) (string, string, error) {
	if m.err != nil {
		return "", "", m.err
	}
	return m.uid, m.email, nil
}
