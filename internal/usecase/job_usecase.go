package usecase

import (
	"context"
	"time"

	"reparex/internal/domain/entity"
	"reparex/internal/domain/repository"
	"reparex/pkg/errors"
)

// allowedTransitions is the job lifecycle table. completado and cancelado
// are terminal; everything not listed here is rejected.
var allowedTransitions = map[string][]string{
	entity.StatusPendiente: {entity.StatusAceptado, entity.StatusCancelado},
	entity.StatusAceptado:  {entity.StatusCompletado, entity.StatusCancelado},
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func terminalStatus(descripcion string) bool {
	return len(allowedTransitions[descripcion]) == 0
}

type JobUseCase struct {
	jobRepo    repository.JobRepository
	workerRepo repository.WorkerRepository
	clientRepo repository.ClientRepository
	statusRepo repository.StatusRepository
}

func NewJobUseCase(
	jobRepo repository.JobRepository,
	workerRepo repository.WorkerRepository,
	clientRepo repository.ClientRepository,
	statusRepo repository.StatusRepository,
) *JobUseCase {
	return &JobUseCase{
		jobRepo:    jobRepo,
		workerRepo: workerRepo,
		clientRepo: clientRepo,
		statusRepo: statusRepo,
	}
}

type CreateJobInput struct {
	ClientID     int64
	ProfessionID int64
	ZoneID       *int64
	Zone         *ZoneInput
	Titulo       string
	Descripcion  string
	FechaInicio  *time.Time
	FechaFin     *time.Time
}

func (uc *JobUseCase) CreateJob(ctx context.Context, input CreateJobInput) (*entity.Job, error) {
	if input.ZoneID == nil && input.Zone == nil {
		return nil, errors.BadRequest("Either id_zona_geografica or zona_geografica is required", nil)
	}

	pending, err := uc.statusRepo.GetByDescription(ctx, entity.StatusPendiente)
	if err != nil {
		return nil, err
	}

	// New jobs always start pending and unassigned.
	job := &entity.Job{
		ClientID:     input.ClientID,
		ProfessionID: input.ProfessionID,
		ZoneID:       input.ZoneID,
		StatusID:     pending.ID,
		Titulo:       input.Titulo,
		Descripcion:  input.Descripcion,
		FechaInicio:  input.FechaInicio,
		FechaFin:     input.FechaFin,
	}

	var inlineZone *entity.Zone
	if input.ZoneID == nil {
		inlineZone = &entity.Zone{
			Calle:     input.Zone.Calle,
			Ciudad:    input.Zone.Ciudad,
			Provincia: input.Zone.Provincia,
		}
	}

	if err := uc.jobRepo.Create(ctx, job, inlineZone); err != nil {
		return nil, err
	}

	return job, nil
}

func (uc *JobUseCase) GetJobByID(ctx context.Context, id int64) (*entity.Job, error) {
	return uc.jobRepo.GetByID(ctx, id)
}

type ListJobsInput struct {
	ClientID      *int64
	FirebaseUID   string
	ProfessionIDs []int64
}

func (uc *JobUseCase) ListJobs(ctx context.Context, input ListJobsInput) ([]*entity.Job, error) {
	filter := repository.JobFilter{
		ClientID:      input.ClientID,
		ProfessionIDs: input.ProfessionIDs,
	}

	// An external identity filter is resolved to the local requester first.
	if input.FirebaseUID != "" {
		client, err := uc.clientRepo.GetByFirebaseUID(ctx, input.FirebaseUID)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				return []*entity.Job{}, nil
			}
			return nil, err
		}
		filter.ClientID = &client.ID
	}

	return uc.jobRepo.List(ctx, filter)
}

type UpdateJobInput struct {
	WorkerID     *int64
	ProfessionID *int64
	ZoneID       *int64
	StatusID     *int64
	Titulo       *string
	Descripcion  *string
	FechaInicio  *time.Time
	FechaFin     *time.Time
}

func (uc *JobUseCase) UpdateJob(ctx context.Context, id int64, input UpdateJobInput) (*entity.Job, error) {
	job, err := uc.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current, err := uc.statusRepo.GetByID(ctx, job.StatusID)
	if err != nil {
		return nil, err
	}

	if input.ProfessionID != nil {
		job.ProfessionID = *input.ProfessionID
	}
	if input.ZoneID != nil {
		job.ZoneID = input.ZoneID
	}
	if input.Titulo != nil {
		job.Titulo = *input.Titulo
	}
	if input.Descripcion != nil {
		job.Descripcion = *input.Descripcion
	}
	if input.FechaInicio != nil {
		job.FechaInicio = input.FechaInicio
	}
	if input.FechaFin != nil {
		job.FechaFin = input.FechaFin
	}

	if input.StatusID != nil && *input.StatusID != job.StatusID {
		target, err := uc.statusRepo.GetByID(ctx, *input.StatusID)
		if err != nil {
			return nil, err
		}
		if !transitionAllowed(current.Descripcion, target.Descripcion) {
			return nil, errors.InvalidTransition(current.Descripcion, target.Descripcion)
		}
		job.StatusID = target.ID
		current = target
	}

	if input.WorkerID != nil {
		// Assignment is fixed once the job is finished; swapping the worker
		// afterwards would rewrite rating attribution.
		if terminalStatus(current.Descripcion) {
			return nil, errors.Conflict("Cannot assign a worker to a "+current.Descripcion+" job", nil)
		}

		holds, err := uc.workerRepo.HoldsProfession(ctx, *input.WorkerID, job.ProfessionID)
		if err != nil {
			return nil, err
		}
		if !holds {
			return nil, errors.BadRequest("Worker does not hold the required profession", nil)
		}
		job.WorkerID = input.WorkerID

		// Assigning a worker to a pending job accepts it.
		if current.Descripcion == entity.StatusPendiente {
			accepted, err := uc.statusRepo.GetByDescription(ctx, entity.StatusAceptado)
			if err != nil {
				return nil, err
			}
			job.StatusID = accepted.ID
		}
	}

	if err := uc.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

func (uc *JobUseCase) DeleteJob(ctx context.Context, id int64) error {
	return uc.jobRepo.Delete(ctx, id)
}
