package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"reparex/internal/domain/entity"
	"reparex/internal/domain/repository"
	"reparex/internal/infrastructure/database"
	"reparex/pkg/errors"
)

type PostgresJobRepository struct {
	db *database.DB
}

func NewPostgresJobRepository(db *database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) insert(ctx context.Context, ext sqlx.ExtContext, job *entity.Job) error {
	query, args, err := r.db.Builder.
		Insert("trabajos").
		Columns("id_contratador", "id_trabajador", "id_profesion", "id_zona_geografica", "id_estado",
			"titulo", "descripcion", "fecha_inicio", "fecha_fin").
		Values(job.ClientID, job.WorkerID, job.ProfessionID, job.ZoneID, job.StatusID,
			job.Titulo, job.Descripcion, job.FechaInicio, job.FechaFin).
		Suffix("RETURNING id, fecha_creacion").
		ToSql()
	if err != nil {
		return err
	}

	if err := ext.QueryRowxContext(ctx, query, args...).Scan(&job.ID, &job.FechaCreacion); err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.BadRequest("Referenced client, worker, profession, zone or status does not exist", err)
		}
		return errors.Internal("Failed to create job", err)
	}

	return nil
}

func (r *PostgresJobRepository) Create(ctx context.Context, job *entity.Job, inlineZone *entity.Zone) error {
	if inlineZone == nil {
		return r.insert(ctx, r.db, job)
	}

	// If the job insert fails, the freshly created zone goes away with it.
	return r.db.Transact(ctx, func(tx *sqlx.Tx) error {
		if err := resolveZone(ctx, tx, r.db, inlineZone); err != nil {
			return err
		}
		job.ZoneID = &inlineZone.ID
		return r.insert(ctx, tx, job)
	})
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id int64) (*entity.Job, error) {
	query, args, err := r.db.Builder.
		Select("*").
		From("trabajos").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	var job entity.Job
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&job); err != nil {
		if database.IsNoRows(err) {
			return nil, errors.NotFound("Job", err)
		}
		return nil, errors.Internal("Failed to get job", err)
	}

	return &job, nil
}

func (r *PostgresJobRepository) List(ctx context.Context, filter repository.JobFilter) ([]*entity.Job, error) {
	builder := r.db.Builder.
		Select("*").
		From("trabajos").
		OrderBy("fecha_creacion DESC")

	if filter.ClientID != nil {
		builder = builder.Where("id_contratador = ?", *filter.ClientID)
	}
	if len(filter.ProfessionIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"id_profesion": filter.ProfessionIDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	jobs := []*entity.Job{}
	if err := r.db.SelectContext(ctx, &jobs, query, args...); err != nil {
		return nil, errors.Internal("Failed to list jobs", err)
	}

	return jobs, nil
}

func (r *PostgresJobRepository) Update(ctx context.Context, job *entity.Job) error {
	query, args, err := r.db.Builder.
		Update("trabajos").
		SetMap(map[string]interface{}{
			"id_contratador":     job.ClientID,
			"id_trabajador":      job.WorkerID,
			"id_profesion":       job.ProfessionID,
			"id_zona_geografica": job.ZoneID,
			"id_estado":          job.StatusID,
			"titulo":             job.Titulo,
			"descripcion":        job.Descripcion,
			"fecha_inicio":       job.FechaInicio,
			"fecha_fin":          job.FechaFin,
		}).
		Where("id = ?", job.ID).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.BadRequest("Referenced client, worker, profession, zone or status does not exist", err)
		}
		return errors.Internal("Failed to update job", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NotFound("Job", nil)
	}

	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.db.Builder.
		Delete("trabajos").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Internal("Failed to delete job", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NotFound("Job", nil)
	}

	return nil
}
