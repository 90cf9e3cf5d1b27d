package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"reparex/internal/domain/entity"
	"reparex/internal/domain/repository"
	"reparex/internal/infrastructure/database"
	"reparex/pkg/errors"
)

type PostgresWorkerRepository struct {
	db *database.DB
}

func NewPostgresWorkerRepository(db *database.DB) *PostgresWorkerRepository {
	return &PostgresWorkerRepository{db: db}
}

func (r *PostgresWorkerRepository) insert(ctx context.Context, ext sqlx.ExtContext, worker *entity.Worker) error {
	query, args, err := r.db.Builder.
		Insert("trabajadores").
		Columns("id_contratador", "id_zona_geografica", "telefono", "email").
		Values(worker.ClientID, worker.ZoneID, worker.Telefono, worker.Email).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}

	if err := ext.QueryRowxContext(ctx, query, args...).Scan(&worker.ID); err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.BadRequest("Referenced client or zone does not exist", err)
		}
		return errors.Internal("Failed to create worker", err)
	}

	return nil
}

func (r *PostgresWorkerRepository) Create(ctx context.Context, worker *entity.Worker, inlineZone *entity.Zone) error {
	if inlineZone == nil {
		return r.insert(ctx, r.db, worker)
	}

	return r.db.Transact(ctx, func(tx *sqlx.Tx) error {
		if err := resolveZone(ctx, tx, r.db, inlineZone); err != nil {
			return err
		}
		worker.ZoneID = &inlineZone.ID
		return r.insert(ctx, tx, worker)
	})
}

func (r *PostgresWorkerRepository) GetByID(ctx context.Context, id int64) (*entity.Worker, error) {
	query, args, err := r.db.Builder.
		Select("*").
		From("trabajadores").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	var worker entity.Worker
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&worker); err != nil {
		if database.IsNoRows(err) {
			return nil, errors.NotFound("Worker", err)
		}
		return nil, errors.Internal("Failed to get worker", err)
	}

	return &worker, nil
}

func (r *PostgresWorkerRepository) List(ctx context.Context, filter repository.WorkerFilter) ([]*entity.Worker, error) {
	builder := r.db.Builder.
		Select("*").
		From("trabajadores").
		OrderBy("id ASC")

	if filter.ClientID != nil {
		builder = builder.Where("id_contratador = ?", *filter.ClientID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	workers := []*entity.Worker{}
	if err := r.db.SelectContext(ctx, &workers, query, args...); err != nil {
		return nil, errors.Internal("Failed to list workers", err)
	}

	return workers, nil
}

func (r *PostgresWorkerRepository) Update(ctx context.Context, worker *entity.Worker) error {
	query, args, err := r.db.Builder.
		Update("trabajadores").
		SetMap(map[string]interface{}{
			"id_contratador":     worker.ClientID,
			"id_zona_geografica": worker.ZoneID,
			"telefono":           worker.Telefono,
			"email":              worker.Email,
		}).
		Where("id = ?", worker.ID).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.BadRequest("Referenced client or zone does not exist", err)
		}
		return errors.Internal("Failed to update worker", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NotFound("Worker", nil)
	}

	return nil
}

func (r *PostgresWorkerRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.db.Builder.
		Delete("trabajadores").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Internal("Failed to delete worker", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NotFound("Worker", nil)
	}

	return nil
}

func (r *PostgresWorkerRepository) HoldsProfession(ctx context.Context, workerID, professionID int64) (bool, error) {
	query, args, err := r.db.Builder.
		Select("COUNT(1)").
		From("trabajadores_profesiones").
		Where("id_trabajador = ?", workerID).
		Where("id_profesion = ?", professionID).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&count); err != nil {
		return false, errors.Internal("Failed to check worker profession", err)
	}

	return count > 0, nil
}
