package repository

import (
	"context"

	"reparex/internal/domain/entity"
	"reparex/internal/infrastructure/database"
	"reparex/pkg/errors"
)

type PostgresRatingRepository struct {
	db *database.DB
}

func NewPostgresRatingRepository(db *database.DB) *PostgresRatingRepository {
	return &PostgresRatingRepository{db: db}
}

func (r *PostgresRatingRepository) CreateWorkerRating(ctx context.Context, rating *entity.WorkerRating) error {
	query, args, err := r.db.Builder.
		Insert("calificaciones_trabajadores").
		Columns("id_contratador", "id_trabajador", "id_trabajo", "puntuacion", "comentario").
		Values(rating.ClientID, rating.WorkerID, rating.JobID, rating.Puntuacion, rating.Comentario).
		Suffix("RETURNING id, fecha").
		ToSql()
	if err != nil {
		return err
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&rating.ID, &rating.Fecha); err != nil {
		return translateRatingError(err)
	}

	return nil
}

func (r *PostgresRatingRepository) GetWorkerRatingByID(ctx context.Context, id int64) (*entity.WorkerRating, error) {
	query, args, err := r.db.Builder.
		Select("*").
		From("calificaciones_trabajadores").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rating entity.WorkerRating
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&rating); err != nil {
		if database.IsNoRows(err) {
			return nil, errors.NotFound("Rating", err)
		}
		return nil, errors.Internal("Failed to get rating", err)
	}

	return &rating, nil
}

func (r *PostgresRatingRepository) ListWorkerRatings(ctx context.Context, limit int) ([]*entity.WorkerRating, error) {
	builder := r.db.Builder.
		Select("*").
		From("calificaciones_trabajadores").
		OrderBy("fecha DESC")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	ratings := []*entity.WorkerRating{}
	if err := r.db.SelectContext(ctx, &ratings, query, args...); err != nil {
		return nil, errors.Internal("Failed to list ratings", err)
	}

	return ratings, nil
}

func (r *PostgresRatingRepository) CreateClientRating(ctx context.Context, rating *entity.ClientRating) error {
	query, args, err := r.db.Builder.
		Insert("calificaciones_contratadores").
		Columns("id_contratador", "id_trabajador", "id_trabajo", "puntuacion", "comentario").
		Values(rating.ClientID, rating.WorkerID, rating.JobID, rating.Puntuacion, rating.Comentario).
		Suffix("RETURNING id, fecha").
		ToSql()
	if err != nil {
		return err
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&rating.ID, &rating.Fecha); err != nil {
		return translateRatingError(err)
	}

	return nil
}

func (r *PostgresRatingRepository) GetClientRatingByID(ctx context.Context, id int64) (*entity.ClientRating, error) {
	query, args, err := r.db.Builder.
		Select("*").
		From("calificaciones_contratadores").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rating entity.ClientRating
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&rating); err != nil {
		if database.IsNoRows(err) {
			return nil, errors.NotFound("Rating", err)
		}
		return nil, errors.Internal("Failed to get rating", err)
	}

	return &rating, nil
}

func (r *PostgresRatingRepository) ListClientRatings(ctx context.Context, limit int) ([]*entity.ClientRating, error) {
	builder := r.db.Builder.
		Select("*").
		From("calificaciones_contratadores").
		OrderBy("fecha DESC")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	ratings := []*entity.ClientRating{}
	if err := r.db.SelectContext(ctx, &ratings, query, args...); err != nil {
		return nil, errors.Internal("Failed to list ratings", err)
	}

	return ratings, nil
}

func translateRatingError(err error) error {
	switch {
	case database.IsUniqueViolation(err):
		return errors.Conflict("A rating for this job by this party already exists", err)
	case database.IsForeignKeyViolation(err):
		return errors.BadRequest("Referenced client, worker or job does not exist", err)
	case database.IsCheckViolation(err):
		return errors.BadRequest("Score must be between 1.0 and 5.0", err)
	default:
		return errors.Internal("Failed to create rating", err)
	}
}
