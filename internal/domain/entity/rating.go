package entity

import "time"

// WorkerRating is a client's rating of the worker that performed a completed
// job ("calificacion de trabajador"). Append-only once submitted.
type WorkerRating struct {
	ID         int64     `json:"id" db:"id"`
	ClientID   int64     `json:"id_contratador" db:"id_contratador"`
	WorkerID   int64     `json:"id_trabajador" db:"id_trabajador"`
	JobID      int64     `json:"id_trabajo" db:"id_trabajo"`
	Puntuacion float64   `json:"puntuacion" db:"puntuacion"`
	Comentario string    `json:"comentario" db:"comentario"`
	Fecha      time.Time `json:"fecha" db:"fecha"`
}

// ClientRating is the symmetric flow: the worker rates the client of a
// completed job ("calificacion de contratador").
type ClientRating struct {
	ID         int64     `json:"id" db:"id"`
	ClientID   int64     `json:"id_contratador" db:"id_contratador"`
	WorkerID   int64     `json:"id_trabajador" db:"id_trabajador"`
	JobID      int64     `json:"id_trabajo" db:"id_trabajo"`
	Puntuacion float64   `json:"puntuacion" db:"puntuacion"`
	Comentario string    `json:"comentario" db:"comentario"`
	Fecha      time.Time `json:"fecha" db:"fecha"`
}
