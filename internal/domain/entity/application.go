package entity

import "time"

// Application is a worker's expressed interest in a job ("postulacion").
// Immutable once created; the timestamp is always set server-side.
type Application struct {
	ID               int64     `json:"id" db:"id"`
	JobID            int64     `json:"id_trabajo" db:"id_trabajo"`
	WorkerID         int64     `json:"id_trabajador" db:"id_trabajador"`
	FechaPostulacion time.Time `json:"fecha_postulacion" db:"fecha_postulacion"`
}
