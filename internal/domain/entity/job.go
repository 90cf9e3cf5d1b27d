package entity

import "time"

// Job is the central aggregate ("trabajo"): posted by a Client, optionally
// assigned to a Worker, tied to a required profession, a zone and a
// lifecycle status.
type Job struct {
	ID            int64      `json:"id" db:"id"`
	ClientID      int64      `json:"id_contratador" db:"id_contratador"`
	WorkerID      *int64     `json:"id_trabajador" db:"id_trabajador"`
	ProfessionID  int64      `json:"id_profesion" db:"id_profesion"`
	ZoneID        *int64     `json:"id_zona_geografica" db:"id_zona_geografica"`
	StatusID      int64      `json:"id_estado" db:"id_estado"`
	Titulo        string     `json:"titulo" db:"titulo"`
	Descripcion   string     `json:"descripcion" db:"descripcion"`
	FechaCreacion time.Time  `json:"fecha_creacion" db:"fecha_creacion"`
	FechaInicio   *time.Time `json:"fecha_inicio" db:"fecha_inicio"`
	FechaFin      *time.Time `json:"fecha_fin" db:"fecha_fin"`
}
