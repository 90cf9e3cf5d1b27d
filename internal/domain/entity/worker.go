package entity

// Worker is the party that performs jobs ("trabajador"). Every Worker is
// owned by the Client identity that registered it.
type Worker struct {
	ID       int64  `json:"id" db:"id"`
	ClientID int64  `json:"id_contratador" db:"id_contratador"`
	ZoneID   *int64 `json:"id_zona_geografica" db:"id_zona_geografica"`
	Telefono string `json:"telefono" db:"telefono"`
	Email    string `json:"email" db:"email"`
}

// WorkerProfession grants a profession to a worker, optionally with a
// license number ("matricula"). The (worker, profession) pair is unique.
type WorkerProfession struct {
	ID           int64   `json:"id" db:"id"`
	WorkerID     int64   `json:"id_trabajador" db:"id_trabajador"`
	ProfessionID int64   `json:"id_profesion" db:"id_profesion"`
	Matricula    *string `json:"matricula" db:"matricula"`
}
