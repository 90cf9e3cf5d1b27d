package entity

import "time"

// Client is the party that posts jobs ("contratador"). FirebaseUID links it
// to the external verified identity; at most one Client per UID.
type Client struct {
	ID            int64     `json:"id" db:"id"`
	ZoneID        *int64    `json:"id_zona_geografica" db:"id_zona_geografica"`
	Nombre        string    `json:"nombre" db:"nombre"`
	Apellido      string    `json:"apellido" db:"apellido"`
	Email         string    `json:"email" db:"email"`
	Telefono      string    `json:"telefono" db:"telefono"`
	DNI           string    `json:"dni" db:"dni"`
	FirebaseUID   *string   `json:"uid_firebase,omitempty" db:"uid_firebase"`
	FechaCreacion time.Time `json:"fecha_creacion" db:"fecha_creacion"`
}
