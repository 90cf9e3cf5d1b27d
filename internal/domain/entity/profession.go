package entity

type Profession struct {
	ID     int64  `json:"id" db:"id"`
	Nombre string `json:"nombre" db:"nombre"`
}
