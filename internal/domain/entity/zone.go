package entity

// Zone is a street-level location record ("zona geografica"). The
// (Calle, Ciudad, Provincia) tuple is unique; creations against an existing
// tuple resolve to the existing row instead of duplicating it.
type Zone struct {
	ID        int64  `json:"id" db:"id"`
	Calle     string `json:"calle" db:"calle"`
	Ciudad    string `json:"ciudad" db:"ciudad"`
	Provincia string `json:"provincia" db:"provincia"`
}
