package entity

// Job lifecycle statuses ("estados"). The table is seeded with these four
// descriptions; completado and cancelado are terminal.
const (
	StatusPendiente  = "pendiente"
	StatusAceptado   = "aceptado"
	StatusCompletado = "completado"
	StatusCancelado  = "cancelado"
)

type Status struct {
	ID          int64  `json:"id" db:"id"`
	Descripcion string `json:"descripcion" db:"descripcion"`
}
