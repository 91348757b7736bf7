package models

import "time"

// Tarea is a task belonging to exactly one expediente.
type Tarea struct {
	ID             int
	ExpedienteID   int
	Titulo         string
	HorasEstimadas float64
	HorasReales    float64
	Estado         string
	Prioridad      string
	FechaLimite    string // YYYY-MM-DD, empty when open-ended
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
