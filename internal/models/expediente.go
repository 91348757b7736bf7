package models

import "time"

// Expediente represents a project file/case, the top-level unit of work
// in the office. Codigo is the unique human key used whenever a person
// references the case as text.
type Expediente struct {
	ID           int
	Codigo       string
	Proyecto     string
	Cliente      string
	FechaEntrega string // YYYY-MM-DD, empty when no due date is set
	Prioridad    string
	Estado       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EntregaProxima is a lightweight view of an expediente used in the
// "Próximas entregas" section of summaries.
type EntregaProxima struct {
	Codigo       string
	Proyecto     string
	FechaEntrega string
}
