package models

import "time"

// Bloque is a schedule block in the weekly agenda.
type Bloque struct {
	ID           int
	Fecha        string // YYYY-MM-DD
	Tramo        string
	Categoria    string
	Horas        float64
	ExpedienteID *int
	Nota         string
	CreatedAt    time.Time
}

// DiaCapacidad is the per-day occupancy view of the weekly agenda.
type DiaCapacidad struct {
	Fecha       string
	HorasManana float64
	HorasTarde  float64
	Ocupadas    float64
	Libres      float64
}

// SemanaCapacidad is the 7-day capacity overview starting on a Monday.
type SemanaCapacidad struct {
	Lunes        string
	Capacidad    float64
	IncluyeTarde bool
	Dias         []DiaCapacidad
}
