package models

import "time"

// Parte is a logged time entry. Horas may be supplied directly or derived
// from HoraInicio/HoraFin; the expediente and tarea references are optional.
type Parte struct {
	ID           int
	Fecha        string // YYYY-MM-DD
	HoraInicio   string // HH:MM, empty when horas was supplied directly
	HoraFin      string // HH:MM
	Horas        float64
	Comentario   string
	ExpedienteID *int
	TareaID      *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ParteDetalle is a parte with its related labels embedded, as the summary
// views consume it. Relation fields are empty when the reference is missing.
type ParteDetalle struct {
	Parte
	CodigoExpediente string
	Proyecto         string
	Cliente          string
	TituloTarea      string
}
