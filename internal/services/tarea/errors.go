package tarea

import "errors"

// Tarea-related errors
var (
	// Validation errors
	ErrInvalidTareaID    = errors.New("id de tarea no válido")
	ErrTituloRequerido   = errors.New("el título es obligatorio")
	ErrTituloDemasiado   = errors.New("el título no puede superar 255 caracteres")
	ErrEstadoInvalido    = errors.New("estado no válido")
	ErrPrioridadInvalida = errors.New("prioridad no válida")
	ErrFechaInvalida     = errors.New("fecha no válida, se espera AAAA-MM-DD")
	ErrHorasNegativas    = errors.New("las horas no pueden ser negativas")
	ErrSinExpediente     = errors.New("indica el expediente por id o código")
)
