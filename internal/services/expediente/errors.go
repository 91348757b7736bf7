package expediente

import "errors"

// Expediente-related errors
var (
	// Validation errors
	ErrInvalidExpedienteID = errors.New("id de expediente no válido")
	ErrCodigoRequerido     = errors.New("el código es obligatorio")
	ErrProyectoRequerido   = errors.New("el proyecto es obligatorio")
	ErrEstadoInvalido      = errors.New("estado no válido")
	ErrPrioridadInvalida   = errors.New("prioridad no válida")
	ErrFechaInvalida       = errors.New("fecha no válida, se espera AAAA-MM-DD")

	// Business logic errors
	ErrCodigoDuplicado = errors.New("ya existe un expediente con ese código")
)
