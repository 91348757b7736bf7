package parte

import "errors"

// Parte-related errors
var (
	// Validation errors
	ErrInvalidParteID = errors.New("id de parte no válido")
	ErrFechaRequerida = errors.New("la fecha es obligatoria")
	ErrFechaInvalida  = errors.New("fecha no válida, se espera AAAA-MM-DD")
	ErrHoraInvalida   = errors.New("hora no válida, se espera HH:MM")
	ErrHorasNegativas = errors.New("las horas no pueden ser negativas")
	ErrSinHoras       = errors.New("indica las horas o un intervalo inicio/fin")

	// Business logic errors
	ErrTareaSinCaso = errors.New("la tarea no pertenece al expediente indicado")
)
