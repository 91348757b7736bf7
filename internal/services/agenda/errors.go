package agenda

import "errors"

// Agenda-related errors
var (
	// Validation errors
	ErrInvalidBloqueID   = errors.New("id de bloque no válido")
	ErrFechaRequerida    = errors.New("la fecha es obligatoria")
	ErrFechaInvalida     = errors.New("fecha no válida, se espera AAAA-MM-DD")
	ErrTramoInvalido     = errors.New("tramo no válido: usa manana o tarde")
	ErrCategoriaInvalida = errors.New("categoría no válida")
	ErrHorasInvalidas    = errors.New("las horas deben ser mayores que cero")
	ErrCapacidadInvalida = errors.New("capacidad diaria no disponible")
)
