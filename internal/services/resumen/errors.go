package resumen

import "errors"

// Resumen-related errors
var (
	ErrFechaInvalida = errors.New("fecha no válida, se espera AAAA-MM-DD")
	ErrRangoInvalido = errors.New("el inicio del rango es posterior al final")
	ErrMesInvalido   = errors.New("mes no válido")
)
