package models

import "errors"

// Domain-level not-found errors, shared by services and the HTTP layer
var (
	// ErrExpedienteNotFound indicates the expediente id or codigo does not exist
	ErrExpedienteNotFound = errors.New("expediente no encontrado")

	// ErrTareaNotFound indicates the tarea id does not exist
	ErrTareaNotFound = errors.New("tarea no encontrada")

	// ErrParteNotFound indicates the parte id does not exist
	ErrParteNotFound = errors.New("parte no encontrado")

	// ErrBloqueNotFound indicates the agenda block id does not exist
	ErrBloqueNotFound = errors.New("bloque de agenda no encontrado")
)
