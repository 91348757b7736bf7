package app

import (
	"github.com/ConectaIC/planificador-expedientes-sub000/internal/config"
	"github.com/ConectaIC/planificador-expedientes-sub000/internal/database"
	agendaservice "github.com/ConectaIC/planificador-expedientes-sub000/internal/services/agenda"
	expedienteservice "github.com/ConectaIC/planificador-expedientes-sub000/internal/services/expediente"
	parteservice "github.com/ConectaIC/planificador-expedientes-sub000/internal/services/parte"
	resumenservice "github.com/ConectaIC/planificador-expedientes-sub000/internal/services/resumen"
	tareaservice "github.com/ConectaIC/planificador-expedientes-sub000/internal/services/tarea"
)

// App holds all application services and provides dependency injection.
// This is the main application container shared by the HTTP server and the CLI.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Service layer (business logic)
	Expedientes expedienteservice.Service
	Tareas      tareaservice.Service
	Partes      parteservice.Service
	Agenda      agendaservice.Service
	Resumen     resumenservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore, cfg *config.Config) *App {
	return &App{
		repo:        repo,
		Expedientes: expedienteservice.NewService(repo),
		Tareas:      tareaservice.NewService(repo),
		Partes:      parteservice.NewService(repo),
		Agenda:      agendaservice.NewService(repo, cfg.Agenda.Capacidades),
		Resumen:     resumenservice.NewService(repo, cfg.Resumen.PalabrasVisita),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}
