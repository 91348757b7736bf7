// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/models"
)

// DataStore defines the unified interface for all data operations needed by
// the service layer. Services depend on this interface rather than on the
// concrete Repository so tests can substitute fakes.
type DataStore interface {
	// Expedientes
	CreateExpediente(ctx context.Context, e *models.Expediente) (*models.Expediente, error)
	GetAllExpedientes(ctx context.Context, estado string) ([]*models.Expediente, error)
	GetExpedienteByID(ctx context.Context, id int) (*models.Expediente, error)
	GetExpedienteByCodigo(ctx context.Context, codigo string) (*models.Expediente, error)
	SearchExpedientes(ctx context.Context, texto string) ([]*models.Expediente, error)
	GetEntregasDesde(ctx context.Context, fecha string, limit int) ([]*models.EntregaProxima, error)
	UpdateExpediente(ctx context.Context, id int, codigo, proyecto, cliente, fechaEntrega, prioridad, estado *string) error
	DeleteExpediente(ctx context.Context, id int) error

	// Tareas
	CreateTarea(ctx context.Context, t *models.Tarea) (*models.Tarea, error)
	GetTareaByID(ctx context.Context, id int) (*models.Tarea, error)
	GetTareasByExpediente(ctx context.Context, expedienteID int) ([]*models.Tarea, error)
	UpdateTarea(ctx context.Context, id int, titulo, estado, prioridad, fechaLimite *string, horasEstimadas, horasReales *float64) error
	SumarHorasReales(ctx context.Context, id int, horas float64) error
	DeleteTarea(ctx context.Context, id int) error

	// Partes
	CreateParte(ctx context.Context, p *models.Parte) (*models.Parte, error)
	GetParteByID(ctx context.Context, id int) (*models.Parte, error)
	GetPartesRango(ctx context.Context, desde, hasta string) ([]*models.ParteDetalle, error)
	GetPartesByExpediente(ctx context.Context, expedienteID int) ([]*models.Parte, error)
	UpdateParte(ctx context.Context, id int, fecha, horaInicio, horaFin, comentario *string, horas *float64, expedienteID, tareaID **int) error
	DeleteParte(ctx context.Context, id int) error

	// Agenda
	CreateBloque(ctx context.Context, b *models.Bloque) (*models.Bloque, error)
	GetBloqueByID(ctx context.Context, id int) (*models.Bloque, error)
	GetBloquesRango(ctx context.Context, desde, hasta string) ([]*models.Bloque, error)
	UpdateBloque(ctx context.Context, id int, fecha, tramo, categoria, nota *string, horas *float64, expedienteID **int) error
	DeleteBloque(ctx context.Context, id int) error
}
