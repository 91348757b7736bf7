package database

import (
	"context"
	"database/sql"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*ExpedienteRepo
	*TareaRepo
	*ParteRepo
	*AgendaRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ExpedienteRepo: &ExpedienteRepo{db: db},
		TareaRepo:      &TareaRepo{db: db},
		ParteRepo:      &ParteRepo{db: db},
		AgendaRepo:     &AgendaRepo{db: db},
	}
}

// Wrapper methods for ExpedienteRepo to keep a flat API for services
func (r *Repository) CreateExpediente(ctx context.Context, e *models.Expediente) (*models.Expediente, error) {
	return r.ExpedienteRepo.Create(ctx, e)
}

func (r *Repository) GetAllExpedientes(ctx context.Context, estado string) ([]*models.Expediente, error) {
	return r.ExpedienteRepo.GetAll(ctx, estado)
}

func (r *Repository) GetExpedienteByID(ctx context.Context, id int) (*models.Expediente, error) {
	return r.ExpedienteRepo.GetByID(ctx, id)
}

func (r *Repository) GetExpedienteByCodigo(ctx context.Context, codigo string) (*models.Expediente, error) {
	return r.ExpedienteRepo.GetByCodigo(ctx, codigo)
}

func (r *Repository) SearchExpedientes(ctx context.Context, texto string) ([]*models.Expediente, error) {
	return r.ExpedienteRepo.Search(ctx, texto)
}

func (r *Repository) GetEntregasDesde(ctx context.Context, fecha string, limit int) ([]*models.EntregaProxima, error) {
	return r.ExpedienteRepo.GetEntregasDesde(ctx, fecha, limit)
}

func (r *Repository) UpdateExpediente(ctx context.Context, id int, codigo, proyecto, cliente, fechaEntrega, prioridad, estado *string) error {
	return r.ExpedienteRepo.Update(ctx, id, codigo, proyecto, cliente, fechaEntrega, prioridad, estado)
}

func (r *Repository) DeleteExpediente(ctx context.Context, id int) error {
	return r.ExpedienteRepo.Delete(ctx, id)
}

// Wrapper methods for TareaRepo
func (r *Repository) CreateTarea(ctx context.Context, t *models.Tarea) (*models.Tarea, error) {
	return r.TareaRepo.Create(ctx, t)
}

func (r *Repository) GetTareaByID(ctx context.Context, id int) (*models.Tarea, error) {
	return r.TareaRepo.GetByID(ctx, id)
}

func (r *Repository) GetTareasByExpediente(ctx context.Context, expedienteID int) ([]*models.Tarea, error) {
	return r.TareaRepo.GetByExpediente(ctx, expedienteID)
}

func (r *Repository) UpdateTarea(ctx context.Context, id int, titulo, estado, prioridad, fechaLimite *string, horasEstimadas, horasReales *float64) error {
	return r.TareaRepo.Update(ctx, id, titulo, estado, prioridad, fechaLimite, horasEstimadas, horasReales)
}

func (r *Repository) SumarHorasReales(ctx context.Context, id int, horas float64) error {
	return r.TareaRepo.SumarHorasReales(ctx, id, horas)
}

func (r *Repository) DeleteTarea(ctx context.Context, id int) error {
	return r.TareaRepo.Delete(ctx, id)
}

// Wrapper methods for ParteRepo
func (r *Repository) CreateParte(ctx context.Context, p *models.Parte) (*models.Parte, error) {
	return r.ParteRepo.Create(ctx, p)
}

func (r *Repository) GetParteByID(ctx context.Context, id int) (*models.Parte, error) {
	return r.ParteRepo.GetByID(ctx, id)
}

func (r *Repository) GetPartesRango(ctx context.Context, desde, hasta string) ([]*models.ParteDetalle, error) {
	return r.ParteRepo.GetRango(ctx, desde, hasta)
}

func (r *Repository) GetPartesByExpediente(ctx context.Context, expedienteID int) ([]*models.Parte, error) {
	return r.ParteRepo.GetByExpediente(ctx, expedienteID)
}

func (r *Repository) UpdateParte(ctx context.Context, id int, fecha, horaInicio, horaFin, comentario *string, horas *float64, expedienteID, tareaID **int) error {
	return r.ParteRepo.Update(ctx, id, fecha, horaInicio, horaFin, comentario, horas, expedienteID, tareaID)
}

func (r *Repository) DeleteParte(ctx context.Context, id int) error {
	return r.ParteRepo.Delete(ctx, id)
}

// Wrapper methods for AgendaRepo
func (r *Repository) CreateBloque(ctx context.Context, b *models.Bloque) (*models.Bloque, error) {
	return r.AgendaRepo.Create(ctx, b)
}

func (r *Repository) GetBloqueByID(ctx context.Context, id int) (*models.Bloque, error) {
	return r.AgendaRepo.GetByID(ctx, id)
}

func (r *Repository) GetBloquesRango(ctx context.Context, desde, hasta string) ([]*models.Bloque, error) {
	return r.AgendaRepo.GetRango(ctx, desde, hasta)
}

func (r *Repository) UpdateBloque(ctx context.Context, id int, fecha, tramo, categoria, nota *string, horas *float64, expedienteID **int) error {
	return r.AgendaRepo.Update(ctx, id, fecha, tramo, categoria, nota, horas, expedienteID)
}

func (r *Repository) DeleteBloque(ctx context.Context, id int) error {
	return r.AgendaRepo.Delete(ctx, id)
}
