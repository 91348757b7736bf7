package tarea

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/database"
	"github.com/ConectaIC/planificador-expedientes-sub000/internal/models"
)

// Service defines all tarea-related business operations
type Service interface {
	CrearTarea(ctx context.Context, req CrearTareaRequest) (*models.Tarea, error)
	GetTarea(ctx context.Context, id int) (*models.Tarea, error)
	GetTareasByExpediente(ctx context.Context, expedienteID int) ([]*models.Tarea, error)
	ActualizarTarea(ctx context.Context, req ActualizarTareaRequest) error
	EliminarTarea(ctx context.Context, id int) error
}

// CrearTareaRequest encapsulates all data needed to create a tarea.
// The owning expediente may come as an id or as the human codigo.
type CrearTareaRequest struct {
	ExpedienteID     int
	CodigoExpediente string
	Titulo           string
	HorasEstimadas   float64
	Estado           string // empty means pendiente
	Prioridad        string // empty means media
	FechaLimite      string
}

// ActualizarTareaRequest encapsulates a partial update of a tarea.
// Fields with pointers are optional - nil means don't update.
type ActualizarTareaRequest struct {
	TareaID        int
	Titulo         *string
	Estado         *string
	Prioridad      *string
	FechaLimite    *string
	HorasEstimadas *float64
	HorasReales    *float64
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new tarea service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// CrearTarea validates the request, resolves the owning expediente and
// creates the tarea.
func (s *service) CrearTarea(ctx context.Context, req CrearTareaRequest) (*models.Tarea, error) {
	titulo := strings.TrimSpace(req.Titulo)
	if titulo == "" {
		return nil, ErrTituloRequerido
	}
	if len(titulo) > 255 {
		return nil, ErrTituloDemasiado
	}
	if req.HorasEstimadas < 0 {
		return nil, ErrHorasNegativas
	}
	if req.Estado == "" {
		req.Estado = models.EstadoTareaPendiente
	}
	if req.Prioridad == "" {
		req.Prioridad = models.PrioridadMedia
	}
	if !slices.Contains(models.EstadosTarea, req.Estado) {
		return nil, ErrEstadoInvalido
	}
	if !slices.Contains(models.Prioridades, req.Prioridad) {
		return nil, ErrPrioridadInvalida
	}
	if req.FechaLimite != "" {
		if _, err := time.Parse(models.FechaLayout, req.FechaLimite); err != nil {
			return nil, ErrFechaInvalida
		}
	}

	expedienteID := req.ExpedienteID
	switch {
	case expedienteID > 0:
		if _, err := s.repo.GetExpedienteByID(ctx, expedienteID); err != nil {
			return nil, err
		}
	case req.CodigoExpediente != "":
		exp, err := s.repo.GetExpedienteByCodigo(ctx, req.CodigoExpediente)
		if err != nil {
			return nil, err
		}
		expedienteID = exp.ID
	default:
		return nil, ErrSinExpediente
	}

	tarea, err := s.repo.CreateTarea(ctx, &models.Tarea{
		ExpedienteID:   expedienteID,
		Titulo:         titulo,
		HorasEstimadas: req.HorasEstimadas,
		Estado:         req.Estado,
		Prioridad:      req.Prioridad,
		FechaLimite:    req.FechaLimite,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tarea: %w", err)
	}
	return tarea, nil
}

func (s *service) GetTarea(ctx context.Context, id int) (*models.Tarea, error) {
	if id <= 0 {
		return nil, ErrInvalidTareaID
	}
	return s.repo.GetTareaByID(ctx, id)
}

func (s *service) GetTareasByExpediente(ctx context.Context, expedienteID int) ([]*models.Tarea, error) {
	if _, err := s.repo.GetExpedienteByID(ctx, expedienteID); err != nil {
		return nil, err
	}
	return s.repo.GetTareasByExpediente(ctx, expedienteID)
}

// ActualizarTarea handles partial updates with validation.
func (s *service) ActualizarTarea(ctx context.Context, req ActualizarTareaRequest) error {
	if req.TareaID <= 0 {
		return ErrInvalidTareaID
	}
	if req.Titulo != nil {
		if strings.TrimSpace(*req.Titulo) == "" {
			return ErrTituloRequerido
		}
		if len(*req.Titulo) > 255 {
			return ErrTituloDemasiado
		}
	}
	if req.Estado != nil && !slices.Contains(models.EstadosTarea, *req.Estado) {
		return ErrEstadoInvalido
	}
	if req.Prioridad != nil && !slices.Contains(models.Prioridades, *req.Prioridad) {
		return ErrPrioridadInvalida
	}
	if req.FechaLimite != nil && *req.FechaLimite != "" {
		if _, err := time.Parse(models.FechaLayout, *req.FechaLimite); err != nil {
			return ErrFechaInvalida
		}
	}
	if req.HorasEstimadas != nil && *req.HorasEstimadas < 0 {
		return ErrHorasNegativas
	}
	if req.HorasReales != nil && *req.HorasReales < 0 {
		return ErrHorasNegativas
	}

	return s.repo.UpdateTarea(ctx, req.TareaID, req.Titulo, req.Estado, req.Prioridad, req.FechaLimite, req.HorasEstimadas, req.HorasReales)
}

func (s *service) EliminarTarea(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidTareaID
	}
	return s.repo.DeleteTarea(ctx, id)
}
