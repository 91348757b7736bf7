package expediente

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/database"
	"github.com/ConectaIC/planificador-expedientes-sub000/internal/models"
)

// Service defines all expediente-related business operations
type Service interface {
	CrearExpediente(ctx context.Context, req CrearExpedienteRequest) (*models.Expediente, error)
	GetExpedientes(ctx context.Context, estado, buscar string) ([]*models.Expediente, error)
	GetExpediente(ctx context.Context, id int) (*models.Expediente, error)
	GetExpedientePorCodigo(ctx context.Context, codigo string) (*models.Expediente, error)
	GetEntregasProximas(ctx context.Context, desde string, limit int) ([]*models.EntregaProxima, error)
	ActualizarExpediente(ctx context.Context, req ActualizarExpedienteRequest) error
	EliminarExpediente(ctx context.Context, id int) error
}

// CrearExpedienteRequest encapsulates all data needed to open a case
type CrearExpedienteRequest struct {
	Codigo       string
	Proyecto     string
	Cliente      string
	FechaEntrega string
	Prioridad    string // empty means media
	Estado       string // empty means pendiente
}

// ActualizarExpedienteRequest encapsulates a partial update of a case.
// Fields with pointers are optional - nil means don't update.
type ActualizarExpedienteRequest struct {
	ExpedienteID int
	Codigo       *string
	Proyecto     *string
	Cliente      *string
	FechaEntrega *string
	Prioridad    *string
	Estado       *string
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new expediente service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// CrearExpediente validates the request and opens the case. Codigo collisions
// surface as ErrCodigoDuplicado rather than a raw constraint failure.
func (s *service) CrearExpediente(ctx context.Context, req CrearExpedienteRequest) (*models.Expediente, error) {
	req.Codigo = strings.TrimSpace(req.Codigo)
	if req.Codigo == "" {
		return nil, ErrCodigoRequerido
	}
	if strings.TrimSpace(req.Proyecto) == "" {
		return nil, ErrProyectoRequerido
	}
	if req.Prioridad == "" {
		req.Prioridad = models.PrioridadMedia
	}
	if req.Estado == "" {
		req.Estado = models.EstadoPendiente
	}
	if !slices.Contains(models.Prioridades, req.Prioridad) {
		return nil, ErrPrioridadInvalida
	}
	if !slices.Contains(models.EstadosExpediente, req.Estado) {
		return nil, ErrEstadoInvalido
	}
	if req.FechaEntrega != "" {
		if _, err := time.Parse(models.FechaLayout, req.FechaEntrega); err != nil {
			return nil, ErrFechaInvalida
		}
	}

	if _, err := s.repo.GetExpedienteByCodigo(ctx, req.Codigo); err == nil {
		return nil, ErrCodigoDuplicado
	} else if !errors.Is(err, models.ErrExpedienteNotFound) {
		return nil, err
	}

	exp, err := s.repo.CreateExpediente(ctx, &models.Expediente{
		Codigo:       req.Codigo,
		Proyecto:     req.Proyecto,
		Cliente:      req.Cliente,
		FechaEntrega: req.FechaEntrega,
		Prioridad:    req.Prioridad,
		Estado:       req.Estado,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create expediente: %w", err)
	}
	return exp, nil
}

// GetExpedientes lists cases, filtered by estado and/or free-text search.
func (s *service) GetExpedientes(ctx context.Context, estado, buscar string) ([]*models.Expediente, error) {
	if estado != "" && !slices.Contains(models.EstadosExpediente, estado) {
		return nil, ErrEstadoInvalido
	}
	if buscar != "" {
		return s.repo.SearchExpedientes(ctx, buscar)
	}
	return s.repo.GetAllExpedientes(ctx, estado)
}

func (s *service) GetExpediente(ctx context.Context, id int) (*models.Expediente, error) {
	if id <= 0 {
		return nil, ErrInvalidExpedienteID
	}
	return s.repo.GetExpedienteByID(ctx, id)
}

func (s *service) GetExpedientePorCodigo(ctx context.Context, codigo string) (*models.Expediente, error) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return nil, ErrCodigoRequerido
	}
	return s.repo.GetExpedienteByCodigo(ctx, codigo)
}

func (s *service) GetEntregasProximas(ctx context.Context, desde string, limit int) ([]*models.EntregaProxima, error) {
	if _, err := time.Parse(models.FechaLayout, desde); err != nil {
		return nil, ErrFechaInvalida
	}
	return s.repo.GetEntregasDesde(ctx, desde, limit)
}

// ActualizarExpediente handles partial updates with validation.
func (s *service) ActualizarExpediente(ctx context.Context, req ActualizarExpedienteRequest) error {
	if req.ExpedienteID <= 0 {
		return ErrInvalidExpedienteID
	}
	if req.Codigo != nil && strings.TrimSpace(*req.Codigo) == "" {
		return ErrCodigoRequerido
	}
	if req.Proyecto != nil && strings.TrimSpace(*req.Proyecto) == "" {
		return ErrProyectoRequerido
	}
	if req.Prioridad != nil && !slices.Contains(models.Prioridades, *req.Prioridad) {
		return ErrPrioridadInvalida
	}
	if req.Estado != nil && !slices.Contains(models.EstadosExpediente, *req.Estado) {
		return ErrEstadoInvalido
	}
	if req.FechaEntrega != nil && *req.FechaEntrega != "" {
		if _, err := time.Parse(models.FechaLayout, *req.FechaEntrega); err != nil {
			return ErrFechaInvalida
		}
	}

	if req.Codigo != nil {
		existente, err := s.repo.GetExpedienteByCodigo(ctx, *req.Codigo)
		if err == nil && existente.ID != req.ExpedienteID {
			return ErrCodigoDuplicado
		}
		if err != nil && !errors.Is(err, models.ErrExpedienteNotFound) {
			return err
		}
	}

	return s.repo.UpdateExpediente(ctx, req.ExpedienteID, req.Codigo, req.Proyecto, req.Cliente, req.FechaEntrega, req.Prioridad, req.Estado)
}

func (s *service) EliminarExpediente(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidExpedienteID
	}
	return s.repo.DeleteExpediente(ctx, id)
}
