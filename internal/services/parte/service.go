package parte

import (
	"context"
	"fmt"
	"time"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/database"
	"github.com/ConectaIC/planificador-expedientes-sub000/internal/models"
)

// Service defines all time-entry business operations
type Service interface {
	CrearParte(ctx context.Context, req CrearParteRequest) (*models.Parte, error)
	GetParte(ctx context.Context, id int) (*models.Parte, error)
	GetPartesRango(ctx context.Context, desde, hasta string) ([]*models.ParteDetalle, error)
	GetPartesByExpediente(ctx context.Context, expedienteID int) ([]*models.Parte, error)
	ActualizarParte(ctx context.Context, req ActualizarParteRequest) error
	EliminarParte(ctx context.Context, id int) error
}

// CrearParteRequest encapsulates all data needed to log a time entry.
// Horas, when set, takes precedence over the inicio/fin derivation.
// CodigoExpediente resolves the case the way a person references it: by its
// human code; ExpedienteID is accepted as the direct alternative.
type CrearParteRequest struct {
	Fecha            string
	HoraInicio       string
	HoraFin          string
	Horas            *float64
	Comentario       string
	CodigoExpediente string
	ExpedienteID     *int
	TareaID          *int
}

// ActualizarParteRequest encapsulates a partial update of a parte.
// Fields with pointers are optional - nil means don't update. The double
// pointers distinguish "leave the reference" (nil) from "clear it" (*nil).
type ActualizarParteRequest struct {
	ParteID      int
	Fecha        *string
	HoraInicio   *string
	HoraFin      *string
	Horas        *float64
	Comentario   *string
	ExpedienteID **int
	TareaID      **int
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new parte service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// CrearParte validates the request, resolves the optional expediente/tarea
// references and derives the hours when they were not supplied directly.
func (s *service) CrearParte(ctx context.Context, req CrearParteRequest) (*models.Parte, error) {
	if req.Fecha == "" {
		return nil, ErrFechaRequerida
	}
	if _, err := time.Parse(models.FechaLayout, req.Fecha); err != nil {
		return nil, ErrFechaInvalida
	}

	horas, err := s.resolverHoras(req)
	if err != nil {
		return nil, err
	}

	expedienteID := req.ExpedienteID
	if expedienteID == nil && req.CodigoExpediente != "" {
		exp, err := s.repo.GetExpedienteByCodigo(ctx, req.CodigoExpediente)
		if err != nil {
			return nil, err
		}
		expedienteID = &exp.ID
	}

	if req.TareaID != nil {
		tarea, err := s.repo.GetTareaByID(ctx, *req.TareaID)
		if err != nil {
			return nil, err
		}
		if expedienteID != nil && tarea.ExpedienteID != *expedienteID {
			return nil, ErrTareaSinCaso
		}
		if expedienteID == nil {
			expedienteID = &tarea.ExpedienteID
		}
	}

	parte, err := s.repo.CreateParte(ctx, &models.Parte{
		Fecha:        req.Fecha,
		HoraInicio:   req.HoraInicio,
		HoraFin:      req.HoraFin,
		Horas:        horas,
		Comentario:   req.Comentario,
		ExpedienteID: expedienteID,
		TareaID:      req.TareaID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create parte: %w", err)
	}

	// Keep the tarea's logged hours in step with its partes
	if req.TareaID != nil && horas > 0 {
		if err := s.repo.SumarHorasReales(ctx, *req.TareaID, horas); err != nil {
			return nil, fmt.Errorf("failed to update logged hours: %w", err)
		}
	}

	return parte, nil
}

// resolverHoras returns the supplied hours or derives them from the clock
// interval. Supplying horas skips the derivation entirely.
func (s *service) resolverHoras(req CrearParteRequest) (float64, error) {
	if req.Horas != nil {
		if *req.Horas < 0 {
			return 0, ErrHorasNegativas
		}
		return *req.Horas, nil
	}
	if req.HoraInicio == "" || req.HoraFin == "" {
		return 0, ErrSinHoras
	}
	return CalcularHoras(req.HoraInicio, req.HoraFin)
}

func (s *service) GetParte(ctx context.Context, id int) (*models.Parte, error) {
	if id <= 0 {
		return nil, ErrInvalidParteID
	}
	return s.repo.GetParteByID(ctx, id)
}

func (s *service) GetPartesRango(ctx context.Context, desde, hasta string) ([]*models.ParteDetalle, error) {
	if _, err := time.Parse(models.FechaLayout, desde); err != nil {
		return nil, ErrFechaInvalida
	}
	if _, err := time.Parse(models.FechaLayout, hasta); err != nil {
		return nil, ErrFechaInvalida
	}
	return s.repo.GetPartesRango(ctx, desde, hasta)
}

func (s *service) GetPartesByExpediente(ctx context.Context, expedienteID int) ([]*models.Parte, error) {
	return s.repo.GetPartesByExpediente(ctx, expedienteID)
}

// ActualizarParte handles partial updates. When the clock interval changes
// and no explicit hours accompany it, the hours are re-derived.
func (s *service) ActualizarParte(ctx context.Context, req ActualizarParteRequest) error {
	if req.ParteID <= 0 {
		return ErrInvalidParteID
	}
	if req.Fecha != nil {
		if _, err := time.Parse(models.FechaLayout, *req.Fecha); err != nil {
			return ErrFechaInvalida
		}
	}
	if req.Horas != nil && *req.Horas < 0 {
		return ErrHorasNegativas
	}

	horas := req.Horas
	if horas == nil && (req.HoraInicio != nil || req.HoraFin != nil) {
		current, err := s.repo.GetParteByID(ctx, req.ParteID)
		if err != nil {
			return err
		}
		inicio, fin := current.HoraInicio, current.HoraFin
		if req.HoraInicio != nil {
			inicio = *req.HoraInicio
		}
		if req.HoraFin != nil {
			fin = *req.HoraFin
		}
		if inicio != "" && fin != "" {
			derivadas, err := CalcularHoras(inicio, fin)
			if err != nil {
				return err
			}
			horas = &derivadas
		}
	}

	return s.repo.UpdateParte(ctx, req.ParteID, req.Fecha, req.HoraInicio, req.HoraFin, req.Comentario, horas, req.ExpedienteID, req.TareaID)
}

func (s *service) EliminarParte(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidParteID
	}
	return s.repo.DeleteParte(ctx, id)
}
