package agenda

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/database"
	"github.com/ConectaIC/planificador-expedientes-sub000/internal/models"
)

// DiasSemana is the length of the agenda window.
const DiasSemana = 7

// Service defines all weekly-agenda business operations
type Service interface {
	CrearBloque(ctx context.Context, req CrearBloqueRequest) (*models.Bloque, error)
	GetSemana(ctx context.Context, fecha string, capacidad float64, incluirTarde bool) (*Semana, error)
	ActualizarBloque(ctx context.Context, req ActualizarBloqueRequest) error
	EliminarBloque(ctx context.Context, id int) error
}

// Semana bundles the week's blocks with the capacity overview. Mutations
// re-fetch the whole week rather than patching state; the store's
// last-write-wins semantics resolve concurrent edits.
type Semana struct {
	Capacidad models.SemanaCapacidad
	Bloques   []*models.Bloque
}

// CrearBloqueRequest encapsulates all data needed to create a schedule block
type CrearBloqueRequest struct {
	Fecha        string
	Tramo        string
	Categoria    string
	Horas        float64
	ExpedienteID *int
	Nota         string
}

// ActualizarBloqueRequest encapsulates a partial update of a schedule block.
// Fields with pointers are optional - nil means don't update.
type ActualizarBloqueRequest struct {
	BloqueID     int
	Fecha        *string
	Tramo        *string
	Categoria    *string
	Horas        *float64
	Nota         *string
	ExpedienteID **int
}

// service implements Service interface
type service struct {
	repo        database.DataStore
	capacidades []float64
}

// NewService creates a new agenda service. capacidades is the configured set
// of selectable daily capacities (defaults to 6/8/10 when empty).
func NewService(repo database.DataStore, capacidades []float64) Service {
	if len(capacidades) == 0 {
		capacidades = []float64{6, 8, 10}
	}
	return &service{repo: repo, capacidades: capacidades}
}

// CrearBloque validates and stores a new schedule block.
func (s *service) CrearBloque(ctx context.Context, req CrearBloqueRequest) (*models.Bloque, error) {
	if req.Fecha == "" {
		return nil, ErrFechaRequerida
	}
	if _, err := time.Parse(models.FechaLayout, req.Fecha); err != nil {
		return nil, ErrFechaInvalida
	}
	if req.Tramo != models.TramoManana && req.Tramo != models.TramoTarde {
		return nil, ErrTramoInvalido
	}
	if !slices.Contains(models.CategoriasAgenda, req.Categoria) {
		return nil, ErrCategoriaInvalida
	}
	if req.Horas <= 0 {
		return nil, ErrHorasInvalidas
	}

	if req.ExpedienteID != nil {
		if _, err := s.repo.GetExpedienteByID(ctx, *req.ExpedienteID); err != nil {
			return nil, err
		}
	}

	bloque, err := s.repo.CreateBloque(ctx, &models.Bloque{
		Fecha:        req.Fecha,
		Tramo:        req.Tramo,
		Categoria:    req.Categoria,
		Horas:        req.Horas,
		ExpedienteID: req.ExpedienteID,
		Nota:         req.Nota,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bloque: %w", err)
	}
	return bloque, nil
}

// GetSemana fetches the 7-day window containing fecha (normalized back to
// its Monday) and computes per-day occupancy against the chosen capacity.
func (s *service) GetSemana(ctx context.Context, fecha string, capacidad float64, incluirTarde bool) (*Semana, error) {
	dia, err := time.Parse(models.FechaLayout, fecha)
	if err != nil {
		return nil, ErrFechaInvalida
	}
	if !slices.Contains(s.capacidades, capacidad) {
		return nil, ErrCapacidadInvalida
	}

	lunes := NormalizarLunes(dia)
	desde := lunes.Format(models.FechaLayout)
	hasta := lunes.AddDate(0, 0, DiasSemana-1).Format(models.FechaLayout)

	bloques, err := s.repo.GetBloquesRango(ctx, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agenda: %w", err)
	}

	return &Semana{
		Capacidad: CalcularCapacidad(bloques, lunes, capacidad, incluirTarde),
		Bloques:   bloques,
	}, nil
}

// ActualizarBloque handles partial updates of a schedule block.
func (s *service) ActualizarBloque(ctx context.Context, req ActualizarBloqueRequest) error {
	if req.BloqueID <= 0 {
		return ErrInvalidBloqueID
	}
	if req.Fecha != nil {
		if _, err := time.Parse(models.FechaLayout, *req.Fecha); err != nil {
			return ErrFechaInvalida
		}
	}
	if req.Tramo != nil && *req.Tramo != models.TramoManana && *req.Tramo != models.TramoTarde {
		return ErrTramoInvalido
	}
	if req.Categoria != nil && !slices.Contains(models.CategoriasAgenda, *req.Categoria) {
		return ErrCategoriaInvalida
	}
	if req.Horas != nil && *req.Horas <= 0 {
		return ErrHorasInvalidas
	}

	return s.repo.UpdateBloque(ctx, req.BloqueID, req.Fecha, req.Tramo, req.Categoria, req.Nota, req.Horas, req.ExpedienteID)
}

func (s *service) EliminarBloque(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidBloqueID
	}
	return s.repo.DeleteBloque(ctx, id)
}

// NormalizarLunes returns the Monday of the week containing t.
func NormalizarLunes(t time.Time) time.Time {
	retroceso := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return t.AddDate(0, 0, -retroceso)
}

// CalcularCapacidad reduces the fetched blocks to the per-day occupancy view
// for the week starting at lunes. Occupied hours always count both tramos;
// libres is clamped at zero and never goes negative. Pure function of its
// input.
func CalcularCapacidad(bloques []*models.Bloque, lunes time.Time, capacidad float64, incluirTarde bool) models.SemanaCapacidad {
	semana := models.SemanaCapacidad{
		Lunes:        lunes.Format(models.FechaLayout),
		Capacidad:    capacidad,
		IncluyeTarde: incluirTarde,
		Dias:         make([]models.DiaCapacidad, DiasSemana),
	}

	indice := map[string]int{}
	for i := range semana.Dias {
		fecha := lunes.AddDate(0, 0, i).Format(models.FechaLayout)
		semana.Dias[i].Fecha = fecha
		indice[fecha] = i
	}

	for _, b := range bloques {
		i, ok := indice[b.Fecha]
		if !ok {
			continue
		}
		switch b.Tramo {
		case models.TramoManana:
			semana.Dias[i].HorasManana += b.Horas
		case models.TramoTarde:
			semana.Dias[i].HorasTarde += b.Horas
		}
	}

	for i := range semana.Dias {
		dia := &semana.Dias[i]
		dia.Ocupadas = dia.HorasManana + dia.HorasTarde
		dia.Libres = capacidad - dia.Ocupadas
		if dia.Libres < 0 {
			dia.Libres = 0
		}
		if !incluirTarde {
			// The afternoon slot is hidden from the view but still occupies
			dia.HorasTarde = 0
		}
	}

	return semana
}
