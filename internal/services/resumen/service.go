package resumen

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/database"
	"github.com/ConectaIC/planificador-expedientes-sub000/internal/models"
)

// TopExpedientes is the size of the ranked per-case listing in summaries.
const TopExpedientes = 3

// maxEntregas caps the "Próximas entregas" section.
const maxEntregas = 5

// Service defines the hours-summary operations
type Service interface {
	Rango(ctx context.Context, desde, hasta string) (*models.Resumen, error)
	Diario(ctx context.Context, fecha string) (*models.Resumen, error)
	Mensual(ctx context.Context, anyo int, mes time.Month) (*models.Resumen, error)
	Texto(ctx context.Context, desde, hasta string) (string, error)
}

// service implements Service interface
type service struct {
	repo           database.DataStore
	palabrasVisita []string
}

// NewService creates a new resumen service. palabrasVisita is the configured
// keyword list for visit detection (defaults to ["visita"] when empty).
func NewService(repo database.DataStore, palabrasVisita []string) Service {
	if len(palabrasVisita) == 0 {
		palabrasVisita = []string{"visita"}
	}
	return &service{repo: repo, palabrasVisita: palabrasVisita}
}

// Rango builds the hours summary for a closed date interval.
func (s *service) Rango(ctx context.Context, desde, hasta string) (*models.Resumen, error) {
	if _, err := time.Parse(models.FechaLayout, desde); err != nil {
		return nil, ErrFechaInvalida
	}
	if _, err := time.Parse(models.FechaLayout, hasta); err != nil {
		return nil, ErrFechaInvalida
	}
	if desde > hasta {
		return nil, ErrRangoInvalido
	}

	partes, err := s.repo.GetPartesRango(ctx, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch partes: %w", err)
	}

	resumen := Agregar(partes, desde, hasta, s.palabrasVisita)

	entregas, err := s.repo.GetEntregasDesde(ctx, desde, maxEntregas)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entregas: %w", err)
	}
	for _, e := range entregas {
		resumen.Entregas = append(resumen.Entregas, *e)
	}

	return resumen, nil
}

// Diario is the single-day summary.
func (s *service) Diario(ctx context.Context, fecha string) (*models.Resumen, error) {
	return s.Rango(ctx, fecha, fecha)
}

// Mensual is the calendar-month summary.
func (s *service) Mensual(ctx context.Context, anyo int, mes time.Month) (*models.Resumen, error) {
	if mes < time.January || mes > time.December {
		return nil, ErrMesInvalido
	}
	primero := time.Date(anyo, mes, 1, 0, 0, 0, 0, time.UTC)
	ultimo := primero.AddDate(0, 1, -1)
	return s.Rango(ctx, primero.Format(models.FechaLayout), ultimo.Format(models.FechaLayout))
}

// Agregar reduces a set of fetched partes to the summary for [desde, hasta],
// both ends inclusive. It is a pure function of its input: running it twice
// over the same rows yields identical totals. Group order is first-seen fetch
// order; partes without a usable expediente reference are grouped under the
// "Sin expediente" sentinel rather than dropped.
func Agregar(partes []*models.ParteDetalle, desde, hasta string, palabrasVisita []string) *models.Resumen {
	resumen := &models.Resumen{Desde: desde, Hasta: hasta}

	indice := map[string]int{}
	for _, p := range partes {
		if p.Fecha < desde || p.Fecha > hasta {
			continue
		}

		resumen.TotalHoras += p.Horas
		if contienePalabra(p.TituloTarea, palabrasVisita) {
			resumen.HorasVisita += p.Horas
		}

		codigo := p.CodigoExpediente
		proyecto := p.Proyecto
		cliente := p.Cliente
		if codigo == "" {
			codigo = models.CodigoSinExpediente
			proyecto = models.ProyectoSinExpediente
			cliente = ""
		}

		pos, ok := indice[codigo]
		if !ok {
			pos = len(resumen.PorExpediente)
			indice[codigo] = pos
			resumen.PorExpediente = append(resumen.PorExpediente, models.ResumenExpediente{
				Codigo:   codigo,
				Proyecto: proyecto,
				Cliente:  cliente,
			})
		}
		resumen.PorExpediente[pos].Horas += p.Horas
	}

	return resumen
}

// Top returns the n expedientes with most hours, descending. Ties keep the
// incoming (fetch) order.
func Top(porExpediente []models.ResumenExpediente, n int) []models.ResumenExpediente {
	top := make([]models.ResumenExpediente, len(porExpediente))
	copy(top, porExpediente)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Horas > top[j].Horas
	})
	if len(top) > n {
		top = top[:n]
	}
	return top
}

// ParseHoras leniently coerces a form value to hours. Decimal commas are
// accepted; anything unparseable counts as 0, never as an error.
func ParseHoras(valor string) float64 {
	valor = strings.TrimSpace(strings.ReplaceAll(valor, ",", "."))
	horas, err := strconv.ParseFloat(valor, 64)
	if err != nil {
		return 0
	}
	return horas
}
