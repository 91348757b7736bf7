package resumen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/models"
)

// fechaDisplay is the DD/MM/YYYY layout used by the text export.
const fechaDisplay = "02/01/2006"

// Texto renders the range summary as the flat newline-joined block used by
// the copy-to-clipboard workflow. The layout is fixed: downstream manual
// paste targets depend on it line for line.
func (s *service) Texto(ctx context.Context, desde, hasta string) (string, error) {
	resumen, err := s.Rango(ctx, desde, hasta)
	if err != nil {
		return "", err
	}
	return FormatearTexto(resumen), nil
}

// FormatearTexto produces the plain-text layout for a summary.
func FormatearTexto(r *models.Resumen) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Resumen de horas %s - %s\n", displayFecha(r.Desde), displayFecha(r.Hasta))
	fmt.Fprintf(&b, "Total: %.2f h\n", r.TotalHoras)
	fmt.Fprintf(&b, "Visitas: %.2f h\n", r.HorasVisita)
	b.WriteString("\n")

	b.WriteString("Por expediente:\n")
	if len(r.PorExpediente) == 0 {
		b.WriteString("- (sin partes en el rango)\n")
	}
	for _, e := range r.PorExpediente {
		if e.Cliente != "" {
			fmt.Fprintf(&b, "- %s · %s (%s): %.2f h\n", e.Codigo, e.Proyecto, e.Cliente, e.Horas)
		} else {
			fmt.Fprintf(&b, "- %s · %s: %.2f h\n", e.Codigo, e.Proyecto, e.Horas)
		}
	}
	b.WriteString("\n")

	b.WriteString("Próximas entregas:\n")
	if len(r.Entregas) == 0 {
		b.WriteString("- (sin entregas próximas)\n")
	}
	for _, e := range r.Entregas {
		fmt.Fprintf(&b, "- %s · %s · %s\n", e.Codigo, e.Proyecto, displayFecha(e.FechaEntrega))
	}

	return b.String()
}

// displayFecha converts a storage date to DD/MM/YYYY, passing through
// values that do not parse.
func displayFecha(fecha string) string {
	t, err := time.Parse(models.FechaLayout, fecha)
	if err != nil {
		return fecha
	}
	return t.Format(fechaDisplay)
}
