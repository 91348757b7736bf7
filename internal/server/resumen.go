package server

import (
	"net/http"
	"time"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/models"
	resumenservice "github.com/ConectaIC/planificador-expedientes-sub000/internal/services/resumen"
)

// resumenPayload augments the structured summary with the ranked top cases.
type resumenPayload struct {
	*models.Resumen
	Top []models.ResumenExpediente `json:"top"`
}

// resumenFor resolves the query parameters to a summary. fecha selects a
// single day, mes (YYYY-MM) a calendar month, desde/hasta an arbitrary range;
// with none of them the last 7 days are covered.
func (s *Server) resumenFor(r *http.Request) (*models.Resumen, error) {
	q := r.URL.Query()

	if fecha := q.Get("fecha"); fecha != "" {
		return s.app.Resumen.Diario(r.Context(), fecha)
	}
	if mes := q.Get("mes"); mes != "" {
		t, err := time.Parse("2006-01", mes)
		if err != nil {
			return nil, resumenservice.ErrMesInvalido
		}
		return s.app.Resumen.Mensual(r.Context(), t.Year(), t.Month())
	}

	desde := q.Get("desde")
	hasta := q.Get("hasta")
	if desde == "" && hasta == "" {
		hoy := time.Now()
		desde = hoy.AddDate(0, 0, -6).Format(models.FechaLayout)
		hasta = hoy.Format(models.FechaLayout)
	}
	return s.app.Resumen.Rango(r.Context(), desde, hasta)
}

func (s *Server) getResumen(w http.ResponseWriter, r *http.Request) {
	resumen, err := s.resumenFor(r)
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, http.StatusOK, resumenPayload{
		Resumen: resumen,
		Top:     resumenservice.Top(resumen.PorExpediente, resumenservice.TopExpedientes),
	})
}

// getResumenTexto returns the flat text block for the clipboard workflow.
func (s *Server) getResumenTexto(w http.ResponseWriter, r *http.Request) {
	resumen, err := s.resumenFor(r)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(resumenservice.FormatearTexto(resumen)))
}
