package server

import (
	"net/http"
	"time"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/models"
	agendaservice "github.com/ConectaIC/planificador-expedientes-sub000/internal/services/agenda"
	resumenservice "github.com/ConectaIC/planificador-expedientes-sub000/internal/services/resumen"
)

type crearBloqueBody struct {
	Fecha        string  `json:"fecha"`
	Tramo        string  `json:"tramo"`
	Categoria    string  `json:"categoria"`
	Horas        float64 `json:"horas"`
	ExpedienteID *int    `json:"expediente_id"`
	Nota         string  `json:"nota"`
}

func (b *crearBloqueBody) bindForm(f formValues) error {
	b.Fecha = f.str("fecha")
	b.Tramo = f.str("tramo")
	b.Categoria = f.str("categoria")
	b.Horas = f.horas("horas")
	b.ExpedienteID = f.intPtr("expediente_id")
	b.Nota = f.str("nota")
	return nil
}

type actualizarBloqueBody struct {
	Fecha        *string     `json:"fecha"`
	Tramo        *string     `json:"tramo"`
	Categoria    *string     `json:"categoria"`
	Horas        *float64    `json:"horas"`
	Nota         *string     `json:"nota"`
	ExpedienteID optionalRef `json:"expediente_id"`
}

func (b *actualizarBloqueBody) bindForm(f formValues) error {
	b.Fecha = f.strPtr("fecha")
	b.Tramo = f.strPtr("tramo")
	b.Categoria = f.strPtr("categoria")
	b.Horas = f.horasPtr("horas")
	b.Nota = f.strPtr("nota")
	b.ExpedienteID = f.ref("expediente_id")
	return nil
}

// getSemana serves /api/agenda?semana=YYYY-MM-DD&capacidad=8&tarde=1.
// Any date selects its whole week, normalized back to Monday. Capacity and
// the afternoon toggle default from configuration.
func (s *Server) getSemana(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	semana := q.Get("semana")
	if semana == "" {
		semana = time.Now().Format(models.FechaLayout)
	}

	capacidad := s.cfg.Agenda.CapacidadPorDefecto
	if v := q.Get("capacidad"); v != "" {
		capacidad = resumenservice.ParseHoras(v)
	}

	tarde := s.cfg.Agenda.TardePorDefecto
	if v := q.Get("tarde"); v != "" {
		tarde = v == "1" || v == "true"
	}

	vista, err := s.app.Agenda.GetSemana(r.Context(), semana, capacidad, tarde)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, vista)
}

func (s *Server) createBloque(w http.ResponseWriter, r *http.Request) {
	var body crearBloqueBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	bloque, err := s.app.Agenda.CrearBloque(r.Context(), agendaservice.CrearBloqueRequest{
		Fecha:        body.Fecha,
		Tramo:        body.Tramo,
		Categoria:    body.Categoria,
		Horas:        body.Horas,
		ExpedienteID: body.ExpedienteID,
		Nota:         body.Nota,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, http.StatusCreated, bloque)
}

func (s *Server) updateBloque(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var body actualizarBloqueBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	err = s.app.Agenda.ActualizarBloque(r.Context(), agendaservice.ActualizarBloqueRequest{
		BloqueID:     id,
		Fecha:        body.Fecha,
		Tramo:        body.Tramo,
		Categoria:    body.Categoria,
		Horas:        body.Horas,
		Nota:         body.Nota,
		ExpedienteID: body.ExpedienteID.ref(),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, nil)
}

func (s *Server) deleteBloque(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := s.app.Agenda.EliminarBloque(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, nil)
}
