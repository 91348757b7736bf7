package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	expedienteservice "github.com/ConectaIC/planificador-expedientes-sub000/internal/services/expediente"
)

// crearExpedienteBody mirrors the conventional form/JSON field names.
type crearExpedienteBody struct {
	Codigo       string `json:"codigo"`
	Proyecto     string `json:"proyecto"`
	Cliente      string `json:"cliente"`
	FechaEntrega string `json:"fecha_entrega"`
	Prioridad    string `json:"prioridad"`
	Estado       string `json:"estado"`
}

func (b *crearExpedienteBody) bindForm(f formValues) error {
	b.Codigo = f.str("codigo")
	b.Proyecto = f.str("proyecto")
	b.Cliente = f.str("cliente")
	b.FechaEntrega = f.str("fecha_entrega")
	b.Prioridad = f.str("prioridad")
	b.Estado = f.str("estado")
	return nil
}

type actualizarExpedienteBody struct {
	Codigo       *string `json:"codigo"`
	Proyecto     *string `json:"proyecto"`
	Cliente      *string `json:"cliente"`
	FechaEntrega *string `json:"fecha_entrega"`
	Prioridad    *string `json:"prioridad"`
	Estado       *string `json:"estado"`
}

func (b *actualizarExpedienteBody) bindForm(f formValues) error {
	b.Codigo = f.strPtr("codigo")
	b.Proyecto = f.strPtr("proyecto")
	b.Cliente = f.strPtr("cliente")
	b.FechaEntrega = f.strPtr("fecha_entrega")
	b.Prioridad = f.strPtr("prioridad")
	b.Estado = f.strPtr("estado")
	return nil
}

func (s *Server) listExpedientes(w http.ResponseWriter, r *http.Request) {
	estado := r.URL.Query().Get("estado")
	buscar := r.URL.Query().Get("buscar")

	expedientes, err := s.app.Expedientes.GetExpedientes(r.Context(), estado, buscar)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, expedientes)
}

func (s *Server) createExpediente(w http.ResponseWriter, r *http.Request) {
	var body crearExpedienteBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	exp, err := s.app.Expedientes.CrearExpediente(r.Context(), expedienteservice.CrearExpedienteRequest{
		Codigo:       body.Codigo,
		Proyecto:     body.Proyecto,
		Cliente:      body.Cliente,
		FechaEntrega: body.FechaEntrega,
		Prioridad:    body.Prioridad,
		Estado:       body.Estado,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, http.StatusCreated, exp)
}

func (s *Server) getExpediente(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	exp, err := s.app.Expedientes.GetExpediente(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, exp)
}

func (s *Server) getExpedientePorCodigo(w http.ResponseWriter, r *http.Request) {
	exp, err := s.app.Expedientes.GetExpedientePorCodigo(r.Context(), chi.URLParam(r, "codigo"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, exp)
}

func (s *Server) listTareasDeExpediente(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	tareas, err := s.app.Tareas.GetTareasByExpediente(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, tareas)
}

func (s *Server) listPartesDeExpediente(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	partes, err := s.app.Partes.GetPartesByExpediente(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, partes)
}

func (s *Server) updateExpediente(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var body actualizarExpedienteBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	err = s.app.Expedientes.ActualizarExpediente(r.Context(), expedienteservice.ActualizarExpedienteRequest{
		ExpedienteID: id,
		Codigo:       body.Codigo,
		Proyecto:     body.Proyecto,
		Cliente:      body.Cliente,
		FechaEntrega: body.FechaEntrega,
		Prioridad:    body.Prioridad,
		Estado:       body.Estado,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, nil)
}

func (s *Server) deleteExpediente(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := s.app.Expedientes.EliminarExpediente(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, nil)
}
