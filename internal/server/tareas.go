package server

import (
	"net/http"
	"strconv"

	tareaservice "github.com/ConectaIC/planificador-expedientes-sub000/internal/services/tarea"
)

type crearTareaBody struct {
	ExpedienteID     int     `json:"expediente_id"`
	CodigoExpediente string  `json:"codigo_expediente"`
	Titulo           string  `json:"titulo"`
	HorasEstimadas   float64 `json:"horas_estimadas"`
	Estado           string  `json:"estado"`
	Prioridad        string  `json:"prioridad"`
	FechaLimite      string  `json:"fecha_limite"`
}

func (b *crearTareaBody) bindForm(f formValues) error {
	if id := f.intPtr("expediente_id"); id != nil {
		b.ExpedienteID = *id
	}
	b.CodigoExpediente = f.str("codigo_expediente")
	b.Titulo = f.str("titulo")
	b.HorasEstimadas = f.horas("horas_estimadas")
	b.Estado = f.str("estado")
	b.Prioridad = f.str("prioridad")
	b.FechaLimite = f.str("fecha_limite")
	return nil
}

type actualizarTareaBody struct {
	Titulo         *string  `json:"titulo"`
	Estado         *string  `json:"estado"`
	Prioridad      *string  `json:"prioridad"`
	FechaLimite    *string  `json:"fecha_limite"`
	HorasEstimadas *float64 `json:"horas_estimadas"`
	HorasReales    *float64 `json:"horas_reales"`
}

func (b *actualizarTareaBody) bindForm(f formValues) error {
	b.Titulo = f.strPtr("titulo")
	b.Estado = f.strPtr("estado")
	b.Prioridad = f.strPtr("prioridad")
	b.FechaLimite = f.strPtr("fecha_limite")
	b.HorasEstimadas = f.horasPtr("horas_estimadas")
	b.HorasReales = f.horasPtr("horas_reales")
	return nil
}

// listTareas serves /api/tareas?expediente_id=N.
func (s *Server) listTareas(w http.ResponseWriter, r *http.Request) {
	expedienteID, err := strconv.Atoi(r.URL.Query().Get("expediente_id"))
	if err != nil || expedienteID <= 0 {
		respondError(w, errBadID)
		return
	}

	tareas, err := s.app.Tareas.GetTareasByExpediente(r.Context(), expedienteID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, tareas)
}

func (s *Server) createTarea(w http.ResponseWriter, r *http.Request) {
	var body crearTareaBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	tarea, err := s.app.Tareas.CrearTarea(r.Context(), tareaservice.CrearTareaRequest{
		ExpedienteID:     body.ExpedienteID,
		CodigoExpediente: body.CodigoExpediente,
		Titulo:           body.Titulo,
		HorasEstimadas:   body.HorasEstimadas,
		Estado:           body.Estado,
		Prioridad:        body.Prioridad,
		FechaLimite:      body.FechaLimite,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, http.StatusCreated, tarea)
}

func (s *Server) updateTarea(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var body actualizarTareaBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	err = s.app.Tareas.ActualizarTarea(r.Context(), tareaservice.ActualizarTareaRequest{
		TareaID:        id,
		Titulo:         body.Titulo,
		Estado:         body.Estado,
		Prioridad:      body.Prioridad,
		FechaLimite:    body.FechaLimite,
		HorasEstimadas: body.HorasEstimadas,
		HorasReales:    body.HorasReales,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, nil)
}

func (s *Server) deleteTarea(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := s.app.Tareas.EliminarTarea(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, nil)
}
