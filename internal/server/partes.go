package server

import (
	"net/http"
	"strconv"

	parteservice "github.com/ConectaIC/planificador-expedientes-sub000/internal/services/parte"
)

type crearParteBody struct {
	Fecha            string   `json:"fecha"`
	HoraInicio       string   `json:"hora_inicio"`
	HoraFin          string   `json:"hora_fin"`
	Horas            *float64 `json:"horas"`
	Comentario       string   `json:"comentario"`
	CodigoExpediente string   `json:"codigo_expediente"`
	ExpedienteID     *int     `json:"expediente_id"`
	TareaID          *int     `json:"tarea_id"`
}

func (b *crearParteBody) bindForm(f formValues) error {
	b.Fecha = f.str("fecha")
	b.HoraInicio = f.str("hora_inicio")
	b.HoraFin = f.str("hora_fin")
	b.Horas = f.horasPtr("horas")
	b.Comentario = f.str("comentario")
	b.CodigoExpediente = f.str("codigo_expediente")
	b.ExpedienteID = f.intPtr("expediente_id")
	b.TareaID = f.intPtr("tarea_id")
	return nil
}

type actualizarParteBody struct {
	Fecha        *string     `json:"fecha"`
	HoraInicio   *string     `json:"hora_inicio"`
	HoraFin      *string     `json:"hora_fin"`
	Horas        *float64    `json:"horas"`
	Comentario   *string     `json:"comentario"`
	ExpedienteID optionalRef `json:"expediente_id"`
	TareaID      optionalRef `json:"tarea_id"`
}

func (b *actualizarParteBody) bindForm(f formValues) error {
	b.Fecha = f.strPtr("fecha")
	b.HoraInicio = f.strPtr("hora_inicio")
	b.HoraFin = f.strPtr("hora_fin")
	b.Horas = f.horasPtr("horas")
	b.Comentario = f.strPtr("comentario")
	b.ExpedienteID = f.ref("expediente_id")
	b.TareaID = f.ref("tarea_id")
	return nil
}

// listPartes serves /api/partes?desde=YYYY-MM-DD&hasta=YYYY-MM-DD, both ends
// inclusive, or /api/partes?expediente_id=N for a single case's entries.
func (s *Server) listPartes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if v := q.Get("expediente_id"); v != "" {
		expedienteID, err := strconv.Atoi(v)
		if err != nil || expedienteID <= 0 {
			respondError(w, errBadID)
			return
		}
		partes, err := s.app.Partes.GetPartesByExpediente(r.Context(), expedienteID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondOK(w, http.StatusOK, partes)
		return
	}

	partes, err := s.app.Partes.GetPartesRango(r.Context(), q.Get("desde"), q.Get("hasta"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, partes)
}

func (s *Server) createParte(w http.ResponseWriter, r *http.Request) {
	var body crearParteBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	parte, err := s.app.Partes.CrearParte(r.Context(), parteservice.CrearParteRequest{
		Fecha:            body.Fecha,
		HoraInicio:       body.HoraInicio,
		HoraFin:          body.HoraFin,
		Horas:            body.Horas,
		Comentario:       body.Comentario,
		CodigoExpediente: body.CodigoExpediente,
		ExpedienteID:     body.ExpedienteID,
		TareaID:          body.TareaID,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, http.StatusCreated, parte)
}

func (s *Server) updateParte(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var body actualizarParteBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	err = s.app.Partes.ActualizarParte(r.Context(), parteservice.ActualizarParteRequest{
		ParteID:      id,
		Fecha:        body.Fecha,
		HoraInicio:   body.HoraInicio,
		HoraFin:      body.HoraFin,
		Horas:        body.Horas,
		Comentario:   body.Comentario,
		ExpedienteID: body.ExpedienteID.ref(),
		TareaID:      body.TareaID.ref(),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, nil)
}

func (s *Server) deleteParte(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := s.app.Partes.EliminarParte(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, http.StatusOK, nil)
}
