package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/models"
	agendaservice "github.com/ConectaIC/planificador-expedientes-sub000/internal/services/agenda"
	expedienteservice "github.com/ConectaIC/planificador-expedientes-sub000/internal/services/expediente"
	parteservice "github.com/ConectaIC/planificador-expedientes-sub000/internal/services/parte"
	resumenservice "github.com/ConectaIC/planificador-expedientes-sub000/internal/services/resumen"
	tareaservice "github.com/ConectaIC/planificador-expedientes-sub000/internal/services/tarea"
)

// envelope is the uniform response body: a success flag plus either the
// payload or a human-readable message.
type envelope struct {
	OK    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func respondOK(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{OK: true, Data: data})
}

// respondError maps a service error to its HTTP status. Store failures keep
// their message verbatim.
func respondError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusFor(err))
	_ = json.NewEncoder(w).Encode(envelope{OK: false, Error: err.Error()})
}

// notFoundErrs map to 404.
var notFoundErrs = []error{
	models.ErrExpedienteNotFound,
	models.ErrTareaNotFound,
	models.ErrParteNotFound,
	models.ErrBloqueNotFound,
}

// badRequestErrs collects the services' validation sentinels, all of which
// map to 400 with their user-facing message.
var badRequestErrs = []error{
	errBadID,
	errBadBody,
	expedienteservice.ErrInvalidExpedienteID,
	expedienteservice.ErrCodigoRequerido,
	expedienteservice.ErrProyectoRequerido,
	expedienteservice.ErrEstadoInvalido,
	expedienteservice.ErrPrioridadInvalida,
	expedienteservice.ErrFechaInvalida,
	expedienteservice.ErrCodigoDuplicado,
	tareaservice.ErrInvalidTareaID,
	tareaservice.ErrTituloRequerido,
	tareaservice.ErrTituloDemasiado,
	tareaservice.ErrEstadoInvalido,
	tareaservice.ErrPrioridadInvalida,
	tareaservice.ErrFechaInvalida,
	tareaservice.ErrHorasNegativas,
	tareaservice.ErrSinExpediente,
	parteservice.ErrInvalidParteID,
	parteservice.ErrFechaRequerida,
	parteservice.ErrFechaInvalida,
	parteservice.ErrHoraInvalida,
	parteservice.ErrHorasNegativas,
	parteservice.ErrSinHoras,
	parteservice.ErrTareaSinCaso,
	agendaservice.ErrInvalidBloqueID,
	agendaservice.ErrFechaRequerida,
	agendaservice.ErrFechaInvalida,
	agendaservice.ErrTramoInvalido,
	agendaservice.ErrCategoriaInvalida,
	agendaservice.ErrHorasInvalidas,
	agendaservice.ErrCapacidadInvalida,
	resumenservice.ErrFechaInvalida,
	resumenservice.ErrRangoInvalido,
	resumenservice.ErrMesInvalido,
}

func statusFor(err error) int {
	for _, target := range notFoundErrs {
		if errors.Is(err, target) {
			return http.StatusNotFound
		}
	}
	for _, target := range badRequestErrs {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

var (
	errBadID   = errors.New("id no válido")
	errBadBody = errors.New("cuerpo de petición no válido")
)

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}

// decodeBody binds a JSON or form body into dst. Form bodies go through the
// dst's bindForm hook so conventional field names keep working for browser
// submissions.
func decodeBody(r *http.Request, dst interface {
	bindForm(formValues) error
}) error {
	ct := r.Header.Get("Content-Type")
	if strings.Contains(ct, "application/json") || ct == "" {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return errBadBody
		}
		return nil
	}
	if err := r.ParseForm(); err != nil {
		return errBadBody
	}
	return dst.bindForm(formValues{r.PostForm})
}
