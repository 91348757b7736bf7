package models

// ============================================================================
// EXPEDIENTE STATE CONSTANTS
// ============================================================================

// Estado values for expedientes
const (
	EstadoPendiente  = "pendiente"
	EstadoEnCurso    = "en_curso"
	EstadoEnRevision = "en_revision"
	EstadoEntregado  = "entregado"
	EstadoCerrado    = "cerrado"
)

// EstadosExpediente lists the valid expediente states in workflow order.
var EstadosExpediente = []string{
	EstadoPendiente,
	EstadoEnCurso,
	EstadoEnRevision,
	EstadoEntregado,
	EstadoCerrado,
}

// ============================================================================
// TAREA STATE CONSTANTS
// ============================================================================

// Estado values for tareas
const (
	EstadoTareaPendiente  = "pendiente"
	EstadoTareaEnCurso    = "en_curso"
	EstadoTareaCompletada = "completada"
)

// EstadosTarea lists the valid tarea states.
var EstadosTarea = []string{
	EstadoTareaPendiente,
	EstadoTareaEnCurso,
	EstadoTareaCompletada,
}

// ============================================================================
// PRIORITY CONSTANTS
// ============================================================================

// Prioridad values shared by expedientes and tareas
const (
	PrioridadBaja  = "baja"
	PrioridadMedia = "media"
	PrioridadAlta  = "alta"
)

// Prioridades lists the valid priorities, lowest first.
var Prioridades = []string{PrioridadBaja, PrioridadMedia, PrioridadAlta}

// ============================================================================
// AGENDA CONSTANTS
// ============================================================================

// Tramo values for agenda blocks
const (
	TramoManana = "manana"
	TramoTarde  = "tarde"
)

// Categoria values for agenda blocks
const (
	CategoriaObra    = "obra"
	CategoriaRedes   = "redes"
	CategoriaGestion = "gestion"
	CategoriaAdmin   = "admin"
	CategoriaVisita  = "visita"
)

// CategoriasAgenda lists the valid agenda block categories.
var CategoriasAgenda = []string{
	CategoriaObra,
	CategoriaRedes,
	CategoriaGestion,
	CategoriaAdmin,
	CategoriaVisita,
}

// ============================================================================
// SENTINEL LABELS
// ============================================================================

// Labels used when a parte has no usable expediente reference. Aggregations
// group such entries instead of dropping them.
const (
	CodigoSinExpediente   = "—"
	ProyectoSinExpediente = "Sin expediente"
)

// FechaLayout is the wire and storage layout for calendar dates.
const FechaLayout = "2006-01-02"

// HoraLayout is the wire layout for clock times on partes.
const HoraLayout = "15:04"
