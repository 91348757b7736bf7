package models

// ResumenExpediente is an amount of hours aggregated under one expediente.
type ResumenExpediente struct {
	Codigo   string
	Proyecto string
	Cliente  string
	Horas    float64
}

// Resumen is the hours summary over a closed date interval.
type Resumen struct {
	Desde         string
	Hasta         string
	TotalHoras    float64
	HorasVisita   float64
	PorExpediente []ResumenExpediente
	Entregas      []EntregaProxima
}
