package config

import (
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Server.Addr)
	}
	if !reflect.DeepEqual(cfg.Agenda.Capacidades, []float64{6, 8, 10}) {
		t.Errorf("Capacidades = %v", cfg.Agenda.Capacidades)
	}
	if cfg.Agenda.CapacidadPorDefecto != 8 || !cfg.Agenda.TardePorDefecto {
		t.Errorf("agenda defaults = %+v", cfg.Agenda)
	}
	if !reflect.DeepEqual(cfg.Resumen.PalabrasVisita, []string{"visita"}) {
		t.Errorf("PalabrasVisita = %v", cfg.Resumen.PalabrasVisita)
	}
}

func TestParsePartial(t *testing.T) {
	data := []byte(`
server:
  addr: ":9090"
agenda:
  capacidad_por_defecto: 6
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Agenda.CapacidadPorDefecto != 6 {
		t.Errorf("CapacidadPorDefecto = %v, want 6", cfg.Agenda.CapacidadPorDefecto)
	}
	// Omitted sections keep their defaults.
	if !reflect.DeepEqual(cfg.Agenda.Capacidades, []float64{6, 8, 10}) {
		t.Errorf("Capacidades = %v", cfg.Agenda.Capacidades)
	}
	if !reflect.DeepEqual(cfg.Resumen.PalabrasVisita, []string{"visita"}) {
		t.Errorf("PalabrasVisita = %v", cfg.Resumen.PalabrasVisita)
	}
}

func TestParseCompleto(t *testing.T) {
	data := []byte(`
server:
  addr: ":3000"
database:
  path: /tmp/planificador.db
agenda:
  capacidades: [4, 8]
  capacidad_por_defecto: 4
  tarde_por_defecto: false
resumen:
  palabras_visita: [visita, obra, replanteo]
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Database.Path != "/tmp/planificador.db" {
		t.Errorf("Path = %q", cfg.Database.Path)
	}
	if !reflect.DeepEqual(cfg.Agenda.Capacidades, []float64{4, 8}) {
		t.Errorf("Capacidades = %v", cfg.Agenda.Capacidades)
	}
	if cfg.Agenda.TardePorDefecto {
		t.Error("TardePorDefecto = true, want false")
	}
	if !reflect.DeepEqual(cfg.Resumen.PalabrasVisita, []string{"visita", "obra", "replanteo"}) {
		t.Errorf("PalabrasVisita = %v", cfg.Resumen.PalabrasVisita)
	}
}

func TestParseInvalido(t *testing.T) {
	if _, err := Parse([]byte("server: [esto no es un mapa")); err == nil {
		t.Error("expected an error for malformed yaml")
	}
}
