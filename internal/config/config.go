package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Agenda   AgendaConfig   `yaml:"agenda"`
	Resumen  ResumenConfig  `yaml:"resumen"`
}

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig holds the SQLite settings. An empty path falls back to
// ~/.planificador/planificador.db.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// AgendaConfig holds the weekly capacity settings
type AgendaConfig struct {
	Capacidades         []float64 `yaml:"capacidades"`
	CapacidadPorDefecto float64   `yaml:"capacidad_por_defecto"`
	TardePorDefecto     bool      `yaml:"tarde_por_defecto"`
}

// ResumenConfig holds the summary settings. PalabrasVisita is the substring
// keyword list for visit detection on tarea titles.
type ResumenConfig struct {
	PalabrasVisita []string `yaml:"palabras_visita"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Addr: ":8080"},
		Database: DatabaseConfig{Path: ""},
		Agenda: AgendaConfig{
			Capacidades:         []float64{6, 8, 10},
			CapacidadPorDefecto: 8,
			TardePorDefecto:     true,
		},
		Resumen: ResumenConfig{PalabrasVisita: []string{"visita"}},
	}
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return Default(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes YAML config bytes over the defaults, so partial files work.
func Parse(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	if len(config.Agenda.Capacidades) == 0 {
		config.Agenda.Capacidades = Default().Agenda.Capacidades
	}
	if config.Agenda.CapacidadPorDefecto == 0 {
		config.Agenda.CapacidadPorDefecto = Default().Agenda.CapacidadPorDefecto
	}
	if len(config.Resumen.PalabrasVisita) == 0 {
		config.Resumen.PalabrasVisita = Default().Resumen.PalabrasVisita
	}
	return config, nil
}

// getConfigPath returns ~/.config/planificador/config.yaml
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "planificador", "config.yaml"), nil
}
