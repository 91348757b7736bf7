package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed. Dates are stored as
// YYYY-MM-DD text so lexicographic range filters match calendar order.
func runMigrations(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS expedientes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			codigo TEXT NOT NULL UNIQUE,
			proyecto TEXT NOT NULL,
			cliente TEXT NOT NULL DEFAULT '',
			fecha_entrega TEXT NOT NULL DEFAULT '',
			prioridad TEXT NOT NULL DEFAULT 'media',
			estado TEXT NOT NULL DEFAULT 'pendiente',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS tareas (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			expediente_id INTEGER NOT NULL,
			titulo TEXT NOT NULL,
			horas_estimadas REAL NOT NULL DEFAULT 0,
			horas_reales REAL NOT NULL DEFAULT 0,
			estado TEXT NOT NULL DEFAULT 'pendiente',
			prioridad TEXT NOT NULL DEFAULT 'media',
			fecha_limite TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (expediente_id) REFERENCES expedientes(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS partes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			fecha TEXT NOT NULL,
			hora_inicio TEXT NOT NULL DEFAULT '',
			hora_fin TEXT NOT NULL DEFAULT '',
			horas REAL NOT NULL DEFAULT 0,
			comentario TEXT NOT NULL DEFAULT '',
			expediente_id INTEGER,
			tarea_id INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (expediente_id) REFERENCES expedientes(id) ON DELETE SET NULL,
			FOREIGN KEY (tarea_id) REFERENCES tareas(id) ON DELETE SET NULL
		)`,
		`CREATE TABLE IF NOT EXISTS agenda (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			fecha TEXT NOT NULL,
			tramo TEXT NOT NULL,
			categoria TEXT NOT NULL,
			horas REAL NOT NULL DEFAULT 0,
			expediente_id INTEGER,
			nota TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (expediente_id) REFERENCES expedientes(id) ON DELETE SET NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tareas_expediente ON tareas(expediente_id)`,
		`CREATE INDEX IF NOT EXISTS idx_partes_fecha ON partes(fecha)`,
		`CREATE INDEX IF NOT EXISTS idx_partes_expediente ON partes(expediente_id)`,
		`CREATE INDEX IF NOT EXISTS idx_agenda_fecha ON agenda(fecha, tramo)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}
