package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// Enable foreign key constraints
	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	// Run migrations inline
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// createTestSchema creates the complete database schema for testing
func createTestSchema(db *sql.DB) error {
	schema := `
	-- Expedientes table
	CREATE TABLE IF NOT EXISTS expedientes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		codigo TEXT NOT NULL UNIQUE,
		proyecto TEXT NOT NULL,
		cliente TEXT NOT NULL DEFAULT '',
		fecha_entrega TEXT NOT NULL DEFAULT '',
		prioridad TEXT NOT NULL DEFAULT 'media',
		estado TEXT NOT NULL DEFAULT 'pendiente',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Tareas table
	CREATE TABLE IF NOT EXISTS tareas (
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
	);

	-- Partes table
	CREATE TABLE IF NOT EXISTS partes (
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
	);

	-- Agenda table
	CREATE TABLE IF NOT EXISTS agenda (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		fecha TEXT NOT NULL,
		tramo TEXT NOT NULL,
		categoria TEXT NOT NULL,
		horas REAL NOT NULL DEFAULT 0,
		expediente_id INTEGER,
		nota TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (expediente_id) REFERENCES expedientes(id) ON DELETE SET NULL
	);

	CREATE INDEX IF NOT EXISTS idx_tareas_expediente ON tareas(expediente_id);
	CREATE INDEX IF NOT EXISTS idx_partes_fecha ON partes(fecha);
	CREATE INDEX IF NOT EXISTS idx_agenda_fecha ON agenda(fecha, tramo);
	`

	_, err := db.Exec(schema)
	return err
}
