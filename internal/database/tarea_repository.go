package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/models"
)

// TareaRepo handles all tarea-related database operations.
type TareaRepo struct {
	db *sql.DB
}

const tareaColumns = `id, expediente_id, titulo, horas_estimadas, horas_reales, estado, prioridad, fecha_limite, created_at, updated_at`

func scanTarea(row interface{ Scan(...any) error }) (*models.Tarea, error) {
	t := &models.Tarea{}
	err := row.Scan(
		&t.ID, &t.ExpedienteID, &t.Titulo,
		&t.HorasEstimadas, &t.HorasReales,
		&t.Estado, &t.Prioridad, &t.FechaLimite,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Create inserts a new tarea and returns it with generated fields.
func (r *TareaRepo) Create(ctx context.Context, t *models.Tarea) (*models.Tarea, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tareas (expediente_id, titulo, horas_estimadas, horas_reales, estado, prioridad, fecha_limite)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ExpedienteID, t.Titulo, t.HorasEstimadas, t.HorasReales, t.Estado, t.Prioridad, t.FechaLimite,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, int(id))
}

// GetByID retrieves a single tarea by primary key.
func (r *TareaRepo) GetByID(ctx context.Context, id int) (*models.Tarea, error) {
	t, err := scanTarea(r.db.QueryRowContext(ctx,
		`SELECT `+tareaColumns+` FROM tareas WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrTareaNotFound
	}
	return t, err
}

// GetByExpediente retrieves all tareas for an expediente, due-date first.
func (r *TareaRepo) GetByExpediente(ctx context.Context, expedienteID int) ([]*models.Tarea, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+tareaColumns+` FROM tareas
		 WHERE expediente_id = ?
		 ORDER BY CASE WHEN fecha_limite = '' THEN 1 ELSE 0 END, fecha_limite, id`,
		expedienteID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tareas []*models.Tarea
	for rows.Next() {
		t, err := scanTarea(rows)
		if err != nil {
			return nil, err
		}
		tareas = append(tareas, t)
	}

	return tareas, rows.Err()
}

// Update applies non-nil fields to an existing tarea.
func (r *TareaRepo) Update(ctx context.Context, id int, titulo, estado, prioridad, fechaLimite *string, horasEstimadas, horasReales *float64) error {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if titulo != nil {
		current.Titulo = *titulo
	}
	if estado != nil {
		current.Estado = *estado
	}
	if prioridad != nil {
		current.Prioridad = *prioridad
	}
	if fechaLimite != nil {
		current.FechaLimite = *fechaLimite
	}
	if horasEstimadas != nil {
		current.HorasEstimadas = *horasEstimadas
	}
	if horasReales != nil {
		current.HorasReales = *horasReales
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE tareas
		 SET titulo = ?, horas_estimadas = ?, horas_reales = ?, estado = ?, prioridad = ?, fecha_limite = ?,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		current.Titulo, current.HorasEstimadas, current.HorasReales,
		current.Estado, current.Prioridad, current.FechaLimite, id,
	)
	return err
}

// SumarHorasReales adds horas to the logged hours of a tarea. Used when a
// parte is registered against it.
func (r *TareaRepo) SumarHorasReales(ctx context.Context, id int, horas float64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tareas
		 SET horas_reales = horas_reales + ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		horas, id,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrTareaNotFound
	}
	return nil
}

// Delete removes a tarea from the database.
func (r *TareaRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tareas WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrTareaNotFound
	}
	return nil
}
