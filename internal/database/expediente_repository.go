package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/models"
)

// ExpedienteRepo handles all expediente-related database operations.
type ExpedienteRepo struct {
	db *sql.DB
}

const expedienteColumns = `id, codigo, proyecto, cliente, fecha_entrega, prioridad, estado, created_at, updated_at`

func scanExpediente(row interface{ Scan(...any) error }) (*models.Expediente, error) {
	e := &models.Expediente{}
	err := row.Scan(
		&e.ID, &e.Codigo, &e.Proyecto, &e.Cliente,
		&e.FechaEntrega, &e.Prioridad, &e.Estado,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Create inserts a new expediente and returns it with generated fields.
func (r *ExpedienteRepo) Create(ctx context.Context, e *models.Expediente) (*models.Expediente, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO expedientes (codigo, proyecto, cliente, fecha_entrega, prioridad, estado)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Codigo, e.Proyecto, e.Cliente, e.FechaEntrega, e.Prioridad, e.Estado,
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

// GetAll retrieves expedientes, optionally filtered by estado, ordered by
// fecha_entrega with open-ended ones last.
func (r *ExpedienteRepo) GetAll(ctx context.Context, estado string) ([]*models.Expediente, error) {
	query := `SELECT ` + expedienteColumns + ` FROM expedientes`
	args := []any{}
	if estado != "" {
		query += ` WHERE estado = ?`
		args = append(args, estado)
	}
	query += ` ORDER BY CASE WHEN fecha_entrega = '' THEN 1 ELSE 0 END, fecha_entrega, codigo`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expedientes []*models.Expediente
	for rows.Next() {
		e, err := scanExpediente(rows)
		if err != nil {
			return nil, err
		}
		expedientes = append(expedientes, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return expedientes, nil
}

// GetByID retrieves a single expediente by primary key.
func (r *ExpedienteRepo) GetByID(ctx context.Context, id int) (*models.Expediente, error) {
	e, err := scanExpediente(r.db.QueryRowContext(ctx,
		`SELECT `+expedienteColumns+` FROM expedientes WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrExpedienteNotFound
	}
	return e, err
}

// GetByCodigo retrieves a single expediente by its unique human code.
func (r *ExpedienteRepo) GetByCodigo(ctx context.Context, codigo string) (*models.Expediente, error) {
	e, err := scanExpediente(r.db.QueryRowContext(ctx,
		`SELECT `+expedienteColumns+` FROM expedientes WHERE codigo = ?`, codigo,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrExpedienteNotFound
	}
	return e, err
}

// Search retrieves expedientes whose codigo, proyecto or cliente contains the
// given text, case-insensitively.
func (r *ExpedienteRepo) Search(ctx context.Context, texto string) ([]*models.Expediente, error) {
	pattern := "%" + texto + "%"
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+expedienteColumns+` FROM expedientes
		 WHERE codigo LIKE ? OR proyecto LIKE ? OR cliente LIKE ?
		 ORDER BY codigo`,
		pattern, pattern, pattern,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expedientes []*models.Expediente
	for rows.Next() {
		e, err := scanExpediente(rows)
		if err != nil {
			return nil, err
		}
		expedientes = append(expedientes, e)
	}

	return expedientes, rows.Err()
}

// GetEntregasDesde retrieves undelivered expedientes whose due date is on or
// after fecha, ordered by due date. Used for the "Próximas entregas" section.
func (r *ExpedienteRepo) GetEntregasDesde(ctx context.Context, fecha string, limit int) ([]*models.EntregaProxima, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT codigo, proyecto, fecha_entrega FROM expedientes
		 WHERE fecha_entrega <> '' AND fecha_entrega >= ? AND estado NOT IN (?, ?)
		 ORDER BY fecha_entrega, codigo
		 LIMIT ?`,
		fecha, models.EstadoEntregado, models.EstadoCerrado, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entregas []*models.EntregaProxima
	for rows.Next() {
		e := &models.EntregaProxima{}
		if err := rows.Scan(&e.Codigo, &e.Proyecto, &e.FechaEntrega); err != nil {
			return nil, err
		}
		entregas = append(entregas, e)
	}

	return entregas, rows.Err()
}

// Update applies non-nil fields to an existing expediente.
// Nil pointers leave the stored value untouched.
func (r *ExpedienteRepo) Update(ctx context.Context, id int, codigo, proyecto, cliente, fechaEntrega, prioridad, estado *string) error {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&current.Codigo, codigo)
	apply(&current.Proyecto, proyecto)
	apply(&current.Cliente, cliente)
	apply(&current.FechaEntrega, fechaEntrega)
	apply(&current.Prioridad, prioridad)
	apply(&current.Estado, estado)

	_, err = r.db.ExecContext(ctx,
		`UPDATE expedientes
		 SET codigo = ?, proyecto = ?, cliente = ?, fecha_entrega = ?, prioridad = ?, estado = ?,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		current.Codigo, current.Proyecto, current.Cliente,
		current.FechaEntrega, current.Prioridad, current.Estado, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update expediente %d: %w", id, err)
	}
	return nil
}

// Delete removes an expediente. Tareas cascade; partes keep their row with
// the reference cleared.
func (r *ExpedienteRepo) Delete(ctx context.Context, id int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM expedientes WHERE id = ?`, id)
		if err != nil {
			return err
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return models.ErrExpedienteNotFound
		}
		return nil
	})
}
