package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/models"
)

// AgendaRepo handles all schedule-block database operations.
type AgendaRepo struct {
	db *sql.DB
}

const bloqueColumns = `id, fecha, tramo, categoria, horas, expediente_id, nota, created_at`

func scanBloque(row interface{ Scan(...any) error }) (*models.Bloque, error) {
	b := &models.Bloque{}
	var expedienteID sql.NullInt64
	err := row.Scan(
		&b.ID, &b.Fecha, &b.Tramo, &b.Categoria,
		&b.Horas, &expedienteID, &b.Nota, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.ExpedienteID = nullIntToPtr(expedienteID)
	return b, nil
}

// Create inserts a new agenda block and returns it with generated fields.
func (r *AgendaRepo) Create(ctx context.Context, b *models.Bloque) (*models.Bloque, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO agenda (fecha, tramo, categoria, horas, expediente_id, nota)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		b.Fecha, b.Tramo, b.Categoria, b.Horas, ptrToNullInt(b.ExpedienteID), b.Nota,
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

// GetByID retrieves a single agenda block by primary key.
func (r *AgendaRepo) GetByID(ctx context.Context, id int) (*models.Bloque, error) {
	b, err := scanBloque(r.db.QueryRowContext(ctx,
		`SELECT `+bloqueColumns+` FROM agenda WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrBloqueNotFound
	}
	return b, err
}

// GetRango retrieves agenda blocks with desde <= fecha <= hasta, both ends
// inclusive, ordered by fecha, tramo and insertion order.
func (r *AgendaRepo) GetRango(ctx context.Context, desde, hasta string) ([]*models.Bloque, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+bloqueColumns+` FROM agenda
		 WHERE fecha >= ? AND fecha <= ?
		 ORDER BY fecha, tramo, id`,
		desde, hasta,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bloques []*models.Bloque
	for rows.Next() {
		b, err := scanBloque(rows)
		if err != nil {
			return nil, err
		}
		bloques = append(bloques, b)
	}

	return bloques, rows.Err()
}

// Update applies non-nil fields to an existing agenda block.
func (r *AgendaRepo) Update(ctx context.Context, id int, fecha, tramo, categoria, nota *string, horas *float64, expedienteID **int) error {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if fecha != nil {
		current.Fecha = *fecha
	}
	if tramo != nil {
		current.Tramo = *tramo
	}
	if categoria != nil {
		current.Categoria = *categoria
	}
	if nota != nil {
		current.Nota = *nota
	}
	if horas != nil {
		current.Horas = *horas
	}
	if expedienteID != nil {
		current.ExpedienteID = *expedienteID
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE agenda
		 SET fecha = ?, tramo = ?, categoria = ?, horas = ?, expediente_id = ?, nota = ?
		 WHERE id = ?`,
		current.Fecha, current.Tramo, current.Categoria, current.Horas,
		ptrToNullInt(current.ExpedienteID), current.Nota, id,
	)
	return err
}

// Delete removes an agenda block from the database.
func (r *AgendaRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM agenda WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrBloqueNotFound
	}
	return nil
}
