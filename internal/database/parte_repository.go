package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/models"
)

// ParteRepo handles all time-entry database operations.
type ParteRepo struct {
	db *sql.DB
}

const parteColumns = `id, fecha, hora_inicio, hora_fin, horas, comentario, expediente_id, tarea_id, created_at, updated_at`

func scanParte(row interface{ Scan(...any) error }) (*models.Parte, error) {
	p := &models.Parte{}
	var expedienteID, tareaID sql.NullInt64
	err := row.Scan(
		&p.ID, &p.Fecha, &p.HoraInicio, &p.HoraFin,
		&p.Horas, &p.Comentario, &expedienteID, &tareaID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.ExpedienteID = nullIntToPtr(expedienteID)
	p.TareaID = nullIntToPtr(tareaID)
	return p, nil
}

// Create inserts a new parte and returns it with generated fields.
func (r *ParteRepo) Create(ctx context.Context, p *models.Parte) (*models.Parte, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO partes (fecha, hora_inicio, hora_fin, horas, comentario, expediente_id, tarea_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Fecha, p.HoraInicio, p.HoraFin, p.Horas, p.Comentario,
		ptrToNullInt(p.ExpedienteID), ptrToNullInt(p.TareaID),
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

// GetByID retrieves a single parte by primary key.
func (r *ParteRepo) GetByID(ctx context.Context, id int) (*models.Parte, error) {
	p, err := scanParte(r.db.QueryRowContext(ctx,
		`SELECT `+parteColumns+` FROM partes WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrParteNotFound
	}
	return p, err
}

// GetRango retrieves partes with desde <= fecha <= hasta, both ends
// inclusive, with the expediente and tarea labels embedded. Ordered by fecha
// then insertion order; aggregation group order follows this fetch order.
func (r *ParteRepo) GetRango(ctx context.Context, desde, hasta string) ([]*models.ParteDetalle, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.fecha, p.hora_inicio, p.hora_fin, p.horas, p.comentario,
		        p.expediente_id, p.tarea_id, p.created_at, p.updated_at,
		        e.codigo, e.proyecto, e.cliente, t.titulo
		 FROM partes p
		 LEFT JOIN expedientes e ON e.id = p.expediente_id
		 LEFT JOIN tareas t ON t.id = p.tarea_id
		 WHERE p.fecha >= ? AND p.fecha <= ?
		 ORDER BY p.fecha, p.id`,
		desde, hasta,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partes []*models.ParteDetalle
	for rows.Next() {
		d := &models.ParteDetalle{}
		var expedienteID, tareaID sql.NullInt64
		var codigo, proyecto, cliente, titulo sql.NullString
		err := rows.Scan(
			&d.ID, &d.Fecha, &d.HoraInicio, &d.HoraFin, &d.Horas, &d.Comentario,
			&expedienteID, &tareaID, &d.CreatedAt, &d.UpdatedAt,
			&codigo, &proyecto, &cliente, &titulo,
		)
		if err != nil {
			return nil, err
		}
		d.ExpedienteID = nullIntToPtr(expedienteID)
		d.TareaID = nullIntToPtr(tareaID)
		d.CodigoExpediente = nullStringToString(codigo)
		d.Proyecto = nullStringToString(proyecto)
		d.Cliente = nullStringToString(cliente)
		d.TituloTarea = nullStringToString(titulo)
		partes = append(partes, d)
	}

	return partes, rows.Err()
}

// GetByExpediente retrieves all partes logged against an expediente.
func (r *ParteRepo) GetByExpediente(ctx context.Context, expedienteID int) ([]*models.Parte, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+parteColumns+` FROM partes WHERE expediente_id = ? ORDER BY fecha, id`,
		expedienteID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partes []*models.Parte
	for rows.Next() {
		p, err := scanParte(rows)
		if err != nil {
			return nil, err
		}
		partes = append(partes, p)
	}

	return partes, rows.Err()
}

// Update applies non-nil fields to an existing parte.
func (r *ParteRepo) Update(ctx context.Context, id int, fecha, horaInicio, horaFin, comentario *string, horas *float64, expedienteID, tareaID **int) error {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if fecha != nil {
		current.Fecha = *fecha
	}
	if horaInicio != nil {
		current.HoraInicio = *horaInicio
	}
	if horaFin != nil {
		current.HoraFin = *horaFin
	}
	if comentario != nil {
		current.Comentario = *comentario
	}
	if horas != nil {
		current.Horas = *horas
	}
	if expedienteID != nil {
		current.ExpedienteID = *expedienteID
	}
	if tareaID != nil {
		current.TareaID = *tareaID
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE partes
		 SET fecha = ?, hora_inicio = ?, hora_fin = ?, horas = ?, comentario = ?,
		     expediente_id = ?, tarea_id = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		current.Fecha, current.HoraInicio, current.HoraFin, current.Horas, current.Comentario,
		ptrToNullInt(current.ExpedienteID), ptrToNullInt(current.TareaID), id,
	)
	return err
}

// Delete removes a parte from the database.
func (r *ParteRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM partes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrParteNotFound
	}
	return nil
}
