package agenda

import (
	"context"
	"testing"
	"time"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/database"
	"github.com/ConectaIC/planificador-expedientes-sub000/internal/models"
	"github.com/ConectaIC/planificador-expedientes-sub000/internal/testutil"
)

func TestNormalizarLunes(t *testing.T) {
	tests := []struct {
		name  string
		fecha string
		want  string
	}{
		{"monday stays", "2026-01-05", "2026-01-05"},
		{"wednesday backs up", "2026-01-07", "2026-01-05"},
		{"saturday backs up", "2026-01-10", "2026-01-05"},
		{"sunday backs up six days", "2026-01-11", "2026-01-05"},
		{"across month boundary", "2026-02-01", "2026-01-26"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dia, err := time.Parse(models.FechaLayout, tt.fecha)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.fecha, err)
			}
			got := NormalizarLunes(dia).Format(models.FechaLayout)
			if got != tt.want {
				t.Errorf("NormalizarLunes(%s) = %s, want %s", tt.fecha, got, tt.want)
			}
		})
	}
}

func TestCalcularCapacidad(t *testing.T) {
	lunes := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	bloques := []*models.Bloque{
		{Fecha: "2026-01-05", Tramo: models.TramoManana, Horas: 4},
		{Fecha: "2026-01-05", Tramo: models.TramoTarde, Horas: 2},
		{Fecha: "2026-01-06", Tramo: models.TramoManana, Horas: 6},
		{Fecha: "2026-01-06", Tramo: models.TramoTarde, Horas: 3.5},
		{Fecha: "2026-01-20", Tramo: models.TramoManana, Horas: 8}, // outside week
	}

	semana := CalcularCapacidad(bloques, lunes, 8, true)

	if semana.Lunes != "2026-01-05" {
		t.Errorf("Lunes = %s", semana.Lunes)
	}
	if len(semana.Dias) != DiasSemana {
		t.Fatalf("Dias = %d, want %d", len(semana.Dias), DiasSemana)
	}

	dia := semana.Dias[0]
	if dia.HorasManana != 4 || dia.HorasTarde != 2 {
		t.Errorf("monday tramos = %v/%v, want 4/2", dia.HorasManana, dia.HorasTarde)
	}
	if dia.Ocupadas != 6 || dia.Libres != 2 {
		t.Errorf("monday ocupadas/libres = %v/%v, want 6/2", dia.Ocupadas, dia.Libres)
	}

	// 9.5 occupied against 8 of capacity: free clamps at zero.
	dia = semana.Dias[1]
	if dia.Ocupadas != 9.5 {
		t.Errorf("tuesday ocupadas = %v, want 9.5", dia.Ocupadas)
	}
	if dia.Libres != 0 {
		t.Errorf("tuesday libres = %v, want 0", dia.Libres)
	}

	// Empty days carry the full capacity.
	if semana.Dias[6].Libres != 8 {
		t.Errorf("sunday libres = %v, want 8", semana.Dias[6].Libres)
	}
}

func TestCalcularCapacidadSinTarde(t *testing.T) {
	lunes := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	bloques := []*models.Bloque{
		{Fecha: "2026-01-05", Tramo: models.TramoManana, Horas: 3},
		{Fecha: "2026-01-05", Tramo: models.TramoTarde, Horas: 2},
	}

	semana := CalcularCapacidad(bloques, lunes, 6, false)

	dia := semana.Dias[0]
	if dia.HorasTarde != 0 {
		t.Errorf("HorasTarde = %v, want 0 when afternoon is hidden", dia.HorasTarde)
	}
	// Hidden afternoon hours still count as occupancy.
	if dia.Ocupadas != 5 || dia.Libres != 1 {
		t.Errorf("ocupadas/libres = %v/%v, want 5/1", dia.Ocupadas, dia.Libres)
	}
}

func TestGetSemana(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	svc := NewService(repo, nil)
	ctx := context.Background()

	for _, req := range []CrearBloqueRequest{
		{Fecha: "2026-01-05", Tramo: models.TramoManana, Categoria: models.CategoriaObra, Horas: 4},
		{Fecha: "2026-01-07", Tramo: models.TramoTarde, Categoria: models.CategoriaVisita, Horas: 2},
	} {
		if _, err := svc.CrearBloque(ctx, req); err != nil {
			t.Fatalf("CrearBloque: %v", err)
		}
	}

	// Any day of the week resolves to the same Monday.
	semana, err := svc.GetSemana(ctx, "2026-01-08", 8, true)
	if err != nil {
		t.Fatalf("GetSemana: %v", err)
	}
	if semana.Capacidad.Lunes != "2026-01-05" {
		t.Errorf("Lunes = %s, want 2026-01-05", semana.Capacidad.Lunes)
	}
	if len(semana.Bloques) != 2 {
		t.Errorf("Bloques = %d, want 2", len(semana.Bloques))
	}
	if semana.Capacidad.Dias[2].HorasTarde != 2 {
		t.Errorf("wednesday tarde = %v, want 2", semana.Capacidad.Dias[2].HorasTarde)
	}
}

func TestGetSemanaCapacidadInvalida(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db), nil)

	if _, err := svc.GetSemana(context.Background(), "2026-01-05", 7, true); err != ErrCapacidadInvalida {
		t.Errorf("error = %v, want ErrCapacidadInvalida", err)
	}
}

func TestCrearBloqueValidacion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db), nil)
	ctx := context.Background()

	valido := CrearBloqueRequest{Fecha: "2026-01-05", Tramo: models.TramoManana, Categoria: models.CategoriaObra, Horas: 2}

	tests := []struct {
		name    string
		mutar   func(*CrearBloqueRequest)
		wantErr error
	}{
		{"missing fecha", func(r *CrearBloqueRequest) { r.Fecha = "" }, ErrFechaRequerida},
		{"bad fecha", func(r *CrearBloqueRequest) { r.Fecha = "05/01/2026" }, ErrFechaInvalida},
		{"bad tramo", func(r *CrearBloqueRequest) { r.Tramo = "noche" }, ErrTramoInvalido},
		{"bad categoria", func(r *CrearBloqueRequest) { r.Categoria = "otros" }, ErrCategoriaInvalida},
		{"zero horas", func(r *CrearBloqueRequest) { r.Horas = 0 }, ErrHorasInvalidas},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valido
			tt.mutar(&req)
			if _, err := svc.CrearBloque(ctx, req); err != tt.wantErr {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCrearBloqueExpedienteInexistente(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db), nil)

	id := 999
	_, err := svc.CrearBloque(context.Background(), CrearBloqueRequest{
		Fecha: "2026-01-05", Tramo: models.TramoManana, Categoria: models.CategoriaObra,
		Horas: 2, ExpedienteID: &id,
	})
	if err != models.ErrExpedienteNotFound {
		t.Errorf("error = %v, want ErrExpedienteNotFound", err)
	}
}

func TestActualizarBloqueRefrescaSemana(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	svc := NewService(repo, nil)
	ctx := context.Background()

	bloque, err := svc.CrearBloque(ctx, CrearBloqueRequest{
		Fecha: "2026-01-05", Tramo: models.TramoManana, Categoria: models.CategoriaObra, Horas: 4,
	})
	if err != nil {
		t.Fatalf("CrearBloque: %v", err)
	}

	horas := 6.0
	if err := svc.ActualizarBloque(ctx, ActualizarBloqueRequest{BloqueID: bloque.ID, Horas: &horas}); err != nil {
		t.Fatalf("ActualizarBloque: %v", err)
	}

	semana, err := svc.GetSemana(ctx, "2026-01-05", 8, true)
	if err != nil {
		t.Fatalf("GetSemana: %v", err)
	}
	if semana.Capacidad.Dias[0].HorasManana != 6 {
		t.Errorf("monday manana = %v, want 6", semana.Capacidad.Dias[0].HorasManana)
	}

	if err := svc.EliminarBloque(ctx, bloque.ID); err != nil {
		t.Fatalf("EliminarBloque: %v", err)
	}
	semana, err = svc.GetSemana(ctx, "2026-01-05", 8, true)
	if err != nil {
		t.Fatalf("GetSemana: %v", err)
	}
	if semana.Capacidad.Dias[0].Ocupadas != 0 || len(semana.Bloques) != 0 {
		t.Errorf("week not empty after delete: ocupadas=%v bloques=%d",
			semana.Capacidad.Dias[0].Ocupadas, len(semana.Bloques))
	}
}
