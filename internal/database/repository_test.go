package database_test

import (
	"context"
	"testing"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/database"
	"github.com/ConectaIC/planificador-expedientes-sub000/internal/models"
	"github.com/ConectaIC/planificador-expedientes-sub000/internal/testutil"
)

func newRepo(t *testing.T) *database.Repository {
	t.Helper()
	return database.NewRepository(testutil.SetupTestDB(t))
}

func seedExpediente(t *testing.T, repo *database.Repository, codigo, entrega, estado string) *models.Expediente {
	t.Helper()
	exp, err := repo.CreateExpediente(context.Background(), &models.Expediente{
		Codigo:       codigo,
		Proyecto:     "Proyecto " + codigo,
		Cliente:      "Cliente " + codigo,
		FechaEntrega: entrega,
		Prioridad:    models.PrioridadMedia,
		Estado:       estado,
	})
	if err != nil {
		t.Fatalf("CreateExpediente %s: %v", codigo, err)
	}
	return exp
}

func TestExpedienteRoundtrip(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	exp := seedExpediente(t, repo, "EXP-001", "2026-03-01", models.EstadoEnCurso)
	if exp.ID == 0 || exp.CreatedAt.IsZero() {
		t.Fatalf("create did not populate row metadata: %+v", exp)
	}

	got, err := repo.GetExpedienteByID(ctx, exp.ID)
	if err != nil {
		t.Fatalf("GetExpedienteByID: %v", err)
	}
	if got.Codigo != "EXP-001" || got.FechaEntrega != "2026-03-01" {
		t.Errorf("got %+v", got)
	}

	byCodigo, err := repo.GetExpedienteByCodigo(ctx, "EXP-001")
	if err != nil {
		t.Fatalf("GetExpedienteByCodigo: %v", err)
	}
	if byCodigo.ID != exp.ID {
		t.Errorf("ID = %d, want %d", byCodigo.ID, exp.ID)
	}

	if _, err := repo.GetExpedienteByID(ctx, 999); err != models.ErrExpedienteNotFound {
		t.Errorf("missing id error = %v, want ErrExpedienteNotFound", err)
	}
	if _, err := repo.GetExpedienteByCodigo(ctx, "NOPE"); err != models.ErrExpedienteNotFound {
		t.Errorf("missing codigo error = %v, want ErrExpedienteNotFound", err)
	}
}

func TestUpdateExpedientePartial(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	exp := seedExpediente(t, repo, "EXP-001", "", models.EstadoPendiente)

	estado := models.EstadoEnCurso
	prioridad := models.PrioridadAlta
	if err := repo.UpdateExpediente(ctx, exp.ID, nil, nil, nil, nil, &prioridad, &estado); err != nil {
		t.Fatalf("UpdateExpediente: %v", err)
	}

	got, err := repo.GetExpedienteByID(ctx, exp.ID)
	if err != nil {
		t.Fatalf("GetExpedienteByID: %v", err)
	}
	if got.Estado != estado || got.Prioridad != prioridad {
		t.Errorf("estado/prioridad = %q/%q", got.Estado, got.Prioridad)
	}
	if got.Codigo != "EXP-001" || got.Proyecto != "Proyecto EXP-001" {
		t.Errorf("nil fields were overwritten: %+v", got)
	}

	if err := repo.UpdateExpediente(ctx, 999, nil, nil, nil, nil, nil, &estado); err != models.ErrExpedienteNotFound {
		t.Errorf("missing id error = %v, want ErrExpedienteNotFound", err)
	}
}

func TestGetEntregasDesde(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	seedExpediente(t, repo, "EXP-001", "2026-01-20", models.EstadoEnCurso)
	seedExpediente(t, repo, "EXP-002", "2026-01-10", models.EstadoEnCurso)
	seedExpediente(t, repo, "EXP-003", "2026-01-05", models.EstadoEnCurso)  // before the cutoff
	seedExpediente(t, repo, "EXP-004", "2026-01-25", models.EstadoCerrado)  // already closed
	seedExpediente(t, repo, "EXP-005", "", models.EstadoEnCurso)            // no deadline
	seedExpediente(t, repo, "EXP-006", "2026-01-30", models.EstadoEnCurso)

	entregas, err := repo.GetEntregasDesde(ctx, "2026-01-10", 5)
	if err != nil {
		t.Fatalf("GetEntregasDesde: %v", err)
	}
	codigos := make([]string, len(entregas))
	for i, e := range entregas {
		codigos[i] = e.Codigo
	}
	want := []string{"EXP-002", "EXP-001", "EXP-006"}
	if len(codigos) != len(want) {
		t.Fatalf("entregas = %v, want %v", codigos, want)
	}
	for i := range want {
		if codigos[i] != want[i] {
			t.Errorf("entregas[%d] = %s, want %s", i, codigos[i], want[i])
		}
	}

	limitadas, err := repo.GetEntregasDesde(ctx, "2026-01-10", 2)
	if err != nil {
		t.Fatalf("GetEntregasDesde limit: %v", err)
	}
	if len(limitadas) != 2 {
		t.Errorf("limited = %d, want 2", len(limitadas))
	}
}

func TestGetPartesRangoDetalle(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	exp := seedExpediente(t, repo, "EXP-001", "", models.EstadoEnCurso)
	tarea, err := repo.CreateTarea(ctx, &models.Tarea{
		ExpedienteID: exp.ID,
		Titulo:       "Visita obra",
		Estado:       models.EstadoTareaEnCurso,
		Prioridad:    models.PrioridadMedia,
	})
	if err != nil {
		t.Fatalf("CreateTarea: %v", err)
	}

	// Inserted out of date order on purpose.
	for _, p := range []*models.Parte{
		{Fecha: "2026-01-07", Horas: 2, ExpedienteID: &exp.ID, TareaID: &tarea.ID},
		{Fecha: "2026-01-05", Horas: 1},
		{Fecha: "2026-01-06", Horas: 3, ExpedienteID: &exp.ID},
	} {
		if _, err := repo.CreateParte(ctx, p); err != nil {
			t.Fatalf("CreateParte: %v", err)
		}
	}

	partes, err := repo.GetPartesRango(ctx, "2026-01-05", "2026-01-07")
	if err != nil {
		t.Fatalf("GetPartesRango: %v", err)
	}
	if len(partes) != 3 {
		t.Fatalf("partes = %d, want 3", len(partes))
	}
	// Rows come back ordered by fecha.
	if partes[0].Fecha != "2026-01-05" || partes[2].Fecha != "2026-01-07" {
		t.Errorf("order = %s, %s, %s", partes[0].Fecha, partes[1].Fecha, partes[2].Fecha)
	}
	// The join fills in the case and task denormalizations.
	if partes[2].CodigoExpediente != "EXP-001" || partes[2].TituloTarea != "Visita obra" {
		t.Errorf("detalle = %+v", partes[2])
	}
	// Unlinked rows come back with empty denormalizations, not an error.
	if partes[0].CodigoExpediente != "" || partes[0].TituloTarea != "" {
		t.Errorf("unlinked detalle = %+v", partes[0])
	}
}

func TestDeleteExpedienteDesvinculaPartes(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	exp := seedExpediente(t, repo, "EXP-001", "", models.EstadoEnCurso)
	parte, err := repo.CreateParte(ctx, &models.Parte{Fecha: "2026-01-05", Horas: 2, ExpedienteID: &exp.ID})
	if err != nil {
		t.Fatalf("CreateParte: %v", err)
	}

	if err := repo.DeleteExpediente(ctx, exp.ID); err != nil {
		t.Fatalf("DeleteExpediente: %v", err)
	}

	// ON DELETE SET NULL keeps the logged hours, dropping only the link.
	got, err := repo.GetParteByID(ctx, parte.ID)
	if err != nil {
		t.Fatalf("GetParteByID: %v", err)
	}
	if got.ExpedienteID != nil {
		t.Errorf("ExpedienteID = %v, want nil after case deletion", got.ExpedienteID)
	}
	if got.Horas != 2 {
		t.Errorf("Horas = %v, want 2", got.Horas)
	}
}

func TestSumarHorasReales(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	exp := seedExpediente(t, repo, "EXP-001", "", models.EstadoEnCurso)
	tarea, err := repo.CreateTarea(ctx, &models.Tarea{
		ExpedienteID: exp.ID,
		Titulo:       "Planos",
		Estado:       models.EstadoTareaPendiente,
		Prioridad:    models.PrioridadMedia,
	})
	if err != nil {
		t.Fatalf("CreateTarea: %v", err)
	}

	if err := repo.SumarHorasReales(ctx, tarea.ID, 1.5); err != nil {
		t.Fatalf("SumarHorasReales: %v", err)
	}
	if err := repo.SumarHorasReales(ctx, tarea.ID, 0.75); err != nil {
		t.Fatalf("SumarHorasReales: %v", err)
	}

	got, err := repo.GetTareaByID(ctx, tarea.ID)
	if err != nil {
		t.Fatalf("GetTareaByID: %v", err)
	}
	if got.HorasReales != 2.25 {
		t.Errorf("HorasReales = %v, want 2.25", got.HorasReales)
	}
}

func TestBloqueRoundtrip(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	exp := seedExpediente(t, repo, "EXP-001", "", models.EstadoEnCurso)
	bloque, err := repo.CreateBloque(ctx, &models.Bloque{
		Fecha:        "2026-01-05",
		Tramo:        models.TramoManana,
		Categoria:    models.CategoriaObra,
		Horas:        4,
		ExpedienteID: &exp.ID,
		Nota:         "replanteo en obra",
	})
	if err != nil {
		t.Fatalf("CreateBloque: %v", err)
	}

	semana, err := repo.GetBloquesRango(ctx, "2026-01-05", "2026-01-11")
	if err != nil {
		t.Fatalf("GetBloquesRango: %v", err)
	}
	if len(semana) != 1 || semana[0].Nota != "replanteo en obra" {
		t.Errorf("semana = %+v", semana)
	}

	tramo := models.TramoTarde
	if err := repo.UpdateBloque(ctx, bloque.ID, nil, &tramo, nil, nil, nil, nil); err != nil {
		t.Fatalf("UpdateBloque: %v", err)
	}
	got, err := repo.GetBloqueByID(ctx, bloque.ID)
	if err != nil {
		t.Fatalf("GetBloqueByID: %v", err)
	}
	if got.Tramo != models.TramoTarde || got.Horas != 4 {
		t.Errorf("got %+v", got)
	}

	if err := repo.DeleteBloque(ctx, bloque.ID); err != nil {
		t.Fatalf("DeleteBloque: %v", err)
	}
	if _, err := repo.GetBloqueByID(ctx, bloque.ID); err != models.ErrBloqueNotFound {
		t.Errorf("error = %v, want ErrBloqueNotFound", err)
	}
}
