package expediente

import (
	"context"
	"testing"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/database"
	"github.com/ConectaIC/planificador-expedientes-sub000/internal/models"
	"github.com/ConectaIC/planificador-expedientes-sub000/internal/testutil"
)

func setupService(t *testing.T) Service {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewService(database.NewRepository(db))
}

func TestCrearExpediente(t *testing.T) {
	svc := setupService(t)

	exp, err := svc.CrearExpediente(context.Background(), CrearExpedienteRequest{
		Codigo:   "  EXP-001  ",
		Proyecto: "Nave industrial",
		Cliente:  "Acme",
	})
	if err != nil {
		t.Fatalf("CrearExpediente: %v", err)
	}
	if exp.Codigo != "EXP-001" {
		t.Errorf("Codigo = %q, want trimmed EXP-001", exp.Codigo)
	}
	if exp.Prioridad != models.PrioridadMedia {
		t.Errorf("Prioridad = %q, want default media", exp.Prioridad)
	}
	if exp.Estado != models.EstadoPendiente {
		t.Errorf("Estado = %q, want default pendiente", exp.Estado)
	}
	if exp.ID == 0 {
		t.Error("expected an assigned ID")
	}
}

func TestCrearExpedienteCodigoDuplicado(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	req := CrearExpedienteRequest{Codigo: "EXP-001", Proyecto: "Nave industrial"}
	if _, err := svc.CrearExpediente(ctx, req); err != nil {
		t.Fatalf("CrearExpediente: %v", err)
	}
	if _, err := svc.CrearExpediente(ctx, req); err != ErrCodigoDuplicado {
		t.Errorf("error = %v, want ErrCodigoDuplicado", err)
	}
}

func TestCrearExpedienteValidacion(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     CrearExpedienteRequest
		wantErr error
	}{
		{"missing codigo", CrearExpedienteRequest{Proyecto: "P"}, ErrCodigoRequerido},
		{"blank codigo", CrearExpedienteRequest{Codigo: "   ", Proyecto: "P"}, ErrCodigoRequerido},
		{"missing proyecto", CrearExpedienteRequest{Codigo: "EXP-001"}, ErrProyectoRequerido},
		{"bad prioridad", CrearExpedienteRequest{Codigo: "EXP-001", Proyecto: "P", Prioridad: "urgente"}, ErrPrioridadInvalida},
		{"bad estado", CrearExpedienteRequest{Codigo: "EXP-001", Proyecto: "P", Estado: "archivado"}, ErrEstadoInvalido},
		{"bad fecha entrega", CrearExpedienteRequest{Codigo: "EXP-001", Proyecto: "P", FechaEntrega: "15/01/2026"}, ErrFechaInvalida},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CrearExpediente(ctx, tt.req); err != tt.wantErr {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetExpedientesFiltros(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	seed := []CrearExpedienteRequest{
		{Codigo: "EXP-001", Proyecto: "Nave industrial", Cliente: "Acme", Estado: models.EstadoEnCurso},
		{Codigo: "EXP-002", Proyecto: "Reforma local", Cliente: "Blasco", Estado: models.EstadoPendiente},
		{Codigo: "EXP-003", Proyecto: "Urbanización", Cliente: "Acme", Estado: models.EstadoEnCurso},
	}
	for _, req := range seed {
		if _, err := svc.CrearExpediente(ctx, req); err != nil {
			t.Fatalf("CrearExpediente %s: %v", req.Codigo, err)
		}
	}

	todos, err := svc.GetExpedientes(ctx, "", "")
	if err != nil {
		t.Fatalf("GetExpedientes: %v", err)
	}
	if len(todos) != 3 {
		t.Errorf("all = %d, want 3", len(todos))
	}

	enCurso, err := svc.GetExpedientes(ctx, models.EstadoEnCurso, "")
	if err != nil {
		t.Fatalf("GetExpedientes estado: %v", err)
	}
	if len(enCurso) != 2 {
		t.Errorf("en_curso = %d, want 2", len(enCurso))
	}

	acme, err := svc.GetExpedientes(ctx, "", "Acme")
	if err != nil {
		t.Fatalf("GetExpedientes buscar: %v", err)
	}
	if len(acme) != 2 {
		t.Errorf("search Acme = %d, want 2", len(acme))
	}

	if _, err := svc.GetExpedientes(ctx, "archivado", ""); err != ErrEstadoInvalido {
		t.Errorf("error = %v, want ErrEstadoInvalido", err)
	}
}

func TestGetExpedientePorCodigo(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.CrearExpediente(ctx, CrearExpedienteRequest{Codigo: "EXP-001", Proyecto: "P"}); err != nil {
		t.Fatalf("CrearExpediente: %v", err)
	}

	exp, err := svc.GetExpedientePorCodigo(ctx, "EXP-001")
	if err != nil {
		t.Fatalf("GetExpedientePorCodigo: %v", err)
	}
	if exp.Proyecto != "P" {
		t.Errorf("Proyecto = %q", exp.Proyecto)
	}

	if _, err := svc.GetExpedientePorCodigo(ctx, "EXP-404"); err != models.ErrExpedienteNotFound {
		t.Errorf("error = %v, want ErrExpedienteNotFound", err)
	}
	if _, err := svc.GetExpedientePorCodigo(ctx, "  "); err != ErrCodigoRequerido {
		t.Errorf("error = %v, want ErrCodigoRequerido", err)
	}
}

func TestActualizarExpediente(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	exp, err := svc.CrearExpediente(ctx, CrearExpedienteRequest{Codigo: "EXP-001", Proyecto: "Nave"})
	if err != nil {
		t.Fatalf("CrearExpediente: %v", err)
	}
	otro, err := svc.CrearExpediente(ctx, CrearExpedienteRequest{Codigo: "EXP-002", Proyecto: "Reforma"})
	if err != nil {
		t.Fatalf("CrearExpediente: %v", err)
	}

	estado := models.EstadoEntregado
	if err := svc.ActualizarExpediente(ctx, ActualizarExpedienteRequest{ExpedienteID: exp.ID, Estado: &estado}); err != nil {
		t.Fatalf("ActualizarExpediente: %v", err)
	}
	exp, err = svc.GetExpediente(ctx, exp.ID)
	if err != nil {
		t.Fatalf("GetExpediente: %v", err)
	}
	if exp.Estado != models.EstadoEntregado {
		t.Errorf("Estado = %q, want entregado", exp.Estado)
	}
	// Untouched fields survive a partial update.
	if exp.Proyecto != "Nave" {
		t.Errorf("Proyecto = %q, want Nave", exp.Proyecto)
	}

	// Renaming onto another case's codigo is rejected; keeping your own is fine.
	codigo := "EXP-001"
	if err := svc.ActualizarExpediente(ctx, ActualizarExpedienteRequest{ExpedienteID: otro.ID, Codigo: &codigo}); err != ErrCodigoDuplicado {
		t.Errorf("error = %v, want ErrCodigoDuplicado", err)
	}
	if err := svc.ActualizarExpediente(ctx, ActualizarExpedienteRequest{ExpedienteID: exp.ID, Codigo: &codigo}); err != nil {
		t.Errorf("same codigo on same case: %v", err)
	}
}

func TestEliminarExpediente(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	exp, err := svc.CrearExpediente(ctx, CrearExpedienteRequest{Codigo: "EXP-001", Proyecto: "P"})
	if err != nil {
		t.Fatalf("CrearExpediente: %v", err)
	}
	if err := svc.EliminarExpediente(ctx, exp.ID); err != nil {
		t.Fatalf("EliminarExpediente: %v", err)
	}
	if _, err := svc.GetExpediente(ctx, exp.ID); err != models.ErrExpedienteNotFound {
		t.Errorf("error = %v, want ErrExpedienteNotFound", err)
	}
	if err := svc.EliminarExpediente(ctx, exp.ID); err != models.ErrExpedienteNotFound {
		t.Errorf("second delete error = %v, want ErrExpedienteNotFound", err)
	}
}
