package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/app"
	"github.com/ConectaIC/planificador-expedientes-sub000/internal/config"
	"github.com/ConectaIC/planificador-expedientes-sub000/internal/database"
)

var rootCmd = &cobra.Command{
	Use:   "planificador",
	Short: "Planificador - gestión de expedientes, partes y agenda semanal",
	Long:  `Planificador lleva los expedientes del estudio, sus tareas y partes de horas, y la agenda semanal de capacidad.`,
}

func Execute() error {
	return rootCmd.Execute()
}

// initApp loads configuration, opens the database and builds the service
// container shared by all subcommands.
func initApp(ctx context.Context) (*app.App, *config.Config, *sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return app.New(database.NewRepository(db), cfg), cfg, db, nil
}
