package cmd

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/logging"
	"github.com/ConectaIC/planificador-expedientes-sub000/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Arranca el servidor HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.InitStderr()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		application, cfg, db, err := initApp(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}

		srv, err := server.New(application, cfg, slog.Default())
		if err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() { errCh <- srv.ListenAndServe() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		slog.Info("apagando servidor")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "dirección de escucha (por defecto la de configuración)")
	rootCmd.AddCommand(serveCmd)
}
