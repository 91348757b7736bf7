package cmd

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/logging"
	"github.com/ConectaIC/planificador-expedientes-sub000/internal/models"
	resumenservice "github.com/ConectaIC/planificador-expedientes-sub000/internal/services/resumen"
)

var (
	resumenDesde  string
	resumenHasta  string
	resumenMes    string
	resumenCopiar bool
)

var resumenCmd = &cobra.Command{
	Use:   "resumen",
	Short: "Imprime el resumen de horas de un rango de fechas",
	Long: `Imprime el resumen de horas (total, visitas, reparto por expediente y
próximas entregas) como texto plano, listo para pegar. Por defecto cubre
los últimos 7 días.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(); err != nil {
			return err
		}

		application, _, db, err := initApp(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		var texto string
		if resumenMes != "" {
			mes, err := time.Parse("2006-01", resumenMes)
			if err != nil {
				return fmt.Errorf("mes no válido, se espera AAAA-MM: %q", resumenMes)
			}
			resumen, err := application.Resumen.Mensual(cmd.Context(), mes.Year(), mes.Month())
			if err != nil {
				return err
			}
			texto = resumenservice.FormatearTexto(resumen)
		} else {
			desde, hasta := resumenDesde, resumenHasta
			if desde == "" && hasta == "" {
				hoy := time.Now()
				desde = hoy.AddDate(0, 0, -6).Format(models.FechaLayout)
				hasta = hoy.Format(models.FechaLayout)
			}
			var err error
			texto, err = application.Resumen.Texto(cmd.Context(), desde, hasta)
			if err != nil {
				return err
			}
		}

		fmt.Print(texto)

		if resumenCopiar {
			if err := clipboard.WriteAll(texto); err != nil {
				return fmt.Errorf("no se pudo copiar al portapapeles: %w", err)
			}
			fmt.Println("\n(copiado al portapapeles)")
		}
		return nil
	},
}

func init() {
	resumenCmd.Flags().StringVar(&resumenDesde, "desde", "", "inicio del rango (AAAA-MM-DD)")
	resumenCmd.Flags().StringVar(&resumenHasta, "hasta", "", "final del rango (AAAA-MM-DD)")
	resumenCmd.Flags().StringVar(&resumenMes, "mes", "", "mes natural completo (AAAA-MM)")
	resumenCmd.Flags().BoolVar(&resumenCopiar, "copiar", false, "copia el texto al portapapeles")
	rootCmd.AddCommand(resumenCmd)
}
