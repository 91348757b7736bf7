package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ConectaIC/planificador-expedientes-sub000/internal/logging"
	"github.com/ConectaIC/planificador-expedientes-sub000/internal/models"
)

var (
	agendaSemana    string
	agendaCapacidad float64
	agendaSinTarde  bool
)

var (
	agendaTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	agendaHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	agendaLibreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	agendaLlenoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var agendaCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Muestra la ocupación de la semana",
	Long:  `Muestra, día a día, las horas planificadas por tramo y las horas libres frente a la capacidad diaria elegida.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(); err != nil {
			return err
		}

		application, cfg, db, err := initApp(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		fecha := agendaSemana
		if fecha == "" {
			fecha = time.Now().Format(models.FechaLayout)
		}
		capacidad := agendaCapacidad
		if capacidad == 0 {
			capacidad = cfg.Agenda.CapacidadPorDefecto
		}

		semana, err := application.Agenda.GetSemana(cmd.Context(), fecha, capacidad, !agendaSinTarde)
		if err != nil {
			return err
		}

		vista := semana.Capacidad
		fmt.Println(agendaTitleStyle.Render(
			fmt.Sprintf("Semana del %s (capacidad %.0f h/día)", vista.Lunes, vista.Capacidad)))

		if vista.IncluyeTarde {
			fmt.Println(agendaHeaderStyle.Render(
				fmt.Sprintf("%-12s %8s %8s %9s %7s", "Día", "Mañana", "Tarde", "Ocupadas", "Libres")))
		} else {
			fmt.Println(agendaHeaderStyle.Render(
				fmt.Sprintf("%-12s %8s %9s %7s", "Día", "Mañana", "Ocupadas", "Libres")))
		}

		for _, dia := range vista.Dias {
			libres := agendaLibreStyle.Render(fmt.Sprintf("%7.2f", dia.Libres))
			if dia.Libres == 0 {
				libres = agendaLlenoStyle.Render(fmt.Sprintf("%7.2f", dia.Libres))
			}
			if vista.IncluyeTarde {
				fmt.Printf("%-12s %8.2f %8.2f %9.2f %s\n",
					dia.Fecha, dia.HorasManana, dia.HorasTarde, dia.Ocupadas, libres)
			} else {
				fmt.Printf("%-12s %8.2f %9.2f %s\n",
					dia.Fecha, dia.HorasManana, dia.Ocupadas, libres)
			}
		}
		return nil
	},
}

func init() {
	agendaCmd.Flags().StringVar(&agendaSemana, "semana", "", "cualquier fecha de la semana (AAAA-MM-DD)")
	agendaCmd.Flags().Float64Var(&agendaCapacidad, "capacidad", 0, "capacidad diaria en horas (6, 8 o 10)")
	agendaCmd.Flags().BoolVar(&agendaSinTarde, "sin-tarde", false, "oculta el tramo de tarde")
	rootCmd.AddCommand(agendaCmd)
}
