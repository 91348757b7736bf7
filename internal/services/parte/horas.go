package parte

import (
	"math"
	"strconv"
	"strings"
)

// CalcularHoras derives the elapsed hours between two HH:MM clock times.
// A fin earlier than inicio is treated as crossing midnight. The raw minute
// difference is rounded to the nearest quarter hour (ties away from zero)
// before dividing by 60, so 09:00-09:50 and 09:00-09:38 both yield 0.75.
func CalcularHoras(inicio, fin string) (float64, error) {
	mi, err := parseMinutos(inicio)
	if err != nil {
		return 0, err
	}
	mf, err := parseMinutos(fin)
	if err != nil {
		return 0, err
	}

	delta := mf - mi
	if delta < 0 {
		delta += 24 * 60
	}

	cuartos := int(math.Round(float64(delta) / 15.0))
	return float64(cuartos*15) / 60.0, nil
}

// parseMinutos converts "HH:MM" to minutes since midnight.
func parseMinutos(hora string) (int, error) {
	h, m, ok := strings.Cut(hora, ":")
	if !ok {
		return 0, ErrHoraInvalida
	}
	horas, err := strconv.Atoi(h)
	if err != nil || horas < 0 || horas > 23 {
		return 0, ErrHoraInvalida
	}
	minutos, err := strconv.Atoi(m)
	if err != nil || minutos < 0 || minutos > 59 {
		return 0, ErrHoraInvalida
	}
	return horas*60 + minutos, nil
}
