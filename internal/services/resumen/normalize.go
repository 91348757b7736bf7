package resumen

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quitarDiacriticos strips combining marks after NFD decomposition, so
// "Visíta" folds to "Visita".
var quitarDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizar lowercases and removes diacritics for keyword matching.
func normalizar(s string) string {
	plano, _, err := transform.String(quitarDiacriticos, s)
	if err != nil {
		// Fold as far as possible; lowercase still applies
		plano = s
	}
	return strings.ToLower(plano)
}

// contienePalabra reports whether titulo contains any of the keywords,
// case- and diacritic-insensitively. The keyword list is configuration, not
// a taxonomy: "visita" detection is a substring heuristic on free text.
func contienePalabra(titulo string, palabras []string) bool {
	if titulo == "" {
		return false
	}
	plano := normalizar(titulo)
	for _, palabra := range palabras {
		if palabra == "" {
			continue
		}
		if strings.Contains(plano, normalizar(palabra)) {
			return true
		}
	}
	return false
}
