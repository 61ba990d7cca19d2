package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var sinAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizar minúsculas y sin tildes, para búsquedas insensibles a acentos
// ("platano" encuentra "Plátano").
func normalizar(s string) string {
	out, _, err := transform.String(sinAcentos, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// coincide indica si nombre contiene el filtro, ambos normalizados. Un filtro
// vacío coincide con todo.
func coincide(nombre, filtro string) bool {
	if filtro == "" {
		return true
	}
	return strings.Contains(normalizar(nombre), normalizar(filtro))
}
