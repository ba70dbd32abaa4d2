// Package normalizar prepara términos de búsqueda para comparaciones
// insensibles a tildes: "cervecería" y "cerveceria" deben coincidir.
package normalizar

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quitarTildes = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Termino normaliza un término de búsqueda: minúsculas, sin tildes y sin
// espacios sobrantes. Si la transformación falla se devuelve el término
// original en minúsculas.
func Termino(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(quitarTildes, s)
	if err != nil {
		return s
	}
	return out
}
