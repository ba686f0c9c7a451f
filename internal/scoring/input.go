package scoring

import (
	"strings"
	"unicode"
)

// Input es el registro opaco que evalua el engine. Cualquier forma es valida:
// los predicados trabajan sobre Text normalizado y Fields es opcional.
type Input struct {
	Text   string
	Fields map[string]float64
}

// normalize baja a minusculas y elimina diacriticos para que los predicados
// de keywords no dependan de acentos.
func normalize(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func containsAny(s string, list []string) bool {
	for _, x := range list {
		if strings.Contains(s, x) {
			return true
		}
	}
	return false
}

// countAny cuenta cuantas keywords de la lista aparecen en el texto.
func countAny(s string, list []string) int {
	n := 0
	for _, x := range list {
		if strings.Contains(s, x) {
			n++
		}
	}
	return n
}

// wordCount cuenta palabras separadas por espacios.
func wordCount(s string) int {
	return len(strings.Fields(s))
}
