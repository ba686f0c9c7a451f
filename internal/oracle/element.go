package oracle

import (
	"strings"
	"unicode"

	"spiral-oracle/internal/domain"
)

// elementKeywords son las señales tematicas de cada elemento sobre el texto
// del usuario. La resonancia es el conteo de keywords presentes.
var elementKeywords = map[domain.Element][]string{
	domain.ElementFire: {
		"stuck", "passion", "create", "destroy", "change", "transform",
		"energy", "motivation", "burn", "ignite", "fire", "flame",
	},
	domain.ElementWater: {
		"feel", "feeling", "emotion", "cry", "tears", "grief", "flow",
		"ocean", "river", "water", "heart", "longing",
	},
	domain.ElementEarth: {
		"ground", "stable", "solid", "root", "body", "home", "routine",
		"practical", "money", "work", "earth", "build",
	},
	domain.ElementAir: {
		"think", "thought", "idea", "confus", "clarity", "understand",
		"communicate", "words", "mind", "breath", "air", "perspective",
	},
	domain.ElementAether: {
		"unity", "oneness", "void", "emptiness", "integration", "paradox",
		"mystery", "consciousness", "transcend", "infinite", "sacred",
		"divine", "cosmos", "everything", "nothing",
	},
}

// normalizeText baja a minusculas y quita diacriticos.
func normalizeText(s string) string {
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

// RouteElement elige el elemento con mayor resonancia de keywords sobre el
// input. Empate o cero señales caen en aether, el caso general.
func RouteElement(input string) domain.Element {
	text := normalizeText(input)
	if strings.TrimSpace(text) == "" {
		return domain.ElementAether
	}

	best := domain.ElementAether
	bestCount := 0
	tied := 0
	for _, el := range domain.AllElements {
		count := 0
		for _, kw := range elementKeywords[el] {
			if strings.Contains(text, kw) {
				count++
			}
		}
		switch {
		case count > bestCount:
			best = el
			bestCount = count
			tied = 1
		case count > 0 && count == bestCount:
			tied++
		}
	}
	if bestCount == 0 || tied > 1 {
		return domain.ElementAether
	}
	return best
}

// DetectElements devuelve todos los elementos con al menos una señal, en
// orden canonico. Aether lo usa para decidir si hace falta integracion.
func DetectElements(input string) []domain.Element {
	text := normalizeText(input)
	var found []domain.Element
	for _, el := range domain.AllElements {
		if el == domain.ElementAether {
			continue
		}
		for _, kw := range elementKeywords[el] {
			if strings.Contains(text, kw) {
				found = append(found, el)
				break
			}
		}
	}
	return found
}
