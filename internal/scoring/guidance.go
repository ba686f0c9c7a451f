package scoring

import "math/rand"

// GuidanceRule asocia una condicion sobre (mode, scores) con un pool chico de
// strings candidatos. Igual que el clasificador, la primera regla que matchea
// gana; la ultima regla con When == nil es el fallback general.
type GuidanceRule struct {
	When     func(mode string, scores map[string]float64) bool
	Variants []string
}

// selectGuidance elige la variante con el rand inyectado para que los tests
// puedan fijar una semilla y asegurar salida determinista.
func selectGuidance(rules []GuidanceRule, mode string, scores map[string]float64, rng *rand.Rand) string {
	for _, r := range rules {
		if r.When != nil && !r.When(mode, scores) {
			continue
		}
		switch len(r.Variants) {
		case 0:
			continue
		case 1:
			return r.Variants[0]
		default:
			return r.Variants[rng.Intn(len(r.Variants))]
		}
	}
	return ""
}
