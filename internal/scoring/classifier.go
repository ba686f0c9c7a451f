package scoring

// ModeRule es una regla de clasificacion con prioridad explicita: las reglas
// se evaluan en orden y gana la primera cuya condicion se cumple, aunque
// condiciones posteriores tambien se cumplan. When == nil siempre matchea,
// lo que convierte la ultima regla en el fallback.
type ModeRule struct {
	Label string
	When  func(scores map[string]float64) bool
}

// classify es una funcion pura del vector de scores actual; no hay automata
// persistente ni restricciones de transicion entre llamadas.
func classify(rules []ModeRule, scores map[string]float64) string {
	for _, r := range rules {
		if r.When == nil || r.When(scores) {
			return r.Label
		}
	}
	return ""
}
