package scoring

// Predicate es un detector booleano puro sobre el input. Nunca debe fallar:
// el aggregator trata cada predicado como evidencia opcional, no como
// precondicion, asi que cualquier error interno se resuelve como false.
type Predicate struct {
	Name   string
	Detect func(Input) bool
}

// evalPredicates corre todos los predicados y devuelve sus resultados por nombre.
// Un panic dentro de un detector cuenta como ausencia del patron.
func evalPredicates(preds []Predicate, in Input) map[string]bool {
	results := make(map[string]bool, len(preds))
	for _, p := range preds {
		results[p.Name] = safeDetect(p, in)
	}
	return results
}

func safeDetect(p Predicate, in Input) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	if p.Detect == nil {
		return false
	}
	return p.Detect(in)
}

// keywordPredicate construye un detector por lista de keywords sobre texto normalizado.
func keywordPredicate(name string, keywords []string) Predicate {
	return Predicate{
		Name: name,
		Detect: func(in Input) bool {
			text := normalize(in.Text)
			if text == "" {
				return false
			}
			return containsAny(text, keywords)
		},
	}
}

// fieldPredicate detecta cuando un campo numerico opcional supera el umbral.
func fieldPredicate(name, field string, threshold float64) Predicate {
	return Predicate{
		Name: name,
		Detect: func(in Input) bool {
			if in.Fields == nil {
				return false
			}
			v, ok := in.Fields[field]
			return ok && v >= threshold
		},
	}
}
