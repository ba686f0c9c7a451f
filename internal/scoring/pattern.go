package scoring

// Factor de suavizado del patron caracteristico: el promedio retiene 90% de
// historia y absorbe 10% de cada muestra nueva.
const emaRetain = 0.9

// PatternStore mantiene el promedio movil exponencial de cada dimension por
// context label. Es estado de vida del proceso: nunca se borran claves.
type PatternStore struct {
	averages map[string]map[string]float64
}

func NewPatternStore() *PatternStore {
	return &PatternStore{averages: make(map[string]map[string]float64)}
}

// Observe incorpora un vector de scores al patron del contexto dado.
// La primera observacion de una dimension inicializa el promedio con la muestra.
func (p *PatternStore) Observe(contextLabel string, scores map[string]float64) {
	dims, ok := p.averages[contextLabel]
	if !ok {
		dims = make(map[string]float64, len(scores))
		p.averages[contextLabel] = dims
	}
	for name, sample := range scores {
		if old, seen := dims[name]; seen {
			dims[name] = old*emaRetain + sample*(1-emaRetain)
		} else {
			dims[name] = sample
		}
	}
}

// Characteristic devuelve el promedio acumulado de una dimension para un contexto.
func (p *PatternStore) Characteristic(contextLabel, dimension string) (float64, bool) {
	dims, ok := p.averages[contextLabel]
	if !ok {
		return 0, false
	}
	v, ok := dims[dimension]
	return v, ok
}
