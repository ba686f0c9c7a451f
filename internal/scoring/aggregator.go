package scoring

// Dimension define como se agrega una señal: constante base mas el peso de
// cada predicado que resulto true. Pesos negativos representan señales inversas.
type Dimension struct {
	Name    string
	Base    float64
	Weights map[string]float64
}

// aggregate calcula cada dimension y la recorta a [0,1]. La politica es
// saturacion por clamp, no renormalizacion: si los pesos combinados empujan
// fuera de rango, el valor se queda en el borde.
func aggregate(dims []Dimension, results map[string]bool) map[string]float64 {
	scores := make(map[string]float64, len(dims))
	for _, d := range dims {
		score := d.Base
		for pred, weight := range d.Weights {
			if results[pred] {
				score += weight
			}
		}
		scores[d.Name] = clamp01(score)
	}
	return scores
}

func clamp01(v float64) float64 {
	if v != v { // NaN
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
