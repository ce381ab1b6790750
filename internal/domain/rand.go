package domain

import "math/rand"

// Rand es la fuente de aleatoriedad inyectable del generador de escenarios
// y del simulador post-closing. Inyectarla (en vez de usar el global de
// math/rand) permite tests reproducibles con seeds o stubs fijos.
type Rand interface {
	// Float64 devuelve un uniforme en [0, 1).
	Float64() float64
	// IntN devuelve un uniforme en [0, n). Panics si n <= 0.
	IntN(n int) int
}

type seededRand struct {
	r *rand.Rand
}

func (s seededRand) Float64() float64 { return s.r.Float64() }
func (s seededRand) IntN(n int) int   { return s.r.Intn(n) }

// NewRand crea una fuente de aleatoriedad con el seed dado.
func NewRand(seed int64) Rand {
	return seededRand{r: rand.New(rand.NewSource(seed))}
}

// Between devuelve un uniforme en [lo, hi).
func Between(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// IntBetween devuelve un uniforme entero en [lo, hi], ambos inclusive.
func IntBetween(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}
