package lottery

import "math/rand/v2"

// Source supplies uniformly distributed floats in [0, 1)
type Source interface {
	Float64() float64
}

// SourceFunc adapts a plain function to Source
type SourceFunc func() float64

// Float64 implements Source
func (f SourceFunc) Float64() float64 {
	return f()
}

// DefaultSource draws from the auto-seeded math/rand/v2 global generator
func DefaultSource() Source {
	return SourceFunc(rand.Float64)
}
