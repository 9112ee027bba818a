// Package noise provides seeded, deterministic 2D gradient noise sources.
package noise

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source produces continuous noise over the whole plane.
// Noise2D returns values in [-1, 1] and is deterministic for a given seed.
type Source interface {
	Noise2D(x, y float64) float64
}

// Kind names a noise algorithm.
type Kind string

const (
	KindPerlin  Kind = "perlin"
	KindSimplex Kind = "simplex"
)

// New creates a noise source of the given kind.
// An empty kind selects Perlin.
func New(kind Kind, seed int64) (Source, error) {
	switch kind {
	case KindPerlin, "":
		return NewPerlin(seed), nil
	case KindSimplex:
		return NewSimplex(seed), nil
	default:
		return nil, fmt.Errorf("unknown noise kind %q", kind)
	}
}

// Simplex wraps OpenSimplex noise.
type Simplex struct {
	noise opensimplex.Noise
}

// NewSimplex creates an OpenSimplex noise source for the given seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{noise: opensimplex.New(seed)}
}

// Noise2D returns a noise value in [-1, 1].
func (s *Simplex) Noise2D(x, y float64) float64 {
	return clampUnit(s.noise.Eval2(x, y))
}
