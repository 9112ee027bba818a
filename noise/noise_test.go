package noise

import (
	"math"
	"testing"
)

func sources(seed int64) map[string]Source {
	return map[string]Source{
		"perlin":  NewPerlin(seed),
		"simplex": NewSimplex(seed),
	}
}

func TestNoiseRange(t *testing.T) {
	for name, src := range sources(7) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				for j := 0; j < 200; j++ {
					x := float64(i)*0.173 - 17
					y := float64(j)*0.119 - 11
					v := src.Noise2D(x, y)
					if v < -1 || v > 1 || math.IsNaN(v) {
						t.Fatalf("Noise2D(%v, %v) = %v, outside [-1, 1]", x, y, v)
					}
				}
			}
		})
	}
}

func TestNoiseDeterministic(t *testing.T) {
	a := NewPerlin(1234)
	b := NewPerlin(1234)
	c := NewPerlin(4321)

	differs := false
	for i := 0; i < 100; i++ {
		x, y := float64(i)*0.37, float64(i)*0.21+3
		if a.Noise2D(x, y) != b.Noise2D(x, y) {
			t.Fatalf("same seed gave different values at (%v, %v)", x, y)
		}
		if a.Noise2D(x, y) != c.Noise2D(x, y) {
			differs = true
		}
	}
	if !differs {
		t.Error("different seeds produced identical fields")
	}
}

func TestNoiseContinuous(t *testing.T) {
	for name, src := range sources(99) {
		t.Run(name, func(t *testing.T) {
			const eps = 1e-4
			for i := 0; i < 500; i++ {
				x := float64(i)*0.731 - 100
				y := float64(i)*0.417 + 50
				d := math.Abs(src.Noise2D(x, y) - src.Noise2D(x+eps, y+eps))
				if d > 0.01 {
					t.Fatalf("jump of %v between (%v,%v) and a point %v away", d, x, y, eps)
				}
			}
		})
	}
}

func TestPerlinLatticeZero(t *testing.T) {
	p := NewPerlin(5)
	for _, pt := range [][2]float64{{0, 0}, {3, 7}, {-4, 12}, {300, -299}} {
		if v := p.Noise2D(pt[0], pt[1]); v != 0 {
			t.Errorf("Noise2D(%v) = %v, want 0 at lattice point", pt, v)
		}
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		kind    Kind
		wantErr bool
	}{
		{"", false},
		{KindPerlin, false},
		{KindSimplex, false},
		{"value", true},
	}

	for _, tt := range tests {
		src, err := New(tt.kind, 1)
		if (err != nil) != tt.wantErr {
			t.Errorf("New(%q) error = %v, wantErr %v", tt.kind, err, tt.wantErr)
		}
		if err == nil && src == nil {
			t.Errorf("New(%q) returned nil source", tt.kind)
		}
	}
}
