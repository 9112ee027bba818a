package vmath

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
	}{
		{"axis x", New(5, 0)},
		{"axis y", New(0, -3)},
		{"diagonal", New(3, 4)},
		{"tiny", New(1e-9, 2e-9)},
		{"large", New(-1e8, 3e7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.v.Normalize()
			if math.Abs(n.Len()-1) > 1e-9 {
				t.Errorf("Normalize(%v) length = %v, want 1", tt.v, n.Len())
			}
			if math.Abs(n.Angle()-tt.v.Angle()) > 1e-9 {
				t.Errorf("Normalize(%v) changed direction: %v vs %v", tt.v, n.Angle(), tt.v.Angle())
			}
		})
	}
}

func TestNormalizeZero(t *testing.T) {
	n := Zero.Normalize()
	if n != Zero {
		t.Errorf("Normalize(zero) = %v, want zero vector", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) {
		t.Error("Normalize(zero) produced NaN")
	}
}

func TestArithmetic(t *testing.T) {
	a := New(1, 2)
	b := New(3, -4)

	if got := a.Add(b); got != New(4, -2) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != New(-2, 6) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(3); got != New(3, 6) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v", got)
	}
	if got := Distance(New(0, 0), New(3, 4)); got != 5 {
		t.Errorf("Distance = %v", got)
	}
}

func TestRotate(t *testing.T) {
	v := New(1, 0).Rotate(math.Pi / 2)
	if math.Abs(v.X) > 1e-12 || math.Abs(v.Y-1) > 1e-12 {
		t.Errorf("Rotate(pi/2) = %v, want (0, 1)", v)
	}
}

func TestFromAngle(t *testing.T) {
	for _, a := range []float64{0, 0.5, math.Pi, -2.2, 1.6 * math.Pi} {
		v := FromAngle(a)
		if math.Abs(v.Len()-1) > 1e-12 {
			t.Errorf("FromAngle(%v) length = %v", a, v.Len())
		}
	}
}

func TestLerp(t *testing.T) {
	a := New(0, 10)
	b := New(10, 20)

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp t=0 = %v", got)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp t=1 = %v", got)
	}
	if got := Lerp(a, b, 0.5); got != New(5, 15) {
		t.Errorf("Lerp t=0.5 = %v", got)
	}
}

func TestClamp(t *testing.T) {
	min, max := New(-10, -10), New(10, 10)
	if got := Clamp(New(20, -30), min, max); got != New(10, -10) {
		t.Errorf("Clamp = %v", got)
	}
	if got := Clamp(New(1, 2), min, max); got != New(1, 2) {
		t.Errorf("Clamp inside = %v", got)
	}
}
