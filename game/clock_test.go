package game

import (
	"math"
	"testing"
)

func TestClockAdvance(t *testing.T) {
	tests := []struct {
		name    string
		elapsed []float64
		want    []int
	}{
		{"zero", []float64{0}, []int{0}},
		{"negative", []float64{-1}, []int{0}},
		{"nan", []float64{math.NaN()}, []int{0}},
		{"exact ticks", []float64{0.25, 0.5}, []int{1, 2}},
		{"accumulates", []float64{0.125, 0.125, 0.125}, []int{0, 1, 0}},
		{"capped", []float64{10, 0.25}, []int{4, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClock(4, 4) // 0.25s per tick
			for i, e := range tt.elapsed {
				if got := c.Advance(e); got != tt.want[i] {
					t.Errorf("Advance(%v) #%d = %d, want %d", e, i, got, tt.want[i])
				}
			}
		})
	}
}

func TestClockAlphaAndReset(t *testing.T) {
	c := NewClock(4, 4)
	c.Advance(0.375)
	if math.Abs(c.Alpha()-0.5) > 1e-12 {
		t.Errorf("Alpha = %v, want 0.5", c.Alpha())
	}
	c.Reset()
	if c.Alpha() != 0 {
		t.Errorf("Alpha after reset = %v", c.Alpha())
	}
}

func TestNewClockDefaults(t *testing.T) {
	c := NewClock(0, 0)
	if math.Abs(c.TickSeconds-1.0/60) > 1e-15 || c.MaxSteps != 1 {
		t.Errorf("clock = %+v", c)
	}
}
