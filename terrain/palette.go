package terrain

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

// Stop is one palette entry. When Interpolate is set, densities between this
// stop and the next blend linearly between their colors.
type Stop struct {
	Threshold   float64
	R, G, B, A  uint8
	Interpolate bool
}

func (s Stop) rgba() color.RGBA {
	return color.RGBA{R: s.R, G: s.G, B: s.B, A: s.A}
}

// Palette maps densities to colors. Stops are in ascending threshold order.
type Palette struct {
	stops []Stop
}

// NewPalette validates and copies stops.
func NewPalette(stops []Stop) (Palette, error) {
	if len(stops) < 2 {
		return Palette{}, errors.New("terrain: palette needs at least two stops")
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].Threshold <= stops[i-1].Threshold {
			return Palette{}, fmt.Errorf("terrain: palette stop %d threshold %v not above %v",
				i, stops[i].Threshold, stops[i-1].Threshold)
		}
	}
	if stops[0].Threshold > 0 {
		return Palette{}, fmt.Errorf("terrain: first palette stop %v must be <= 0", stops[0].Threshold)
	}
	if last := stops[len(stops)-1].Threshold; last < 1 {
		return Palette{}, fmt.Errorf("terrain: last palette stop %v must be >= 1", last)
	}

	cp := make([]Stop, len(stops))
	copy(cp, stops)
	return Palette{stops: cp}, nil
}

// DefaultPalette runs deep water, shallow water, sand, sand to grass, grass to forest.
func DefaultPalette() Palette {
	return Palette{stops: []Stop{
		{Threshold: 0, R: 64, G: 64, B: 243, A: 255},
		{Threshold: 0.6, R: 113, G: 181, B: 226, A: 180},
		{Threshold: 0.75, R: 255, G: 253, B: 109, A: 255},
		{Threshold: 0.8, R: 255, G: 253, B: 109, A: 255, Interpolate: true},
		{Threshold: 0.9, R: 52, G: 192, B: 71, A: 255, Interpolate: true},
		{Threshold: 1, R: 56, G: 155, B: 69, A: 255},
	}}
}

// Stops returns a copy of the palette stops.
func (p Palette) Stops() []Stop {
	cp := make([]Stop, len(p.stops))
	copy(cp, p.stops)
	return cp
}

// ColorFor classifies density d. The first adjacent pair of stops whose range
// contains d decides the color; no such pair gives transparent black.
func (p Palette) ColorFor(d float64) color.RGBA {
	for k := 0; k+1 < len(p.stops); k++ {
		lo, hi := p.stops[k], p.stops[k+1]
		if d < lo.Threshold || d > hi.Threshold {
			continue
		}
		if !lo.Interpolate {
			return lo.rgba()
		}
		t := (d - lo.Threshold) / (hi.Threshold - lo.Threshold)
		return color.RGBA{
			R: lerpChannel(lo.R, hi.R, t),
			G: lerpChannel(lo.G, hi.G, t),
			B: lerpChannel(lo.B, hi.B, t),
			A: lerpChannel(lo.A, hi.A, t),
		}
	}
	return color.RGBA{}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a) + (float64(b)-float64(a))*t)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// paint fills the lower and upper surfaces. Pixel (x, y) is cell (i, j).
func (f *Field) paint(p Palette, mask float64) {
	rect := image.Rect(0, 0, f.resolution, f.resolution)
	f.lower = image.NewRGBA(rect)
	f.upper = image.NewRGBA(rect)

	for i := 0; i < f.resolution; i++ {
		for j := 0; j < f.resolution; j++ {
			d := f.grid[i][j]
			c := p.ColorFor(d)
			f.lower.SetRGBA(i, j, c)
			if d >= mask {
				f.upper.SetRGBA(i, j, c)
			}
		}
	}
}
