// Package terrain builds the procedural density field that serves as both the
// rendered map and the collision/hazard map.
package terrain

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/pthm-cable/harpoon/noise"
	"github.com/pthm-cable/harpoon/vmath"
)

// OutOfBounds is returned by DensityAt for positions outside the field.
// It is above every land threshold, so leaving the map always reads as hazard.
const OutOfBounds = 10.0

// DefaultDivisors are the coarse, medium and fine octave divisors.
var DefaultDivisors = []float64{100, 50, 20}

// Options configures field generation.
type Options struct {
	Size          float64   // world extent, centered on the origin
	Resolution    int       // cells per side
	Divisors      []float64 // one noise octave per divisor
	LandThreshold float64
	MaskThreshold float64 // upper surface is transparent below this density
	Palette       Palette
}

// DefaultOptions returns the standard 5000-unit, 500-cell field options.
func DefaultOptions() Options {
	return Options{
		Size:          5000,
		Resolution:    500,
		Divisors:      DefaultDivisors,
		LandThreshold: 0.75,
		MaskThreshold: 0.6,
		Palette:       DefaultPalette(),
	}
}

// Field is a square grid of densities in [0, 1]. It is fully populated at
// construction and never mutated afterwards.
type Field struct {
	grid       [][]float64 // grid[i][j], i = x index, j = y index
	size       float64
	resolution int
	scale      float64

	lower *image.RGBA
	upper *image.RGBA
}

// Build samples src over every cell and classifies the result into surfaces.
func Build(src noise.Source, opts Options) (*Field, error) {
	if src == nil {
		return nil, errors.New("terrain: nil noise source")
	}
	if err := validate(opts.Size, opts.Resolution); err != nil {
		return nil, err
	}
	if len(opts.Divisors) == 0 {
		return nil, errors.New("terrain: no noise divisors")
	}
	for _, div := range opts.Divisors {
		if div == 0 {
			return nil, errors.New("terrain: zero noise divisor")
		}
	}

	res := opts.Resolution
	grid := make([][]float64, res)
	for i := range grid {
		grid[i] = make([]float64, res)
		for j := range grid[i] {
			d := 0.0
			for _, div := range opts.Divisors {
				d += src.Noise2D(float64(i)/div, float64(j)/div)
			}
			grid[i][j] = vmath.ClampFloat((d+1)/2, 0, 1)
		}
	}

	f := newField(opts.Size, grid)
	pal := opts.Palette
	if len(pal.stops) == 0 {
		pal = DefaultPalette()
	}
	f.paint(pal, opts.MaskThreshold)
	return f, nil
}

// FromGrid builds a field from an explicit square grid indexed grid[i][j].
// Values are clamped to [0, 1]. Surfaces use the default palette and mask.
func FromGrid(size float64, grid [][]float64) (*Field, error) {
	if err := validate(size, len(grid)); err != nil {
		return nil, err
	}
	res := len(grid)
	cp := make([][]float64, res)
	for i, col := range grid {
		if len(col) != res {
			return nil, fmt.Errorf("terrain: grid column %d has %d cells, want %d", i, len(col), res)
		}
		cp[i] = make([]float64, res)
		for j, d := range col {
			cp[i][j] = vmath.ClampFloat(d, 0, 1)
		}
	}

	f := newField(size, cp)
	f.paint(DefaultPalette(), DefaultOptions().MaskThreshold)
	return f, nil
}

// Flat returns a field of uniform density.
func Flat(size float64, resolution int, density float64) (*Field, error) {
	if err := validate(size, resolution); err != nil {
		return nil, err
	}
	grid := make([][]float64, resolution)
	for i := range grid {
		grid[i] = make([]float64, resolution)
		for j := range grid[i] {
			grid[i][j] = density
		}
	}
	return FromGrid(size, grid)
}

func validate(size float64, resolution int) error {
	if !(size > 0) {
		return fmt.Errorf("terrain: size must be positive, got %v", size)
	}
	if resolution <= 0 {
		return fmt.Errorf("terrain: resolution must be positive, got %d", resolution)
	}
	return nil
}

func newField(size float64, grid [][]float64) *Field {
	return &Field{
		grid:       grid,
		size:       size,
		resolution: len(grid),
		scale:      size / float64(len(grid)),
	}
}

// DensityAt returns the density of the cell containing pos, or OutOfBounds
// when pos lies outside the field.
func (f *Field) DensityAt(pos vmath.Vec2) float64 {
	i, ok := f.index(pos.X)
	if !ok {
		return OutOfBounds
	}
	j, ok := f.index(pos.Y)
	if !ok {
		return OutOfBounds
	}
	return f.grid[i][j]
}

func (f *Field) index(coord float64) (int, bool) {
	idx := math.Floor((coord + f.size/2) / f.scale)
	if !(idx >= 0 && idx < float64(f.resolution)) {
		return 0, false
	}
	return int(idx), true
}

// At returns the density of cell (i, j). Indices outside the grid give OutOfBounds.
func (f *Field) At(i, j int) float64 {
	if i < 0 || j < 0 || i >= f.resolution || j >= f.resolution {
		return OutOfBounds
	}
	return f.grid[i][j]
}

// CellCenter returns the world position of the center of cell (i, j).
func (f *Field) CellCenter(i, j int) vmath.Vec2 {
	half := f.size / 2
	return vmath.New(
		(float64(i)+0.5)*f.scale-half,
		(float64(j)+0.5)*f.scale-half,
	)
}

// Bounds returns the min and max world corners.
func (f *Field) Bounds() (min, max vmath.Vec2) {
	half := f.size / 2
	return vmath.New(-half, -half), vmath.New(half, half)
}

// Size returns the world extent of the field.
func (f *Field) Size() float64 { return f.size }

// Resolution returns the number of cells per side.
func (f *Field) Resolution() int { return f.resolution }

// Scale returns the world size of one cell.
func (f *Field) Scale() float64 { return f.scale }

// Lower returns a copy of the fully colored surface, one pixel per cell.
func (f *Field) Lower() *image.RGBA { return cloneRGBA(f.lower) }

// Upper returns a copy of the surface masked to land, drawn over the whale.
func (f *Field) Upper() *image.RGBA { return cloneRGBA(f.upper) }

// cloneRGBA copies img so callers cannot reach the field's surfaces.
func cloneRGBA(img *image.RGBA) *image.RGBA {
	if img == nil {
		return nil
	}
	out := image.NewRGBA(img.Rect)
	copy(out.Pix, img.Pix)
	return out
}

// NearestOpen finds the center of the nearest cell around pos whose density is
// at most threshold, searching square rings outward from pos's cell.
func (f *Field) NearestOpen(pos vmath.Vec2, threshold float64) (vmath.Vec2, bool) {
	if f.DensityAt(pos) <= threshold {
		return pos, true
	}

	ci := f.clampIndex(pos.X)
	cj := f.clampIndex(pos.Y)

	for r := 0; r < f.resolution; r++ {
		best := vmath.Zero
		bestDist := math.Inf(1)
		for i := ci - r; i <= ci+r; i++ {
			for j := cj - r; j <= cj+r; j++ {
				// ring only
				if i != ci-r && i != ci+r && j != cj-r && j != cj+r {
					continue
				}
				if f.At(i, j) > threshold {
					continue
				}
				c := f.CellCenter(i, j)
				if d := vmath.DistanceSq(c, pos); d < bestDist {
					best, bestDist = c, d
				}
			}
		}
		if !math.IsInf(bestDist, 1) {
			return best, true
		}
	}
	return pos, false
}

func (f *Field) clampIndex(coord float64) int {
	idx := math.Floor((coord + f.size/2) / f.scale)
	if !(idx >= 0) {
		return 0
	}
	if idx >= float64(f.resolution) {
		return f.resolution - 1
	}
	return int(idx)
}
