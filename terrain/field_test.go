package terrain

import (
	"image/color"
	"math"
	"testing"

	"github.com/pthm-cable/harpoon/noise"
	"github.com/pthm-cable/harpoon/vmath"
)

// constSource returns the same value everywhere.
type constSource float64

func (c constSource) Noise2D(x, y float64) float64 { return float64(c) }

func smallOptions() Options {
	opts := DefaultOptions()
	opts.Size = 1000
	opts.Resolution = 100
	return opts
}

func TestBuildCellsInRange(t *testing.T) {
	for _, kind := range []noise.Kind{noise.KindPerlin, noise.KindSimplex} {
		t.Run(string(kind), func(t *testing.T) {
			src, err := noise.New(kind, 42)
			if err != nil {
				t.Fatal(err)
			}
			f, err := Build(src, smallOptions())
			if err != nil {
				t.Fatal(err)
			}
			for i := 0; i < f.Resolution(); i++ {
				for j := 0; j < f.Resolution(); j++ {
					if d := f.At(i, j); d < 0 || d > 1 {
						t.Fatalf("cell (%d,%d) = %v, outside [0,1]", i, j, d)
					}
				}
			}
		})
	}
}

func TestBuildClampsSum(t *testing.T) {
	tests := []struct {
		name string
		src  constSource
		want float64
	}{
		{"saturates high", 1, 1},
		{"saturates low", -1, 0},
		{"midpoint", 0, 0.5},
		{"partial", 0.1, (0.3 + 1) / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Build(tt.src, smallOptions())
			if err != nil {
				t.Fatal(err)
			}
			if got := f.At(3, 7); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("At(3,7) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"zero size", func(o *Options) { o.Size = 0 }},
		{"negative resolution", func(o *Options) { o.Resolution = -1 }},
		{"no divisors", func(o *Options) { o.Divisors = nil }},
		{"zero divisor", func(o *Options) { o.Divisors = []float64{100, 0} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := smallOptions()
			tt.mutate(&opts)
			if _, err := Build(constSource(0), opts); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := Build(nil, smallOptions()); err == nil {
		t.Error("expected error for nil source")
	}
}

func TestDensityAtOutOfBounds(t *testing.T) {
	f, err := Flat(5000, 500, 0.2)
	if err != nil {
		t.Fatal(err)
	}

	outside := []vmath.Vec2{
		vmath.New(2500, 0),
		vmath.New(0, 2500),
		vmath.New(-2500.01, 0),
		vmath.New(0, -9000),
		vmath.New(1e9, 1e9),
		vmath.New(math.NaN(), 0),
	}
	for _, p := range outside {
		if got := f.DensityAt(p); got != OutOfBounds {
			t.Errorf("DensityAt(%v) = %v, want %v", p, got, OutOfBounds)
		}
	}

	inside := []vmath.Vec2{
		vmath.New(-2500, -2500),
		vmath.New(0, 0),
		vmath.New(2499.99, 2499.99),
	}
	for _, p := range inside {
		if got := f.DensityAt(p); got != 0.2 {
			t.Errorf("DensityAt(%v) = %v, want 0.2", p, got)
		}
	}
}

func TestDensityAtIndexing(t *testing.T) {
	// grid[i][j] = i*10 + j, scaled into [0,1]
	const res = 10
	grid := make([][]float64, res)
	for i := range grid {
		grid[i] = make([]float64, res)
		for j := range grid[i] {
			grid[i][j] = float64(i*res+j) / 100
		}
	}
	f, err := FromGrid(100, grid)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < res; i++ {
		for j := 0; j < res; j++ {
			// Cell (i, j) spans [i*10-50, (i+1)*10-50)
			pos := vmath.New(float64(i)*10-50+3, float64(j)*10-50+7)
			if got, want := f.DensityAt(pos), grid[i][j]; got != want {
				t.Fatalf("DensityAt(%v) = %v, want grid[%d][%d] = %v", pos, got, i, j, want)
			}
		}
	}

	// x selects i, y selects j
	if got := f.DensityAt(vmath.New(-45, 45)); got != grid[0][9] {
		t.Errorf("DensityAt(-45, 45) = %v, want grid[0][9] = %v", got, grid[0][9])
	}
}

func TestFromGridValidation(t *testing.T) {
	if _, err := FromGrid(100, nil); err == nil {
		t.Error("expected error for empty grid")
	}
	if _, err := FromGrid(100, [][]float64{{0, 0}, {0}}); err == nil {
		t.Error("expected error for ragged grid")
	}
	f, err := FromGrid(10, [][]float64{{-3, 2}, {0.5, 0.25}})
	if err != nil {
		t.Fatal(err)
	}
	if f.At(0, 0) != 0 || f.At(0, 1) != 1 {
		t.Errorf("FromGrid did not clamp: %v %v", f.At(0, 0), f.At(0, 1))
	}
}

func TestSurfaces(t *testing.T) {
	grid := [][]float64{
		{0.1, 0.95},
		{0.65, 0.5},
	}
	f, err := FromGrid(10, grid)
	if err != nil {
		t.Fatal(err)
	}
	pal := DefaultPalette()

	lower, upper := f.Lower(), f.Upper()
	if lower.Bounds().Dx() != 2 || upper.Bounds().Dy() != 2 {
		t.Fatalf("surface size = %v", lower.Bounds())
	}

	for i := range grid {
		for j := range grid[i] {
			want := pal.ColorFor(grid[i][j])
			if got := lower.RGBAAt(i, j); got != want {
				t.Errorf("lower(%d,%d) = %v, want %v", i, j, got, want)
			}
			up := upper.RGBAAt(i, j)
			if grid[i][j] < 0.6 {
				if up.A != 0 {
					t.Errorf("upper(%d,%d) alpha = %d, want transparent below mask", i, j, up.A)
				}
			} else if up != want {
				t.Errorf("upper(%d,%d) = %v, want %v", i, j, up, want)
			}
		}
	}
}

func TestSurfacesAreCopies(t *testing.T) {
	f, err := Flat(10, 2, 0.9)
	if err != nil {
		t.Fatal(err)
	}
	want := f.Lower().RGBAAt(0, 0)

	lower, upper := f.Lower(), f.Upper()
	lower.SetRGBA(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 4})
	upper.SetRGBA(0, 0, color.RGBA{})

	if got := f.Lower().RGBAAt(0, 0); got != want {
		t.Errorf("lower changed through a returned surface: %v, want %v", got, want)
	}
	if got := f.Upper().RGBAAt(0, 0); got.A == 0 {
		t.Error("upper changed through a returned surface")
	}
}

func TestNearestOpen(t *testing.T) {
	// 5x5 field of land with one open cell at (3, 1)
	const res = 5
	grid := make([][]float64, res)
	for i := range grid {
		grid[i] = make([]float64, res)
		for j := range grid[i] {
			grid[i][j] = 0.9
		}
	}
	grid[3][1] = 0.2
	f, err := FromGrid(50, grid)
	if err != nil {
		t.Fatal(err)
	}

	got, ok := f.NearestOpen(vmath.New(0, 0), 0.5)
	if !ok {
		t.Fatal("expected an open cell")
	}
	if want := f.CellCenter(3, 1); got != want {
		t.Errorf("NearestOpen = %v, want %v", got, want)
	}
	if d := f.DensityAt(got); d > 0.5 {
		t.Errorf("returned position has density %v", d)
	}

	// Already open: position is returned unchanged
	p := vmath.New(11, -14)
	if got, ok := f.NearestOpen(p, 0.5); !ok || got != p {
		t.Errorf("NearestOpen(open) = %v, %v", got, ok)
	}

	// Nothing open
	if _, ok := f.NearestOpen(vmath.Zero, 0.1); ok {
		t.Error("expected no open cell below 0.1")
	}
}

func TestColorForTransparentOutsideStops(t *testing.T) {
	pal := DefaultPalette()
	if got := pal.ColorFor(OutOfBounds); got != (color.RGBA{}) {
		t.Errorf("ColorFor(%v) = %v, want transparent", OutOfBounds, got)
	}
}
