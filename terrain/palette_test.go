package terrain

import (
	"image/color"
	"testing"
)

func TestPaletteBoundaryAgreement(t *testing.T) {
	pal := DefaultPalette()
	stops := pal.Stops()

	// At each stop that ends an interpolating range the blended color must
	// equal the stop's own color.
	for k := 1; k < len(stops); k++ {
		if !stops[k-1].Interpolate {
			continue
		}
		s := stops[k]
		got := pal.ColorFor(s.Threshold)
		if got != s.rgba() {
			t.Errorf("ColorFor(%v) = %v, want stop color %v", s.Threshold, got, s.rgba())
		}
	}
}

func TestPaletteColorFor(t *testing.T) {
	pal := DefaultPalette()

	tests := []struct {
		name string
		d    float64
		want color.RGBA
	}{
		{"deep water", 0.3, color.RGBA{64, 64, 243, 255}},
		{"shallow water", 0.7, color.RGBA{113, 181, 226, 180}},
		{"sand", 0.77, color.RGBA{255, 253, 109, 255}},
		{"sand to grass start", 0.8, color.RGBA{255, 253, 109, 255}},
		{"sand to grass middle", 0.85, color.RGBA{154, 223, 90, 255}},
		{"grass", 0.9, color.RGBA{52, 192, 71, 255}},
		{"forest", 1, color.RGBA{56, 155, 69, 255}},
		{"below range", -0.5, color.RGBA{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pal.ColorFor(tt.d); got != tt.want {
				t.Errorf("ColorFor(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestNewPalette(t *testing.T) {
	tests := []struct {
		name    string
		stops   []Stop
		wantErr bool
	}{
		{"valid", []Stop{{Threshold: 0}, {Threshold: 0.5}, {Threshold: 1}}, false},
		{"too few", []Stop{{Threshold: 0}}, true},
		{"descending", []Stop{{Threshold: 0}, {Threshold: 0.7}, {Threshold: 0.5}, {Threshold: 1}}, true},
		{"duplicate", []Stop{{Threshold: 0}, {Threshold: 0.5}, {Threshold: 0.5}, {Threshold: 1}}, true},
		{"starts above zero", []Stop{{Threshold: 0.1}, {Threshold: 1}}, true},
		{"ends below one", []Stop{{Threshold: 0}, {Threshold: 0.9}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPalette(tt.stops)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewPalette error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewPaletteCopies(t *testing.T) {
	stops := []Stop{{Threshold: 0, R: 1}, {Threshold: 1, R: 2}}
	pal, err := NewPalette(stops)
	if err != nil {
		t.Fatal(err)
	}
	stops[0].R = 99
	if got := pal.ColorFor(0.5).R; got != 1 {
		t.Errorf("palette aliased caller slice: R = %d", got)
	}
}
