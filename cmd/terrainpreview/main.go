// Terrain preview tool - interactive map generation with sliders.
//
// Usage: go run ./cmd/terrainpreview [-config path]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/harpoon/config"
	"github.com/pthm-cable/harpoon/noise"
	"github.com/pthm-cable/harpoon/renderer"
	"github.com/pthm-cable/harpoon/session"
	"github.com/pthm-cable/harpoon/terrain"
)

const (
	windowWidth  = 1100
	windowHeight = 720
	previewSize  = 680
	panelWidth   = windowWidth - previewSize - 30
)

// preview holds the tunable world parameters and the field built from them.
type preview struct {
	cfg      *config.Config
	defaults config.WorldConfig
	seed     int64

	field *terrain.Field
	stats fieldStats
	err   error
}

// fieldStats summarizes a built field.
type fieldStats struct {
	Min, Max, Mean, StdDev float64
	Land                   float64 // fraction of cells above the land threshold
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	p := &preview{cfg: cfg, defaults: cfg.World, seed: cfg.World.Seed}
	if p.seed == 0 {
		p.seed = 12345
	}
	// Divisors are edited in place
	p.defaults.Divisors = append([]float64(nil), cfg.World.Divisors...)

	rl.InitWindow(windowWidth, windowHeight, "Terrain Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	p.rebuild()
	tr := renderer.NewTerrainRenderer(p.field)
	defer tr.Unload()

	showUpper := true
	for !rl.WindowShouldClose() {
		changed := false

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Preview, world fitted into the square
		if p.field != nil {
			rl.BeginMode2D(rl.Camera2D{
				Offset: rl.Vector2{X: 10 + previewSize/2, Y: 10 + previewSize/2},
				Zoom:   float32(previewSize / p.field.Size()),
			})
			tr.DrawLower()
			if showUpper {
				tr.DrawUpper()
			}
			rl.EndMode2D()
		}
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Terrain Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		slider := func(label, format string, value, min, max float64) float64 {
			rl.DrawText(label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			next := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				"", "",
				float32(value), float32(min), float32(max),
			)
			rl.DrawText(fmt.Sprintf(format, value), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
			panelY += 32
			if float64(next) != value {
				changed = true
				return float64(next)
			}
			return value
		}

		w := &p.cfg.World
		for i := range w.Divisors {
			w.Divisors[i] = slider(fmt.Sprintf("Octave %d divisor", i+1), "%.0f", w.Divisors[i], 2, 400)
		}
		w.LandThreshold = slider("Land threshold (crash above)", "%.2f", w.LandThreshold, 0, 1)
		w.MaskThreshold = slider("Mask threshold (upper layer)", "%.2f", w.MaskThreshold, 0, 1)
		p.seed = int64(slider("Seed", "%.0f", float64(p.seed), 0, 99999))

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Noise: "+w.Noise) {
			if noise.Kind(w.Noise) == noise.KindSimplex {
				w.Noise = string(noise.KindPerlin)
			} else {
				w.Noise = string(noise.KindSimplex)
			}
			changed = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			p.seed = int64(rl.GetRandomValue(0, 99999))
			changed = true
		}
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			p.cfg.World = p.defaults
			p.cfg.World.Divisors = append([]float64(nil), p.defaults.Divisors...)
			changed = true
		}
		showUpper = gui.CheckBox(rl.Rectangle{X: panelX + 130, Y: panelY + 7, Width: 16, Height: 16}, "Land mask", showUpper)
		panelY += 45

		// Stats
		if p.err != nil {
			rl.DrawText(p.err.Error(), int32(panelX), int32(panelY), 14, rl.Red)
		} else {
			s := p.stats
			rl.DrawText(fmt.Sprintf("Min %.3f  Max %.3f", s.Min, s.Max), int32(panelX), int32(panelY), 14, rl.DarkGray)
			rl.DrawText(fmt.Sprintf("Mean %.3f  SD %.3f", s.Mean, s.StdDev), int32(panelX), int32(panelY+18), 14, rl.DarkGray)
			rl.DrawText(fmt.Sprintf("Land %.1f%%", s.Land*100), int32(panelX), int32(panelY+36), 14, rl.DarkGray)
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), windowHeight-30, 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			if out, err := p.worldYAML(); err == nil {
				rl.SetClipboardText(out)
			} else {
				slog.Error("failed to encode world config", "error", err)
			}
		}

		rl.EndDrawing()

		if changed {
			p.rebuild()
			if p.field != nil {
				tr.Load(p.field)
			}
		}
	}
}

// rebuild regenerates the field from the current parameters. A failed build
// keeps the previous field on screen.
func (p *preview) rebuild() {
	field, err := session.BuildTerrain(p.cfg, p.seed)
	p.err = err
	if err != nil {
		return
	}
	p.field = field
	p.stats = summarize(field, p.cfg.World.LandThreshold)
}

// summarize computes density statistics over every cell of f.
func summarize(f *terrain.Field, landThreshold float64) fieldStats {
	n := f.Resolution()
	values := make([]float64, 0, n*n)
	s := fieldStats{Min: 1, Max: 0}
	land := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := f.At(i, j)
			values = append(values, v)
			if v < s.Min {
				s.Min = v
			}
			if v > s.Max {
				s.Max = v
			}
			if v > landThreshold {
				land++
			}
		}
	}
	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	s.Land = float64(land) / float64(len(values))
	return s
}

// worldYAML renders the world section with the current seed.
func (p *preview) worldYAML() (string, error) {
	w := p.cfg.World
	w.Seed = p.seed
	out, err := yaml.Marshal(map[string]config.WorldConfig{"world": w})
	if err != nil {
		return "", err
	}
	return string(out), nil
}
