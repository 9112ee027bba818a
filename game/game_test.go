package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/harpoon/config"
	"github.com/pthm-cable/harpoon/session"
	"github.com/pthm-cable/harpoon/vmath"
)

func headlessGame(t *testing.T, opts Options) *Game {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.World.Resolution = 100

	opts.Headless = true
	if opts.Seed == 0 {
		opts.Seed = 7
	}
	g, err := NewGame(cfg, opts)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestRestartSharesTerrain(t *testing.T) {
	g := headlessGame(t, Options{})
	field := g.Session().Terrain()

	for i := 0; i < 10; i++ {
		g.step(session.Input{})
	}
	first := g.Session()
	g.Restart()

	if g.Session() == first {
		t.Fatal("Restart kept the old session")
	}
	if g.Session().Terrain() != field {
		t.Error("Restart rebuilt the terrain")
	}
	if got := g.Session().Tick(); got != 0 {
		t.Errorf("new session tick = %d, want 0", got)
	}
	if got := g.Tick(); got != 10 {
		t.Errorf("total ticks = %d, want 10", got)
	}
	if g.Seed() != 7 {
		t.Errorf("seed = %d, want 7", g.Seed())
	}
}

func TestNewMapReseeds(t *testing.T) {
	g := headlessGame(t, Options{})
	field := g.Session().Terrain()

	g.NewMap(8)
	if g.Seed() != 8 {
		t.Errorf("seed = %d, want 8", g.Seed())
	}
	if g.Session().Terrain() == field {
		t.Error("NewMap reused the terrain")
	}
}

func TestSwapKeepsView(t *testing.T) {
	g := headlessGame(t, Options{})
	cam := g.Session().Camera()
	cam.Resize(1024, 768)
	cam.SetZoom(2)

	g.Restart()
	cam = g.Session().Camera()
	if cam.Zoom != 2 {
		t.Errorf("zoom = %v, want 2", cam.Zoom)
	}
	if cam.ViewportW != 1024 || cam.ViewportH != 768 {
		t.Errorf("viewport = %vx%v, want 1024x768", cam.ViewportW, cam.ViewportH)
	}
}

func TestSwapDropsPendingInput(t *testing.T) {
	g := headlessGame(t, Options{})
	g.pending.Launch = true
	g.held.Charge = true
	g.pilot.charged = 10

	g.Restart()
	if g.pending != (session.Input{}) || g.held != (session.Input{}) {
		t.Errorf("input survived swap: pending %+v held %+v", g.pending, g.held)
	}
	if g.pilot.charged != 0 {
		t.Errorf("autopilot charge survived swap: %d", g.pilot.charged)
	}
}

func TestStepConsumesTriggers(t *testing.T) {
	g := headlessGame(t, Options{})
	g.autopilot = false
	g.pending.Release = true
	g.step(g.frameInput())
	if g.pending.Release {
		t.Error("trigger not consumed by step")
	}
}

func TestQuickClickThrows(t *testing.T) {
	g := headlessGame(t, Options{})
	g.autopilot = false

	// press and release inside one frame
	g.pending.Charge = true
	g.pending.Launch = true
	g.pending.Aim = vmath.New(1, 0)
	g.step(g.frameInput())

	if !g.Session().Snapshot().Harpoon.Active {
		t.Error("click inside one frame did not throw")
	}
}

func TestRightClickCancelsThrow(t *testing.T) {
	g := headlessGame(t, Options{})
	g.autopilot = false

	g.held.Charge = true
	g.pending.Charge = true
	for i := 0; i < 5; i++ {
		g.step(g.frameInput())
	}
	g.pending.Release = true
	g.step(g.frameInput())
	g.step(g.frameInput())

	g.held.Charge = false
	g.pending.Launch = true
	g.pending.Aim = vmath.New(1, 0)
	g.step(g.frameInput())

	if g.Session().Snapshot().Harpoon.Active {
		t.Error("cancelled charge threw on release")
	}
}

func TestHeadlessRunWritesOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	g := headlessGame(t, Options{OutputDir: dir})

	for i := 0; i < 30; i++ {
		g.UpdateHeadless()
	}
	g.Unload()

	for _, name := range []string{"config.yaml", "telemetry.csv", "perf.csv", "events.csv", "flights.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if g.Tick() < 30 {
		t.Errorf("ticks = %d, want at least 30", g.Tick())
	}
}
