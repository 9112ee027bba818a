// Package game hosts a hunt session: it owns the window-side state (clock,
// input, renderers, HUD) and swaps sessions on restart or new map.
package game

import (
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/harpoon/config"
	"github.com/pthm-cable/harpoon/inspector"
	"github.com/pthm-cable/harpoon/renderer"
	"github.com/pthm-cable/harpoon/session"
	"github.com/pthm-cable/harpoon/telemetry"
	"github.com/pthm-cable/harpoon/ui"
)

// Options configures a Game.
type Options struct {
	Seed      int64  // terrain seed, 0 = config seed or time-based
	OutputDir string // CSV and config output, empty disables
	Headless  bool   // no raylib calls
	LogStats  bool   // log window and perf stats via slog
	Autopilot bool   // steer the player automatically
}

// Game holds the host state around the current session.
type Game struct {
	cfg    *config.Config
	params session.Params
	opts   Options

	sess  *session.Session
	seed  int64
	clock *Clock
	pilot *Autopilot

	// Telemetry
	perf   *telemetry.PerfCollector
	output *telemetry.OutputManager

	// Host state
	paused    bool
	autopilot bool
	held      session.Input // movement and charge, sampled each frame
	pending   session.Input // edge triggers not yet consumed by a step
	uiClick   bool          // left button went down over the UI
	ticks     int64         // steps across all sessions
	sessions  int

	// Window
	screenWidth  float32
	screenHeight float32

	// Rendering, nil when headless
	terrain   *renderer.TerrainRenderer
	hud       *ui.HUD
	overlays  *ui.OverlayRegistry
	controls  *ui.ControlsPanel
	perfPanel *ui.PerfPanel
	inspector *inspector.Inspector
}

// NewGame builds the first session. Windowed games must be created after
// rl.InitWindow.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = cfg.World.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config: %w", err)
	}

	g := &Game{
		cfg:          cfg,
		params:       session.ParamsFromConfig(cfg),
		opts:         opts,
		seed:         seed,
		clock:        NewClock(cfg.Physics.TickRate, cfg.Physics.MaxStepsPerFrame),
		pilot:        NewAutopilot(),
		perf:         telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		output:       output,
		autopilot:    opts.Autopilot || opts.Headless,
		screenWidth:  float32(cfg.Screen.Width),
		screenHeight: float32(cfg.Screen.Height),
	}

	sess, err := g.newSession(seed)
	if err != nil {
		output.Close()
		return nil, err
	}
	g.sess = sess
	g.sessions = 1
	g.pilot.SetTerrain(sess.Terrain(), g.params.Bounds)

	if !opts.Headless {
		g.terrain = renderer.NewTerrainRenderer(sess.Terrain())
		g.hud = ui.NewHUD()
		g.overlays = ui.NewOverlayRegistry()
		g.controls = ui.NewControlsPanel(10, 320, 260)
		g.perfPanel = ui.NewPerfPanel(int32(g.screenWidth)-240, int32(g.screenHeight)-200)
		g.inspector = inspector.NewInspector(int32(g.screenWidth), int32(g.screenHeight))
		g.inspector.Bind(g.inspectorViews())
	}

	slog.Info("session started",
		"seed", seed,
		"headless", opts.Headless,
		"autopilot", g.autopilot,
		"output_dir", output.Dir(),
	)
	return g, nil
}

// newSession builds terrain for seed and a session on it.
func (g *Game) newSession(seed int64) (*session.Session, error) {
	field, err := session.BuildTerrain(g.cfg, seed)
	if err != nil {
		return nil, err
	}
	sess, err := session.New(field, g.params)
	if err != nil {
		return nil, err
	}
	sess.SetPerf(g.perf)
	return sess, nil
}

// Update polls input and advances the session by however many ticks the
// elapsed frame time covers.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		g.clock.Reset()
		return
	}

	steps := g.clock.Advance(float64(rl.GetFrameTime()))
	for i := 0; i < steps; i++ {
		g.step(g.frameInput())
	}
}

// UpdateHeadless advances one tick under the autopilot. A crash restarts the
// hunt on the same map, a capture moves to the next seed.
func (g *Game) UpdateHeadless() {
	in := g.pilot.Input(g.sess.Snapshot(), g.sess.Terrain())
	g.step(in)

	switch g.sess.Outcome() {
	case session.Crashed:
		g.Restart()
	case session.Won:
		g.NewMap(g.seed + 1)
	}
}

// step runs one session tick and its telemetry.
func (g *Game) step(in session.Input) {
	if g.sess.Outcome() != session.Playing {
		return
	}
	g.sess.Step(g.params.DT, in)
	g.pending = session.Input{}
	g.ticks++
	g.afterStep()
}

// Tick returns the number of steps taken across all sessions.
func (g *Game) Tick() int64 {
	return g.ticks
}

// Session returns the current session.
func (g *Game) Session() *session.Session {
	return g.sess
}

// Seed returns the current terrain seed.
func (g *Game) Seed() int64 {
	return g.seed
}

// Unload flushes telemetry and releases GPU resources.
func (g *Game) Unload() {
	g.flushSession()
	if g.terrain != nil {
		g.terrain.Unload()
	}
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	slog.Info("game stopped", "ticks", g.ticks, "sessions", g.sessions, "seed", g.seed)
}
