// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Fish      FishConfig      `yaml:"fish"`
	Harpoon   HarpoonConfig   `yaml:"harpoon"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds terrain generation parameters.
// The world is a square of side Size centered on the origin.
type WorldConfig struct {
	Size          float64       `yaml:"size"`
	Resolution    int           `yaml:"resolution"`     // cells per side
	Seed          int64         `yaml:"seed"`           // 0 picks a time-based seed
	Noise         string        `yaml:"noise"`          // perlin or simplex
	Divisors      []float64     `yaml:"divisors"`       // octave coordinate divisors, coarse first
	LandThreshold float64       `yaml:"land_threshold"` // player crashes above this density
	MaskThreshold float64       `yaml:"mask_threshold"` // upper layer drawn at or above this density
	Palette       []PaletteStop `yaml:"palette"`
}

// PaletteStop is one terrain color stop.
type PaletteStop struct {
	Threshold   float64  `yaml:"threshold"`
	Color       [4]uint8 `yaml:"color,flow"` // RGBA
	Interpolate bool     `yaml:"interpolate"`
}

// PhysicsConfig holds timestep and motion parameters.
type PhysicsConfig struct {
	DT               float64 `yaml:"dt"`                  // sim-seconds per tick
	TickRate         float64 `yaml:"tick_rate"`           // ticks per wall-clock second
	MaxStepsPerFrame int     `yaml:"max_steps_per_frame"` // catch-up cap
	Damping          float64 `yaml:"damping"`             // velocity damping per sim-second
}

// PlayerConfig holds boat parameters.
type PlayerConfig struct {
	SpawnX      float64 `yaml:"spawn_x"`
	SpawnY      float64 `yaml:"spawn_y"`
	Heading     float64 `yaml:"heading"`
	TurnRate    float64 `yaml:"turn_rate"`    // radians per sim-second
	Thrust      float64 `yaml:"thrust"`       // acceleration
	BoostThrust float64 `yaml:"boost_thrust"` // acceleration while boosting
	ChargeRate  float64 `yaml:"charge_rate"`  // launch speed per second of charge
}

// FishConfig holds whale parameters and steering tuning.
type FishConfig struct {
	SpawnX          float64 `yaml:"spawn_x"`
	SpawnY          float64 `yaml:"spawn_y"`
	Heading         float64 `yaml:"heading"`
	Health          float64 `yaml:"health"`
	Speed           float64 `yaml:"speed"`
	FearSpeed       float64 `yaml:"fear_speed"`
	Length          float64 `yaml:"length"`
	Girth           float64 `yaml:"girth"`
	ProbeDistance   float64 `yaml:"probe_distance"`   // short probe reach
	ProbeSpread     float64 `yaml:"probe_spread"`     // radians between front and side probes
	HazardThreshold float64 `yaml:"hazard_threshold"` // probe density treated as danger
	CautiousFactor  float64 `yaml:"cautious_factor"`
	LongTurnFactor  float64 `yaml:"long_turn_factor"`
	CorrectFactor   float64 `yaml:"correct_factor"`
}

// HarpoonConfig holds launch, tether and capture parameters.
type HarpoonConfig struct {
	MinSpeed        float64 `yaml:"min_speed"`
	MaxSpeed        float64 `yaml:"max_speed"`
	AttachDistance  float64 `yaml:"attach_distance"`
	TetherBreak     float64 `yaml:"tether_break"`
	TetherStiffness float64 `yaml:"tether_stiffness"`
	FishDrag        float64 `yaml:"fish_drag"`
	CaptureDistance float64 `yaml:"capture_distance"`
	DamageRate      float64 `yaml:"damage_rate"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // sim-seconds per stats window
	PerfWindow  int     `yaml:"perf_window"`  // ticks averaged by the perf collector
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	HalfSize    float64 // World.Size / 2
	CellSize    float64 // World.Size / World.Resolution
	TickSeconds float64 // wall-clock seconds per tick
	StatsTicks  int     // ticks per stats window
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate checks the parameters the simulation cannot run without.
func (c *Config) Validate() error {
	var errs []error
	if c.World.Size <= 0 {
		errs = append(errs, fmt.Errorf("world.size must be positive, got %v", c.World.Size))
	}
	if c.World.Resolution <= 0 {
		errs = append(errs, fmt.Errorf("world.resolution must be positive, got %d", c.World.Resolution))
	}
	if len(c.World.Divisors) == 0 {
		errs = append(errs, errors.New("world.divisors must not be empty"))
	}
	if c.Physics.DT <= 0 {
		errs = append(errs, fmt.Errorf("physics.dt must be positive, got %v", c.Physics.DT))
	}
	if c.Physics.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("physics.tick_rate must be positive, got %v", c.Physics.TickRate))
	}
	if c.Harpoon.MinSpeed > c.Harpoon.MaxSpeed {
		errs = append(errs, fmt.Errorf("harpoon.min_speed %v exceeds max_speed %v", c.Harpoon.MinSpeed, c.Harpoon.MaxSpeed))
	}
	if c.Harpoon.TetherStiffness <= 0 {
		errs = append(errs, fmt.Errorf("harpoon.tether_stiffness must be positive, got %v", c.Harpoon.TetherStiffness))
	}
	if c.Fish.HazardThreshold <= 0 {
		errs = append(errs, fmt.Errorf("fish.hazard_threshold must be positive, got %v", c.Fish.HazardThreshold))
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.HalfSize = c.World.Size / 2
	c.Derived.CellSize = c.World.Size / float64(c.World.Resolution)
	c.Derived.TickSeconds = 1 / c.Physics.TickRate

	if c.Physics.MaxStepsPerFrame <= 0 {
		c.Physics.MaxStepsPerFrame = 5
	}
	if c.Telemetry.PerfWindow <= 0 {
		c.Telemetry.PerfWindow = 120
	}

	// Stats windows are measured in sim-seconds.
	ticks := int(c.Telemetry.StatsWindow / c.Physics.DT)
	if ticks < 1 {
		ticks = 1
	}
	c.Derived.StatsTicks = ticks
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
