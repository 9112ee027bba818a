package session

import (
	"fmt"

	"github.com/pthm-cable/harpoon/config"
	"github.com/pthm-cable/harpoon/noise"
	"github.com/pthm-cable/harpoon/systems"
	"github.com/pthm-cable/harpoon/terrain"
	"github.com/pthm-cable/harpoon/vmath"
)

// Params holds the tuning a session runs with, resolved from config once.
type Params struct {
	DT            float64 // sim-seconds per tick
	Damping       float64
	Bounds        systems.Bounds
	LandThreshold float64
	OpenThreshold float64 // spawn points are moved to cells at or below this

	PlayerSpawn   vmath.Vec2
	PlayerHeading float64
	TurnRate      float64
	Thrust        float64
	BoostThrust   float64
	ChargeRate    float64

	FishSpawn     vmath.Vec2
	FishHeading   float64
	FishHealth    float64
	FishSpeed     float64
	FishFearSpeed float64
	FishLength    float64
	FishGirth     float64

	Steer   systems.SteerParams
	Harpoon systems.HarpoonParams

	StatsWindow float64
	PerfWindow  int
	ViewW       float64
	ViewH       float64
}

// ParamsFromConfig resolves session parameters from a loaded config.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		DT:            cfg.Physics.DT,
		Damping:       cfg.Physics.Damping,
		Bounds:        systems.BoundsFromSize(cfg.World.Size),
		LandThreshold: cfg.World.LandThreshold,
		OpenThreshold: cfg.World.MaskThreshold,

		PlayerSpawn:   vmath.New(cfg.Player.SpawnX, cfg.Player.SpawnY),
		PlayerHeading: cfg.Player.Heading,
		TurnRate:      cfg.Player.TurnRate,
		Thrust:        cfg.Player.Thrust,
		BoostThrust:   cfg.Player.BoostThrust,
		ChargeRate:    cfg.Player.ChargeRate,

		FishSpawn:     vmath.New(cfg.Fish.SpawnX, cfg.Fish.SpawnY),
		FishHeading:   cfg.Fish.Heading,
		FishHealth:    cfg.Fish.Health,
		FishSpeed:     cfg.Fish.Speed,
		FishFearSpeed: cfg.Fish.FearSpeed,
		FishLength:    cfg.Fish.Length,
		FishGirth:     cfg.Fish.Girth,

		Steer: systems.SteerParams{
			ProbeDistance: cfg.Fish.ProbeDistance,
			ProbeSpread:   cfg.Fish.ProbeSpread,
			Hazard:        cfg.Fish.HazardThreshold,
			Cautious:      cfg.Fish.CautiousFactor,
			LongTurn:      cfg.Fish.LongTurnFactor,
			Correct:       cfg.Fish.CorrectFactor,
		},
		Harpoon: systems.HarpoonParams{
			MinSpeed:        cfg.Harpoon.MinSpeed,
			MaxSpeed:        cfg.Harpoon.MaxSpeed,
			AttachDistance:  cfg.Harpoon.AttachDistance,
			TetherBreak:     cfg.Harpoon.TetherBreak,
			TetherStiffness: cfg.Harpoon.TetherStiffness,
			FishDrag:        cfg.Harpoon.FishDrag,
			CaptureDistance: cfg.Harpoon.CaptureDistance,
			DamageRate:      cfg.Harpoon.DamageRate,
		},

		StatsWindow: cfg.Telemetry.StatsWindow,
		PerfWindow:  cfg.Telemetry.PerfWindow,
		ViewW:       float64(cfg.Screen.Width),
		ViewH:       float64(cfg.Screen.Height),
	}
}

// TerrainOptions converts the world section of cfg into terrain build options.
func TerrainOptions(cfg *config.Config) (terrain.Options, error) {
	opts := terrain.Options{
		Size:          cfg.World.Size,
		Resolution:    cfg.World.Resolution,
		Divisors:      cfg.World.Divisors,
		LandThreshold: cfg.World.LandThreshold,
		MaskThreshold: cfg.World.MaskThreshold,
	}
	if len(cfg.World.Palette) == 0 {
		return opts, nil
	}

	stops := make([]terrain.Stop, len(cfg.World.Palette))
	for i, s := range cfg.World.Palette {
		stops[i] = terrain.Stop{
			Threshold:   s.Threshold,
			R:           s.Color[0],
			G:           s.Color[1],
			B:           s.Color[2],
			A:           s.Color[3],
			Interpolate: s.Interpolate,
		}
	}
	p, err := terrain.NewPalette(stops)
	if err != nil {
		return opts, fmt.Errorf("world.palette: %w", err)
	}
	opts.Palette = p
	return opts, nil
}

// BuildTerrain generates a terrain field from cfg with the given seed.
func BuildTerrain(cfg *config.Config, seed int64) (*terrain.Field, error) {
	src, err := noise.New(noise.Kind(cfg.World.Noise), seed)
	if err != nil {
		return nil, fmt.Errorf("noise source: %w", err)
	}
	opts, err := TerrainOptions(cfg)
	if err != nil {
		return nil, err
	}
	field, err := terrain.Build(src, opts)
	if err != nil {
		return nil, fmt.Errorf("building terrain: %w", err)
	}
	return field, nil
}
