package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Events during window
	Launches int     `csv:"launches"`
	Attaches int     `csv:"attaches"`
	Lost     int     `csv:"lost"`
	Releases int     `csv:"releases"`
	Captures int     `csv:"captures"`
	Crashes  int     `csv:"crashes"`
	HitRate  float64 `csv:"hit_rate"` // attaches / launches

	// Fraction of window ticks spent attached
	AttachedFrac float64 `csv:"attached_frac"`

	// Tether distance while attached
	TetherMean float64 `csv:"tether_mean"`
	TetherStd  float64 `csv:"tether_std"`
	TetherP10  float64 `csv:"tether_p10"`
	TetherP50  float64 `csv:"tether_p50"`
	TetherP90  float64 `csv:"tether_p90"`

	// Player speed
	SpeedMean float64 `csv:"speed_mean"`
	SpeedP90  float64 `csv:"speed_p90"`

	// Fish state at window end
	FishHealth float64 `csv:"fish_health"`
}

// Distribution summarizes a sample.
type Distribution struct {
	Mean, Std     float64
	P10, P50, P90 float64
}

// ComputeDistribution returns mean, standard deviation and empirical
// percentiles of values. An empty sample gives all zeros.
func ComputeDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var d Distribution
	if len(sorted) > 1 {
		d.Mean, d.Std = stat.MeanStdDev(sorted, nil)
	} else {
		d.Mean = sorted[0]
	}
	d.P10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	d.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	d.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return d
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("launches", s.Launches),
		slog.Int("attaches", s.Attaches),
		slog.Int("lost", s.Lost),
		slog.Int("releases", s.Releases),
		slog.Int("captures", s.Captures),
		slog.Int("crashes", s.Crashes),
		slog.Float64("hit_rate", s.HitRate),
		slog.Float64("attached_frac", s.AttachedFrac),
		slog.Float64("tether_mean", s.TetherMean),
		slog.Float64("tether_std", s.TetherStd),
		slog.Float64("tether_p50", s.TetherP50),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("fish_health", s.FishHealth),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"launches", s.Launches,
		"attaches", s.Attaches,
		"lost", s.Lost,
		"releases", s.Releases,
		"captures", s.Captures,
		"crashes", s.Crashes,
		"hit_rate", s.HitRate,
		"attached_frac", s.AttachedFrac,
		"tether_mean", s.TetherMean,
		"tether_p10", s.TetherP10,
		"tether_p50", s.TetherP50,
		"tether_p90", s.TetherP90,
		"speed_mean", s.SpeedMean,
		"fish_health", s.FishHealth,
	)
}
