package game

import (
	"log/slog"

	"github.com/pthm-cable/harpoon/session"
	"github.com/pthm-cable/harpoon/telemetry"
)

// afterStep drains the session's events and flights and flushes the stats
// window when it has elapsed.
func (g *Game) afterStep() {
	g.writeEvents(g.sess.DrainEvents())

	if flights := g.sess.DrainFlights(); len(flights) > 0 {
		if err := g.output.WriteFlights(flights); err != nil {
			slog.Error("failed to write flights", "error", err)
		}
	}

	if stats, ok := g.sess.FlushStats(); ok {
		g.writeStats(stats)
	}
}

// writeEvents appends events to events.csv. Hunt outcomes are also summarized
// with the seed and throw count.
func (g *Game) writeEvents(events []telemetry.Event) {
	if len(events) == 0 {
		return
	}
	for _, e := range events {
		if e.Type == telemetry.EventFishCaptured || e.Type == telemetry.EventPlayerCrashed {
			slog.Info("hunt over",
				"outcome", e.Type.String(),
				"seed", g.seed,
				"tick", e.Tick,
				"throws", g.sess.Flights(),
			)
		}
	}
	if err := g.output.WriteEvents(events); err != nil {
		slog.Error("failed to write events", "error", err)
	}
}

// writeStats writes one stats window and the perf window ending with it.
func (g *Game) writeStats(stats telemetry.WindowStats) {
	perfStats := g.perf.Stats()

	if g.opts.LogStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// flushSession writes whatever telemetry the current session still holds,
// including a partial stats window.
func (g *Game) flushSession() {
	if g.sess == nil {
		return
	}
	g.writeEvents(g.sess.DrainEvents())
	if flights := g.sess.DrainFlights(); len(flights) > 0 {
		if err := g.output.WriteFlights(flights); err != nil {
			slog.Error("failed to write flights", "error", err)
		}
	}
	if stats, ok := g.sess.FlushPartialStats(); ok {
		g.writeStats(stats)
	}
	if g.sess.Outcome() == session.Playing && g.sess.Tick() > 0 {
		slog.Debug("session abandoned", "tick", g.sess.Tick(), "seed", g.seed)
	}
}
