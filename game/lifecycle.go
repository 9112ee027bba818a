package game

import (
	"log/slog"

	"github.com/pthm-cable/harpoon/components"
	"github.com/pthm-cable/harpoon/inspector"
	"github.com/pthm-cable/harpoon/session"
)

// Restart starts a fresh hunt on the current map.
func (g *Game) Restart() {
	slog.Info("restart", "seed", g.seed, "tick", g.sess.Tick(), "outcome", g.sess.Outcome().String())

	// Terrain is immutable, so the new session can share it
	sess, err := session.New(g.sess.Terrain(), g.params)
	if err != nil {
		slog.Error("failed to restart", "error", err)
		return
	}
	sess.SetPerf(g.perf)
	g.swap(sess)
}

// NewMap rebuilds the terrain from seed and starts a fresh hunt on it.
func (g *Game) NewMap(seed int64) {
	slog.Info("new map", "seed", seed, "previous_seed", g.seed, "tick", g.sess.Tick())

	sess, err := g.newSession(seed)
	if err != nil {
		slog.Error("failed to build map", "seed", seed, "error", err)
		return
	}
	g.seed = seed
	g.swap(sess)
	if g.terrain != nil {
		g.terrain.Load(sess.Terrain())
	}
}

// swap replaces the current session as one unit. The old session's telemetry
// is flushed first; the view (zoom, viewport) carries over.
func (g *Game) swap(next *session.Session) {
	g.flushSession()

	prev := g.sess.Camera()
	cam := next.Camera()
	cam.Resize(prev.ViewportW, prev.ViewportH)
	cam.SetZoom(prev.Zoom)

	if next.Terrain() != g.sess.Terrain() {
		g.pilot.SetTerrain(next.Terrain(), g.params.Bounds)
	}
	g.sess = next
	g.sessions++
	g.held = session.Input{}
	g.pending = session.Input{}
	g.uiClick = false
	g.clock.Reset()
	g.pilot.Reset()
	g.perf.Reset()

	if g.inspector != nil {
		g.inspector.Bind(g.inspectorViews())
	}
}

// inspectorViews lists the components shown by the inspector for the
// current world.
func (g *Game) inspectorViews() []inspector.View {
	w := g.sess.World()
	return []inspector.View{
		inspector.ComponentView[components.Position](w, "Position"),
		inspector.ComponentView[components.Velocity](w, "Velocity"),
		inspector.ComponentView[components.Rotation](w, "Rotation"),
		inspector.ComponentView[components.Player](w, "Player"),
		inspector.ComponentView[components.Fish](w, "Fish"),
		inspector.ComponentView[components.Harpoon](w, "Harpoon"),
	}
}

// targets lists the selectable entities and where they are drawn.
func (g *Game) targets() []inspector.Target {
	snap := g.sess.Snapshot()
	out := []inspector.Target{
		{Name: "Boat", Entity: g.sess.Player(), Pos: snap.Player.Pos, Radius: boatPickRadius},
		{Name: "Whale", Entity: g.sess.Fish(), Pos: snap.Fish.Pos, Radius: snap.Fish.Length / 2},
	}
	if snap.Harpoon.Active {
		out = append(out, inspector.Target{Name: "Harpoon", Entity: g.sess.Harpoon(), Pos: snap.Harpoon.Pos, Radius: 6})
	}
	return out
}

const boatPickRadius = 12
