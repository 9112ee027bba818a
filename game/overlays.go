package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/harpoon/renderer"
	"github.com/pthm-cable/harpoon/session"
	"github.com/pthm-cable/harpoon/systems"
	"github.com/pthm-cable/harpoon/ui"
	"github.com/pthm-cable/harpoon/vmath"
)

// handleOverlayKeys checks for overlay toggle key presses.
func (g *Game) handleOverlayKeys() {
	for _, desc := range g.overlays.All() {
		if desc.Key != 0 && rl.IsKeyPressed(desc.Key) {
			g.overlays.Toggle(desc.ID)
		}
	}
}

// drawWorldOverlays renders the enabled world-space overlays. Call inside
// BeginMode2D.
func (g *Game) drawWorldOverlays(snap session.Snapshot) {
	for _, id := range g.overlays.EnabledOverlays() {
		switch id {
		case ui.OverlaySensors:
			g.drawSensors(snap)
		case ui.OverlayCaptureRing:
			if center, radius, ok := captureRing(snap); ok {
				renderer.DrawCaptureRing(center, radius)
			}
		case ui.OverlayAim:
			if snap.ShowAim {
				renderer.DrawAim(snap.Player.Pos, snap.AimBearing, ui.ChargeFraction(g.hudData(snap)))
			}
		// Land mask, perf and the overlay list are drawn by Draw
		}
	}
}

// captureRing is the circle the boat must enter for the tether to hurt the
// whale, centred on the whale. ok is false unless the harpoon is attached.
func captureRing(snap session.Snapshot) (center vmath.Vec2, radius float64, ok bool) {
	if !snap.Harpoon.Attached {
		return vmath.Vec2{}, 0, false
	}
	return snap.Fish.Pos, snap.CaptureDistance, true
}

// drawSensors shows where the whale probes the terrain and what it read
// there on the last tick.
func (g *Game) drawSensors(snap session.Snapshot) {
	if !snap.Fish.Alive {
		return
	}
	steer := g.params.Steer
	points := systems.ProbePoints(snap.Fish.Pos, snap.Fish.Heading, steer)
	renderer.DrawSensors(snap.Fish.Pos, points, snap.Fish.Sensors, steer.Hazard)
}
