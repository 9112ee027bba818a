package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/harpoon/renderer"
	"github.com/pthm-cable/harpoon/session"
	"github.com/pthm-cable/harpoon/ui"
)

const controlsLegend = "WASD steer | Shift boost | LMB hold+release throw | RMB drop | " +
	"P pause | R restart | N new map | O autopilot | Tab inspect | F1-F6 overlays"

// layer is one pass of the world draw.
type layer uint8

const (
	layerLower layer = iota
	layerFish
	layerUpper
	layerHarpoon
	layerPlayer
)

// worldLayers lists the world passes bottom to top. The land mask hides the
// whale when it swims under shallows; the boat and harpoon stay on top.
func worldLayers(landMask bool) []layer {
	layers := []layer{layerLower, layerFish}
	if landMask {
		layers = append(layers, layerUpper)
	}
	return append(layers, layerHarpoon, layerPlayer)
}

// Draw renders the current session and the HUD.
func (g *Game) Draw() {
	g.perf.RecordFrame()
	snap := g.sess.Snapshot()
	targets := g.targets()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.BeginMode2D(renderer.Camera2D(snap.Camera))
	for _, l := range worldLayers(g.overlays.IsEnabled(ui.OverlayLandMask)) {
		switch l {
		case layerLower:
			g.terrain.DrawLower()
		case layerFish:
			renderer.DrawFish(snap.Fish)
		case layerUpper:
			g.terrain.DrawUpper()
		case layerHarpoon:
			renderer.DrawHarpoon(snap.Harpoon, snap.Player.Pos)
		case layerPlayer:
			renderer.DrawPlayer(snap.Player)
		}
	}

	g.drawWorldOverlays(snap)
	g.inspector.DrawSelectionHighlight(targets)
	rl.EndMode2D()

	data := g.hudData(snap)
	action := g.hud.Draw(data)
	g.inspector.Draw()
	if g.overlays.IsEnabled(ui.OverlayPerf) {
		g.perfPanel.Draw(g.perf.Stats())
	}
	g.controls.Draw(g.overlays, ui.ControlsStateFrom(data))
	g.hud.DrawControls(int32(g.screenHeight), controlsLegend)

	rl.EndDrawing()

	// Swap outside the frame so nothing draws a half-replaced session
	switch action {
	case ui.ActionRestart:
		g.Restart()
	case ui.ActionNewMap:
		g.NewMap(time.Now().UnixNano())
	}
}

// hudData collects what the HUD shows for snap.
func (g *Game) hudData(snap session.Snapshot) ui.HUDData {
	return ui.HUDData{
		Snap:         snap,
		MinSpeed:     g.params.Harpoon.MinSpeed,
		MaxSpeed:     g.params.Harpoon.MaxSpeed,
		Throws:       g.sess.Flights(),
		Seed:         g.seed,
		FPS:          rl.GetFPS(),
		Paused:       g.paused,
		Autopilot:    g.autopilot,
		ScreenWidth:  int32(g.screenWidth),
		ScreenHeight: int32(g.screenHeight),
	}
}
