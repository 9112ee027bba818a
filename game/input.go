package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/harpoon/session"
	"github.com/pthm-cable/harpoon/vmath"
)

// handleInput processes keyboard and mouse input for the frame.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyP) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.Restart()
	}
	if rl.IsKeyPressed(rl.KeyN) {
		g.NewMap(time.Now().UnixNano())
	}
	if rl.IsKeyPressed(rl.KeyO) {
		g.autopilot = !g.autopilot
		g.pilot.Reset()
		g.held = session.Input{}
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.inspector.Cycle(g.targets())
	}

	g.handleOverlayKeys()
	g.handleCameraInput()

	if g.autopilot {
		return
	}
	g.handlePlayerInput()
}

// handlePlayerInput samples held keys and latches the launch and release
// triggers until a step consumes them.
func (g *Game) handlePlayerInput() {
	g.held = session.Input{
		Left:    rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
		Right:   rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
		Forward: rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp),
		Reverse: rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown),
		Boost:   rl.IsKeyDown(rl.KeyLeftShift),
	}

	mouse := rl.GetMousePosition()
	overUI := g.hud.Contains(mouse.X, mouse.Y) || g.inspector.Contains(mouse.X, mouse.Y) ||
		g.controls.Contains(mouse.X, mouse.Y, g.overlays)

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		world := g.sess.Camera().ScreenToWorld(vmath.New(float64(mouse.X), float64(mouse.Y)))
		if overUI || g.inspector.HandleClick(mouse.X, mouse.Y, world, g.targets()) {
			g.uiClick = true
		}
	}
	if g.uiClick {
		// A click that started on the UI never charges a throw
		if rl.IsMouseButtonReleased(rl.MouseButtonLeft) || !rl.IsMouseButtonDown(rl.MouseButtonLeft) {
			g.uiClick = false
		}
		return
	}

	g.held.Charge = rl.IsMouseButtonDown(rl.MouseButtonLeft)
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		// the press must reach a step even if the button is up again by then
		g.pending.Charge = true
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		player := g.sess.Snapshot().Player.Pos
		target := g.sess.Camera().ScreenToWorld(vmath.New(float64(mouse.X), float64(mouse.Y)))
		g.pending.Launch = true
		g.pending.Aim = target.Sub(player)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) && !overUI {
		g.pending.Release = true
	}
}

// frameInput is the input for the next step: autopilot output, or the held
// keys plus any pending triggers.
func (g *Game) frameInput() session.Input {
	if g.autopilot {
		return g.pilot.Input(g.sess.Snapshot(), g.sess.Terrain())
	}
	in := g.held
	in.Charge = in.Charge || g.pending.Charge
	in.Launch = g.pending.Launch
	in.Release = g.pending.Release
	in.Aim = g.pending.Aim
	return in
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.sess.Camera().Resize(float64(w), float64(h))
	g.inspector.Resize(int32(w), int32(h))
	g.perfPanel.SetPosition(int32(w)-240, int32(h)-200)
}

// handleCameraInput processes zoom controls. The camera always follows the
// player, so there is no panning.
func (g *Game) handleCameraInput() {
	cam := g.sess.Camera()

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		cam.ZoomBy(1 + float64(wheel)*0.1)
	}

	// Keyboard zoom with +/- (= and - keys)
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		cam.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		cam.ZoomBy(0.8)
	}

	// Home key resets zoom
	if rl.IsKeyPressed(rl.KeyHome) {
		cam.SetZoom(1)
	}
}
