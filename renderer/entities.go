package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/harpoon/camera"
	"github.com/pthm-cable/harpoon/session"
	"github.com/pthm-cable/harpoon/vmath"
)

// Colors
var (
	BoatColor     = rl.Color{R: 230, G: 230, B: 230, A: 255}
	WreckColor    = rl.Color{R: 120, G: 60, B: 50, A: 255}
	WhaleColor    = rl.Color{R: 40, G: 50, B: 70, A: 255}
	WhaleHurt     = rl.Color{R: 160, G: 40, B: 40, A: 255}
	TetherColor   = rl.Color{R: 240, G: 220, B: 180, A: 220}
	HarpoonColor  = rl.Color{R: 200, G: 200, B: 210, A: 255}
	CaptureColor  = rl.Color{R: 255, G: 80, B: 80, A: 160}
	AimColor      = rl.Color{R: 255, G: 255, B: 255, A: 140}
	SensorClear   = rl.Color{R: 80, G: 220, B: 120, A: 200}
	SensorHazard  = rl.Color{R: 240, G: 70, B: 60, A: 220}
	boatRadius    = float32(12)
	harpoonLength = float32(16)
)

// Camera2D converts a session camera to raylib's.
func Camera2D(c camera.Camera) rl.Camera2D {
	return rl.Camera2D{
		Offset: rl.Vector2{X: float32(c.ViewportW / 2), Y: float32(c.ViewportH / 2)},
		Target: vec(c.Center),
		Zoom:   float32(c.Zoom),
	}
}

func vec(v vmath.Vec2) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}

// DrawPlayer draws the boat as a triangle pointing along its heading.
func DrawPlayer(p session.PlayerState) {
	color := BoatColor
	if p.Dead {
		color = WreckColor
	}
	drawOrientedTriangle(float32(p.Pos.X), float32(p.Pos.Y), float32(p.Heading), boatRadius, color)
}

// DrawFish draws the whale as a rotated rectangle, reddening as it loses health.
func DrawFish(f session.FishState) {
	color := lerpColor(WhaleHurt, WhaleColor, float32(f.HealthFraction))
	if !f.Alive {
		color = WhaleHurt
		color.A = 160
	}

	rec := rl.Rectangle{
		X:      float32(f.Pos.X),
		Y:      float32(f.Pos.Y),
		Width:  float32(f.Length),
		Height: float32(f.Girth),
	}
	origin := rl.Vector2{X: rec.Width / 2, Y: rec.Height / 2}
	rl.DrawRectanglePro(rec, origin, float32(f.Heading*180/math.Pi), color)

	// Head marker
	head := f.Pos.Add(vmath.FromAngle(f.Heading).Scale(f.Length / 2))
	rl.DrawCircleV(vec(head), float32(f.Girth/4), color)
}

// DrawHarpoon draws the tether from the boat and the harpoon head.
func DrawHarpoon(h session.HarpoonState, from vmath.Vec2) {
	if !h.Active {
		return
	}
	rl.DrawLineEx(vec(from), vec(h.Pos), 2, TetherColor)

	dir := vmath.FromAngle(h.Heading)
	if h.Attached {
		dir = h.Pos.Sub(from).Normalize()
	}
	tail := h.Pos.Sub(dir.Scale(float64(harpoonLength)))
	rl.DrawLineEx(vec(tail), vec(h.Pos), 3, HarpoonColor)
	drawOrientedTriangle(float32(h.Pos.X), float32(h.Pos.Y), float32(dir.Angle()), 5, HarpoonColor)
}

// DrawCaptureRing draws the capture radius around the harpooned whale.
func DrawCaptureRing(center vmath.Vec2, radius float64) {
	rl.DrawCircleLines(int32(center.X), int32(center.Y), float32(radius), CaptureColor)
}

// DrawAim draws a pointer from the boat towards bearing. charge in [0, 1]
// stretches it.
func DrawAim(from vmath.Vec2, bearing, charge float64) {
	length := 40 + 60*charge
	dir := vmath.FromAngle(bearing)
	start := from.Add(dir.Scale(float64(boatRadius) * 2))
	end := start.Add(dir.Scale(length))
	rl.DrawLineEx(vec(start), vec(end), 2, AimColor)
	drawOrientedTriangle(float32(end.X), float32(end.Y), float32(bearing), 6, AimColor)
}

// DrawSensors draws the fish's terrain probes, red where the reading is
// above hazard.
func DrawSensors(origin vmath.Vec2, points [6]vmath.Vec2, readings [6]float64, hazard float64) {
	for i, p := range points {
		color := SensorClear
		if readings[i] > hazard {
			color = SensorHazard
		}
		faded := color
		faded.A /= 3
		rl.DrawLineV(vec(origin), vec(p), faded)
		rl.DrawCircleV(vec(p), 4, color)
	}
}

// drawOrientedTriangle draws a triangle pointing in the heading direction.
func drawOrientedTriangle(x, y, heading, radius float32, color rl.Color) {
	cos := float32(math.Cos(float64(heading)))
	sin := float32(math.Sin(float64(heading)))

	// Front point
	frontX := x + cos*radius*1.5
	frontY := y + sin*radius*1.5

	// Back left
	backAngle := float64(heading) + math.Pi*0.8
	backLeftX := x + float32(math.Cos(backAngle))*radius
	backLeftY := y + float32(math.Sin(backAngle))*radius

	// Back right
	backAngle = float64(heading) - math.Pi*0.8
	backRightX := x + float32(math.Cos(backAngle))*radius
	backRightY := y + float32(math.Sin(backAngle))*radius

	v1 := rl.Vector2{X: frontX, Y: frontY}
	v2 := rl.Vector2{X: backLeftX, Y: backLeftY}
	v3 := rl.Vector2{X: backRightX, Y: backRightY}

	// DrawTriangle requires counter-clockwise winding (v1, v3, v2)
	rl.DrawTriangle(v1, v3, v2, color)
	rl.DrawTriangleLines(v1, v2, v3, rl.White)
}

// lerpColor blends from a to b by t in [0, 1].
func lerpColor(a, b rl.Color, t float32) rl.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return rl.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
