package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/harpoon/session"
	"github.com/pthm-cable/harpoon/telemetry"
	"github.com/pthm-cable/harpoon/vmath"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Snap      session.Snapshot
	MinSpeed  float64 // harpoon launch speed range, for the charge bar
	MaxSpeed  float64
	Throws    int
	Seed      int64
	FPS       int32
	Paused    bool
	Autopilot bool

	ScreenWidth  int32
	ScreenHeight int32
}

// Action is a host operation requested from the HUD.
type Action int

const (
	ActionNone Action = iota
	ActionRestart
	ActionNewMap
)

// HUD renders the status panel, outcome banners and the Restart and
// New map buttons.
type HUD struct {
	renderer *Renderer
	sections []SectionDescriptor
	x, y     int32
	width    int32

	// screen area covered by the last Draw, for mouse capture
	bounds rl.Rectangle
}

const (
	buttonHeight = 24
	buttonGap    = 6
)

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
		sections: HUDSections(),
		x:        10,
		y:        10,
		width:    240,
	}
}

// HUDSections describes the status panel.
func HUDSections() []SectionDescriptor {
	hud := func(d any) HUDData { return d.(HUDData) }

	return []SectionDescriptor{
		{
			ID:    "hunt",
			Title: "Hunt",
			Fields: []FieldDescriptor{
				{ID: "tick", Label: "Tick", Widget: WidgetText, Format: "%.0f",
					Getter: func(d any) float64 { return float64(hud(d).Snap.Tick) }},
				{ID: "outcome", Label: "Status", Widget: WidgetText,
					TextGetter:  func(d any) string { return statusText(hud(d)) },
					ColorGetter: func(d any) rl.Color { return outcomeColor(hud(d).Snap.Outcome) }},
				{ID: "throws", Label: "Throws", Widget: WidgetText, Format: "%.0f",
					Getter: func(d any) float64 { return float64(hud(d).Throws) }},
			},
		},
		{
			ID:    "boat",
			Title: "Boat",
			Fields: []FieldDescriptor{
				{ID: "speed", Label: "Speed", Widget: WidgetText, Format: "%.1f",
					Getter: func(d any) float64 { return hud(d).Snap.Player.Vel.Len() }},
				{ID: "charge", Label: "Charge", Widget: WidgetBar, Range: DefaultRange(),
					Getter: func(d any) float64 { return ChargeFraction(hud(d)) }},
			},
		},
		{
			ID:    "whale",
			Title: "Whale",
			Fields: []FieldDescriptor{
				{ID: "health", Label: "Health", Widget: WidgetHealthBar,
					Getter:    func(d any) float64 { return hud(d).Snap.Fish.Health },
					MaxGetter: func(d any) float64 { return hud(d).Snap.Fish.MaxHealth }},
				{ID: "range", Label: "Range", Widget: WidgetText, Format: "%.0f",
					Getter: func(d any) float64 {
						s := hud(d).Snap
						return vmath.Distance(s.Player.Pos, s.Fish.Pos)
					}},
			},
		},
		{
			ID:      "tether",
			Title:   "Tether",
			Visible: func(d any) bool { return hud(d).Snap.Harpoon.Attached },
			Fields: []FieldDescriptor{
				{ID: "length", Label: "Length", Widget: WidgetText, Format: "%.0f",
					Getter: func(d any) float64 { return hud(d).Snap.TetherDistance }},
				{ID: "strain", Label: "Strain", Widget: WidgetCenteredBar, Range: CenteredRange(),
					Getter: func(d any) float64 { return Strain(hud(d).Snap) }},
			},
		},
	}
}

// ChargeFraction maps the pending launch speed onto [0, 1].
func ChargeFraction(d HUDData) float64 {
	p := d.Snap.Player
	if !p.Charging || d.MaxSpeed <= d.MinSpeed {
		return 0
	}
	return clamp01((p.LaunchSpeed - d.MinSpeed) / (d.MaxSpeed - d.MinSpeed))
}

// Strain is the tether length relative to the capture distance, in [-1, 1].
// Negative means the whale is inside capture range and taking damage.
func Strain(s session.Snapshot) float64 {
	if !s.Harpoon.Attached || s.CaptureDistance <= 0 {
		return 0
	}
	v := (s.TetherDistance - s.CaptureDistance) / s.CaptureDistance
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

func statusText(d HUDData) string {
	switch {
	case d.Paused:
		return "paused"
	case d.Autopilot:
		return d.Snap.Outcome.String() + " (auto)"
	default:
		return d.Snap.Outcome.String()
	}
}

func outcomeColor(o session.Outcome) rl.Color {
	switch o {
	case session.Won:
		return rl.Green
	case session.Crashed:
		return rl.Red
	default:
		return rl.LightGray
	}
}

// Draw renders the HUD and returns the button pressed this frame, if any.
func (h *HUD) Draw(data HUDData) Action {
	r := h.renderer
	padding := r.Theme.Padding

	height := padding * 2
	for _, sd := range h.sections {
		height += r.SectionHeight(sd, data)
	}
	r.DrawPanel(h.x, h.y, h.width, height)

	y := h.y + padding
	for _, sd := range h.sections {
		y = r.DrawSection(h.x+padding, y, sd, data, h.width-padding*2)
	}

	// Buttons under the panel
	by := float32(h.y + height + buttonGap)
	bw := float32(h.width-buttonGap) / 2
	restart := rl.Rectangle{X: float32(h.x), Y: by, Width: bw, Height: buttonHeight}
	newMap := rl.Rectangle{X: float32(h.x) + bw + buttonGap, Y: by, Width: bw, Height: buttonHeight}

	h.bounds = rl.Rectangle{
		X:      float32(h.x),
		Y:      float32(h.y),
		Width:  float32(h.width),
		Height: float32(height) + buttonGap + buttonHeight,
	}

	action := ActionNone
	if gui.Button(restart, "Restart [R]") {
		action = ActionRestart
	}
	if gui.Button(newMap, "New map [N]") {
		action = ActionNewMap
	}

	h.drawBanner(data)
	rl.DrawText(fmt.Sprintf("seed %d | %d fps", data.Seed, data.FPS), h.x, data.ScreenHeight-45, 12, rl.Gray)

	return action
}

// Contains reports whether a screen point is over the HUD.
func (h *HUD) Contains(x, y float32) bool {
	return rl.CheckCollisionPointRec(rl.Vector2{X: x, Y: y}, h.bounds)
}

// drawBanner shows the outcome once the hunt is over.
func (h *HUD) drawBanner(data HUDData) {
	var title string
	var color rl.Color
	switch data.Snap.Outcome {
	case session.Won:
		title, color = "WHALE CAPTURED", rl.Green
	case session.Crashed:
		title, color = "RUN AGROUND", rl.Red
	default:
		if !data.Paused {
			return
		}
		title, color = "PAUSED", rl.Yellow
	}

	const size = 40
	w := rl.MeasureText(title, size)
	cx, cy := data.ScreenWidth/2, data.ScreenHeight/3
	rl.DrawText(title, cx-w/2, cy, size, color)

	if data.Snap.Outcome != session.Playing {
		hint := "[R] restart   [N] new map"
		hw := rl.MeasureText(hint, 16)
		rl.DrawText(hint, cx-hw/2, cy+size+8, 16, rl.LightGray)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders the per-phase step timing.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	r := p.renderer
	padding := r.Theme.Padding
	width := int32(230)
	height := padding*2 + 36 + int32(len(telemetry.Phases))*14
	r.DrawPanel(p.x, p.y, width, height)

	x := p.x + padding
	y := p.y + padding

	rl.DrawText("Step Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Tick: %s  (%.0f/s)", stats.AvgTickDuration.Round(time.Microsecond), stats.TicksPerSecond), x, y, 12, rl.Yellow)
	y += 16

	for _, phase := range telemetry.Phases {
		avg := stats.PhaseAvg[phase]
		pct := stats.PhasePct[phase]

		color := rl.LightGray
		if pct > 40 {
			color = rl.Red
		} else if pct > 20 {
			color = rl.Orange
		}

		rl.DrawText(fmt.Sprintf("%-10s %8s %5.1f%%", phase, avg.Round(time.Microsecond), pct), x, y, 12, color)
		y += 14
	}
}
