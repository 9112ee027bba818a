package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Binding is one line of the key legend.
type Binding struct {
	Keys   string
	Action string
}

// HuntBindings lists the boat and throw controls.
func HuntBindings() []Binding {
	return []Binding{
		{"WASD", "steer"},
		{"Shift", "boost"},
		{"LMB hold", "charge throw"},
		{"LMB release", "throw"},
		{"RMB", "cancel / drop"},
		{"R / N", "restart / new map"},
		{"O", "autopilot"},
		{"P", "pause"},
		{"Tab", "inspect next"},
	}
}

// ControlsState is the part of the hunt the panel reflects.
type ControlsState struct {
	Charge    float64 // throw charge in [0, 1]
	Charging  bool
	Flying    bool
	Attached  bool
	Dead      bool
	Autopilot bool
}

// ControlsStateFrom reads the throw state out of the HUD data.
func ControlsStateFrom(d HUDData) ControlsState {
	s := d.Snap
	return ControlsState{
		Charge:    ChargeFraction(d),
		Charging:  s.Player.Charging,
		Flying:    s.Harpoon.Active && !s.Harpoon.Attached,
		Attached:  s.Harpoon.Attached,
		Dead:      s.Player.Dead,
		Autopilot: d.Autopilot,
	}
}

// throwStatus describes what the launch button does right now.
func throwStatus(s ControlsState) string {
	switch {
	case s.Dead:
		return "aground"
	case s.Autopilot:
		return "autopilot"
	case s.Attached:
		return "on the line"
	case s.Flying:
		return "in flight"
	case s.Charging:
		return "charging"
	default:
		return "ready"
	}
}

type rowKind uint8

const (
	rowTitle rowKind = iota
	rowHeader
	rowBinding
	rowThrow
	rowToggle
)

type controlsRow struct {
	kind    rowKind
	text    string
	key     string
	overlay OverlayID
}

// ControlsPanel lists the hunt key bindings, the throw state and the
// overlays with check boxes. It is shown while OverlayControlsHelp is on.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	bindings []Binding
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		bindings: HuntBindings(),
	}
}

// rows lays out the panel top to bottom.
func (c *ControlsPanel) rows(overlays *OverlayRegistry) []controlsRow {
	out := []controlsRow{{kind: rowTitle, text: "Controls"}}
	for _, b := range c.bindings {
		out = append(out, controlsRow{kind: rowBinding, text: b.Action, key: b.Keys})
	}
	out = append(out, controlsRow{kind: rowThrow, text: "Throw"})

	for _, cat := range overlays.Categories() {
		out = append(out, controlsRow{kind: rowHeader, text: categoryLabel(cat)})
		for _, desc := range overlays.ByCategory(cat) {
			out = append(out, controlsRow{kind: rowToggle, text: desc.Name, key: desc.KeyLabel, overlay: desc.ID})
		}
	}
	return out
}

func (c *ControlsPanel) rowHeight(kind rowKind) int32 {
	switch kind {
	case rowTitle:
		return c.renderer.Theme.LineHeight + 4
	case rowThrow:
		return c.renderer.Theme.LineHeight*2 + 2
	default:
		return c.renderer.Theme.LineHeight
	}
}

// Height returns the panel height for the current overlay set.
func (c *ControlsPanel) Height(overlays *OverlayRegistry) int32 {
	h := c.renderer.Theme.Padding * 2
	for _, row := range c.rows(overlays) {
		h += c.rowHeight(row.kind)
	}
	return h
}

// Contains reports whether a screen point is over the panel while shown.
func (c *ControlsPanel) Contains(x, y float32, overlays *OverlayRegistry) bool {
	if !overlays.IsEnabled(OverlayControlsHelp) {
		return false
	}
	return int32(x) >= c.x && int32(x) <= c.x+c.width &&
		int32(y) >= c.y && int32(y) <= c.y+c.Height(overlays)
}

// Draw renders the panel and applies check box changes to overlays.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry, state ControlsState) int32 {
	if !overlays.IsEnabled(OverlayControlsHelp) {
		return c.y
	}

	r := c.renderer
	padding := r.Theme.Padding
	inner := c.width - padding*2
	r.DrawPanel(c.x, c.y, c.width, c.Height(overlays))

	x := c.x + padding
	y := c.y + padding
	for _, row := range c.rows(overlays) {
		switch row.kind {
		case rowTitle:
			rl.DrawText(row.text, x, y, 16, rl.White)
		case rowHeader:
			rl.DrawText(row.text, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
		case rowBinding:
			rl.DrawText(row.key, x, y, r.Theme.FontSize, rl.White)
			rl.DrawText(row.text, x+90, y, r.Theme.FontSize, r.Theme.LabelColor)
		case rowThrow:
			r.DrawLabelValue(x, y, row.text, throwStatus(state), throwColor(state))
			r.DrawBar(x, y+r.Theme.LineHeight, "Charge", state.Charge, inner)
		case rowToggle:
			c.drawToggle(x, y, row, overlays, inner)
		}
		y += c.rowHeight(row.kind)
	}
	return y
}

// drawToggle draws one overlay check box with its key on the right.
func (c *ControlsPanel) drawToggle(x, y int32, row controlsRow, overlays *OverlayRegistry, width int32) {
	r := c.renderer

	enabled := overlays.IsEnabled(row.overlay)
	box := rl.Rectangle{X: float32(x), Y: float32(y + 1), Width: 10, Height: 10}
	if checked := gui.CheckBox(box, row.text, enabled); checked != enabled {
		overlays.SetEnabled(row.overlay, checked)
	}

	if row.key != "" {
		keyText := fmt.Sprintf("[%s]", row.key)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, rl.Color{R: 150, G: 150, B: 150, A: 255})
	}
}

func throwColor(s ControlsState) rl.Color {
	switch {
	case s.Dead:
		return rl.Red
	case s.Attached:
		return rl.Green
	case s.Charging:
		return rl.Yellow
	default:
		return rl.LightGray
	}
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "hunt":
		return "Hunt aids"
	case "debug":
		return "Debug"
	default:
		return cat
	}
}
