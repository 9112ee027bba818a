// Package inspector shows the components of a selected entity, laid out from
// their inspect struct tags.
package inspector

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/harpoon/vmath"
)

// Panel dimensions
const (
	PanelWidth   = 300
	PanelPadding = 10
	HeaderHeight = 30
	sectionGap   = 26
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorCloseBtn    = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorSection     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
	ColorHighlight   = rl.Yellow
)

// View reads one component type from the selected entity.
type View struct {
	Name string
	Get  func(e ecs.Entity) (any, bool)
}

// ComponentView returns a View of component T in w.
func ComponentView[T any](w *ecs.World, name string) View {
	m := ecs.NewMap[T](w)
	return View{
		Name: name,
		Get: func(e ecs.Entity) (any, bool) {
			if !w.Alive(e) || !m.Has(e) {
				return nil, false
			}
			return m.Get(e), true
		},
	}
}

// Target is a selectable entity and where it is drawn.
type Target struct {
	Name   string
	Entity ecs.Entity
	Pos    vmath.Vec2
	Radius float64
}

// Inspector manages entity selection and panel rendering.
type Inspector struct {
	views []View

	selected     ecs.Entity
	selectedName string
	hasSelected  bool

	panelX       int32
	panelY       int32
	screenWidth  int32
	screenHeight int32
}

// NewInspector creates a new inspector instance.
func NewInspector(screenWidth, screenHeight int32) *Inspector {
	ins := &Inspector{}
	ins.Resize(screenWidth, screenHeight)
	return ins
}

// Resize anchors the panel to the right edge of a new screen size.
func (ins *Inspector) Resize(screenWidth, screenHeight int32) {
	ins.screenWidth = screenWidth
	ins.screenHeight = screenHeight
	ins.panelX = screenWidth - PanelWidth - 10
	ins.panelY = 10
}

// Bind replaces the component views, e.g. after a session swap. The current
// selection is dropped since its entity belongs to the old world.
func (ins *Inspector) Bind(views []View) {
	ins.views = views
	ins.Deselect()
}

// HandleClick selects the target under a world-space click. It returns true
// when the click landed on the panel or a target and should not reach the game.
func (ins *Inspector) HandleClick(screenX, screenY float32, world vmath.Vec2, targets []Target) bool {
	if ins.hasSelected {
		closeX := ins.panelX + PanelWidth - 25
		closeY := ins.panelY + 5
		if int32(screenX) >= closeX && int32(screenX) <= closeX+20 &&
			int32(screenY) >= closeY && int32(screenY) <= closeY+20 {
			ins.Deselect()
			return true
		}
		if ins.Contains(screenX, screenY) {
			return true
		}
	}

	if t, ok := Pick(world, targets); ok {
		ins.Select(t)
		return true
	}
	return false
}

// Pick returns the closest target whose radius, plus a small margin, covers p.
func Pick(p vmath.Vec2, targets []Target) (Target, bool) {
	var best Target
	bestDist := -1.0
	for _, t := range targets {
		r := t.Radius + 5
		d := vmath.DistanceSq(p, t.Pos)
		if d > r*r {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = t, d
		}
	}
	return best, bestDist >= 0
}

// Cycle selects the target after the current one, wrapping around.
func (ins *Inspector) Cycle(targets []Target) {
	if len(targets) == 0 {
		ins.Deselect()
		return
	}
	next := 0
	if ins.hasSelected {
		for i, t := range targets {
			if t.Entity == ins.selected {
				next = (i + 1) % len(targets)
				break
			}
		}
	}
	ins.Select(targets[next])
}

// Select makes t the inspected entity.
func (ins *Inspector) Select(t Target) {
	ins.selected = t.Entity
	ins.selectedName = t.Name
	ins.hasSelected = true
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
	ins.selectedName = ""
}

// Selected returns the currently selected entity.
func (ins *Inspector) Selected() (ecs.Entity, bool) {
	return ins.selected, ins.hasSelected
}

// Contains reports whether a screen point is over the open panel.
func (ins *Inspector) Contains(x, y float32) bool {
	if !ins.hasSelected {
		return false
	}
	return int32(x) >= ins.panelX && int32(x) <= ins.panelX+PanelWidth &&
		int32(y) >= ins.panelY && int32(y) <= ins.panelY+ins.panelHeight()
}

// sections collects the selected entity's components.
func (ins *Inspector) sections() []section {
	var out []section
	for _, v := range ins.views {
		c, ok := v.Get(ins.selected)
		if !ok {
			continue
		}
		out = append(out, section{name: v.Name, fields: ExtractFields(c)})
	}
	return out
}

type section struct {
	name   string
	fields []Field
}

// panelHeight computes the dynamic panel height.
func (ins *Inspector) panelHeight() int32 {
	height := int32(HeaderHeight + PanelPadding)
	for _, s := range ins.sections() {
		height += sectionGap
		for _, f := range s.fields {
			height += FieldHeight(f)
		}
	}
	return height + PanelPadding
}

// Draw renders the inspector panel if an entity is selected.
func (ins *Inspector) Draw() {
	if !ins.hasSelected {
		return
	}

	sections := ins.sections()
	// Entity may have been removed
	if len(sections) == 0 {
		ins.Deselect()
		return
	}

	panelHeight := ins.panelHeight()
	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, panelHeight, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(panelHeight)},
		1,
		ColorPanelBorder,
	)

	// Header
	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText("INSPECTOR: "+ins.selectedName, ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	closeX := ins.panelX + PanelWidth - 25
	closeY := ins.panelY + 5
	rl.DrawRectangle(closeX, closeY, 20, 20, ColorCloseBtn)
	rl.DrawText("X", closeX+6, closeY+3, 14, rl.White)

	y := ins.panelY + HeaderHeight + PanelPadding
	x := ins.panelX + PanelPadding

	for _, s := range sections {
		ins.drawSectionHeader(x, y, s.name)
		y += sectionGap
		for _, f := range s.fields {
			y += DrawField(x, y, f)
		}
	}
}

// drawSectionHeader renders a section title.
func (ins *Inspector) drawSectionHeader(x, y int32, title string) {
	rl.DrawRectangle(x-2, y-2, PanelWidth-2*PanelPadding+4, 18, ColorSection)
	rl.DrawText(title, x+2, y, 14, ColorSectionText)
}

// DrawSelectionHighlight circles the selected target. Call inside BeginMode2D.
func (ins *Inspector) DrawSelectionHighlight(targets []Target) {
	if !ins.hasSelected {
		return
	}
	for _, t := range targets {
		if t.Entity != ins.selected {
			continue
		}
		rl.DrawCircleLines(int32(t.Pos.X), int32(t.Pos.Y), float32(t.Radius*1.4), ColorHighlight)
		return
	}
}
