package components

import "github.com/mlange-42/ark/ecs"

// Player marks the boat controlled by the host.
type Player struct {
	Charging     bool    `inspect:"bool"`
	ChargingTime float64 `inspect:"label,fmt:%.2fs"` // seconds the launch has been held
	Dead         bool    `inspect:"bool"`
}

// Fish holds the whale's vitals and steering parameters.
type Fish struct {
	Health    float64 `inspect:"bar,max:120000"`
	MaxHealth float64 `inspect:"skip"`
	Speed     float64 `inspect:"label,fmt:%.1f"`
	FearSpeed float64 `inspect:"label,fmt:%.1f"`
	Length    float64 `inspect:"skip"`
	Girth     float64 `inspect:"skip"`

	// Last terrain probe readings: short front/left/right, long front/left/right
	Sensors [6]float64 `inspect:"bar,labels:F|L|R|LF|LL|LR"`
}

// Alive reports whether the fish still has health.
func (f *Fish) Alive() bool {
	return f.Health > 0
}

// HealthFraction returns health relative to MaxHealth in [0, 1].
func (f *Fish) HealthFraction() float64 {
	if f.MaxHealth <= 0 {
		return 0
	}
	h := f.Health / f.MaxHealth
	if h < 0 {
		return 0
	}
	return h
}

// Harpoon is the projectile. Target is a weak handle: it never keeps the fish
// alive and is only meaningful while Attached.
type Harpoon struct {
	Active   bool       `inspect:"bool"`
	Attached bool       `inspect:"bool"`
	Target   ecs.Entity `inspect:"skip"`
}

// Flying reports whether the harpoon is in ballistic flight.
func (h *Harpoon) Flying() bool {
	return h.Active && !h.Attached
}

// Reset returns the harpoon to the inactive state.
func (h *Harpoon) Reset() {
	h.Active = false
	h.Attached = false
	h.Target = ecs.Entity{}
}
