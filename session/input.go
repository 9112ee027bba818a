package session

import "github.com/pthm-cable/harpoon/vmath"

// Input is the host's control state for one tick. Movement fields and Charge
// are held keys; Launch and Release are edge triggers for the tick they arrive
// on. Charging starts on the first tick Charge is set, so a press and release
// landing on the same tick still throws at minimum speed.
type Input struct {
	Left    bool
	Right   bool
	Forward bool
	Reverse bool
	Boost   bool

	Charge  bool // launch button held
	Launch  bool // launch button released this frame
	Release bool // drop the harpoon

	// Aim is a world-space offset from the player toward the target.
	// Zero aims along the player's heading.
	Aim vmath.Vec2
}

// Outcome is the state of the hunt.
type Outcome uint8

const (
	Playing Outcome = iota
	Won
	Crashed
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Crashed:
		return "crashed"
	default:
		return "playing"
	}
}
