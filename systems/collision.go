package systems

import "github.com/pthm-cable/harpoon/vmath"

// Crashed reports whether pos lies on terrain denser than threshold.
// Positions outside the field always crash.
func Crashed(s DensitySampler, pos vmath.Vec2, threshold float64) bool {
	return s.DensityAt(pos) > threshold
}
