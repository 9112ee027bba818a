package systems

import (
	"math"

	"github.com/pthm-cable/harpoon/vmath"
)

// NavGrid stores a coarse navigation grid over the world for A* routing.
// Cells are marked as blocked (true) or open (false).
type NavGrid struct {
	cells    []bool     // true = blocked
	cellSize float64    // world units per cell
	size     int        // cells per side
	origin   vmath.Vec2 // world position of cell (0, 0)'s corner
}

// NavGridCellSize is the default navigation cell size in world units.
const NavGridCellSize = 50.0

// NewNavGrid samples terrain over b. A cell is blocked when the density at its
// center, or at any of four points inflation away from it, is above
// threshold. Points outside the world read the out-of-bounds sentinel, so
// cells within inflation of the edge are blocked too.
func NewNavGrid(terrain DensitySampler, b Bounds, cellSize, inflation, threshold float64) *NavGrid {
	n := int(math.Ceil((b.Max.X - b.Min.X) / cellSize))
	if n < 1 {
		n = 1
	}

	grid := &NavGrid{
		cells:    make([]bool, n*n),
		cellSize: cellSize,
		size:     n,
		origin:   b.Min,
	}

	probes := [...]vmath.Vec2{
		vmath.Zero,
		vmath.New(inflation, 0),
		vmath.New(-inflation, 0),
		vmath.New(0, inflation),
		vmath.New(0, -inflation),
	}

	for gy := 0; gy < n; gy++ {
		for gx := 0; gx < n; gx++ {
			center := grid.GridToWorld(gx, gy)
			for _, o := range probes {
				if terrain.DensityAt(center.Add(o)) > threshold {
					grid.cells[gy*n+gx] = true
					break
				}
			}
		}
	}

	return grid
}

// IsBlocked returns true if the given nav grid cell is blocked.
func (g *NavGrid) IsBlocked(gx, gy int) bool {
	if gx < 0 || gx >= g.size || gy < 0 || gy >= g.size {
		return true // Out of bounds is blocked
	}
	return g.cells[gy*g.size+gx]
}

// IsBlockedWorld returns true if the world position is in a blocked cell.
func (g *NavGrid) IsBlockedWorld(p vmath.Vec2) bool {
	return g.IsBlocked(g.WorldToGrid(p))
}

// WorldToGrid converts world coordinates to nav grid coordinates.
func (g *NavGrid) WorldToGrid(p vmath.Vec2) (gx, gy int) {
	gx = int(math.Floor((p.X - g.origin.X) / g.cellSize))
	gy = int(math.Floor((p.Y - g.origin.Y) / g.cellSize))
	return
}

// GridToWorld converts nav grid coordinates to world coordinates (cell center).
func (g *NavGrid) GridToWorld(gx, gy int) vmath.Vec2 {
	return vmath.New(
		g.origin.X+(float64(gx)+0.5)*g.cellSize,
		g.origin.Y+(float64(gy)+0.5)*g.cellSize,
	)
}

// Size returns the number of cells per side.
func (g *NavGrid) Size() int { return g.size }

// LineOfSight reports whether the segment a-b crosses only open cells.
func (g *NavGrid) LineOfSight(a, b vmath.Vec2) bool {
	d := b.Sub(a)
	dist := d.Len()
	if dist < 0.01 {
		return !g.IsBlockedWorld(a)
	}

	// Step along the line, checking each nav cell
	step := g.cellSize * 0.5
	steps := int(dist/step) + 1
	dir := d.Scale(1 / dist)

	for i := 0; i <= steps; i++ {
		s := math.Min(float64(i)*step, dist)
		if g.IsBlockedWorld(a.Add(dir.Scale(s))) {
			return false
		}
	}
	return true
}
