package systems

import (
	"container/heap"
	"math"

	"github.com/pthm-cable/harpoon/vmath"
)

// AStarPlanner finds routes through open water on a NavGrid.
type AStarPlanner struct {
	grid *NavGrid

	// Reusable data structures (cleared between searches)
	openHeap  *nodeHeap
	closedSet map[int]struct{}
	cameFrom  map[int]int
	gScore    map[int]float64
}

// Route is a planned path and the state of following it.
type Route struct {
	Waypoints []vmath.Vec2 // world coordinates
	Index     int          // current waypoint
	Target    vmath.Vec2   // goal when the route was planned
	Tick      int32        // tick the route was planned on
}

// astarNode is a node in the A* search.
type astarNode struct {
	gx, gy int
	f      float64 // f = g + h (priority)
	index  int     // heap index
}

// nodeHeap implements heap.Interface for the A* open set.
type nodeHeap []*astarNode

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return h[i].f < h[j].f }
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *nodeHeap) Push(x any) {
	n := x.(*astarNode)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*h = old[0 : n-1]
	return node
}

// NewAStarPlanner creates a planner over grid.
func NewAStarPlanner(grid *NavGrid) *AStarPlanner {
	return &AStarPlanner{
		grid:      grid,
		openHeap:  &nodeHeap{},
		closedSet: make(map[int]struct{}, 256),
		cameFrom:  make(map[int]int, 256),
		gScore:    make(map[int]float64, 256),
	}
}

// Grid returns the planner's navigation grid.
func (a *AStarPlanner) Grid() *NavGrid {
	return a.grid
}

// FindPath computes a path from start to goal using A*.
// Returns waypoints in world coordinates, or nil if no path found.
func (a *AStarPlanner) FindPath(start, goal vmath.Vec2) []vmath.Vec2 {
	grid := a.grid

	startGX, startGY := grid.WorldToGrid(start)
	goalGX, goalGY := grid.WorldToGrid(goal)

	// Blocked endpoints move to the nearest open cell
	if grid.IsBlocked(startGX, startGY) {
		startGX, startGY = a.findNearestOpen(startGX, startGY)
		if startGX < 0 {
			return nil
		}
	}
	if grid.IsBlocked(goalGX, goalGY) {
		goalGX, goalGY = a.findNearestOpen(goalGX, goalGY)
		if goalGX < 0 {
			return nil
		}
	}

	// Same cell - no path needed
	if startGX == goalGX && startGY == goalGY {
		return []vmath.Vec2{grid.GridToWorld(goalGX, goalGY)}
	}

	// Clear reusable data structures
	*a.openHeap = (*a.openHeap)[:0]
	clear(a.closedSet)
	clear(a.cameFrom)
	clear(a.gScore)

	startID := startGY*grid.size + startGX
	goalID := goalGY*grid.size + goalGX

	a.gScore[startID] = 0
	heap.Push(a.openHeap, &astarNode{gx: startGX, gy: startGY, f: heuristic(startGX, startGY, goalGX, goalGY)})

	maxIterations := grid.size * grid.size
	for iterations := 0; a.openHeap.Len() > 0 && iterations < maxIterations; iterations++ {
		current := heap.Pop(a.openHeap).(*astarNode)
		currentID := current.gy*grid.size + current.gx

		if currentID == goalID {
			return a.reconstructPath(startID, goalID)
		}
		if _, done := a.closedSet[currentID]; done {
			continue
		}
		a.closedSet[currentID] = struct{}{}

		// 8-connected, cardinals first
		neighbors := [8][2]int{
			{current.gx - 1, current.gy},
			{current.gx + 1, current.gy},
			{current.gx, current.gy - 1},
			{current.gx, current.gy + 1},
			{current.gx - 1, current.gy - 1},
			{current.gx + 1, current.gy - 1},
			{current.gx - 1, current.gy + 1},
			{current.gx + 1, current.gy + 1},
		}

		for i, n := range neighbors {
			ngx, ngy := n[0], n[1]
			if grid.IsBlocked(ngx, ngy) {
				continue
			}

			moveCost := 1.0
			if i >= 4 {
				// No corner cutting
				dx := ngx - current.gx
				dy := ngy - current.gy
				if grid.IsBlocked(current.gx+dx, current.gy) || grid.IsBlocked(current.gx, current.gy+dy) {
					continue
				}
				moveCost = math.Sqrt2
			}

			neighborID := ngy*grid.size + ngx
			if _, done := a.closedSet[neighborID]; done {
				continue
			}

			tentativeG := a.gScore[currentID] + moveCost
			if existingG, seen := a.gScore[neighborID]; seen && tentativeG >= existingG {
				continue
			}

			a.cameFrom[neighborID] = currentID
			a.gScore[neighborID] = tentativeG
			heap.Push(a.openHeap, &astarNode{gx: ngx, gy: ngy, f: tentativeG + heuristic(ngx, ngy, goalGX, goalGY)})
		}
	}

	return nil
}

// heuristic is the Euclidean distance in cells.
func heuristic(gx1, gy1, gx2, gy2 int) float64 {
	return math.Hypot(float64(gx2-gx1), float64(gy2-gy1))
}

// reconstructPath builds the path from the cameFrom map.
func (a *AStarPlanner) reconstructPath(startID, goalID int) []vmath.Vec2 {
	var ids []int
	for current := goalID; current != startID; {
		ids = append(ids, current)
		prev, ok := a.cameFrom[current]
		if !ok {
			break
		}
		current = prev
	}
	ids = append(ids, startID)

	path := make([]vmath.Vec2, len(ids))
	for i := range ids {
		id := ids[len(ids)-1-i]
		path[i] = a.grid.GridToWorld(id%a.grid.size, id/a.grid.size)
	}

	return a.simplifyPath(path)
}

// simplifyPath drops waypoints the last kept waypoint can see past, so every
// kept segment has line of sight.
func (a *AStarPlanner) simplifyPath(path []vmath.Vec2) []vmath.Vec2 {
	if len(path) <= 2 {
		return path
	}

	simplified := make([]vmath.Vec2, 0, len(path))
	simplified = append(simplified, path[0])
	anchor := path[0]
	for i := 1; i < len(path)-1; i++ {
		if !a.grid.LineOfSight(anchor, path[i+1]) {
			simplified = append(simplified, path[i])
			anchor = path[i]
		}
	}
	return append(simplified, path[len(path)-1])
}

// findNearestOpen finds the nearest unblocked cell to the given cell.
// Returns (-1, -1) if no open cell is found within the search radius.
func (a *AStarPlanner) findNearestOpen(gx, gy int) (int, int) {
	for radius := 1; radius < 10; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				// Only the ring at this radius
				if abs(dx) != radius && abs(dy) != radius {
					continue
				}
				if !a.grid.IsBlocked(gx+dx, gy+dy) {
					return gx + dx, gy + dy
				}
			}
		}
	}
	return -1, -1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RouteValid reports whether r can still be followed towards target.
// A route is stale when it is empty or finished, older than maxAge ticks, or
// planned for a target more than drift away.
func (a *AStarPlanner) RouteValid(r *Route, target vmath.Vec2, tick, maxAge int32, drift float64) bool {
	if r == nil || r.Index >= len(r.Waypoints) {
		return false
	}
	if tick-r.Tick > maxAge {
		return false
	}
	if vmath.DistanceSq(target, r.Target) > drift*drift {
		return false
	}
	for _, wp := range r.Waypoints[r.Index:] {
		if a.grid.IsBlockedWorld(wp) {
			return false
		}
	}
	return true
}

// NextWaypoint returns the waypoint to head for from pos, advancing past
// waypoints within arrival. It reports false once the route is finished.
func NextWaypoint(r *Route, pos vmath.Vec2, arrival float64) (vmath.Vec2, bool) {
	for r.Index < len(r.Waypoints) {
		wp := r.Waypoints[r.Index]
		if vmath.DistanceSq(wp, pos) >= arrival*arrival {
			return wp, true
		}
		r.Index++
	}
	return pos, false
}
