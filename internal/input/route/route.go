package route

import "github.com/dshills/glint/internal/input/action"

// Node is the router-facing contract of a UI node: it accepts one action
// delivery and reports whether it consumed it. Nodes typically implement
// it by forwarding to their type's dispatch.Table.
type Node interface {
	RunInputAction(act action.ID, active bool) bool
}

// Point is a position in window coordinates.
type Point struct {
	X int
	Y int
}

// Distance returns the Manhattan distance (|dx| + |dy|) between two points.
// Cheap and close enough for click proximity checks.
func (p Point) Distance(other Point) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Direction is a spatial focus-movement direction.
type Direction uint8

const (
	// DirUp indicates upward movement.
	DirUp Direction = iota
	// DirDown indicates downward movement.
	DirDown
	// DirLeft indicates leftward movement.
	DirLeft
	// DirRight indicates rightward movement.
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// HitTester is the layout collaborator that answers "which node is under
// this point", queried by the hover router once per frame.
type HitTester interface {
	HitTest(p Point) Node
}

// TreeWalker is the layout collaborator supplying node order for the
// focus router's fallback navigation. Any method may return nil when
// there is nowhere to go, and from may be nil when nothing is focused
// yet, in which case the walker picks a starting node.
type TreeWalker interface {
	// Next returns the node after from in tree order.
	Next(from Node) Node

	// Prev returns the node before from in tree order.
	Prev(from Node) Node

	// Neighbor returns the spatially nearest node in the direction.
	Neighbor(from Node, dir Direction) Node
}
