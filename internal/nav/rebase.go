package nav

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/samdwyer/cubemaze/internal/world"
)

// Direction returns the unit vector from a tile toward its neighbor through l.
// It reports false if either tile has no position.
func Direction(m *world.Maze, id world.TileID, l world.Label) (r3.Vec, bool) {
	t := m.Tile(id)
	if t == nil {
		return r3.Vec{}, false
	}
	nb := m.Tile(t.Neighbor(l))
	if nb == nil {
		return r3.Vec{}, false
	}
	p, ok := t.Position()
	if !ok {
		return r3.Vec{}, false
	}
	q, ok := nb.Position()
	if !ok {
		return r3.Vec{}, false
	}
	d := r3.Sub(q, p)
	if r3.Norm(d) == 0 {
		return r3.Vec{}, false
	}
	return r3.Unit(d), true
}

// Closest returns the candidate label on id whose direction best matches target.
func Closest(m *world.Maze, id world.TileID, target r3.Vec, candidates []world.Label) (world.Label, bool) {
	var best world.Label
	bestDot := math.Inf(-1)
	found := false
	for _, l := range candidates {
		v, ok := Direction(m, id, l)
		if !ok {
			continue
		}
		if dot := r3.Dot(v, target); dot > bestDot {
			best, bestDot, found = l, dot, true
		}
	}
	return best, found
}

// Perpendicular returns the two labels at right angles to l, in label order.
func Perpendicular(l world.Label) [2]world.Label {
	if l == world.Top || l == world.Bottom {
		return [2]world.Label{world.Left, world.Right}
	}
	return [2]world.Label{world.Top, world.Bottom}
}

// Rebase re-derives the forward/right frame after stepping from one tile to
// another. Labels are face-local, so after a seam crossing the label that
// keeps pointing the same way in space can change. Missing positions keep
// the previous frame where possible.
func Rebase(m *world.Maze, from world.TileID, forward, right world.Label, to world.TileID) (world.Label, world.Label) {
	newForward := forward
	if v, ok := Direction(m, from, forward); ok {
		if l, ok := Closest(m, to, v, world.Labels[:]); ok {
			newForward = l
		}
	}

	perp := Perpendicular(newForward)
	newRight := perp[0]
	if right == perp[0] || right == perp[1] {
		newRight = right
	}
	if v, ok := Direction(m, from, right); ok {
		if l, ok := Closest(m, to, v, perp[:]); ok {
			newRight = l
		}
	}
	return newForward, newRight
}
