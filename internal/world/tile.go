// Package world provides the cube-surface maze: topology, carving and tile state.
package world

import "gonum.org/v1/gonum/spatial/r3"

// Label names one of the four face-local compass directions of a tile.
type Label int

const (
	// Top is y-1 on the tile's own face.
	Top Label = iota
	// Bottom is y+1 on the tile's own face.
	Bottom
	// Left is x-1 on the tile's own face.
	Left
	// Right is x+1 on the tile's own face.
	Right
)

// Labels lists every label in the fixed order used for deterministic iteration.
var Labels = [4]Label{Top, Bottom, Left, Right}

// Opposite returns the label pointing the other way on the same face.
func (l Label) Opposite() Label {
	switch l {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	default:
		return Left
	}
}

// String returns a human-readable label name.
func (l Label) String() string {
	switch l {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// TileID is the stable arena index of a tile: face*N*N + x*N + y.
type TileID int

// NoTile marks an unresolved neighbor slot.
const NoTile TileID = -1

// Tile is a single cell on one face of the cube.
type Tile struct {
	Face, X, Y int

	neighbors [4]TileID
	passages  [4]bool
	position  r3.Vec
	placed    bool
}

// Neighbor returns the tile reached by leaving through the given label.
func (t *Tile) Neighbor(l Label) TileID {
	return t.neighbors[l]
}

// Passage reports whether the wall in the given direction has been carved open.
func (t *Tile) Passage(l Label) bool {
	return t.passages[l]
}

// OpenCount returns how many of the tile's four passages are open.
func (t *Tile) OpenCount() int {
	n := 0
	for _, open := range t.passages {
		if open {
			n++
		}
	}
	return n
}

// Position returns the tile's 3-D position and whether one has been assigned.
func (t *Tile) Position() (r3.Vec, bool) {
	return t.position, t.placed
}
