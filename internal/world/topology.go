package world

import "fmt"

// Faces is the number of square grids stitched into the cube surface.
const Faces = 6

// Face indices. Each face has its own (x, y) frame; y grows downward on the
// four side faces, toward the front on the top face and toward the back on
// the bottom face.
const (
	FaceFront  = 0 // +Z
	FaceRight  = 1 // +X
	FaceBack   = 2 // -Z
	FaceLeft   = 3 // -X
	FaceTop    = 4 // +Y
	FaceBottom = 5 // -Y
)

// seamCoord says how one coordinate of the tile across a seam is derived
// from t, the coordinate running along the seam (y for left/right seams, x
// for top/bottom seams).
type seamCoord int

const (
	// 0
	atZero seamCoord = iota
	// N-1
	atLast
	// t
	alongSeam
	// N-1-t
	againstSeam
)

func (c seamCoord) resolve(t, last int) int {
	switch c {
	case atZero:
		return 0
	case atLast:
		return last
	case alongSeam:
		return t
	default:
		return last - t
	}
}

// seam describes where a step off the edge of a face lands.
type seam struct {
	face int
	x, y seamCoord
}

// seams is indexed by [face][label]. Entries follow from the face frames in
// internal/geometry: stepping off face f through direction d lands on the face
// whose outward normal is d, one half-tile down from the shared edge.
var seams = [Faces][4]seam{
	FaceFront: {
		Top:    {FaceTop, alongSeam, atLast},
		Bottom: {FaceBottom, alongSeam, atZero},
		Left:   {FaceLeft, atLast, alongSeam},
		Right:  {FaceRight, atZero, alongSeam},
	},
	FaceRight: {
		Top:    {FaceTop, atLast, againstSeam},
		Bottom: {FaceBottom, atLast, alongSeam},
		Left:   {FaceFront, atLast, alongSeam},
		Right:  {FaceBack, atZero, alongSeam},
	},
	FaceBack: {
		Top:    {FaceTop, againstSeam, atZero},
		Bottom: {FaceBottom, againstSeam, atLast},
		Left:   {FaceRight, atLast, alongSeam},
		Right:  {FaceLeft, atZero, alongSeam},
	},
	FaceLeft: {
		Top:    {FaceTop, atZero, alongSeam},
		Bottom: {FaceBottom, atZero, againstSeam},
		Left:   {FaceBack, atLast, alongSeam},
		Right:  {FaceFront, atZero, alongSeam},
	},
	FaceTop: {
		Top:    {FaceBack, againstSeam, atZero},
		Bottom: {FaceFront, alongSeam, atZero},
		Left:   {FaceLeft, alongSeam, atZero},
		Right:  {FaceRight, againstSeam, atZero},
	},
	FaceBottom: {
		Top:    {FaceFront, alongSeam, atLast},
		Bottom: {FaceBack, againstSeam, atLast},
		Left:   {FaceLeft, againstSeam, atLast},
		Right:  {FaceRight, alongSeam, atLast},
	},
}

// NewMaze allocates the six N×N grids and stitches every tile to its four
// neighbors, seams included. The returned maze is uncarved: all passages closed.
func NewMaze(size int) (*Maze, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	m := &Maze{
		Size:  size,
		Tiles: make([]Tile, Faces*size*size),
	}

	for face := 0; face < Faces; face++ {
		for x := 0; x < size; x++ {
			for y := 0; y < size; y++ {
				m.Tiles[m.Index(face, x, y)] = Tile{Face: face, X: x, Y: y}
			}
		}
	}

	for id := range m.Tiles {
		t := &m.Tiles[id]
		for _, l := range Labels {
			t.neighbors[l] = m.resolveNeighbor(t.Face, t.X, t.Y, l)
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// resolveNeighbor applies the interior rule, falling back to the seam table
// when the step leaves the face.
func (m *Maze) resolveNeighbor(face, x, y int, l Label) TileID {
	last := m.Size - 1

	switch l {
	case Top:
		if y > 0 {
			return m.Index(face, x, y-1)
		}
	case Bottom:
		if y < last {
			return m.Index(face, x, y+1)
		}
	case Left:
		if x > 0 {
			return m.Index(face, x-1, y)
		}
	case Right:
		if x < last {
			return m.Index(face, x+1, y)
		}
	}

	t := x
	if l == Left || l == Right {
		t = y
	}
	s := seams[face][l]
	return m.Index(s.face, s.x.resolve(t, last), s.y.resolve(t, last))
}

// Validate checks that every tile has four neighbors and that every neighbor
// links back to it through one of its own labels.
func (m *Maze) Validate() error {
	for id := range m.Tiles {
		t := &m.Tiles[id]
		for _, l := range Labels {
			n := t.neighbors[l]
			if !m.contains(n) {
				return fmt.Errorf("%w: face %d [%d,%d].%s is unset",
					ErrNonMutualNeighbor, t.Face, t.X, t.Y, l)
			}
			if _, ok := m.LabelTo(n, TileID(id)); !ok {
				nt := &m.Tiles[n]
				return fmt.Errorf("%w: face %d [%d,%d].%s -> face %d [%d,%d] has no link back",
					ErrNonMutualNeighbor, t.Face, t.X, t.Y, l, nt.Face, nt.X, nt.Y)
			}
		}
	}
	return nil
}
