package world

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.opentelemetry.io/otel/attribute"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/samdwyer/cubemaze/internal/telemetry"
)

var (
	// ErrInvalidSize is returned when a maze is requested with fewer than one tile per side.
	ErrInvalidSize = errors.New("maze size must be at least 1")
	// ErrNonMutualNeighbor means the seam table produced a one-way link.
	ErrNonMutualNeighbor = errors.New("non-mutual neighbor link")
	// ErrNoCandidates means a frontier tile had no visited neighbor to connect to.
	ErrNoCandidates = errors.New("frontier tile has no visited neighbor")
	// ErrTileOutOfRange is returned for a TileID that does not belong to the maze.
	ErrTileOutOfRange = errors.New("tile out of range")
	// ErrAlreadyCarved is returned when carving a maze that already has passages.
	ErrAlreadyCarved = errors.New("maze already carved")
	// ErrPositionAssigned is returned when a tile position is set twice.
	ErrPositionAssigned = errors.New("tile position already assigned")
)

// Maze owns every tile of a cube-surface maze. Tiles refer to each other by TileID.
type Maze struct {
	Size   int
	Seed   int64
	Start  TileID
	Tiles  []Tile
	carved bool
}

// Build stitches a cube of the given size and carves it from the default start tile.
// The result is deterministic for a fixed (size, seed).
func Build(ctx context.Context, size int, seed int64) (*Maze, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "maze.build")
	defer span.End()

	m, err := NewMaze(size)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if err := m.Carve(ctx, seed, m.DefaultStart()); err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("maze.size", size),
		attribute.Int64("maze.seed", seed),
		attribute.Int("maze.tiles", len(m.Tiles)),
		attribute.String("maze.fingerprint", fmt.Sprintf("%016x", m.Fingerprint())),
	)
	return m, nil
}

// DefaultStart returns the tile carving begins from: (2,2) on the front face,
// clamped for mazes smaller than three tiles per side.
func (m *Maze) DefaultStart() TileID {
	c := min(2, m.Size-1)
	return m.Index(FaceFront, c, c)
}

// Index returns the TileID for a face-local coordinate.
func (m *Maze) Index(face, x, y int) TileID {
	return TileID(face*m.Size*m.Size + x*m.Size + y)
}

// Tile returns the tile with the given id, or nil if it is out of range.
func (m *Maze) Tile(id TileID) *Tile {
	if !m.contains(id) {
		return nil
	}
	return &m.Tiles[id]
}

// At returns the tile at a face-local coordinate, or nil if it is out of range.
func (m *Maze) At(face, x, y int) *Tile {
	if face < 0 || face >= Faces || x < 0 || x >= m.Size || y < 0 || y >= m.Size {
		return nil
	}
	return &m.Tiles[m.Index(face, x, y)]
}

// Neighbor returns the tile reached from id through label l.
func (m *Maze) Neighbor(id TileID, l Label) TileID {
	if !m.contains(id) {
		return NoTile
	}
	return m.Tiles[id].neighbors[l]
}

// LabelTo returns the label on from that leads to to.
func (m *Maze) LabelTo(from, to TileID) (Label, bool) {
	if !m.contains(from) {
		return 0, false
	}
	for _, l := range Labels {
		if m.Tiles[from].neighbors[l] == to {
			return l, true
		}
	}
	return 0, false
}

// CanMove reports whether the passage from id through l is open.
func (m *Maze) CanMove(id TileID, l Label) bool {
	if !m.contains(id) {
		return false
	}
	return m.Tiles[id].passages[l]
}

// SetPosition assigns the 3-D position of a tile. Positions are write-once.
func (m *Maze) SetPosition(id TileID, p r3.Vec) error {
	if !m.contains(id) {
		return fmt.Errorf("%w: %d", ErrTileOutOfRange, id)
	}
	t := &m.Tiles[id]
	if t.placed {
		return fmt.Errorf("%w: face %d [%d,%d]", ErrPositionAssigned, t.Face, t.X, t.Y)
	}
	t.position = p
	t.placed = true
	return nil
}

// Carved reports whether passages have been carved.
func (m *Maze) Carved() bool {
	return m.carved
}

// OpenEdges counts open passages, each mutual pair counted once.
func (m *Maze) OpenEdges() int {
	open := 0
	for i := range m.Tiles {
		open += m.Tiles[i].OpenCount()
	}
	return open / 2
}

// Reachable returns the number of tiles reachable from id through open passages.
func (m *Maze) Reachable(id TileID) int {
	if !m.contains(id) {
		return 0
	}
	seen := make([]bool, len(m.Tiles))
	seen[id] = true
	queue := []TileID{id}
	count := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		count++
		for _, l := range Labels {
			if !m.Tiles[cur].passages[l] {
				continue
			}
			n := m.Tiles[cur].neighbors[l]
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return count
}

// Path returns the labels to follow through open passages from one tile to
// another, or nil if to is unreachable. An empty, non-nil slice means from == to.
func (m *Maze) Path(from, to TileID) []Label {
	if !m.contains(from) || !m.contains(to) {
		return nil
	}
	type step struct {
		prev  TileID
		label Label
	}
	came := make([]step, len(m.Tiles))
	seen := make([]bool, len(m.Tiles))
	seen[from] = true
	queue := []TileID{from}
	for len(queue) > 0 && !seen[to] {
		cur := queue[0]
		queue = queue[1:]
		for _, l := range Labels {
			if !m.Tiles[cur].passages[l] {
				continue
			}
			n := m.Tiles[cur].neighbors[l]
			if !seen[n] {
				seen[n] = true
				came[n] = step{prev: cur, label: l}
				queue = append(queue, n)
			}
		}
	}
	if !seen[to] {
		return nil
	}

	path := []Label{}
	for cur := to; cur != from; cur = came[cur].prev {
		path = append(path, came[cur].label)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// IsSpanningTree reports whether the passages connect every tile without a cycle.
func (m *Maze) IsSpanningTree() bool {
	return m.OpenEdges() == len(m.Tiles)-1 && m.Reachable(0) == len(m.Tiles)
}

// Fingerprint hashes the passage configuration. Two mazes with the same
// size and the same open passages have the same fingerprint.
func (m *Maze) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(m.Size))
	_, _ = h.Write(buf[:])
	for i := range m.Tiles {
		var bits byte
		for _, l := range Labels {
			if m.Tiles[i].passages[l] {
				bits |= 1 << l
			}
		}
		_, _ = h.Write([]byte{bits})
	}
	return h.Sum64()
}

// Render writes each face as ASCII art, walls drawn where passages are closed.
func (m *Maze) Render(w io.Writer) error {
	var sb strings.Builder
	for face := 0; face < Faces; face++ {
		fmt.Fprintf(&sb, "FACE %d\n", face)
		for y := 0; y < m.Size; y++ {
			var top, mid strings.Builder
			for x := 0; x < m.Size; x++ {
				t := m.At(face, x, y)
				top.WriteString("+")
				if t.passages[Top] {
					top.WriteString("   ")
				} else {
					top.WriteString("---")
				}
				if t.passages[Left] {
					mid.WriteString("    ")
				} else {
					mid.WriteString("|   ")
				}
			}
			top.WriteString("+")
			if m.At(face, m.Size-1, y).passages[Right] {
				mid.WriteString(" ")
			} else {
				mid.WriteString("|")
			}
			sb.WriteString(top.String() + "\n")
			sb.WriteString(mid.String() + "\n")
		}
		for x := 0; x < m.Size; x++ {
			if m.At(face, x, m.Size-1).passages[Bottom] {
				sb.WriteString("+   ")
			} else {
				sb.WriteString("+---")
			}
		}
		sb.WriteString("+\n\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// String returns the ASCII rendering of every face.
func (m *Maze) String() string {
	var sb strings.Builder
	_ = m.Render(&sb)
	return sb.String()
}

func (m *Maze) contains(id TileID) bool {
	return id >= 0 && int(id) < len(m.Tiles)
}
