package world

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cubemaze/internal/telemetry"
)

// frontier is the set of unvisited tiles adjacent to the carved region.
// It supports random access by index and O(1) removal, and never holds a
// tile twice.
type frontier struct {
	tiles  []TileID
	member []bool
}

func newFrontier(n int) *frontier {
	return &frontier{member: make([]bool, n)}
}

func (f *frontier) push(id TileID) {
	if f.member[id] {
		return
	}
	f.member[id] = true
	f.tiles = append(f.tiles, id)
}

func (f *frontier) removeAt(i int) {
	f.member[f.tiles[i]] = false
	last := len(f.tiles) - 1
	f.tiles[i] = f.tiles[last]
	f.tiles = f.tiles[:last]
}

func (f *frontier) len() int { return len(f.tiles) }

// Carve grows a random spanning tree over the maze starting at start.
// Each step picks a uniformly random frontier tile and joins it to a
// uniformly random visited neighbor, so the result is connected and acyclic.
func (m *Maze) Carve(ctx context.Context, seed int64, start TileID) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "maze.carve")
	defer span.End()

	if m.carved {
		return ErrAlreadyCarved
	}
	if !m.contains(start) {
		return fmt.Errorf("%w: start %d", ErrTileOutOfRange, start)
	}

	startTime := time.Now()
	rng := NewMulberry32(seed)
	visited := make([]bool, len(m.Tiles))
	front := newFrontier(len(m.Tiles))

	visited[start] = true
	for _, l := range Labels {
		front.push(m.Tiles[start].neighbors[l])
	}

	candidates := make([]TileID, 0, 4)
	steps := 0
	for front.len() > 0 {
		i := rng.Intn(front.len())
		cur := front.tiles[i]
		visited[cur] = true

		candidates = candidates[:0]
		for _, l := range Labels {
			n := m.Tiles[cur].neighbors[l]
			if visited[n] {
				candidates = append(candidates, n)
			} else {
				front.push(n)
			}
		}
		if len(candidates) == 0 {
			t := &m.Tiles[cur]
			err := fmt.Errorf("%w: face %d [%d,%d]", ErrNoCandidates, t.Face, t.X, t.Y)
			span.RecordError(err)
			return err
		}

		m.openPassage(cur, candidates[rng.Intn(len(candidates))])
		front.removeAt(i)
		steps++
	}

	m.Seed = seed
	m.Start = start
	m.carved = true

	span.SetAttributes(
		attribute.Int("maze.size", m.Size),
		attribute.Int64("maze.seed", seed),
		attribute.Int("maze.carve_steps", steps),
		attribute.Int64("maze.carve_us", time.Since(startTime).Microseconds()),
	)
	return nil
}

// openPassage opens the wall between two adjacent tiles from both sides.
func (m *Maze) openPassage(a, b TileID) {
	if l, ok := m.LabelTo(a, b); ok {
		m.Tiles[a].passages[l] = true
	}
	if l, ok := m.LabelTo(b, a); ok {
		m.Tiles[b].passages[l] = true
	}
}
