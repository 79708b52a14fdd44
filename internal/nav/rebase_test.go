package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/cubemaze/internal/geometry"
	"github.com/samdwyer/cubemaze/internal/world"
)

func placedTopology(t *testing.T, size int) *world.Maze {
	t.Helper()
	m, err := world.NewMaze(size)
	require.NoError(t, err)
	require.NoError(t, geometry.Project(m, geometry.DefaultDiameter))
	return m
}

func TestRebaseAcrossSeams(t *testing.T) {
	m := placedTopology(t, 3)

	tests := []struct {
		name             string
		face, x, y       int
		forward, right   world.Label
		wantFace         int
		wantX, wantY     int
		wantFwd, wantRgt world.Label
	}{
		{"same face", world.FaceFront, 1, 1, world.Top, world.Right, world.FaceFront, 1, 0, world.Top, world.Right},
		{"front to right", world.FaceFront, 2, 1, world.Right, world.Bottom, world.FaceRight, 0, 1, world.Right, world.Bottom},
		{"front to top", world.FaceFront, 1, 0, world.Top, world.Right, world.FaceTop, 1, 2, world.Top, world.Right},
		{"right to top rotates", world.FaceRight, 1, 0, world.Top, world.Right, world.FaceTop, 2, 1, world.Left, world.Top},
		{"top to back flips", world.FaceTop, 1, 0, world.Top, world.Right, world.FaceBack, 1, 0, world.Bottom, world.Left},
		{"bottom to back", world.FaceBottom, 1, 2, world.Bottom, world.Left, world.FaceBack, 1, 2, world.Top, world.Right},
		{"left to top", world.FaceLeft, 1, 0, world.Top, world.Right, world.FaceTop, 0, 1, world.Right, world.Bottom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := m.Index(tt.face, tt.x, tt.y)
			to := m.Neighbor(from, tt.forward)
			require.Equal(t, m.Index(tt.wantFace, tt.wantX, tt.wantY), to)

			fwd, rgt := Rebase(m, from, tt.forward, tt.right, to)
			assert.Equal(t, tt.wantFwd, fwd)
			assert.Equal(t, tt.wantRgt, rgt)
		})
	}
}

func TestRebaseWalksClosedLoops(t *testing.T) {
	// Walking straight ahead must circle the cube and come back to the
	// starting tile with the starting frame.
	for size := 1; size <= 5; size++ {
		m := placedTopology(t, size)
		mid := size / 2
		last := size - 1

		starts := []struct {
			face, x, y     int
			forward, right world.Label
		}{
			{world.FaceFront, mid, mid, world.Top, world.Right},
			{world.FaceFront, mid, mid, world.Right, world.Bottom},
			{world.FaceFront, 0, 0, world.Top, world.Right},
			{world.FaceTop, 0, last, world.Left, world.Top},
			{world.FaceBottom, last, 0, world.Bottom, world.Left},
		}

		for _, s := range starts {
			start := m.Index(s.face, s.x, s.y)
			cur, fwd, rgt := start, s.forward, s.right
			for i := 0; i < 4*size; i++ {
				next := m.Neighbor(cur, fwd)
				fwd, rgt = Rebase(m, cur, fwd, rgt, next)
				cur = next
			}
			assert.Equal(t, start, cur, "size %d start face %d [%d,%d] %s", size, s.face, s.x, s.y, s.forward)
			assert.Equal(t, s.forward, fwd)
			assert.Equal(t, s.right, rgt)
		}
	}
}

func TestRebaseWithoutPositionsKeepsFrame(t *testing.T) {
	m, err := world.NewMaze(3)
	require.NoError(t, err)

	from := m.Index(world.FaceRight, 1, 0)
	to := m.Neighbor(from, world.Top)
	fwd, rgt := Rebase(m, from, world.Top, world.Right, to)
	assert.Equal(t, world.Top, fwd)
	assert.Equal(t, world.Right, rgt)
}

func TestRebaseFallsBackToPerpendicularRight(t *testing.T) {
	m, err := world.NewMaze(3)
	require.NoError(t, err)

	place := func(face, x, y int) {
		require.NoError(t, m.SetPosition(m.Index(face, x, y), geometry.SpherePoint(face, x, y, 3, geometry.DefaultDiameter)))
	}

	// Crossing from the right face onto the top face turns forward from top
	// to left. The old right neighbor has no position, so right falls back to
	// the first label perpendicular to the new forward.
	from := m.Index(world.FaceRight, 1, 0)
	to := m.Neighbor(from, world.Top)
	require.Equal(t, m.Index(world.FaceTop, 2, 1), to)

	place(world.FaceRight, 1, 0)
	place(world.FaceTop, 2, 1)
	place(world.FaceTop, 1, 1)
	place(world.FaceTop, 2, 0)
	place(world.FaceTop, 2, 2)

	fwd, rgt := Rebase(m, from, world.Top, world.Right, to)
	assert.Equal(t, world.Left, fwd)
	assert.Equal(t, world.Top, rgt)
}

func TestDirectionNeedsBothPositions(t *testing.T) {
	m, err := world.NewMaze(2)
	require.NoError(t, err)

	_, ok := Direction(m, 0, world.Right)
	assert.False(t, ok)
	_, ok = Direction(m, world.NoTile, world.Right)
	assert.False(t, ok)

	require.NoError(t, geometry.Project(m, geometry.DefaultDiameter))
	v, ok := Direction(m, m.Index(world.FaceFront, 0, 0), world.Right)
	require.True(t, ok)
	assert.InDelta(t, 1.0, v.X, 1e-9)
	assert.InDelta(t, 0.0, v.Y, 1e-9)
	assert.InDelta(t, 0.0, v.Z, 1e-9)
}

func TestPerpendicular(t *testing.T) {
	assert.Equal(t, [2]world.Label{world.Left, world.Right}, Perpendicular(world.Top))
	assert.Equal(t, [2]world.Label{world.Left, world.Right}, Perpendicular(world.Bottom))
	assert.Equal(t, [2]world.Label{world.Top, world.Bottom}, Perpendicular(world.Left))
	assert.Equal(t, [2]world.Label{world.Top, world.Bottom}, Perpendicular(world.Right))
}
