// Package nav moves an agent through a carved cube maze while keeping a
// consistent forward/right frame across face seams.
package nav

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/samdwyer/cubemaze/internal/world"
)

// Intent is a movement request relative to the agent's current frame.
type Intent int

const (
	Forward Intent = iota
	Back
	Left
	Right
)

// String returns the intent name.
func (i Intent) String() string {
	switch i {
	case Forward:
		return "forward"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

var (
	// ErrNotCarved is returned when a navigator is created on an uncarved maze.
	ErrNotCarved = errors.New("maze has not been carved")
	// ErrInvalidBasis is returned when forward and right are not perpendicular.
	ErrInvalidBasis = errors.New("forward and right labels must be perpendicular")
)

// Navigator tracks the agent's tile and its face-local forward/right labels.
// It is not safe for concurrent use; callers serialize input events.
type Navigator struct {
	maze       *world.Maze
	current    world.TileID
	end        world.TileID
	forward    world.Label
	right      world.Label
	onComplete func()
	logger     logr.Logger
	moves      int
	arrivals   int
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithOnComplete registers the callback invoked each time the end tile is reached.
func WithOnComplete(fn func()) Option {
	return func(n *Navigator) { n.onComplete = fn }
}

// WithBasis overrides the initial frame (forward=top, right=right).
func WithBasis(forward, right world.Label) Option {
	return func(n *Navigator) {
		n.forward = forward
		n.right = right
	}
}

// WithLogger sets the logger used for move tracing.
func WithLogger(logger logr.Logger) Option {
	return func(n *Navigator) { n.logger = logger }
}

// New creates a navigator at start with end as the goal. The maze must be
// carved, and positions should already be assigned for seam re-basing to work.
func New(m *world.Maze, start, end world.TileID, opts ...Option) (*Navigator, error) {
	if !m.Carved() {
		return nil, ErrNotCarved
	}
	if m.Tile(start) == nil {
		return nil, fmt.Errorf("%w: start %d", world.ErrTileOutOfRange, start)
	}
	if m.Tile(end) == nil {
		return nil, fmt.Errorf("%w: end %d", world.ErrTileOutOfRange, end)
	}

	n := &Navigator{
		maze:    m,
		current: start,
		end:     end,
		forward: world.Top,
		right:   world.Right,
		logger:  logr.Discard(),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.right == n.forward || n.right == n.forward.Opposite() {
		return nil, fmt.Errorf("%w: forward=%s right=%s", ErrInvalidBasis, n.forward, n.right)
	}
	return n, nil
}

// Current returns the tile the agent stands on.
func (n *Navigator) Current() world.TileID { return n.current }

// End returns the goal tile.
func (n *Navigator) End() world.TileID { return n.end }

// Forward returns the label the forward intent currently maps to.
func (n *Navigator) Forward() world.Label { return n.forward }

// Right returns the label the right intent currently maps to.
func (n *Navigator) Right() world.Label { return n.right }

// Moves returns the number of successful moves.
func (n *Navigator) Moves() int { return n.moves }

// Done reports whether the agent is standing on the end tile.
func (n *Navigator) Done() bool { return n.current == n.end }

// Arrivals returns how many times the end tile has been reached.
func (n *Navigator) Arrivals() int { return n.arrivals }

// LabelFor maps an intent to a face-local label using the current frame.
func (n *Navigator) LabelFor(intent Intent) (world.Label, bool) {
	switch intent {
	case Forward:
		return n.forward, true
	case Back:
		return n.forward.Opposite(), true
	case Left:
		return n.right.Opposite(), true
	case Right:
		return n.right, true
	default:
		return 0, false
	}
}

// IntentFor is the inverse of LabelFor.
func (n *Navigator) IntentFor(l world.Label) Intent {
	switch l {
	case n.forward:
		return Forward
	case n.forward.Opposite():
		return Back
	case n.right:
		return Right
	default:
		return Left
	}
}

// HandleMove applies one intent. A closed passage is a no-op and returns false.
func (n *Navigator) HandleMove(intent Intent) bool {
	target, ok := n.LabelFor(intent)
	if !ok || !n.maze.CanMove(n.current, target) {
		return false
	}

	from := n.current
	n.current = n.maze.Neighbor(from, target)
	n.forward, n.right = Rebase(n.maze, from, n.forward, n.right, n.current)
	n.moves++

	if ft, tt := n.maze.Tile(from), n.maze.Tile(n.current); ft.Face != tt.Face {
		n.logger.V(1).Info("crossed seam",
			"fromFace", ft.Face, "toFace", tt.Face,
			"forward", n.forward.String(), "right", n.right.String())
	}

	if n.current == n.end {
		n.arrivals++
		n.logger.Info("end tile reached", "moves", n.moves)
		if n.onComplete != nil {
			n.onComplete()
		}
	}
	return true
}
