package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cubemaze/internal/gamedata"
	"github.com/samdwyer/cubemaze/internal/nav"
	"github.com/samdwyer/cubemaze/internal/world"
)

// Layout of the face view.
const (
	faceLeft = 10 // column of the face's left border
	faceTop  = 2  // row of the face's top border
	cellW    = 4
	cellH    = 2
)

// View is everything the renderer needs for one frame.
type View struct {
	Maze    *world.Maze
	Nav     *nav.Navigator
	Level   gamedata.LevelDef
	Message string
}

// Renderer draws the face the player stands on.
type Renderer struct {
	canvas  Canvas
	palette *gamedata.Palette
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas, palette *gamedata.Palette) *Renderer {
	return &Renderer{canvas: canvas, palette: palette}
}

// Render draws the current face, the seams around it, and the status lines.
func (r *Renderer) Render(v View) {
	r.canvas.Clear()

	cur := v.Maze.Tile(v.Nav.Current())
	face := cur.Face
	n := v.Maze.Size

	title := fmt.Sprintf("Level %d: %s", v.Level.Level, v.Level.Name)
	drawText(r.canvas, 0, 0, title, tcell.StyleDefault.Bold(true))

	r.drawSeams(v.Maze, face)
	r.drawFace(v.Maze, face)

	// Player and goal.
	if end := v.Maze.Tile(v.Nav.End()); end.Face == face && end != cur {
		x, y := cellCenter(end.X, end.Y)
		r.canvas.SetContent(x, y, '*', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	}
	x, y := cellCenter(cur.X, cur.Y)
	glyph := HeadingGlyph(v.Nav.Forward())
	if v.Nav.Done() {
		glyph = '@'
	}
	r.canvas.SetContent(x, y, glyph, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))

	row := faceTop + cellH*n + 3
	status := fmt.Sprintf("Face: %s  Moves: %d  Maze: %016x", r.palette.Name(face), v.Nav.Moves(), v.Maze.Fingerprint())
	drawText(r.canvas, 0, row, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	drawText(r.canvas, 0, row+1, "w/s/a/d or arrows: move   h: hint   r: restart   q: quit",
		tcell.StyleDefault.Foreground(tcell.ColorGray))
	if v.Message != "" {
		drawText(r.canvas, 0, row+3, v.Message, tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
	}

	r.canvas.Show()
}

// drawFace draws the walls of one face; a wall is drawn wherever the passage is closed.
func (r *Renderer) drawFace(m *world.Maze, face int) {
	n := m.Size
	wall := tcell.StyleDefault.Foreground(r.palette.WallColor(face))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			t := m.At(face, x, y)
			px, py := faceLeft+cellW*x, faceTop+cellH*y

			r.canvas.SetContent(px, py, '+', wall)
			for i := 1; i < cellW; i++ {
				r.canvas.SetContent(px+i, py, wallRune(t.Passage(world.Top), '-'), wall)
			}
			r.canvas.SetContent(px, py+1, wallRune(t.Passage(world.Left), '|'), wall)

			if x == n-1 {
				r.canvas.SetContent(px+cellW, py, '+', wall)
				r.canvas.SetContent(px+cellW, py+1, wallRune(t.Passage(world.Right), '|'), wall)
			}
			if y == n-1 {
				r.canvas.SetContent(px, py+cellH, '+', wall)
				for i := 1; i < cellW; i++ {
					r.canvas.SetContent(px+i, py+cellH, wallRune(t.Passage(world.Bottom), '-'), wall)
				}
				r.canvas.SetContent(px+cellW, py+cellH, '+', wall)
			}
		}
	}
}

// drawSeams names the face across each edge of the current face.
func (r *Renderer) drawSeams(m *world.Maze, face int) {
	n := m.Size
	corner := m.Index(face, 0, 0)
	across := func(id world.TileID, l world.Label) int {
		return m.Tile(m.Neighbor(id, l)).Face
	}

	top := across(corner, world.Top)
	drawText(r.canvas, faceLeft, faceTop-1, "^ "+r.palette.Name(top), tcell.StyleDefault.Foreground(r.palette.Color(top)))

	bottom := across(m.Index(face, 0, n-1), world.Bottom)
	drawText(r.canvas, faceLeft, faceTop+cellH*n+1, "v "+r.palette.Name(bottom), tcell.StyleDefault.Foreground(r.palette.Color(bottom)))

	left := across(corner, world.Left)
	label := r.palette.Name(left) + " <"
	drawText(r.canvas, faceLeft-1-len(label), faceTop+n, label, tcell.StyleDefault.Foreground(r.palette.Color(left)))

	right := across(m.Index(face, n-1, 0), world.Right)
	drawText(r.canvas, faceLeft+cellW*n+2, faceTop+n, "> "+r.palette.Name(right), tcell.StyleDefault.Foreground(r.palette.Color(right)))
}

// HeadingGlyph returns the arrow drawn for a forward label.
func HeadingGlyph(forward world.Label) rune {
	switch forward {
	case world.Top:
		return '^'
	case world.Bottom:
		return 'v'
	case world.Left:
		return '<'
	default:
		return '>'
	}
}

func cellCenter(x, y int) (int, int) {
	return faceLeft + cellW*x + cellW/2, faceTop + cellH*y + 1
}

func wallRune(open bool, closed rune) rune {
	if open {
		return ' '
	}
	return closed
}
