// Package geometry places maze tiles in 3-D space on a spherized cube.
package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/samdwyer/cubemaze/internal/world"
)

// DefaultDiameter is the diameter of the sphere the game projects onto.
const DefaultDiameter = 2.0

// frame is a face's outward normal and its in-plane x and y axes.
type frame struct {
	normal, u, v r3.Vec
}

// frames must agree with the seam table in internal/world: stepping off the
// right edge of a face lands on the face whose normal is that face's u axis.
var frames = [world.Faces]frame{
	world.FaceFront:  {normal: r3.Vec{Z: 1}, u: r3.Vec{X: 1}, v: r3.Vec{Y: -1}},
	world.FaceRight:  {normal: r3.Vec{X: 1}, u: r3.Vec{Z: -1}, v: r3.Vec{Y: -1}},
	world.FaceBack:   {normal: r3.Vec{Z: -1}, u: r3.Vec{X: -1}, v: r3.Vec{Y: -1}},
	world.FaceLeft:   {normal: r3.Vec{X: -1}, u: r3.Vec{Z: 1}, v: r3.Vec{Y: -1}},
	world.FaceTop:    {normal: r3.Vec{Y: 1}, u: r3.Vec{X: 1}, v: r3.Vec{Z: 1}},
	world.FaceBottom: {normal: r3.Vec{Y: -1}, u: r3.Vec{X: 1}, v: r3.Vec{Z: -1}},
}

// CubePoint returns the center of tile (x, y) on the given face of an
// axis-aligned cube with the given edge length, centered at the origin.
func CubePoint(face, x, y, size int, diameter float64) r3.Vec {
	half := diameter / 2
	step := diameter / float64(size)
	a := (float64(x)+0.5)*step - half
	b := (float64(y)+0.5)*step - half

	f := frames[face]
	p := r3.Scale(half, f.normal)
	p = r3.Add(p, r3.Scale(a, f.u))
	return r3.Add(p, r3.Scale(b, f.v))
}

// SpherePoint pushes CubePoint out onto the sphere of the same diameter.
func SpherePoint(face, x, y, size int, diameter float64) r3.Vec {
	return r3.Scale(diameter/2, r3.Unit(CubePoint(face, x, y, size, diameter)))
}

// Project assigns a sphere position to every tile of the maze. It must run
// once, before any navigator is created.
func Project(m *world.Maze, diameter float64) error {
	if diameter <= 0 {
		return fmt.Errorf("diameter must be positive, got %g", diameter)
	}
	for id := range m.Tiles {
		t := &m.Tiles[id]
		if err := m.SetPosition(world.TileID(id), SpherePoint(t.Face, t.X, t.Y, m.Size, diameter)); err != nil {
			return fmt.Errorf("failed to place tile %d: %w", id, err)
		}
	}
	return nil
}
