package gamedata

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
)

// LevelRegistry holds loaded level definitions in level order.
type LevelRegistry struct {
	levels []LevelDef
}

// NewLevelRegistry creates a registry from loaded level definitions.
func NewLevelRegistry(levels []LevelDef) (*LevelRegistry, error) {
	if len(levels) == 0 {
		return nil, errors.New("no levels defined")
	}
	sorted := make([]LevelDef, len(levels))
	copy(sorted, levels)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Level < sorted[j].Level })

	for i, l := range sorted {
		if l.Size < 1 {
			return nil, fmt.Errorf("level %d has invalid size %d", l.Level, l.Size)
		}
		if l.Level != i+1 {
			return nil, fmt.Errorf("levels must be numbered 1..n, found %d at position %d", l.Level, i+1)
		}
	}
	return &LevelRegistry{levels: sorted}, nil
}

// LoadLevelRegistry loads and creates a registry from the embedded levels.json.
func LoadLevelRegistry() (*LevelRegistry, error) {
	levels, err := LoadLevels()
	if err != nil {
		return nil, err
	}
	return NewLevelRegistry(levels)
}

// LevelSizeOffset is the size step past the table: level n has size n+4.
const LevelSizeOffset = 4

// Get returns the definition for a 1-based level. Levels past the last entry
// keep growing by one tile per edge per level.
func (r *LevelRegistry) Get(level int) LevelDef {
	if level < 1 {
		level = 1
	}
	if level <= len(r.levels) {
		return r.levels[level-1]
	}
	last := r.levels[len(r.levels)-1]
	return LevelDef{
		Level: level,
		Size:  level + LevelSizeOffset,
		Name:  fmt.Sprintf("%s +%d", last.Name, level-last.Level),
	}
}

// Count returns the number of defined levels.
func (r *LevelRegistry) Count() int {
	return len(r.levels)
}

// Palette maps face indices to names and colors.
type Palette struct {
	faces [6]FaceDef
	fg    [6]tcell.Color
	wall  [6]tcell.Color
}

// NewPalette builds a palette from face definitions. Every face 0-5 must be present.
func NewPalette(faces []FaceDef) (*Palette, error) {
	p := &Palette{}
	seen := [6]bool{}
	for _, f := range faces {
		if f.Face < 0 || f.Face >= len(p.faces) {
			return nil, fmt.Errorf("face index %d out of range", f.Face)
		}
		fg, err := ParseHexColor(f.Color)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", f.Face, err)
		}
		wall, err := Dim(f.Color, 0.4)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", f.Face, err)
		}
		p.faces[f.Face] = f
		p.fg[f.Face] = fg
		p.wall[f.Face] = wall
		seen[f.Face] = true
	}
	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("face %d missing from palette", i)
		}
	}
	return p, nil
}

// LoadPalette loads the palette from the embedded faces.json.
func LoadPalette() (*Palette, error) {
	faces, err := LoadFaces()
	if err != nil {
		return nil, err
	}
	return NewPalette(faces)
}

// Name returns the display name of a face.
func (p *Palette) Name(face int) string {
	return p.faces[face].Name
}

// Color returns the foreground color of a face.
func (p *Palette) Color(face int) tcell.Color {
	return p.fg[face]
}

// WallColor returns the dimmed color used for a face's walls.
func (p *Palette) WallColor(face int) tcell.Color {
	return p.wall[face]
}
