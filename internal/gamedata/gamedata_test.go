package gamedata

import (
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevels(t *testing.T) {
	levels, err := LoadLevels()
	require.NoError(t, err)
	require.NotEmpty(t, levels)

	for i, l := range levels {
		assert.Equal(t, i+1, l.Level)
		assert.Equal(t, l.Level+LevelSizeOffset, l.Size)
		assert.GreaterOrEqual(t, l.Size, 1)
		assert.NotEmpty(t, l.Name)
	}
}

func TestLevelRegistry(t *testing.T) {
	registry, err := LoadLevelRegistry()
	require.NoError(t, err)

	first := registry.Get(1)
	assert.Equal(t, 1, first.Level)
	assert.Equal(t, int64(first.Size+1), first.EffectiveSeed())

	assert.Equal(t, first, registry.Get(0), "levels below 1 clamp to the first")

	last := registry.Get(registry.Count())
	beyond := registry.Get(registry.Count() + 3)
	assert.Equal(t, last.Size+3, beyond.Size)
	assert.Equal(t, beyond.Level+LevelSizeOffset, beyond.Size)
	assert.Equal(t, registry.Count()+3, beyond.Level)
	assert.NotEqual(t, last.EffectiveSeed(), beyond.EffectiveSeed())
}

func TestLevelRegistryRejectsBadData(t *testing.T) {
	_, err := NewLevelRegistry(nil)
	assert.Error(t, err)

	_, err = NewLevelRegistry([]LevelDef{{Level: 1, Size: 0}})
	assert.Error(t, err)

	_, err = NewLevelRegistry([]LevelDef{{Level: 1, Size: 3}, {Level: 3, Size: 4}})
	assert.Error(t, err)

	r, err := NewLevelRegistry([]LevelDef{{Level: 2, Size: 4}, {Level: 1, Size: 3}})
	require.NoError(t, err)
	assert.Equal(t, 3, r.Get(1).Size)
}

func TestPinnedSeedWins(t *testing.T) {
	assert.Equal(t, int64(99), LevelDef{Level: 1, Size: 3, Seed: 99}.EffectiveSeed())
	assert.Equal(t, int64(8), LevelDef{Level: 3, Size: 5}.EffectiveSeed())
}

func TestLoadFSRejectsUnknownFields(t *testing.T) {
	fsys := fstest.MapFS{
		"good.json": {Data: []byte(`{"levels":[{"level":1,"size":2,"name":"a"}]}`)},
		"bad.json":  {Data: []byte(`{"levels":[{"level":1,"sise":2}]}`)},
	}

	file, err := LoadFS[LevelsFile](fsys, "good.json")
	require.NoError(t, err)
	assert.Equal(t, 2, file.Levels[0].Size)

	_, err = LoadFS[LevelsFile](fsys, "bad.json")
	assert.Error(t, err)

	_, err = LoadFS[LevelsFile](fsys, "missing.json")
	assert.Error(t, err)
}

func TestLoadPalette(t *testing.T) {
	p, err := LoadPalette()
	require.NoError(t, err)

	assert.Equal(t, "Front", p.Name(0))
	assert.Equal(t, "Bottom", p.Name(5))
	for face := 0; face < 6; face++ {
		assert.NotEqual(t, tcell.ColorDefault, p.Color(face))
		assert.NotEqual(t, p.Color(face), p.WallColor(face))
	}
}

func TestPaletteRequiresAllFaces(t *testing.T) {
	_, err := NewPalette([]FaceDef{{Face: 0, Name: "Front", Color: "#FFFFFF"}})
	assert.Error(t, err)

	_, err = NewPalette([]FaceDef{{Face: 7, Color: "#FFFFFF"}})
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	red, err := ParseHexColor("#FF0000")
	require.NoError(t, err)
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), red)
}

func TestDimDarkens(t *testing.T) {
	dark, err := Dim("#FFFFFF", 1)
	require.NoError(t, err)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), dark)

	same, err := Dim("#808080", 0)
	require.NoError(t, err)
	grey, err := ParseHexColor("#808080")
	require.NoError(t, err)
	assert.Equal(t, grey, same)
}
