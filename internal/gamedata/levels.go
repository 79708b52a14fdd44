package gamedata

// LevelDef defines one maze level loaded from JSON.
type LevelDef struct {
	Level int    `json:"level"`          // 1-based level number
	Size  int    `json:"size"`           // Tiles per face edge
	Seed  int64  `json:"seed,omitempty"` // Fixed seed; 0 derives one from size and level
	Name  string `json:"name"`           // Display name
}

// EffectiveSeed returns the carving seed for this level. Unless the data
// pins a seed, it is size + level, so every level has a fixed layout.
func (l LevelDef) EffectiveSeed() int64 {
	if l.Seed != 0 {
		return l.Seed
	}
	return int64(l.Size + l.Level)
}

// LevelsFile represents the structure of levels.json.
type LevelsFile struct {
	Levels []LevelDef `json:"levels"`
}

// LoadLevels loads level definitions from the embedded levels.json file.
func LoadLevels() ([]LevelDef, error) {
	file, err := Load[LevelsFile]("levels.json")
	if err != nil {
		return nil, err
	}
	return file.Levels, nil
}

// FaceDef describes how a cube face is labeled and colored.
type FaceDef struct {
	Face  int    `json:"face"`  // Face index, 0-5
	Name  string `json:"name"`  // Display name (e.g., "Front")
	Color string `json:"color"` // Hex color code (e.g., "#4FC3F7")
}

// FacesFile represents the structure of faces.json.
type FacesFile struct {
	Faces []FaceDef `json:"faces"`
}

// LoadFaces loads face definitions from the embedded faces.json file.
func LoadFaces() ([]FaceDef, error) {
	file, err := Load[FacesFile]("faces.json")
	if err != nil {
		return nil, err
	}
	return file.Faces, nil
}
