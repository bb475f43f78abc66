package tiles

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultPaletteFile is the embedded palette for the 48px dungeon tileset.
const DefaultPaletteFile = "palette.yaml"

// Load reads and unmarshals a YAML file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse YAML from %s: %w", filename, err)
	}

	return result, nil
}

// LoadPalette loads and validates a palette from the embedded filesystem.
func LoadPalette(filename string) (*Palette, error) {
	file, err := Load[PaletteFile](filename)
	if err != nil {
		return nil, err
	}
	return NewPalette(file)
}

// ParsePalette builds a palette from raw YAML, e.g. a user-supplied override.
func ParsePalette(content []byte) (*Palette, error) {
	var file PaletteFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}
	return NewPalette(file)
}

// MustLoadPalette loads the default palette, panicking on error.
// Use this for data that must be present for the game to function.
func MustLoadPalette() *Palette {
	p, err := LoadPalette(DefaultPaletteFile)
	if err != nil {
		panic(err)
	}
	return p
}
