// Package mlw has functions for loading game data using the MLW (Moonlight
// World) game data file format, a TOML-based format that is used to define the
// rooms and player of a game world. The same schema may also be given as YAML,
// and the older line-based world format is read as well.
package mlw

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/moonlight/internal/game"
	"gopkg.in/yaml.v3"
)

const (
	// FormatName is the value that the 'format' key must have in MLW files.
	FormatName = "MOONLIGHT"

	// TypeData is the value that the 'type' key must have in MLW files.
	TypeData = "DATA"
)

// WorldData contains data loaded from a world file.
type WorldData struct {
	// World has every room, pre-loaded with exits, items, equipment, and
	// features, with the current room set to the start.
	World *game.World

	// Player is the player character, carrying nothing yet.
	Player *game.Player
}

// FileInfo contains the essential information all MLW format files must
// contain. It can be obtained from a file by reading it into memory and calling
// ScanFileInfo on the bytes.
type FileInfo struct {
	Format string `toml:"format" yaml:"format"`
	Type   string `toml:"type" yaml:"type"`
}

// Load loads a world from the file at the given path. The decoder used is
// chosen by the file extension: ".toml" and ".mlw" are read as MLW TOML,
// ".yaml" and ".yml" as MLW YAML, and ".txt" as the line-based format.
func Load(path string) (WorldData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WorldData{}, fmt.Errorf("%q: reading from disk: %w", path, err)
	}

	var wd WorldData
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".mlw":
		wd, err = LoadTOML(data)
	case ".yaml", ".yml":
		wd, err = LoadYAML(data)
	case ".txt":
		wd, err = LoadLegacy(bytes.NewReader(data))
	default:
		return WorldData{}, fmt.Errorf("%q: unknown world file type; extension must be one of .toml, .mlw, .yaml, .yml, or .txt", path)
	}

	if err != nil {
		return WorldData{}, fmt.Errorf("world data file %q: %w", path, err)
	}
	return wd, nil
}

// LoadTOML loads a world from MLW TOML data. The header is checked before the
// rest of the document is decoded, so a file that is not MLW data is rejected
// for that reason even if its tables would not decode.
func LoadTOML(data []byte) (WorldData, error) {
	info, err := ScanFileInfo(data)
	if err != nil {
		return WorldData{}, fmt.Errorf("in header: %w", err)
	}
	if err := checkHeader(info); err != nil {
		return WorldData{}, err
	}

	var top topLevelWorldData
	if err := toml.Unmarshal(data, &top); err != nil {
		return WorldData{}, err
	}
	return parseWorldData(top)
}

// LoadYAML loads a world from MLW data written as YAML.
func LoadYAML(data []byte) (WorldData, error) {
	var top topLevelWorldData
	if err := yaml.Unmarshal(data, &top); err != nil {
		return WorldData{}, err
	}
	if err := checkHeader(FileInfo{Format: top.Format, Type: top.Type}); err != nil {
		return WorldData{}, err
	}
	return parseWorldData(top)
}

func checkHeader(info FileInfo) error {
	if strings.ToUpper(info.Format) != FormatName {
		return fmt.Errorf("in header: 'format' key must exist and be set to '%s'", FormatName)
	}
	if strings.ToUpper(info.Type) != TypeData {
		return fmt.Errorf("in header: 'type' must exist and be set to '%s'", TypeData)
	}
	return nil
}

// ScanFileInfo takes the given bytes of a TOML file and attempts to read the
// MLW format common header info from it. The bytes are read up to the first
// instance of a table definition header and those bytes are parsed for the
// info. If there is an error reading the info, returns a non-nil error.
func ScanFileInfo(data []byte) (FileInfo, error) {
	// only run the toml parser up to the end of the top-lev table
	var topLevelEnd int = -1
	onNewLine := true
	for b := range data {
		if onNewLine {
			if data[b] == '[' {
				topLevelEnd = b
				break
			}
		}

		if data[b] == '\n' {
			onNewLine = true
		} else if !unicode.IsSpace(rune(data[b])) {
			onNewLine = false
		}
	}

	scanData := data
	if topLevelEnd != -1 {
		scanData = data[:topLevelEnd]
	}

	var info FileInfo
	err := toml.Unmarshal(scanData, &info)
	return info, err
}
