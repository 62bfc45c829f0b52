package platformer

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/coindash/internal/core"
)

//go:embed levels/*.yaml
var embeddedLevels embed.FS

// DefaultLevelID is the level played when none is selected.
const DefaultLevelID = "meadow"

// Point is a position in world cells.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// WorldSize defines the level's world bounds in cells.
type WorldSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Level is the static content of a run: a fixed list of platforms, coin
// positions, a spawn point and a goal. Created once at load and never
// mutated afterwards; per-run coin state lives on the Game.
type Level struct {
	Name      string     `yaml:"name"`
	World     WorldSize  `yaml:"world"`
	Spawn     Point      `yaml:"spawn"`
	Platforms []core.Box `yaml:"platforms"`
	Coins     []Point    `yaml:"coins"`
	Goal      core.Box   `yaml:"goal"`
}

// Validate checks the level for internal consistency.
func (l *Level) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("level: missing name")
	}
	if l.World.Width <= 0 || l.World.Height <= 0 {
		return fmt.Errorf("level %s: world bounds must be positive", l.Name)
	}
	if len(l.Platforms) == 0 {
		return fmt.Errorf("level %s: needs at least one platform", l.Name)
	}
	for i, p := range l.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("level %s: platform %d has non-positive size", l.Name, i)
		}
	}
	if l.Goal.W <= 0 || l.Goal.H <= 0 {
		return fmt.Errorf("level %s: goal has non-positive size", l.Name)
	}
	if l.Goal.Right() > l.World.Width || l.Goal.Bottom() > l.World.Height {
		return fmt.Errorf("level %s: goal outside world bounds", l.Name)
	}
	if l.Spawn.X < 0 || l.Spawn.X > l.World.Width || l.Spawn.Y < 0 || l.Spawn.Y > l.World.Height {
		return fmt.Errorf("level %s: spawn outside world bounds", l.Name)
	}
	for i, c := range l.Coins {
		if c.X < 0 || c.X > l.World.Width || c.Y < 0 || c.Y > l.World.Height {
			return fmt.Errorf("level %s: coin %d outside world bounds", l.Name, i)
		}
	}
	return nil
}

// parseLevel decodes and validates a YAML level definition.
func parseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("level: cannot parse: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// LoadEmbedded loads one of the levels shipped with the binary by ID.
func LoadEmbedded(id string) (*Level, error) {
	data, err := embeddedLevels.ReadFile("levels/" + id + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("level: unknown embedded level %q", id)
	}
	return parseLevel(data)
}

// LoadByID resolves a level ID with the same search order the config
// loader uses: ~/.coindash/levels/<id>.yaml, ./levels/<id>.yaml, then the
// embedded copy. A broken override falls through to the next source.
func LoadByID(id string) (*Level, error) {
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".coindash", "levels", id+".yaml")
		if data, err := os.ReadFile(path); err == nil {
			if lvl, err := parseLevel(data); err == nil {
				return lvl, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("levels", id+".yaml")); err == nil {
		if lvl, err := parseLevel(data); err == nil {
			return lvl, nil
		}
	}

	return LoadEmbedded(id)
}

// LoadFile loads a level from a YAML file on disk.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: cannot read %s: %w", path, err)
	}
	return parseLevel(data)
}

// LevelIDs returns the IDs of all embedded levels, sorted.
func LevelIDs() []string {
	entries, err := embeddedLevels.ReadDir("levels")
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") {
			ids = append(ids, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(ids)
	return ids
}
