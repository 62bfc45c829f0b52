package platformer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/coindash/internal/core"
)

func TestEmbeddedLevelsLoadAndValidate(t *testing.T) {
	ids := LevelIDs()
	if len(ids) == 0 {
		t.Fatal("no embedded levels found")
	}

	for _, id := range ids {
		lvl, err := LoadEmbedded(id)
		if err != nil {
			t.Fatalf("embedded level %q failed to load: %v", id, err)
		}
		if lvl.Name == "" {
			t.Errorf("level %q has no name", id)
		}
		if len(lvl.Platforms) == 0 {
			t.Errorf("level %q has no platforms", id)
		}
	}
}

func TestDefaultLevelExists(t *testing.T) {
	if _, err := LoadEmbedded(DefaultLevelID); err != nil {
		t.Fatalf("default level %q must exist: %v", DefaultLevelID, err)
	}
}

func TestLoadEmbeddedUnknownID(t *testing.T) {
	if _, err := LoadEmbedded("no-such-level"); err == nil {
		t.Error("unknown embedded level should error")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	content := `
name: Custom
world: {width: 100, height: 20}
spawn: {x: 5, y: 17}
platforms:
  - {x: 0, y: 18, w: 100, h: 2}
coins:
  - {x: 20, y: 15}
goal: {x: 90, y: 14, w: 2, h: 4}
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	lvl, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if lvl.Name != "Custom" {
		t.Errorf("unexpected name %q", lvl.Name)
	}
	if len(lvl.Coins) != 1 {
		t.Errorf("expected 1 coin, got %d", len(lvl.Coins))
	}
}

func TestLoadByIDPrefersLocalOverride(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("levels", 0o755); err != nil {
		t.Fatal(err)
	}
	content := `
name: Meadow Override
world: {width: 100, height: 20}
spawn: {x: 5, y: 17}
platforms:
  - {x: 0, y: 18, w: 100, h: 2}
goal: {x: 90, y: 14, w: 2, h: 4}
`
	if err := os.WriteFile(filepath.Join("levels", DefaultLevelID+".yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	lvl, err := LoadByID(DefaultLevelID)
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "Meadow Override" {
		t.Errorf("local level file should win over the embedded copy, got %q", lvl.Name)
	}
}

func TestLoadByIDFallsBackToEmbedded(t *testing.T) {
	t.Chdir(t.TempDir())

	lvl, err := LoadByID(DefaultLevelID)
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name == "" {
		t.Error("embedded fallback returned an empty level")
	}
}

func TestValidateRejectsBrokenLevels(t *testing.T) {
	base := func() *Level {
		return &Level{
			Name:      "Broken",
			World:     WorldSize{Width: 100, Height: 20},
			Spawn:     Point{X: 5, Y: 17},
			Platforms: []core.Box{{X: 0, Y: 18, W: 100, H: 2}},
			Goal:      core.Box{X: 90, Y: 14, W: 2, H: 4},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Level)
	}{
		{"no platforms", func(l *Level) { l.Platforms = nil }},
		{"zero world", func(l *Level) { l.World.Width = 0 }},
		{"flat platform", func(l *Level) { l.Platforms[0].H = 0 }},
		{"goal outside world", func(l *Level) { l.Goal.X = 200 }},
		{"spawn outside world", func(l *Level) { l.Spawn.Y = -5 }},
		{"coin outside world", func(l *Level) { l.Coins = []Point{{X: 500, Y: 5}} }},
		{"missing name", func(l *Level) { l.Name = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lvl := base()
			tc.mutate(lvl)
			if err := lvl.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
