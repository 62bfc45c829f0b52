package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/coindash/internal/audio"
	"github.com/vovakirdan/coindash/internal/config"
	"github.com/vovakirdan/coindash/internal/core"
	"github.com/vovakirdan/coindash/internal/games/platformer"
	"github.com/vovakirdan/coindash/internal/platform/tui"
	"github.com/vovakirdan/coindash/internal/registry"
	"github.com/vovakirdan/coindash/internal/storage"
)

var (
	flagConfig    string
	flagLevelFile string
	flagMute      bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start a run on the given embedded level, or the default level
when none is named.

Controls:
  A/D, Left/Right  - Move
  Space/W/Up       - Jump
  P/Esc            - Pause
  Enter/R          - Start / restart
  M                - Toggle sound
  Q/Ctrl+C         - Quit

Examples:
  coindash play
  coindash play summit
  coindash play --level-file ./my-level.yaml
  coindash play --config ./my-tuning.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
	playCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Path to a level YAML file on disk")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Validate the level choice before opening the terminal UI
	levelID := ""
	if flagLevelFile == "" && len(args) > 0 {
		levelID = args[0]
		if _, err := platformer.LoadEmbedded(levelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
			fmt.Fprintln(os.Stderr, "Run 'coindash levels' to see available levels.")
			os.Exit(1)
		}
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create("coindash")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Level and config selection: a file wins over an embedded ID
	if pg, ok := game.(*platformer.Game); ok {
		pg.SetConfigPath(flagConfig)
		if flagLevelFile != "" {
			pg.SetLevelPath(flagLevelFile)
		} else if levelID != "" {
			pg.SetLevelID(levelID)
		}
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	sound := openSound()

	runErr := tui.Run(game, store, sound, cfg)

	if sound != nil {
		sound.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openSound sets up the audio engine from the tuning config.
// Returns nil when sound is disabled or no audio device is available.
func openSound() *audio.Engine {
	if flagMute {
		return nil
	}

	tun, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		tun = config.DefaultPlatformerConfig()
	}
	if !tun.Audio.Enabled {
		return nil
	}

	engine := audio.NewEngine(tun.Audio)
	if err := engine.Init(); err != nil {
		// No audio device; play silent
		return nil
	}
	return engine
}
