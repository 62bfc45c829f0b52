package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coindash/internal/audio"
	"github.com/vovakirdan/coindash/internal/core"
	"github.com/vovakirdan/coindash/internal/registry"
	"github.com/vovakirdan/coindash/internal/storage"
)

// maxMeasuredDelta caps the wall-clock delta handed to the game. A
// suspended terminal can report seconds between ticks; the game clamps
// again internally, this bound just keeps the measurement sane.
const maxMeasuredDelta = 250 * time.Millisecond

// runDetails is implemented by games that expose extra metadata for
// the run record saved on game over or win.
type runDetails interface {
	LevelName() string
	CoinsCollected() int
	Ticks() int
}

// levelSelector is implemented by games whose level can be chosen per
// instance.
type levelSelector interface {
	SetLevelID(id string)
}

// resizer is implemented by games that can adapt their viewport without
// restarting the current run.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for running the game locally.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	sound    *audio.Engine
	config   core.RuntimeConfig
	keys     *KeyMapper
	held     *HoldTracker
	state    core.GameState
	lastTick time.Time
	quitting bool
	runSaved bool // whether the current terminal state has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// The sound engine may be nil for silent play.
func NewModel(game registry.Game, store *storage.Store, sound *audio.Engine, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		sound:  sound,
		config: cfg,
		keys:   NewKeyMapper(),
		held:   NewHoldTracker(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "m":
		if m.sound != nil {
			m.sound.ToggleMute()
		}
		return m, nil
	}

	intent, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.held.Press(intent, time.Now())

	return m, nil
}

// handleResize processes window resize events. Games that support
// viewport resizing keep their run; otherwise the game is rebuilt for
// the new dimensions, which restarts the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if rs, ok := m.game.(resizer); ok {
		rs.Resize(msg.Width, msg.Height)
	} else if !m.state.Status.Terminal() {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick advances the simulation by the measured elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.measureDelta(now)
	frame := m.held.Frame(now)

	if frame.Start && m.state.Status.Terminal() {
		// New run: fresh seed and a clean run record slate.
		m.config.Seed = time.Now().UnixNano()
		m.runSaved = false
	}

	result := m.game.Step(frame, dt)
	m.state = result.State

	if m.sound != nil {
		m.sound.PlayAll(result.Events)
	}

	if m.state.Status.Terminal() && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// measureDelta returns the wall-clock seconds since the previous tick.
func (m *Model) measureDelta(now time.Time) float64 {
	if m.lastTick.IsZero() {
		m.lastTick = now
		return 1.0 / float64(m.config.TickRate)
	}
	dt := now.Sub(m.lastTick)
	m.lastTick = now
	if dt > maxMeasuredDelta {
		dt = maxMeasuredDelta
	}
	return dt.Seconds()
}

// saveRun records the finished run. Best effort: a storage failure never
// interrupts play.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}

	run := storage.Run{
		GameID:  m.game.ID(),
		Score:   m.state.Score,
		Outcome: storage.OutcomeGameOver,
	}
	if m.state.Status == core.StatusWin {
		run.Outcome = storage.OutcomeWin
	}
	if d, ok := m.game.(runDetails); ok {
		run.Level = d.LevelName()
		run.Coins = d.CoinsCollected()
		run.DurationTicks = d.Ticks()
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(run)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".coindash", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, sound *audio.Engine, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, sound, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
