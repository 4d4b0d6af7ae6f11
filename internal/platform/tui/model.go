package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/matrix-pong/internal/config"
	"github.com/vovakirdan/matrix-pong/internal/core"
	"github.com/vovakirdan/matrix-pong/internal/driver"
)

// Options configures a terminal session.
type Options struct {
	Config        config.PongConfig
	Seed          int64
	Recorder      driver.Recorder // May be nil
	Logger        *log.Logger     // May be nil
	Source        string
	Clock         core.Clock // Defaults to a system clock
	ScreenshotDir string     // Defaults to ~/.pong/screenshots
}

// Model is the Bubble Tea model hosting one emulated board.
type Model struct {
	drv      *driver.Driver
	matrix   *core.Matrix
	segments *core.SevenSegment
	queue    *core.InputQueue
	clock    core.Clock
	tracker  *ButtonTracker
	keys     KeyMap
	mapper   *KeyMapper
	help     help.Model
	logger   *log.Logger

	pixel         string
	pollMS        int64
	showSegments  bool
	screenshotDir string
	lastShot      string
	quitting      bool
}

// NewModel creates a model showing the start screen.
func NewModel(opts Options) Model {
	clock := opts.Clock
	if clock == nil {
		clock = core.NewSystemClock()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	dir := opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".pong", "screenshots")
	}

	matrix := core.NewMatrix()
	segments := &core.SevenSegment{}
	queue := core.NewInputQueue(core.DefaultQueueCap)

	drv := driver.New(driver.Options{
		Config:   opts.Config.Runtime(opts.Seed),
		Clock:    clock,
		Input:    queue,
		Sink:     matrix,
		Segments: segments,
		Recorder: opts.Recorder,
		Logger:   logger,
		Source:   opts.Source,
	})

	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false

	return Model{
		drv:           drv,
		matrix:        matrix,
		segments:      segments,
		queue:         queue,
		clock:         clock,
		tracker:       NewButtonTracker(opts.Config.Input.ReleaseAfterMS),
		keys:          keys,
		mapper:        NewKeyMapper(keys),
		help:          h,
		logger:        logger,
		pixel:         opts.Config.Display.Pixel,
		pollMS:        opts.Config.Timing.PollMS,
		showSegments:  opts.Config.Display.ShowSegments,
		screenshotDir: dir,
	}
}

// Init starts the poll loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.pollMS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey turns a key into a button press or a serial character.
// Nothing reaches the game until the next tick polls the queue.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev := m.mapper.MapKey(msg)

	switch ev.Kind {
	case KeyQuit:
		m.quitting = true
		return m, tea.Quit
	case KeyScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.lastShot = path
		}
	case KeyHelp:
		m.help.ShowAll = !m.help.ShowAll
	case KeyButton:
		if m.tracker.Key(ev.Button, m.clock.NowMS()) {
			m.queue.PushPress(ev.Button)
		}
	case KeyChar:
		m.queue.PushChar(ev.Char)
	}

	return m, nil
}

// handleTick synthesizes releases and runs one driver step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, b := range m.tracker.Expired(m.clock.NowMS()) {
		m.queue.PushRelease(b)
	}
	m.drv.Step()
	return m, tickCmd(m.pollMS)
}

// Status exposes the driver status.
func (m Model) Status() driver.Status {
	return m.drv.Status()
}

// saveScreenshot writes the matrix and console to a timestamped file.
func (m *Model) saveScreenshot() (string, error) {
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: cannot create directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("pong_%s.txt", timestamp))

	var sb strings.Builder
	sb.WriteString(m.matrix.String())
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(m.drv.Status().Lines, "\n"))
	sb.WriteString("\n")

	if err := os.WriteFile(path, []byte(sb.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: cannot write %s: %w", path, err)
	}
	return path, nil
}

// View renders the board, segments, console and help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	board := panelStyle.Render(RenderMatrix(m.matrix, m.pixel))
	if m.showSegments {
		board = lipgloss.JoinVertical(lipgloss.Center, board, RenderSegments(m.segments))
	}

	lines := m.drv.Status().Lines
	if m.lastShot != "" {
		lines = append(lines, "", "saved "+filepath.Base(m.lastShot))
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", RenderConsole(lines))

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return view + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
