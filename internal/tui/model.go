package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kudoshq/kudoticker/internal/config"
	"github.com/kudoshq/kudoticker/internal/logging"
	"github.com/kudoshq/kudoticker/internal/recognition"
	"github.com/kudoshq/kudoticker/internal/tui/styles"
)

// Layout constants
const (
	// headerHeight is the title line plus its trailing blank line.
	headerHeight = 2
	// footerHeight is the help bar plus its leading blank line.
	footerHeight = 2
	// chromeHeight is the total number of rows not available to the feed.
	chromeHeight = headerHeight + footerHeight
)

// Loader supplies the recognition sequence shown by the ticker.
type Loader interface {
	Load(ctx context.Context) ([]recognition.Recognition, error)
}

// Model holds the ticker application state
type Model struct {
	// Core components
	loader Loader
	logger *logging.Logger

	// Animation configuration
	speed         float64 // rows per second
	frameInterval time.Duration
	region        string

	// Feed state
	records []recognition.Recognition
	lines   []string // rendered display-list rows

	// Scroll state. offset stays in [0, contentExtent); when the content
	// fits the container it is pinned to 0 and no frames are scheduled.
	offset          float64
	containerExtent int
	contentExtent   int
	lastTick        time.Time

	// UI state
	width    int
	height   int
	ready    bool
	loading  bool
	loadErr  error
	quitting bool
	showHelp bool
	spinner  spinner.Model

	// Generation counters. Bumping a counter cancels everything scheduled
	// under the old value: stale frame callbacks and stale load responses
	// are dropped on arrival instead of mutating state after a dependency
	// change or teardown.
	animSeq int
	loadSeq int
}

// NewModel creates a ticker model for the given feed loader.
func NewModel(loader Loader, cfg *config.Config, logger *logging.Logger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Primary

	return Model{
		loader:        loader,
		logger:        logger,
		speed:         cfg.Ticker.Speed,
		frameInterval: cfg.Ticker.FrameInterval(),
		region:        cfg.Feed.RegionCode,
		loading:       true,
		spinner:       sp,
	}
}

// Init starts the spinner and kicks off the initial feed load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadFeed())
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m.remeasure()

	case feedMsg:
		if msg.seq != m.loadSeq {
			// Stale response from a superseded load.
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.loadErr = msg.err
			m.logger.Error("feed load failed", "error", msg.err.Error())
			return m, nil
		}
		m.loadErr = nil
		m.records = msg.records
		m.logger.Info("feed loaded", "records", len(m.records))
		return m.remeasure()

	case frameMsg:
		if msg.seq != m.animSeq {
			// Frame scheduled before a remeasure or reload.
			return m, nil
		}
		if m.quitting || !m.animating() {
			return m, nil
		}
		var elapsed time.Duration
		if !m.lastTick.IsZero() {
			elapsed = msg.at.Sub(m.lastTick)
		}
		m.lastTick = msg.at
		m.offset = step(m.offset, advance(m.speed, elapsed), m.contentExtent)
		return m, m.tick()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeypress processes keyboard input
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "r":
		if m.loading {
			return m, nil
		}
		return m.reload()

	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	}

	return m, nil
}

// reload starts a fresh load cycle, discarding current records and any
// in-flight response.
func (m Model) reload() (tea.Model, tea.Cmd) {
	m.loadSeq++
	m.animSeq++
	m.loading = true
	m.loadErr = nil
	m.records = nil
	m.lines = nil
	m.offset = 0
	m.contentExtent = 0
	m.lastTick = time.Time{}
	m.logger.Info("feed reload requested")
	return m, tea.Batch(m.spinner.Tick, m.loadFeed())
}

// remeasure recomputes both extents and the rendered row buffer after the
// records or the viewport changed. It cancels any in-flight frame callback,
// resets the scroll offset and timing reference, and restarts the animation
// only if the content overflows the container.
func (m Model) remeasure() (tea.Model, tea.Cmd) {
	m.animSeq++
	m.offset = 0
	m.lastTick = time.Time{}
	m.containerExtent = max(m.height-chromeHeight, 0)
	m.contentExtent = len(m.records) * cardHeight
	m.lines = renderCards(displayList(m.records), m.width)

	if m.animating() {
		return m, m.tick()
	}
	return m, nil
}

// animating reports whether frame callbacks should be scheduled: only when
// there is something to show and it overflows the visible container.
func (m Model) animating() bool {
	return m.ready &&
		!m.loading &&
		m.loadErr == nil &&
		len(m.records) > 0 &&
		m.contentExtent > m.containerExtent
}

// visibleLines returns the window of rendered rows currently on screen.
func (m Model) visibleLines() []string {
	if len(m.lines) == 0 || m.containerExtent <= 0 {
		return nil
	}

	if m.contentExtent <= m.containerExtent {
		// Everything fits; show the original sequence without the
		// duplicated loop prefix.
		return m.lines[:m.contentExtent]
	}

	start := int(m.offset)
	end := min(start+m.containerExtent, len(m.lines))
	return m.lines[start:end]
}
