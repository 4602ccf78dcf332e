package monitor

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/ptop/internal/logger"
)

// DefaultInterval is the refresh period.
const DefaultInterval = time.Second

// Options configures a Model. Zero values take the package defaults.
type Options struct {
	Interval    time.Duration
	HistorySize int
	PageSize    int
	GraphHeight int
	Logger      logger.Logger
}

// Model is the Bubble Tea model for the dashboard.
//
// Update is the only writer of dashboard state. The tick timer and the
// keyboard reader are both owned by Bubble Tea and arrive here as messages
// in one ordered stream. Collection runs inside Update on each tick, so the
// collector and the renderer never run concurrently.
type Model struct {
	collector Collector
	delta     *DeltaCalculator
	history   *MemoryHistory

	procs   []ProcessSample // latest cycle, enumeration order
	totalKB int64
	scroll  ScrollState

	opts       RenderOptions
	interval   time.Duration
	lastUpdate time.Time
	collectErr error // from the latest cycle, nil when it succeeded

	width    int
	height   int
	quitting bool

	log  logger.Logger
	help help.Model
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// NewModel creates a dashboard model that samples from collector.
func NewModel(collector Collector, opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}

	history := NewMemoryHistory(opts.HistorySize)
	render := RenderOptions{
		PageSize:    opts.PageSize,
		GraphWidth:  history.Cap(),
		GraphHeight: opts.GraphHeight,
	}.withDefaults()

	return Model{
		collector: collector,
		delta:     NewDeltaCalculator(),
		history:   history,
		opts:      render,
		interval:  opts.Interval,
		log:       opts.Logger,
		help:      help.New(),
	}
}

// Init sends an immediate tick so the first cycle doesn't wait a full interval.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return tickMsg(time.Now())
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		// The next tick is scheduled only after this cycle completes, so a
		// slow collection delays the timer rather than piling up behind it.
		m.collect()
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// Frame renders the current state without modifying it.
func (m Model) Frame() Frame {
	return Render(m.procs, m.history.Values(), m.totalKB, m.scroll, m.opts)
}

// Processes returns the processes from the latest cycle.
func (m Model) Processes() []ProcessSample {
	return m.procs
}

// Scroll returns the current scroll state.
func (m Model) Scroll() ScrollState {
	return m.scroll
}

// History returns the memory history buffer.
func (m Model) History() *MemoryHistory {
	return m.history
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// collect runs one full cycle. A cycle always runs to completion, so there
// is no deadline.
func (m *Model) collect() {
	m.applySnapshot(m.collector.Collect(context.Background()))
}

// applySnapshot runs one cycle's state transition: CPU deltas, the memory
// history push, and a scroll clamp against the new row count.
func (m *Model) applySnapshot(snap *Snapshot) {
	if snap == nil {
		return
	}

	m.procs = m.delta.Apply(snap)
	m.totalKB = snap.Memory.TotalKB
	m.history.Push(snap.Memory.UsedKB())
	m.scroll = m.scroll.Clamp(len(m.procs), m.opts.PageSize)
	m.lastUpdate = snap.CollectedAt
	m.collectErr = snap.Err

	m.log.Debug("cycle %d: %d processes, %d kB used", m.delta.Cycles(), len(m.procs), snap.Memory.UsedKB())
}
