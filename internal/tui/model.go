package tui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/fibcompare/internal/errors"
	"github.com/agbru/fibcompare/internal/harness"
	"github.com/agbru/fibcompare/internal/metrics"
	"github.com/agbru/fibcompare/internal/sysmon"
)

// Layout constants for the dashboard.
const (
	headerHeight           = 1
	footerHeight           = 2
	minBodyHeight          = 7
	ChartPanelWidthPercent = 55
	sampleInterval         = 500 * time.Millisecond
)

// ExecutionState holds the sweep-related fields of a session. generation
// tags messages so those from a restarted sweep's predecessor are ignored.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	generation uint64
	done       bool
	exitCode   int
}

// LayoutManager holds terminal dimensions and derives panel sizes.
type LayoutManager struct {
	width  int
	height int
}

func (l LayoutManager) bodyHeight() int {
	return max(l.height-headerHeight-footerHeight, minBodyHeight)
}

func (l LayoutManager) chartWidth() int {
	return l.width * ChartPanelWidthPercent / 100
}

func (l LayoutManager) rowsWidth() int {
	return l.width - l.chartWidth()
}

// Model is the root bubbletea model of the sweep dashboard.
type Model struct {
	header HeaderModel
	chart  ChartModel
	rows   RowsModel
	footer FooterModel
	keymap KeyMap

	ExecutionState
	LayoutManager

	parentCtx context.Context
	harness   *harness.Harness
	sweep     harness.SweepRange
	ref       *programRef
	gate      *pauseGate
	sampler   *sysmon.Sampler
	memory    *metrics.MemoryCollector
}

// NewModel creates a dashboard that sweeps r with h.
func NewModel(parentCtx context.Context, h *harness.Harness, r harness.SweepRange) Model {
	ctx, cancel := context.WithCancel(parentCtx)
	keys := DefaultKeyMap()
	return Model{
		header: NewHeaderModel(),
		chart:  NewChartModel(r.Len()),
		footer: NewFooterModel(keys),
		keymap: keys,
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			exitCode: apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		harness:   h,
		sweep:     r,
		ref:       &programRef{},
		gate:      &pauseGate{},
		sampler:   sysmon.NewSampler(parentCtx),
		memory:    metrics.NewMemoryCollector(),
	}
}

// Init starts the sweep, the sampler tick and the context watcher.
func (m Model) Init() tea.Cmd {
	return m.startCmds()
}

func (m Model) startCmds() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		sweepCmd(m.ctx, m.ref, m.gate, m.harness, m.sweep, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case SweepRowMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.chart.AddRow(msg.Row)
		m.rows.Add(msg.Row)
		return m, nil

	case SweepDoneMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		m.exitCode = apperrors.HandleCalculationError(msg.Err, 0, io.Discard, nil)
		m.header.SetDone()
		m.footer.SetDone(msg.Err)
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tea.Batch(sampleMemStatsCmd(m.memory), sampleSysStatsCmd(m.ctx, m.sampler), tickCmd())

	case MemStatsMsg:
		m.header.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.header.UpdateSysStats(msg)
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		m.header.SetDone()
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		if m.done {
			return m, nil
		}
		if m.gate.Paused() {
			m.gate.Resume()
		} else {
			m.gate.Pause()
		}
		m.footer.SetPaused(m.gate.Paused())
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		m.cancel()
		m.gate.Resume()

		m.generation++
		m.ctx, m.cancel = context.WithCancel(m.parentCtx)

		m.header.Reset()
		m.chart.Reset()
		m.rows.Reset()
		m.footer.Reset()
		m.done = false
		m.exitCode = apperrors.ExitSuccess
		return m, m.startCmds()

	case key.Matches(msg, m.keymap.Help):
		m.footer.ToggleHelp()
		return m, nil
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.chart.View(), m.rows.View())
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.footer.View())
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.chart.SetSize(m.chartWidth(), m.bodyHeight())
	m.rows.SetSize(m.rowsWidth(), m.bodyHeight())
}

// ExitCode returns the exit code of the finished sweep.
func (m Model) ExitCode() int { return m.exitCode }

// Run is the entry point of tui mode. It runs the dashboard until the user
// quits or ctx ends, and returns the sweep's exit code.
func Run(ctx context.Context, h *harness.Harness, r harness.SweepRange) int {
	initTUIStyles()

	model := NewModel(ctx, h, r)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if m, ok := finalModel.(Model); ok {
		m.cancel()
		if !m.done {
			return apperrors.ExitErrorCanceled
		}
		return m.exitCode
	}
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

func tickCmd() tea.Cmd {
	return tea.Tick(sampleInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func sampleMemStatsCmd(mc *metrics.MemoryCollector) tea.Cmd {
	return func() tea.Msg {
		return MemStatsMsg(mc.Snapshot())
	}
}

func sampleSysStatsCmd(ctx context.Context, s *sysmon.Sampler) tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg(s.Sample(ctx))
	}
}

func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
