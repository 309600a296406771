package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibcompare/internal/format"
)

// HeaderModel renders the top bar: title, elapsed time and resource usage.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	sys       SysStatsMsg
	mem       MemStatsMsg
	width     int
}

// NewHeaderModel creates a header whose timer starts now.
func NewHeaderModel() HeaderModel {
	return HeaderModel{startTime: time.Now()}
}

// SetDone freezes the elapsed timer.
func (h *HeaderModel) SetDone() {
	if h.endTime.IsZero() {
		h.endTime = time.Now()
	}
}

// Reset restarts the elapsed timer.
func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
	h.endTime = time.Time{}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) { h.width = w }

// UpdateSysStats stores the latest sysmon reading.
func (h *HeaderModel) UpdateSysStats(msg SysStatsMsg) { h.sys = msg }

// UpdateMemStats stores the latest runtime memory reading.
func (h *HeaderModel) UpdateMemStats(msg MemStatsMsg) { h.mem = msg }

// Elapsed returns the time since start, frozen once done.
func (h HeaderModel) Elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return time.Since(h.startTime)
}

// View renders the header.
func (h HeaderModel) View() string {
	pipe := dimStyle.Render(" | ")
	left := titleStyle.Render("fibcompare sweep") + pipe +
		accentStyle.Render("Elapsed: "+format.FormatExecutionDuration(h.Elapsed()))

	right := dimStyle.Render(fmt.Sprintf("CPU %5.1f%%  MEM %5.1f%%  RSS %s  Heap %s  GC %d",
		h.sys.CPUPercent, h.sys.MemPercent,
		format.FormatBytes(h.sys.ProcRSS), format.FormatBytes(h.mem.HeapAlloc), h.mem.NumGC))

	gap := max(h.width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return headerStyle.Width(h.width).Render(left + fmt.Sprintf("%*s", gap, "") + right)
}
