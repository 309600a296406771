package tui

import (
	"time"

	"github.com/agbru/fibcompare/internal/harness"
	"github.com/agbru/fibcompare/internal/metrics"
	"github.com/agbru/fibcompare/internal/sysmon"
)

// TickMsg drives periodic resource sampling.
type TickMsg time.Time

// SweepRowMsg carries one completed comparison.
type SweepRowMsg struct {
	Row        harness.Row
	Generation uint64
}

// SweepDoneMsg is sent when the sweep returns. Err is nil when every index
// matched.
type SweepDoneMsg struct {
	Err        error
	Generation uint64
}

// SysStatsMsg carries a sysmon reading.
type SysStatsMsg sysmon.Stats

// MemStatsMsg carries a runtime memory reading.
type MemStatsMsg metrics.MemorySnapshot

// ContextCancelledMsg is sent when the sweep context ends.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
