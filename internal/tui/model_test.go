package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/fibcompare/internal/errors"
	"github.com/agbru/fibcompare/internal/harness"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(context.Background(), newTestHarness(nil), harness.SweepRange{From: 1000, To: 10000, Step: 1000})
	t.Cleanup(m.cancel)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return updated.(Model)
}

func TestModel_ViewBeforeSize(t *testing.T) {
	m := NewModel(context.Background(), newTestHarness(nil), harness.DefaultSweepRange())
	defer m.cancel()
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() = %q", got)
	}
}

func TestModel_RowsUpdateChart(t *testing.T) {
	m := newTestModel(t)
	for n := uint64(1000); n <= 3000; n += 1000 {
		updated, _ := m.Update(SweepRowMsg{Row: harness.Row{N: n, IntTicks: 10, FloatTicks: 40}})
		m = updated.(Model)
	}
	if m.chart.Completed() != 3 {
		t.Errorf("completed = %d, want 3", m.chart.Completed())
	}
	if m.chart.Fraction() != 0.3 {
		t.Errorf("fraction = %v, want 0.3", m.chart.Fraction())
	}

	view := m.View()
	for _, want := range []string{"fibcompare sweep", "3/10", "4.00x", "RUNNING"} {
		if !strings.Contains(view, want) {
			t.Errorf("view does not contain %q", want)
		}
	}
}

func TestModel_IgnoresStaleGeneration(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(SweepRowMsg{Row: harness.Row{N: 1000}, Generation: 99})
	m = updated.(Model)
	if m.chart.Completed() != 0 {
		t.Error("row from another generation should be ignored")
	}
	updated, _ = m.Update(SweepDoneMsg{Err: errors.New("old"), Generation: 99})
	if updated.(Model).done {
		t.Error("completion from another generation should be ignored")
	}
}

func TestModel_SweepDone(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStatus string
	}{
		{"success", nil, apperrors.ExitSuccess, "DONE"},
		{"mismatch", &apperrors.MismatchError{N: 5000, IntText: "1", FloatText: "2"}, apperrors.ExitErrorMismatch, "MISMATCH"},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled, "CANCELED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			updated, _ := m.Update(SweepDoneMsg{Err: tt.err})
			m = updated.(Model)
			if !m.done {
				t.Fatal("expected done")
			}
			if m.ExitCode() != tt.wantCode {
				t.Errorf("exit code = %d, want %d", m.ExitCode(), tt.wantCode)
			}
			if got := m.footer.Status(); got != tt.wantStatus {
				t.Errorf("status = %q, want %q", got, tt.wantStatus)
			}
			if _, cmd := m.Update(TickMsg{}); cmd != nil {
				t.Error("ticks should stop after completion")
			}
		})
	}
}

func TestModel_PauseAndReset(t *testing.T) {
	m := newTestModel(t)
	space := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}

	updated, _ := m.Update(space)
	m = updated.(Model)
	if !m.gate.Paused() || m.footer.Status() != "PAUSED" {
		t.Fatal("expected paused sweep")
	}
	updated, _ = m.Update(space)
	m = updated.(Model)
	if m.gate.Paused() {
		t.Fatal("expected resumed sweep")
	}

	updated, _ = m.Update(SweepRowMsg{Row: harness.Row{N: 1000}})
	m = updated.(Model)
	oldCtx := m.ctx

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(Model)
	if cmd == nil {
		t.Error("reset should restart the sweep")
	}
	if m.generation != 1 || m.chart.Completed() != 0 {
		t.Errorf("after reset: generation %d, completed %d", m.generation, m.chart.Completed())
	}
	if oldCtx.Err() == nil {
		t.Error("reset should cancel the previous sweep")
	}
}

func TestModel_QuitCancels(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if updated.(Model).ctx.Err() == nil {
		t.Error("quit should cancel the sweep context")
	}
}

func TestModel_StatsMessages(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(SysStatsMsg{CPUPercent: 12.5, MemPercent: 40, ProcRSS: 2 << 20})
	m = updated.(Model)
	updated, _ = m.Update(MemStatsMsg{HeapAlloc: 1 << 20, NumGC: 4})
	m = updated.(Model)

	header := m.header.View()
	for _, want := range []string{"12.5%", "RSS 2.0 MiB", "Heap 1.0 MiB", "GC 4"} {
		if !strings.Contains(header, want) {
			t.Errorf("header %q does not contain %q", header, want)
		}
	}
}
