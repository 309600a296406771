package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/fibcompare/internal/harness"
)

// programRef is a shared reference to the tea.Program. bubbletea copies the
// model on every Update, so the sweep goroutine needs a pointer that
// survives copies.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference.
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send forwards msg to the program. It is a no-op before SetProgram.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// pauseGate holds the sweep between comparisons while paused. Waiting never
// happens inside a timed section, so pausing does not distort tick counts.
type pauseGate struct {
	mu     sync.Mutex
	resume chan struct{} // nil while running
}

// Pause makes subsequent Wait calls block.
func (g *pauseGate) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.resume == nil {
		g.resume = make(chan struct{})
	}
}

// Resume releases every waiter.
func (g *pauseGate) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.resume != nil {
		close(g.resume)
		g.resume = nil
	}
}

// Paused reports whether the gate is closed.
func (g *pauseGate) Paused() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.resume != nil
}

// Wait blocks while the gate is paused or until ctx ends.
func (g *pauseGate) Wait(ctx context.Context) error {
	g.mu.Lock()
	ch := g.resume
	g.mu.Unlock()
	if ch == nil {
		return nil
	}
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// sweepCmd runs the sweep on the command goroutine, streaming every row to
// the program, and reports the outcome as a SweepDoneMsg.
func sweepCmd(ctx context.Context, ref *programRef, gate *pauseGate, h *harness.Harness, r harness.SweepRange, gen uint64) tea.Cmd {
	return func() tea.Msg {
		err := h.Sweep(ctx, r, func(row harness.Row) error {
			ref.Send(SweepRowMsg{Row: row, Generation: gen})
			return gate.Wait(ctx)
		})
		return SweepDoneMsg{Err: err, Generation: gen}
	}
}
