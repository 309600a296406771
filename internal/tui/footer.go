package tui

import (
	"github.com/charmbracelet/bubbles/help"

	apperrors "github.com/agbru/fibcompare/internal/errors"
)

// FooterModel shows the sweep status and the key help.
type FooterModel struct {
	help   help.Model
	keys   KeyMap
	paused bool
	done   bool
	err    error
}

// NewFooterModel creates a footer for keys.
func NewFooterModel(keys KeyMap) FooterModel {
	return FooterModel{help: help.New(), keys: keys}
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) { f.help.Width = w }

// SetPaused sets the paused indicator.
func (f *FooterModel) SetPaused(p bool) { f.paused = p }

// SetDone marks the sweep finished with err (nil on success).
func (f *FooterModel) SetDone(err error) {
	f.done = true
	f.err = err
}

// Reset returns to the running state.
func (f *FooterModel) Reset() {
	f.paused, f.done, f.err = false, false, nil
}

// ToggleHelp switches between short and full help.
func (f *FooterModel) ToggleHelp() { f.help.ShowAll = !f.help.ShowAll }

// Status returns the status label without styling.
func (f FooterModel) Status() string {
	switch {
	case f.done && apperrors.IsMismatch(f.err):
		return "MISMATCH"
	case f.done && apperrors.IsContextError(f.err):
		return "CANCELED"
	case f.done && f.err != nil:
		return "ERROR"
	case f.done:
		return "DONE"
	case f.paused:
		return "PAUSED"
	}
	return "RUNNING"
}

// View renders the footer.
func (f FooterModel) View() string {
	status := f.Status()
	var styled string
	switch status {
	case "RUNNING":
		styled = statusRunningStyle.Render(status)
	case "PAUSED":
		styled = statusPausedStyle.Render(status)
	case "DONE":
		styled = statusDoneStyle.Render(status)
	default:
		styled = statusErrorStyle.Render(status)
	}
	line := " " + styled + "  " + f.help.View(f.keys)
	if f.err != nil && status != "CANCELED" {
		line += "\n " + statusErrorStyle.Render(f.err.Error())
	}
	return line
}
