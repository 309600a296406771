package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/fibcompare/internal/format"
	"github.com/agbru/fibcompare/internal/harness"
)

// RowsModel shows the most recent sweep rows, newest last.
type RowsModel struct {
	rows   []harness.Row
	width  int
	height int
}

// SetSize updates dimensions and drops rows that no longer fit.
func (m *RowsModel) SetSize(w, h int) {
	m.width, m.height = w, h
	m.trim()
}

// visible is the number of data rows that fit: border (2) + header (1).
func (m RowsModel) visible() int {
	return max(m.height-3, 1)
}

// Add appends a row.
func (m *RowsModel) Add(row harness.Row) {
	m.rows = append(m.rows, row)
	m.trim()
}

func (m *RowsModel) trim() {
	if over := len(m.rows) - m.visible(); over > 0 {
		m.rows = append(m.rows[:0], m.rows[over:]...)
	}
}

// Reset drops every row.
func (m *RowsModel) Reset() { m.rows = m.rows[:0] }

// View renders the table.
func (m RowsModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%10s %10s %10s %8s", "n", "int", "float", "ratio")))
	for _, r := range m.rows {
		fmt.Fprintf(&b, "\n%10d %s %s %8s", r.N,
			intStyle.Render(fmt.Sprintf("%10d", r.IntTicks)),
			floatStyle.Render(fmt.Sprintf("%10d", r.FloatTicks)),
			format.FormatRatio(uint64(r.IntTicks), uint64(r.FloatTicks)))
	}
	style := panelStyle.Width(max(m.width-2, 0))
	if m.height > 2 {
		style = style.Height(m.height - 2)
	}
	return style.Render(b.String())
}
