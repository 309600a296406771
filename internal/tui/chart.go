package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/agbru/fibcompare/internal/format"
	"github.com/agbru/fibcompare/internal/harness"
)

// chartLabelWidth is the space reserved left of each sparkline.
const chartLabelWidth = 7

// ChartModel plots the integer and float tick series against a shared scale
// and shows how far the sweep has progressed.
type ChartModel struct {
	intTicks   *Series
	floatTicks *Series
	bar        progress.Model
	completed  int
	total      int
	width      int
	height     int
}

// NewChartModel creates an empty chart for a sweep of total rows.
func NewChartModel(total int) ChartModel {
	return ChartModel{
		intTicks:   NewSeries(1),
		floatTicks: NewSeries(1),
		bar:        progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		total:      total,
	}
}

// SetSize updates dimensions and resizes the series to the plot width.
func (c *ChartModel) SetSize(w, h int) {
	c.width, c.height = w, h
	plot := c.plotWidth()
	c.intTicks.SetLimit(plot)
	c.floatTicks.SetLimit(plot)
	c.bar.Width = plot
}

func (c ChartModel) plotWidth() int {
	// border (2) + padding (2) + label + value column
	return max(c.width-4-chartLabelWidth-12, 1)
}

// AddRow records one sweep row.
func (c *ChartModel) AddRow(row harness.Row) {
	c.intTicks.Push(float64(row.IntTicks))
	c.floatTicks.Push(float64(row.FloatTicks))
	c.completed++
}

// Completed returns the number of rows recorded since the last reset.
func (c ChartModel) Completed() int { return c.completed }

// Fraction returns the completed share of the sweep.
func (c ChartModel) Fraction() float64 {
	if c.total <= 0 {
		return 0
	}
	return min(float64(c.completed)/float64(c.total), 1)
}

// Reset clears the series and the progress count.
func (c *ChartModel) Reset() {
	c.intTicks.Reset()
	c.floatTicks.Reset()
	c.completed = 0
}

// View renders the panel.
func (c ChartModel) View() string {
	ceiling := max(c.intTicks.Max(), c.floatTicks.Max())

	var b strings.Builder
	b.WriteString(titleStyle.Render("Timing (ticks per index)"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%-*s%s %s\n", chartLabelWidth, "int",
		intStyle.Render(RenderSparkline(c.intTicks.Values(), ceiling)),
		dimStyle.Render(fmt.Sprintf("%.0f", c.intTicks.Last())))
	fmt.Fprintf(&b, "%-*s%s %s\n", chartLabelWidth, "float",
		floatStyle.Render(RenderSparkline(c.floatTicks.Values(), ceiling)),
		dimStyle.Render(fmt.Sprintf("%.0f", c.floatTicks.Last())))
	fmt.Fprintf(&b, "%-*s%s\n", chartLabelWidth, "ratio",
		accentStyle.Render(format.FormatRatio(uint64(c.intTicks.Last()), uint64(c.floatTicks.Last()))))
	fmt.Fprintf(&b, "%-*s%s %s", chartLabelWidth, "sweep",
		c.bar.ViewAs(c.Fraction()),
		dimStyle.Render(fmt.Sprintf("%d/%d", c.completed, c.total)))

	style := panelStyle.Width(max(c.width-2, 0))
	if c.height > 2 {
		style = style.Height(c.height - 2)
	}
	return style.Render(b.String())
}
