package format

import (
	"strings"
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{500 * time.Nanosecond, "0µs"},
		{10 * time.Microsecond, "10µs"},
		{10 * time.Millisecond, "10ms"},
		{2 * time.Second, "2s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.expected {
			t.Errorf("FormatExecutionDuration(%v) = %s; want %s", tt.d, got, tt.expected)
		}
	}
}

func TestTicks(t *testing.T) {
	t.Parallel()

	if got := TicksToDuration(1_500_000, 1_000_000); got != 1500*time.Millisecond {
		t.Errorf("TicksToDuration = %v, want 1.5s", got)
	}
	if got := TicksToDuration(5, 0); got != 0 {
		t.Errorf("zero rate gave %v", got)
	}
	if got := FormatTicks(2500, 1_000_000); got != "2500 ticks (2ms)" {
		t.Errorf("FormatTicks = %q", got)
	}
	if got := FormatRatio(10, 32); got != "3.20x" {
		t.Errorf("FormatRatio = %q", got)
	}
	if got := FormatRatio(0, 32); got != "n/a" {
		t.Errorf("FormatRatio(0, ·) = %q", got)
	}
}

func TestFormatETA(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		eta      time.Duration
		expected string
	}{
		{0, "calculating..."},
		{-time.Second, "calculating..."},
		{500 * time.Millisecond, "< 1s"},
		{45 * time.Second, "45s"},
		{time.Minute, "1m"},
		{2*time.Minute + 30*time.Second, "2m30s"},
		{2 * time.Hour, "2h"},
		{3*time.Hour + 45*time.Minute, "3h45m"},
	}
	for _, tc := range testCases {
		if got := FormatETA(tc.eta); got != tc.expected {
			t.Errorf("FormatETA(%v) = %q, want %q", tc.eta, got, tc.expected)
		}
	}
}

func TestFormatNumberString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"1", "1"},
		{"123", "123"},
		{"1234", "1,234"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
		{"-1234", "-1,234"},
	}
	for _, tt := range tests {
		if got := FormatNumberString(tt.input); got != tt.expected {
			t.Errorf("FormatNumberString(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestTruncateDigits(t *testing.T) {
	t.Parallel()

	if got := TruncateDigits("1234567890", 3); got != "123...890" {
		t.Errorf("TruncateDigits = %q", got)
	}
	if got := TruncateDigits("123456", 3); got != "123456" {
		t.Errorf("short input changed: %q", got)
	}
}

func TestProgressBar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		progress float64
		length   int
		expected string
	}{
		{0.0, 10, "░░░░░░░░░░"},
		{0.5, 10, "█████░░░░░"},
		{1.0, 10, "██████████"},
		{1.2, 10, "██████████"},
		{-0.1, 10, "░░░░░░░░░░"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.progress, tt.length); got != tt.expected {
			t.Errorf("ProgressBar(%f, %d) = %s; want %s", tt.progress, tt.length, got, tt.expected)
		}
	}
	if got := FormatProgressBarWithETA(0.5, 30*time.Second, 4); !strings.Contains(got, "50.0%") || !strings.Contains(got, "ETA: 30s") {
		t.Errorf("FormatProgressBarWithETA = %q", got)
	}
}

func TestProgressState(t *testing.T) {
	t.Parallel()

	ps := NewProgressState(2)
	ps.Update(0, 0.5)
	ps.Update(1, 1.5) // clamped
	ps.Update(7, 0.9) // ignored
	if avg := ps.CalculateAverage(); avg != 0.75 {
		t.Errorf("average = %f, want 0.75", avg)
	}
	if NewProgressState(0).CalculateAverage() != 0 {
		t.Error("empty state should average to 0")
	}
}

func TestProgressWithETA(t *testing.T) {
	t.Parallel()

	p := NewProgressWithETA(2)
	if p.GetETA() != 0 {
		t.Error("ETA before any update should be 0")
	}
	avg, eta := p.UpdateWithETA(0, 0.25)
	if avg != 0.125 || eta < 0 {
		t.Errorf("UpdateWithETA = %v, %v", avg, eta)
	}

	p.progressRate = 0.1
	got := p.GetETA()
	if got < 8*time.Second || got > 9*time.Second {
		t.Errorf("ETA = %v, want about 8.75s", got)
	}

	p.progressRate = 1e-9
	if p.GetETA() != maxETA {
		t.Errorf("ETA should be capped at %v", maxETA)
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1 << 20, "1.0 MiB"},
		{5 << 30, "5.0 GiB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
