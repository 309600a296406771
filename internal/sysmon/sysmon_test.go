package sysmon

import (
	"context"
	"testing"
)

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := NewSampler(context.Background()).Sample(context.Background())
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
	if s.ProcCPU < 0 {
		t.Errorf("ProcCPU negative: %f", s.ProcCPU)
	}
}

func TestSample_ReportsProcessAndSystem(t *testing.T) {
	s := NewSampler(context.Background()).Sample(context.Background())
	if s.MemPercent == 0 {
		t.Error("expected non-zero MemPercent on a running system")
	}
	if s.ProcRSS == 0 {
		t.Error("expected non-zero resident set for the test process")
	}
	if s.LogicalCPUs < 1 {
		t.Errorf("LogicalCPUs = %d, want >= 1", s.LogicalCPUs)
	}
}

func TestSample_NilProcess(t *testing.T) {
	s := (&Sampler{}).Sample(context.Background())
	if s.ProcRSS != 0 || s.ProcCPU != 0 {
		t.Errorf("expected zero process stats without a process, got %+v", s)
	}
}
