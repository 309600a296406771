// Package sysmon samples CPU and memory usage for the sweep dashboard.
package sysmon

import (
	"context"
	"os"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Stats holds one reading of system-wide and process resource usage.
type Stats struct {
	CPUPercent  float64 // system-wide, 0.0 .. 100.0
	MemPercent  float64 // system-wide, 0.0 .. 100.0
	ProcCPU     float64 // this process, percent of one core
	ProcRSS     uint64  // resident set size of this process in bytes
	LogicalCPUs int
}

// Sampler reads Stats. CPU percentages are deltas since the previous call,
// so the first reading of a new Sampler may report zero.
type Sampler struct {
	proc *process.Process
}

// NewSampler creates a sampler bound to the current process. Process metrics
// are left at zero when the process cannot be inspected.
func NewSampler(ctx context.Context) *Sampler {
	p, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		p = nil
	}
	return &Sampler{proc: p}
}

// Sample collects a snapshot. Fields whose source fails keep their zero value.
func (s *Sampler) Sample(ctx context.Context) Stats {
	var st Stats
	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pcts) > 0 {
		st.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemoryWithContext(ctx); err == nil && vmem != nil {
		st.MemPercent = vmem.UsedPercent
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		st.LogicalCPUs = n
	}
	if s.proc != nil {
		if pct, err := s.proc.PercentWithContext(ctx, 0); err == nil {
			st.ProcCPU = pct
		}
		if info, err := s.proc.MemoryInfoWithContext(ctx); err == nil && info != nil {
			st.ProcRSS = info.RSS
		}
	}
	return st
}
