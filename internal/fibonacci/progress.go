package fibonacci

import "math"

// ProgressUpdate is a data transfer object (DTO) that encapsulates the
// progress state of a calculation. It is sent over a channel from the
// calculator to the user interface.
type ProgressUpdate struct {
	// CalculatorIndex identifies the calculator among concurrently running ones.
	CalculatorIndex int
	// Value is the normalized progress, from 0.0 to 1.0.
	Value float64
}

// ProgressReporter is the callback engines use to report normalized progress.
type ProgressReporter func(progress float64)

// noopReporter discards progress.
func noopReporter(float64) {}

// CalcTotalWork estimates the total work of a doubling loop over numBits bits.
// Operand sizes double at every step, so with quadratic multiplication the
// work of step i is about 4^i and the total is the geometric sum (4^n - 1) / 3.
func CalcTotalWork(numBits int) float64 {
	if numBits <= 0 {
		return 0
	}
	return (math.Pow(4, float64(numBits)) - 1) / 3
}

// stepProgress tracks weighted progress across the bits of a doubling loop.
type stepProgress struct {
	reporter     ProgressReporter
	numBits      int
	totalWork    float64
	workDone     float64
	lastReported float64
}

func newStepProgress(reporter ProgressReporter, n uint64) *stepProgress {
	if reporter == nil {
		reporter = noopReporter
	}
	numBits := msb(n) + 1
	return &stepProgress{reporter: reporter, numBits: numBits, totalWork: CalcTotalWork(numBits)}
}

// step records completion of the iteration for bit i (counting down from
// numBits-1 to 0) and reports when the delta exceeds ProgressReportThreshold
// or at the loop boundaries.
func (p *stepProgress) step(i int) {
	if p.totalWork <= 0 {
		return
	}
	p.workDone += math.Pow(4, float64(p.numBits-1-i))
	current := p.workDone / p.totalWork
	if current-p.lastReported >= ProgressReportThreshold || i == 0 || i == p.numBits-1 {
		p.reporter(current)
		p.lastReported = current
	}
}

// linearProgress reports progress of O(n) loops.
func linearProgress(reporter ProgressReporter, done, total uint64) {
	if reporter == nil || total == 0 {
		return
	}
	reporter(float64(done) / float64(total))
}
