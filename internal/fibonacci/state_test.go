package fibonacci

import (
	"math/big"
	"sync"
	"testing"
)

func TestReleaseState_NilSafe(t *testing.T) {
	t.Parallel()

	releaseState(nil)
}

func TestAcquireState_PreSizes(t *testing.T) {
	t.Parallel()

	s := acquireState(1_000_000)
	defer releaseState(s)

	want := estimateWords(1_000_000)
	for i, z := range s.all() {
		if z == nil {
			t.Fatalf("operand %d is nil", i)
		}
		if cap(z.Bits()) < want {
			t.Errorf("operand %d has capacity %d, want at least %d", i, cap(z.Bits()), want)
		}
	}
}

func TestReleaseState_DropsOversizedStates(t *testing.T) {
	t.Parallel()

	s := acquireState(0)
	s.A.Lsh(big.NewInt(1), MaxPooledBitLen+1)
	releaseState(s) // must not panic; the state is simply not pooled
}

func TestTakeB_DetachesResult(t *testing.T) {
	t.Parallel()

	s := acquireState(0)
	s.B.SetInt64(42)
	got := s.takeB()
	s.B.SetInt64(7)
	releaseState(s)

	if got.Int64() != 42 {
		t.Errorf("detached value = %s, want 42", got)
	}
}

func TestStatePool_ConcurrentAllocation(t *testing.T) {
	t.Parallel()

	const goroutines = 100
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			s := acquireState(2000)
			s.A.SetInt64(1)
			releaseState(s)
		}()
	}
	wg.Wait()
}

func TestCalcTotalWork(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits int
		want float64
	}{
		{0, 0},
		{1, 1},
		{2, 5},
		{3, 21},
	}
	for _, tt := range tests {
		if got := CalcTotalWork(tt.bits); got != tt.want {
			t.Errorf("CalcTotalWork(%d) = %v, want %v", tt.bits, got, tt.want)
		}
	}
}

func TestStepProgress_EndsAtOne(t *testing.T) {
	t.Parallel()

	var reports []float64
	p := newStepProgress(func(v float64) { reports = append(reports, v) }, 1<<20)
	for i := msb(1 << 20); i >= 0; i-- {
		p.step(i)
	}
	if len(reports) == 0 || reports[len(reports)-1] != 1 {
		t.Errorf("reports = %v, want a final 1", reports)
	}
}
