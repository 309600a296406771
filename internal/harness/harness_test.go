package harness

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/fibcompare/internal/errors"
	"github.com/agbru/fibcompare/internal/fibonacci"
	"github.com/agbru/fibcompare/internal/fibonacci/mocks"
)

// stepClock advances by a fixed amount on every sample.
type stepClock struct {
	now, step Ticks
}

func (c *stepClock) Now() Ticks {
	c.now += c.step
	return c.now
}

func (c *stepClock) TicksPerSecond() uint64 { return 1000 }

func realHarness(opts ...Option) *Harness {
	factory := fibonacci.NewDefaultFactory()
	return New(
		IntegerMethod(factory.MustGet("int"), fibonacci.Options{}),
		FloatMethod(fibonacci.NewBinet(), fibonacci.Options{}),
		opts...,
	)
}

func TestCompare_Match(t *testing.T) {
	t.Parallel()

	h := realHarness(WithClock(&stepClock{step: 5}))
	c, err := h.Compare(context.Background(), 100)
	require.NoError(t, err)

	assert.True(t, c.Match)
	assert.Equal(t, "354224848179261915075", c.IntText)
	assert.Equal(t, c.IntText, c.FloatText)
	assert.Equal(t, Ticks(5), c.IntTicks)
	assert.Equal(t, Ticks(5), c.FloatTicks)
	assert.Equal(t, uint64(1000), c.TicksPerSecond)
}

func TestCompare_SmallIndices(t *testing.T) {
	t.Parallel()

	h := realHarness()
	for n, want := range []string{"0", "1", "1", "2"} {
		c, err := h.Compare(context.Background(), uint64(n))
		require.NoError(t, err)
		assert.Equal(t, want, c.IntText, "n=%d", n)
		assert.True(t, c.Match, "n=%d", n)
	}
}

func TestCompare_MismatchFromUnderProvisionedFloat(t *testing.T) {
	t.Parallel()

	h := New(
		IntegerMethod(fibonacci.NewDefaultFactory().MustGet("int"), fibonacci.Options{}),
		FloatMethod(&fibonacci.Binet{Precision: fibonacci.FixedPrecision(64)}, fibonacci.Options{}),
	)
	c, err := h.Compare(context.Background(), 200)

	var mismatch *apperrors.MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, uint64(200), mismatch.N)
	assert.False(t, c.Match)
	assert.NotEqual(t, c.IntText, c.FloatText)
	assert.Equal(t, c.IntText, mismatch.IntText)
}

func TestCompare_IntegerFailureIsWrapped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	calc := mocks.NewMockCalculator(ctrl)
	boom := errors.New("boom")
	calc.EXPECT().Name().Return("mock").AnyTimes()
	calc.EXPECT().Calculate(gomock.Any(), gomock.Any(), gomock.Any(), uint64(7), gomock.Any()).Return(nil, boom)

	h := New(IntegerMethod(calc, fibonacci.Options{}), FloatMethod(fibonacci.NewBinet(), fibonacci.Options{}))
	_, err := h.Compare(context.Background(), 7)

	require.ErrorIs(t, err, boom)
	var calcErr apperrors.CalculationError
	require.ErrorAs(t, err, &calcErr)
	assert.Equal(t, "mock", calcErr.Engine)
}

func TestCompare_NilResultIsAnError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	calc := mocks.NewMockCalculator(ctrl)
	calc.EXPECT().Name().Return("mock").AnyTimes()
	calc.EXPECT().Calculate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	h := New(IntegerMethod(calc, fibonacci.Options{}), FloatMethod(fibonacci.NewBinet(), fibonacci.Options{}))
	_, err := h.Compare(context.Background(), 3)
	assert.Error(t, err)
}

func TestSweep_AscendingRowsWithoutMismatch(t *testing.T) {
	t.Parallel()

	h := realHarness()
	var rows []Row
	err := h.Sweep(context.Background(), SweepRange{From: 1000, To: 10000, Step: 1000}, func(r Row) error {
		rows = append(rows, r)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, rows, 10)
	for i, r := range rows {
		assert.Equal(t, uint64(1000*(i+1)), r.N)
	}
}

// TestSweep_HaltsAtFirstMismatch injects a wrong integer result at one index
// and checks that no later index is computed.
func TestSweep_HaltsAtFirstMismatch(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	calc := mocks.NewMockCalculator(ctrl)
	exact := fibonacci.NewDefaultFactory().MustGet("int")
	calc.EXPECT().Name().Return("faulty").AnyTimes()
	calc.EXPECT().Calculate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ch chan<- fibonacci.ProgressUpdate, idx int, n uint64, opts fibonacci.Options) (*big.Int, error) {
			v, err := exact.Calculate(ctx, ch, idx, n, opts)
			if err == nil && n == 30 {
				v.Add(v, big.NewInt(1))
			}
			return v, err
		}).Times(3)

	h := New(IntegerMethod(calc, fibonacci.Options{}), FloatMethod(fibonacci.NewBinet(), fibonacci.Options{}))
	var rows []Row
	err := h.Sweep(context.Background(), SweepRange{From: 10, To: 100, Step: 10}, func(r Row) error {
		rows = append(rows, r)
		return nil
	})

	var mismatch *apperrors.MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, uint64(30), mismatch.N)
	require.Len(t, rows, 2)
	assert.Equal(t, uint64(20), rows[1].N)
}

func TestSweep_EmitErrorStops(t *testing.T) {
	t.Parallel()

	h := realHarness()
	stop := errors.New("stop")
	calls := 0
	err := h.Sweep(context.Background(), SweepRange{From: 1, To: 100, Step: 1}, func(Row) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestSweep_RangeEdges(t *testing.T) {
	t.Parallel()

	h := realHarness()
	var got []uint64
	collect := func(r Row) error {
		got = append(got, r.N)
		return nil
	}

	require.NoError(t, h.Sweep(context.Background(), SweepRange{From: 5, To: 5, Step: 3}, collect))
	assert.Equal(t, []uint64{5}, got)

	got = nil
	require.NoError(t, h.Sweep(context.Background(), SweepRange{From: 1, To: 10, Step: 4}, collect))
	assert.Equal(t, []uint64{1, 5, 9}, got)

	top := ^uint64(0)
	got = nil
	r := SweepRange{From: top - 1, To: top, Step: 5}
	assert.Equal(t, 1, r.Len())

	var cfgErr apperrors.ConfigError
	assert.ErrorAs(t, h.Sweep(context.Background(), SweepRange{From: 1, To: 2}, collect), &cfgErr)
	assert.ErrorAs(t, h.Sweep(context.Background(), SweepRange{From: 3, To: 2, Step: 1}, collect), &cfgErr)
	assert.Empty(t, got)
}

func TestSweep_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := realHarness().Sweep(ctx, DefaultSweepRange(), func(Row) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteTSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, []Row{{N: 1000, IntTicks: 3, FloatTicks: 12}, {N: 2000, IntTicks: 4, FloatTicks: 30}}))
	assert.Equal(t, "n\tint\tfloat\n1000\t3\t12\n2000\t4\t30\n", buf.String())
}

func TestDefaultSweepRange(t *testing.T) {
	t.Parallel()

	r := DefaultSweepRange()
	assert.Equal(t, 1000, r.Len())
	assert.NoError(t, r.Validate())
}

func TestClocks(t *testing.T) {
	t.Parallel()

	for _, c := range []Clock{DefaultClock(), NewMonotonicClock()} {
		a := c.Now()
		sink := 0
		for i := range 1_000_000 {
			sink += i
		}
		_ = sink
		b := c.Now()
		assert.GreaterOrEqual(t, uint64(b), uint64(a))
		assert.Equal(t, uint64(1_000_000), c.TicksPerSecond())
	}
	assert.InDelta(t, 0.5, Ticks(500).Seconds(1000), 1e-12)
	assert.Zero(t, Ticks(500).Seconds(0))
}
