package cluster

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvcluster/core"
	"go.uber.org/zap"
)

// FullSpan runs Mode B on a fresh component index.
//
// Steps:
//  1. N < 2: nothing to close; return SpanSentinel with Closed=false.
//  2. Consume edges in order; after each successful merge check whether the
//     merged component has N members.
//  3. On the first such merge stop and apply the ResultFunc to its endpoints.
//
// Errors: wrapped ResultFunc errors; ErrNoSpan if the edges run out first.
func (e *Engine) FullSpan() (SpanResult, error) {
	n := len(e.points)
	if n < 2 {
		return SpanResult{Value: SpanSentinel}, nil
	}

	r := e.newRun(methodFullSpan)
	for _, edge := range e.edges {
		if !r.step(edge) || r.set.Size(edge.I) != n {
			continue
		}

		value, err := e.cfg.result(edge.A, edge.B)
		if err != nil {
			return SpanResult{}, fmt.Errorf("%s: closing edge %s: %w", methodFullSpan, edge, err)
		}
		r.done(zap.Stringer("closing", edge), zap.Int64("value", value))

		return SpanResult{
			Value:     value,
			Closing:   edge,
			Closed:    true,
			Merges:    r.stats.merges,
			Processed: r.stats.processed,
		}, nil
	}

	return SpanResult{}, fmt.Errorf("%s: %d components left: %w", methodFullSpan, r.set.Count(), ErrNoSpan)
}

// ProductOfAxis returns a ResultFunc multiplying the axis-th coordinates of
// the two endpoints, failing with core.ErrOverflow instead of wrapping.
// A negative product is reported as 0, so the value is never negative.
// Panics on a negative axis.
func ProductOfAxis(axis int) ResultFunc {
	if axis < 0 {
		panic("cluster: ProductOfAxis(axis<0)")
	}
	return func(a, b core.Point) (int64, error) {
		if axis >= a.Dim() || axis >= b.Dim() {
			return 0, fmt.Errorf("axis %d of %s-%s: %w", axis, a, b, ErrAxisOutOfRange)
		}
		x, y := a.Coord(axis), b.Coord(axis)
		p, ok := mulInt64(x, y)
		if !ok {
			return 0, fmt.Errorf("%d*%d: %w", x, y, core.ErrOverflow)
		}
		if p < 0 {
			return 0, nil
		}

		return p, nil
	}
}

// mulInt64 returns x*y and whether it fits int64.
func mulInt64(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, false
	}
	p := x * y
	if p/y != x {
		return 0, false
	}

	return p, true
}
