package cluster

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcluster/core"
)

// Sentinel errors for clustering runs.
var (
	// ErrOverflow indicates the product of component sizes does not fit uint64.
	ErrOverflow = errors.New("cluster: size product overflow")

	// ErrAxisOutOfRange indicates ProductOfAxis was applied to points without that axis.
	ErrAxisOutOfRange = errors.New("cluster: axis out of range")

	// ErrNoSpan indicates the edge list was exhausted before one component
	// covered every point. It cannot happen on the complete edge list built by New.
	ErrNoSpan = errors.New("cluster: edges exhausted before full span")

	// ErrUnknownCountPolicy indicates a policy name ParseCountPolicy does not know.
	ErrUnknownCountPolicy = errors.New("cluster: unknown count policy")
)

// SpanSentinel is the FullSpan value reported when there is no closing edge
// (fewer than two points).
const SpanSentinel int64 = 0

// TopComponents is how many of the largest components BoundedMerge multiplies.
const TopComponents = 3

// CountPolicy decides which consumed edges count toward the merge cap.
type CountPolicy int

const (
	// CountMerges counts only edges whose union changed the partition.
	CountMerges CountPolicy = iota

	// CountAttempts counts every consumed edge.
	CountAttempts
)

const (
	countMergesName   = "merges"
	countAttemptsName = "attempts"
)

// String returns the canonical policy name.
func (p CountPolicy) String() string {
	switch p {
	case CountMerges:
		return countMergesName
	case CountAttempts:
		return countAttemptsName
	default:
		return fmt.Sprintf("CountPolicy(%d)", int(p))
	}
}

// Valid reports whether p is a declared policy.
func (p CountPolicy) Valid() bool {
	return p == CountMerges || p == CountAttempts
}

// ParseCountPolicy maps a canonical name back to its CountPolicy.
func ParseCountPolicy(name string) (CountPolicy, error) {
	switch name {
	case countMergesName:
		return CountMerges, nil
	case countAttemptsName:
		return CountAttempts, nil
	default:
		return 0, fmt.Errorf("ParseCountPolicy(%q): %w", name, ErrUnknownCountPolicy)
	}
}

// counted returns the number the cap is compared against.
func (p CountPolicy) counted(st runStats) int {
	if p == CountAttempts {
		return st.processed
	}

	return st.merges
}

// ResultFunc derives the FullSpan value from the closing edge's endpoints.
type ResultFunc func(a, b core.Point) (int64, error)

// BoundedResult is the outcome of a BoundedMerge run.
type BoundedResult struct {
	// Product is the product of the TopComponents largest sizes, padded with 1.
	Product uint64

	// Sizes lists every component size in ranked order.
	Sizes []int

	// Merges is the number of successful unions.
	Merges int

	// Processed is the number of edges consumed, including no-ops.
	Processed int
}

// SpanResult is the outcome of a FullSpan run.
type SpanResult struct {
	// Value is ResultFunc(Closing.A, Closing.B), or SpanSentinel when !Closed.
	Value int64

	// Closing is the edge whose merge produced the all-inclusive component.
	Closing core.Edge

	// Closed reports whether a closing edge exists (false for N < 2).
	Closed bool

	// Merges is the number of successful unions; N−1 when Closed.
	Merges int

	// Processed is the number of edges consumed, including no-ops.
	Processed int
}

// runStats tracks the merge loop of a single run.
type runStats struct {
	merges    int
	processed int
}
