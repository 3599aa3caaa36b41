// SPDX-License-Identifier: MIT
// Package builder_test verifies pair generation: counts, uniqueness, ordering,
// tie-break determinism, and validation errors.

package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcluster/builder"
	"github.com/katalvlaran/lvcluster/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomPoints returns n seeded 3-D points in [-span, span).
func randomPoints(seed int64, n int, span int64) []core.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]core.Point, n)
	for i := range pts {
		pts[i] = core.NewPoint(r.Int63n(2*span)-span, r.Int63n(2*span)-span, r.Int63n(2*span)-span)
	}

	return pts
}

// TestPairCount covers the degenerate sizes, small sizes, and overflow.
func TestPairCount(t *testing.T) {
	for n, want := range map[int]int{-3: 0, 0: 0, 1: 0, 2: 1, 3: 3, 5: 10, 1000: 499500} {
		got, err := builder.PairCount(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "n=%d", n)
	}

	_, err := builder.PairCount(math.MaxInt)
	assert.ErrorIs(t, err, builder.ErrTooManyPoints)
}

// TestPairs_Degenerate ensures N=0 and N=1 yield an empty, non-nil edge list.
func TestPairs_Degenerate(t *testing.T) {
	edges, err := builder.Pairs(nil)
	require.NoError(t, err)
	assert.NotNil(t, edges)
	assert.Empty(t, edges)

	edges, err = builder.Pairs([]core.Point{core.NewPoint(4, 5, 6)})
	require.NoError(t, err)
	assert.Empty(t, edges)
}

// TestPairs_EveryPairOnce checks N·(N−1)/2 edges, i<j, no duplicates, no self-pairs.
func TestPairs_EveryPairOnce(t *testing.T) {
	pts := randomPoints(1, 40, 1000)
	edges, err := builder.Pairs(pts)
	require.NoError(t, err)
	require.Len(t, edges, 40*39/2)

	seen := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		require.Less(t, e.I, e.J, "edges are stored with I<J")
		key := [2]int{e.I, e.J}
		require.False(t, seen[key], "pair %v emitted twice", key)
		seen[key] = true

		assert.True(t, e.A.Equal(pts[e.I]))
		assert.True(t, e.B.Equal(pts[e.J]))
		want, err := core.Distance(pts[e.I], pts[e.J])
		require.NoError(t, err)
		assert.Equal(t, want, e.Dist)
	}
}

// TestPairs_Ordering verifies nondecreasing distance and the documented
// secondary key for each tie-break.
func TestPairs_Ordering(t *testing.T) {
	// Small span forces many equal distances.
	pts := randomPoints(3, 30, 4)

	for _, tb := range []builder.TieBreak{builder.TieBreakIndex, builder.TieBreakSquared, builder.TieBreakCoordinates} {
		t.Run(tb.String(), func(t *testing.T) {
			edges, err := builder.Pairs(pts, builder.WithTieBreak(tb))
			require.NoError(t, err)

			for k := 1; k < len(edges); k++ {
				prev, cur := edges[k-1], edges[k]
				require.LessOrEqual(t, prev.Dist, cur.Dist, "distance must be nondecreasing at %d", k)

				switch tb {
				case builder.TieBreakSquared:
					require.LessOrEqual(t, prev.Squared, cur.Squared)
					if prev.Squared == cur.Squared {
						require.True(t, prev.I < cur.I || (prev.I == cur.I && prev.J < cur.J))
					}
				case builder.TieBreakCoordinates:
					if prev.Dist == cur.Dist {
						c := prev.A.Compare(cur.A)
						if c == 0 {
							c = prev.B.Compare(cur.B)
						}
						require.LessOrEqual(t, c, 0)
					}
				default:
					if prev.Dist == cur.Dist {
						require.True(t, prev.I < cur.I || (prev.I == cur.I && prev.J < cur.J))
					}
				}
			}
		})
	}
}

// TestPairs_Deterministic runs the generator twice and expects identical output.
func TestPairs_Deterministic(t *testing.T) {
	pts := randomPoints(9, 25, 3)
	first, err := builder.Pairs(pts, builder.WithTieBreak(builder.TieBreakCoordinates))
	require.NoError(t, err)
	second, err := builder.Pairs(pts, builder.WithTieBreak(builder.TieBreakCoordinates))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestPairs_IndexTieBreakPrefersInputOrder pins the default tie-break on a
// configuration where floor distances collide but squared distances differ.
func TestPairs_IndexTieBreakPrefersInputOrder(t *testing.T) {
	pts := []core.Point{
		core.NewPoint(0, 0, 0),
		core.NewPoint(1, 1, 1), // squared 3 from origin, floor 1
		core.NewPoint(0, 0, 1), // squared 1 from origin, floor 1
	}

	byIndex, err := builder.Pairs(pts)
	require.NoError(t, err)
	assert.Equal(t, [2]int{0, 1}, [2]int{byIndex[0].I, byIndex[0].J})

	bySquared, err := builder.Pairs(pts, builder.WithTieBreak(builder.TieBreakSquared))
	require.NoError(t, err)
	assert.Equal(t, [2]int{0, 2}, [2]int{bySquared[0].I, bySquared[0].J})
}

// TestPairs_Errors checks the validation sentinels.
func TestPairs_Errors(t *testing.T) {
	_, err := builder.Pairs([]core.Point{core.NewPoint(1, 2, 3), core.NewPoint(1, 2)})
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)

	_, err = builder.Pairs([]core.Point{{}})
	assert.ErrorIs(t, err, core.ErrEmptyPoint)

	_, err = builder.Pairs([]core.Point{core.NewPoint(math.MinInt64), core.NewPoint(math.MaxInt64)})
	assert.ErrorIs(t, err, core.ErrOverflow)
}

// TestTieBreak_ParseAndString round-trips the canonical names.
func TestTieBreak_ParseAndString(t *testing.T) {
	for _, tb := range []builder.TieBreak{builder.TieBreakIndex, builder.TieBreakSquared, builder.TieBreakCoordinates} {
		got, err := builder.ParseTieBreak(tb.String())
		require.NoError(t, err)
		assert.Equal(t, tb, got)
	}

	_, err := builder.ParseTieBreak("random")
	assert.ErrorIs(t, err, builder.ErrUnknownTieBreak)
	assert.Equal(t, "TieBreak(9)", builder.TieBreak(9).String())
}

// TestWithTieBreak_Panics ensures option constructors reject undeclared values.
func TestWithTieBreak_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithTieBreak(builder.TieBreak(-1)) })
	assert.NotPanics(t, func() { builder.WithTieBreak(builder.TieBreakSquared) })
}
