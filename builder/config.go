// SPDX-License-Identifier: MIT
// Package: lvcluster/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • tieBreak = TieBreakIndex  (Dist, I, J)

package builder

// builderConfig aggregates all knobs used by Pairs. Passed by value.
type builderConfig struct {
	// Secondary ordering key for equal distances.
	tieBreak TieBreak
}

// newBuilderConfig constructs a config with defaults and applies opts in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		tieBreak: TieBreakIndex,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
