// SPDX-License-Identifier: MIT
// Package: lvcluster/builder
//
// options.go — functional options for pair generation.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Pairs itself never panics on valid points.
//   • Later options override earlier ones.

package builder

// BuilderOption customizes pair generation by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithTieBreak selects the secondary ordering key for equal distances.
// Panics on an undeclared TieBreak value.
func WithTieBreak(tb TieBreak) BuilderOption {
	if !tb.Valid() {
		panic("builder: WithTieBreak(" + tb.String() + ")")
	}
	return func(c *builderConfig) {
		c.tieBreak = tb
	}
}
