package cluster

import (
	"github.com/katalvlaran/lvcluster/builder"
	"go.uber.org/zap"
)

// Option configures an Engine. Option constructors panic on meaningless
// values; New and the runs themselves never panic on valid points.
type Option func(*engineConfig)

// engineConfig is resolved once in New.
type engineConfig struct {
	mergeCap int
	tieBreak builder.TieBreak
	policy   CountPolicy
	result   ResultFunc
	logger   *zap.Logger
}

// DefaultMergeCap is the BoundedMerge cap when WithMergeCap is not given.
const DefaultMergeCap = 0

// newEngineConfig applies opts over the defaults:
//
//	mergeCap = DefaultMergeCap, tieBreak = builder.TieBreakIndex,
//	policy = CountMerges, result = ProductOfAxis(0), logger = zap.NewNop().
func newEngineConfig(opts ...Option) engineConfig {
	cfg := engineConfig{
		mergeCap: DefaultMergeCap,
		tieBreak: builder.TieBreakIndex,
		policy:   CountMerges,
		result:   ProductOfAxis(0),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMergeCap sets K for BoundedMerge. K = 0 is valid (no merges).
// Panics on k < 0.
func WithMergeCap(k int) Option {
	if k < 0 {
		panic("cluster: WithMergeCap(k<0)")
	}
	return func(c *engineConfig) { c.mergeCap = k }
}

// WithTieBreak selects the secondary edge ordering key. Panics on an
// undeclared value.
func WithTieBreak(tb builder.TieBreak) Option {
	if !tb.Valid() {
		panic("cluster: WithTieBreak(" + tb.String() + ")")
	}
	return func(c *engineConfig) { c.tieBreak = tb }
}

// WithCountPolicy selects what counts toward the merge cap. Panics on an
// undeclared value.
func WithCountPolicy(p CountPolicy) Option {
	if !p.Valid() {
		panic("cluster: WithCountPolicy(" + p.String() + ")")
	}
	return func(c *engineConfig) { c.policy = p }
}

// WithResultFunc replaces the FullSpan result derivation. Panics on nil.
func WithResultFunc(fn ResultFunc) Option {
	if fn == nil {
		panic("cluster: WithResultFunc(nil)")
	}
	return func(c *engineConfig) { c.result = fn }
}

// WithLogger attaches a zap logger. Runs log one debug record per successful
// merge and one info record per finished run. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("cluster: WithLogger(nil)")
	}
	return func(c *engineConfig) { c.logger = l }
}
