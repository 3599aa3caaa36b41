package cluster

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvcluster/builder"
	"github.com/katalvlaran/lvcluster/core"
	"github.com/katalvlaran/lvcluster/dsu"
	"go.uber.org/zap"
)

// Method tags used as error and log context.
const (
	methodNew          = "New"
	methodBoundedMerge = "BoundedMerge"
	methodFullSpan     = "FullSpan"
)

// Engine holds an immutable point set and its ordered edge list.
type Engine struct {
	points []core.Point
	edges  []core.Edge
	cfg    engineConfig
}

// New validates points and builds the ordered edge list once.
//
// Steps:
//  1. Resolve options over deterministic defaults.
//  2. Copy the point slice so later caller mutation cannot leak in.
//  3. Generate and sort all pairs with the configured tie-break.
//
// Errors: core.ErrEmptyPoint, core.ErrDimensionMismatch, core.ErrOverflow,
// builder.ErrTooManyPoints – all wrapped with "New: %w".
func New(points []core.Point, opts ...Option) (*Engine, error) {
	cfg := newEngineConfig(opts...)

	pts := make([]core.Point, len(points))
	copy(pts, points)

	edges, err := builder.Pairs(pts, builder.WithTieBreak(cfg.tieBreak))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	cfg.logger.Debug("engine ready",
		zap.Int("points", len(pts)),
		zap.Int("edges", len(edges)),
		zap.Stringer("tie_break", cfg.tieBreak),
		zap.Stringer("count_policy", cfg.policy),
		zap.Int("merge_cap", cfg.mergeCap),
	)

	return &Engine{points: pts, edges: edges, cfg: cfg}, nil
}

// Len returns the number of points.
func (e *Engine) Len() int { return len(e.points) }

// MergeCap returns the configured K.
func (e *Engine) MergeCap() int { return e.cfg.mergeCap }

// Edges returns a copy of the ordered edge list.
func (e *Engine) Edges() []core.Edge {
	out := make([]core.Edge, len(e.edges))
	copy(out, e.edges)

	return out
}

// run is the per-call state: a fresh component index plus counters.
type run struct {
	set   *dsu.DSU
	stats runStats
	log   *zap.Logger
}

// newRun allocates the state for one run and tags its log records.
func (e *Engine) newRun(mode string) *run {
	return &run{
		set: dsu.New(len(e.points)),
		log: e.cfg.logger.With(zap.String("mode", mode), zap.String("run", uuid.NewString())),
	}
}

// step consumes one edge: union its endpoints and update the counters.
// It returns whether the partition changed. Co-located endpoints leave the
// component index untouched.
func (r *run) step(edge core.Edge) bool {
	r.stats.processed++
	if !r.set.Union(edge.I, edge.J) {
		return false
	}
	r.stats.merges++

	if ce := r.log.Check(zap.DebugLevel, "merge"); ce != nil {
		ce.Write(
			zap.Int("i", edge.I),
			zap.Int("j", edge.J),
			zap.Uint64("dist", edge.Dist),
			zap.Int("merges", r.stats.merges),
			zap.Int("components", r.set.Count()),
		)
	}

	return true
}

// done logs the run summary.
func (r *run) done(fields ...zap.Field) {
	r.log.Info("run finished", append([]zap.Field{
		zap.Int("merges", r.stats.merges),
		zap.Int("processed", r.stats.processed),
		zap.Int("components", r.set.Count()),
	}, fields...)...)
}
