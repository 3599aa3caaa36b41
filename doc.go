// Package lvcluster groups finite point sets in integer space by growing
// components along the complete distance graph, shortest edges first.
//
// What is lvcluster?
//
//	A small, deterministic engine that:
//		• builds every pair of points with its exact integer distance (builder)
//		• tracks the evolving partition in a disjoint-set forest (dsu)
//		• stops under one of two policies and reports a scalar (cluster)
//
// Layout:
//
//	core/     — Point, Edge, exact integer distance
//	builder/  — complete, distance-ordered edge list with a fixed tie-break
//	dsu/      — union-find with path halving, union-by-size, roaring-bitmap components
//	cluster/  — Engine: BoundedMerge (Mode A) and FullSpan (Mode B)
//	internal/ — records parsing/decompression and YAML configuration
//	cmd/      — lvcluster CLI reporting both answers
//
// Quick example:
//
//	e, _ := cluster.New(points, cluster.WithMergeCap(1000))
//	a, _ := e.BoundedMerge() // a.Product: three largest component sizes multiplied
//	b, _ := e.FullSpan()     // b.Value:   X(a)·X(b) of the edge that connects everything
//
// The edge list is quadratic in the number of points; that bound, not the
// union-find, limits practical input size.
package lvcluster
