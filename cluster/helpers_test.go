package cluster_test

import (
	"math/rand"

	"github.com/katalvlaran/lvcluster/core"
)

// junctionBoxes is a 20-point 3-D sample with well-known answers:
// 10 closest pairs (attempts) → 40, first full span → 216*117 = 25272.
var junctionBoxes = [][3]int64{
	{162, 817, 812}, {57, 618, 57}, {906, 360, 560}, {592, 479, 940},
	{352, 342, 300}, {466, 668, 158}, {542, 29, 236}, {431, 825, 988},
	{739, 650, 466}, {52, 470, 668}, {216, 146, 977}, {819, 987, 18},
	{117, 168, 530}, {805, 96, 715}, {346, 949, 466}, {970, 615, 88},
	{941, 993, 340}, {862, 61, 35}, {984, 92, 344}, {425, 690, 689},
}

// points3 converts coordinate triples to core points.
func points3(raw [][3]int64) []core.Point {
	pts := make([]core.Point, len(raw))
	for i, c := range raw {
		pts[i] = core.NewPoint(c[0], c[1], c[2])
	}

	return pts
}

// randomPoints returns n seeded 3-D points in [0, span).
func randomPoints(seed int64, n int, span int64) []core.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]core.Point, n)
	for i := range pts {
		pts[i] = core.NewPoint(r.Int63n(span), r.Int63n(span), r.Int63n(span))
	}

	return pts
}
