package cluster_test

import (
	"fmt"

	"github.com/katalvlaran/lvcluster/cluster"
	"github.com/katalvlaran/lvcluster/core"
)

// ExampleEngine_BoundedMerge merges the single closest pair of a 3-point line:
// sizes [2,1] → 2·1·1 = 2.
func ExampleEngine_BoundedMerge() {
	// 1. Three points on the z axis.
	pts := []core.Point{
		core.NewPoint(0, 0, 0),
		core.NewPoint(0, 0, 1),
		core.NewPoint(0, 0, 2),
	}

	// 2. Allow a single merge.
	e, err := cluster.New(pts, cluster.WithMergeCap(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Run Mode A.
	res, err := e.BoundedMerge()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("product=%d sizes=%v\n", res.Product, res.Sizes)
	// Output: product=2 sizes=[2 1]
}

// ExampleEngine_FullSpan finds the edge that first connects every point.
func ExampleEngine_FullSpan() {
	pts := []core.Point{
		core.NewPoint(1, 0, 0),
		core.NewPoint(2, 0, 0),
		core.NewPoint(4, 0, 0),
		core.NewPoint(7, 0, 0),
		core.NewPoint(20, 0, 0),
	}
	e, err := cluster.New(pts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := e.FullSpan()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("closing=%s value=%d\n", res.Closing, res.Value)
	// Output: closing=3-4 (7,0,0)-(20,0,0) d=13 value=140
}
