// Command lvcluster reads a file of comma-separated integer points and
// reports both clustering answers:
//
//	Part 1: product of the three largest components after K merges
//	Part 2: result of the edge that first connects every point
//
// Usage:
//
//	lvcluster run points.txt --cap 1000
//	lvcluster run points.txt.zst --config lvcluster.yaml --json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
