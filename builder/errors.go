// SPDX-License-Identifier: MIT
// Package: lvcluster/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX); context is attached with %w.
//   • Pair generation never panics at runtime; option constructors may.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooManyPoints indicates that the number of unordered pairs N·(N−1)/2
// cannot be represented, so the edge list cannot be allocated.
var ErrTooManyPoints = errors.New("builder: too many points")

// ErrUnknownTieBreak indicates a tie-break name that ParseTieBreak does not know.
var ErrUnknownTieBreak = errors.New("builder: unknown tie-break")

// builderErrorf wraps err with the method context as "<method>: <msg>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
