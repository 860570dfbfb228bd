// SPDX-License-Identifier: MIT
// Package: curried/curry
//
// errors.go — sentinel errors for the curry package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with %w at the failing method (see curryErrorf).
//   • Configuration errors are reported by the call that introduced them,
//     never deferred to Build, and never leave a partially updated Builder.
//   • Errors raised by the wrapped function are returned untouched.

package curry

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/curried/target"
)

// ErrNegativePosition indicates a positional index below zero.
// Classification: range error.
// Typical origins: Takes(-1), WithBound(-1, v).
var ErrNegativePosition = errors.New("curry: position must be >= 0")

// ErrDuplicatePosition indicates that a slot is already claimed: an index,
// the receiver or the rest tail deferred twice, or deferred after it was
// pre-bound (receiver, rest), or pre-bound after it was deferred.
var ErrDuplicatePosition = errors.New("curry: position already registered")

// ErrNotSaturated indicates Invoke on a chain that still awaits arguments.
var ErrNotSaturated = errors.New("curry: not all deferred arguments supplied")

// ErrOversaturated indicates Apply on a chain that awaits no more arguments.
var ErrOversaturated = errors.New("curry: no deferred argument left")

// ErrArity indicates Call with a number of arguments different from the
// number still awaited.
var ErrArity = errors.New("curry: wrong number of arguments")

// ErrArgType is target.ErrArgType, re-exported so callers of this package
// need not import target to branch on it.
var ErrArgType = target.ErrArgType

// curryErrorf returns an error of the form "<method>: <detail>: <sentinel>".
func curryErrorf(method string, sentinel error, format string, args ...interface{}) error {
	// Build the detail first so the sentinel stays the only %w operand.
	detail := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, detail, sentinel)
}
