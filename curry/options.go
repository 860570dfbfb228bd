// SPDX-License-Identifier: MIT
// Package: curried/curry
//
// options.go — functional options for Create and CreateMethod.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builder methods themselves never panic; they return sentinel errors.
//   • Later options override earlier ones.

package curry

import "log/slog"

// Option customizes a Builder at creation time.
type Option func(*config)

// WithNonRestParams sets the number of named, non-variadic parameters of
// the wrapped function, optional ones included. It is required when the
// declared count cannot tell optional parameters from a rest tail.
// Panics if n < 0.
func WithNonRestParams(n int) Option {
	if n < 0 {
		panic("curry: WithNonRestParams(n<0)")
	}
	return func(c *config) {
		c.nonRest = n
		c.nonRestSet = true
	}
}

// WithLogger routes the builder's debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("curry: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithName labels the builder in log records. Empty means "anonymous".
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}
