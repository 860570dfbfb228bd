// Package curry turns any function into a curried chain whose deferred
// parameters are chosen incrementally and in any order.
//
// A Builder records three things:
//
//   - which positions are deferred, in registration order: ordinary
//     indexes (Takes), the receiver (TakesThis) and the rest tail (TakesRest);
//   - which ordinary positions are pre-bound (WithBound);
//   - the pre-bound receiver and rest tail (WithBoundThis, WithBoundRest).
//
// Every configuration method returns a new Builder and leaves its receiver
// untouched, so one Builder may be the parent of many independent
// configurations, including from concurrent goroutines.
//
// Build folds the deferred positions into a chain of single-argument links:
//
//	f := func(a, b, c int) int { return a + b*c }
//	b := curry.Must(curry.Create(f))
//	b = curry.Must(b.Takes(1))
//	b = curry.Must(b.Takes(0))
//	g := b.Build()
//	h, _ := g.Apply(3)   // b = 3
//	res, _ := h.Call(2)  // a = 2, c unset: f(2, 3, 0)
//
// The n-th argument supplied to the chain lands in the n-th registered
// position. Once every deferred argument is supplied, Invoke calls the
// function; Call does both in one step; Curry exposes the chain as plain
// func(any) any closures.
//
// Argument count:
//
// When no rest tail is supplied, the positional list handed to the
// function is only as long as the highest set index + 1 (bound or
// supplied), and never longer than the non-rest parameter count. A
// count-sensitive target (see target.Dynamic) therefore observes how many
// arguments were really given. When a rest tail is supplied (deferred or
// bound with WithBoundRest), all non-rest slots are passed, unset ones as
// target.Undefined, and the tail follows them.
//
// Errors:
//
//	ErrNegativePosition  – Takes/WithBound with a negative index
//	ErrDuplicatePosition – a slot deferred twice, or deferred and bound
//	ErrArgType           – the target rejects a value for a slot
//	ErrNotSaturated      – Invoke before all deferred arguments are given
//	ErrOversaturated     – Apply after all deferred arguments are given
//	ErrArity             – Call with the wrong number of arguments
//
// Errors from the wrapped function are returned as they are; panics are
// not recovered.
//
// Options:
//
//	WithNonRestParams(n) – explicit non-rest parameter count
//	WithLogger(l)        – debug records for derivation and invocation
//	WithName(s)          – label used in those records
package curry
