// Package curried is order-independent partial application for Go.
//
// Pick any subset of a function's parameters (positional ones, the
// receiver of a method expression, the variadic tail), in any order,
// to be supplied later; pre-bind others; and get back a chain that
// collects the deferred arguments one at a time before calling the
// wrapped function.
//
// Under the hood, everything is organized under these subpackages:
//
//	curry/        — the Builder, positions and the curried chain (Func)
//	target/       — what can be wrapped: Go funcs, method expressions, dynamic funcs
//	target/ctyfn/ — go-cty function.Function adapter
//	typed/        — compile-time typed helpers (Curry2, Flip, Partial1, …)
//
// Quick example:
//
//	f := func(a, b, c int) int { return a + b*c }
//	b := curry.Must(curry.Create(f))
//	g := curry.Must(curry.Must(b.WithBound(2, 10)).Takes(0)).Build()
//	res, _ := g.Call(5) // f(5, 0, 10)
//
//	go get github.com/katalvlaran/curried
package curried
