// Package typed holds compile-time typed currying helpers.
//
// They complement curry.Builder when the function's signature is known
// statically: no reflection, no runtime errors, no Undefined slots.
//
//	add := func(a, b int) int { return a + b }
//	inc := typed.Curry2(add)(1)
//	inc(41) // 42
package typed
