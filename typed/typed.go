package typed

// Curry2 turns f(a, b) into f(a)(b).
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Curry3 turns f(a, b, c) into f(a)(b)(c).
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return f(a, b, c)
			}
		}
	}
}

// Uncurry2 is the inverse of Curry2.
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return f(a)(b)
	}
}

// Flip swaps the two parameters of f.
func Flip[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R {
		return f(a, b)
	}
}

// Partial1 fixes the first parameter of f.
func Partial1[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return f(a, b)
	}
}

// PartialRight fixes the last parameter of f.
func PartialRight[A, B, R any](f func(A, B) R, b B) func(A) R {
	return func(a A) R {
		return f(a, b)
	}
}

// PartialRest fixes the leading parameter of a variadic f; the tail is
// supplied later.
func PartialRest[A, E, R any](f func(A, ...E) R, a A) func(...E) R {
	return func(rest ...E) R {
		return f(a, rest...)
	}
}
