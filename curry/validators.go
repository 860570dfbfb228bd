// Package curry validation helpers. Each returns a sentinel wrapped with
// the calling method's name when its precondition does not hold.
package curry

// validateIndex ensures pos is a usable ordinary position.
// Returns "<Method>: got <pos>: curry: position must be >= 0" otherwise.
//
// Complexity: O(1).
func validateIndex(method string, pos int) error {
	if pos < 0 {
		return curryErrorf(method, ErrNegativePosition, "got %d", pos)
	}
	return nil
}

// validateUnclaimed ensures p is not already deferred on b.
//
// Complexity: O(k) for k deferred positions.
func validateUnclaimed(method string, b *Builder, p Position) error {
	if b.defers(p) {
		return curryErrorf(method, ErrDuplicatePosition, "%s already deferred", p)
	}
	return nil
}
