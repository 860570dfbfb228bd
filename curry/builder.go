// File: builder.go
// Role: the Builder and its configuration methods.
// Immutability:
//   - Every configuration method validates, then clones, then applies one change.
//   - The receiver is never modified, so a Builder may be shared and derived
//     from concurrently without locks.
// AI-HINT (file):
//   - Deferral checks are cumulative: an index deferred by any ancestor is rejected.
//   - Pre-binding the same index twice is allowed; the later value wins.

package curry

import (
	"maps"
	"slices"

	"github.com/katalvlaran/curried/target"
)

// Builder accumulates which positions are deferred, which are pre-bound
// and what the receiver is. It is immutable once returned.
type Builder struct {
	tgt     target.Target
	nonRest int
	cfg     config

	deferred []Position
	bound    map[int]any

	boundThis    any
	hasBoundThis bool
	boundRest    []any
	hasBoundRest bool
}

// Create wraps fn, which is either a target.Target or any Go func (wrapped
// with target.FromFunc). The non-rest parameter count defaults to the
// target's declared count; override it with WithNonRestParams.
func Create(fn any, opts ...Option) (*Builder, error) {
	if t, ok := fn.(target.Target); ok {
		return newBuilder(t, opts...), nil
	}
	t, err := target.FromFunc(fn)
	if err != nil {
		return nil, curryErrorf(MethodCreate, err, "%T", fn)
	}

	return newBuilder(t, opts...), nil
}

// CreateMethod wraps a method expression such as (*T).M so that its first
// input becomes the receiver slot.
func CreateMethod(fn any, opts ...Option) (*Builder, error) {
	t, err := target.FromMethod(fn)
	if err != nil {
		return nil, curryErrorf(MethodCreate, err, "%T", fn)
	}

	return newBuilder(t, opts...), nil
}

// Must returns b or panics with err. It lets fluent chains be written in
// tests and package-level variables.
func Must(b *Builder, err error) *Builder {
	if err != nil {
		panic(err)
	}
	return b
}

func newBuilder(t target.Target, opts ...Option) *Builder {
	cfg := newConfig(opts...)
	n := t.NonRestParams()
	if cfg.nonRestSet {
		n = cfg.nonRest
	}

	return &Builder{tgt: t, nonRest: n, cfg: cfg, bound: map[int]any{}}
}

// NonRestParams returns the number of slots before the rest tail.
func (b *Builder) NonRestParams() int { return b.nonRest }

// Arity returns the number of deferred positions.
func (b *Builder) Arity() int { return len(b.deferred) }

// Positions returns the deferred positions in registration order.
func (b *Builder) Positions() []Position { return slices.Clone(b.deferred) }

// Target returns the wrapped callable.
func (b *Builder) Target() target.Target { return b.tgt }

// Takes defers the ordinary parameter at pos.
func (b *Builder) Takes(pos int) (*Builder, error) {
	if err := validateIndex(MethodTakes, pos); err != nil {
		return nil, err
	}
	p := Index(pos)
	if err := validateUnclaimed(MethodTakes, b, p); err != nil {
		return nil, err
	}

	return b.deferPosition(MethodTakes, p), nil
}

// TakesThis defers the receiver. It fails if the receiver is already
// deferred or was pre-bound with WithBoundThis.
func (b *Builder) TakesThis() (*Builder, error) {
	if err := validateUnclaimed(MethodTakesThis, b, Receiver); err != nil {
		return nil, err
	}
	if b.hasBoundThis {
		return nil, curryErrorf(MethodTakesThis, ErrDuplicatePosition, "%s already bound", Receiver)
	}

	return b.deferPosition(MethodTakesThis, Receiver), nil
}

// TakesRest defers the variadic tail. It fails if the tail is already
// deferred or was pre-bound with WithBoundRest.
func (b *Builder) TakesRest() (*Builder, error) {
	if err := validateUnclaimed(MethodTakesRest, b, Rest); err != nil {
		return nil, err
	}
	if b.hasBoundRest {
		return nil, curryErrorf(MethodTakesRest, ErrDuplicatePosition, "%s already bound", Rest)
	}

	return b.deferPosition(MethodTakesRest, Rest), nil
}

// WithBound fixes the ordinary parameter at pos to v. Binding a position
// again replaces the earlier value.
func (b *Builder) WithBound(pos int, v any) (*Builder, error) {
	if err := validateIndex(MethodWithBound, pos); err != nil {
		return nil, err
	}
	p := Index(pos)
	if err := validateUnclaimed(MethodWithBound, b, p); err != nil {
		return nil, err
	}
	if err := b.tgt.Check(p.Slot(), v); err != nil {
		return nil, curryErrorf(MethodWithBound, err, "%s", p)
	}

	return b.derive(MethodWithBound, p, func(nb *Builder) {
		nb.bound[pos] = v
	}), nil
}

// WithBoundThis fixes the receiver to v. Binding it again replaces the
// earlier value.
func (b *Builder) WithBoundThis(v any) (*Builder, error) {
	if err := validateUnclaimed(MethodWithBoundThis, b, Receiver); err != nil {
		return nil, err
	}
	if err := b.tgt.Check(Receiver.Slot(), v); err != nil {
		return nil, curryErrorf(MethodWithBoundThis, err, "%s", Receiver)
	}

	return b.derive(MethodWithBoundThis, Receiver, func(nb *Builder) {
		nb.boundThis, nb.hasBoundThis = v, true
	}), nil
}

// WithBoundRest fixes the variadic tail to vs. Binding it again replaces
// the earlier tail.
func (b *Builder) WithBoundRest(vs ...any) (*Builder, error) {
	if err := validateUnclaimed(MethodWithBoundRest, b, Rest); err != nil {
		return nil, err
	}
	tail := slices.Clone(vs)
	if tail == nil {
		tail = []any{}
	}
	if err := b.tgt.Check(Rest.Slot(), tail); err != nil {
		return nil, curryErrorf(MethodWithBoundRest, err, "%s", Rest)
	}

	return b.derive(MethodWithBoundRest, Rest, func(nb *Builder) {
		nb.boundRest, nb.hasBoundRest = tail, true
	}), nil
}

// Build returns the curried chain for the current configuration. Build
// does not modify b and may be called any number of times; each result is
// independent of the others and of later derivations from b.
func (b *Builder) Build() Func {
	p := &plan{
		tgt:      b.tgt,
		nonRest:  b.nonRest,
		cfg:      b.cfg,
		deferred: slices.Clone(b.deferred),
		bound:    maps.Clone(b.bound),
	}
	for _, d := range p.deferred {
		if d.kind == target.SlotRest {
			p.restDeferred = true
		}
	}
	st := state{
		this:    b.boundThis,
		hasThis: b.hasBoundThis,
		args:    map[int]any{},
		rest:    slices.Clone(b.boundRest),
		hasRest: b.hasBoundRest,
	}

	return Func{plan: p, st: st}
}

func (b *Builder) defers(p Position) bool {
	return slices.Contains(b.deferred, p)
}

func (b *Builder) deferPosition(method string, p Position) *Builder {
	return b.derive(method, p, func(nb *Builder) {
		nb.deferred = append(nb.deferred, p)
	})
}

// derive clones b and applies one change to the clone.
func (b *Builder) derive(method string, p Position, apply func(*Builder)) *Builder {
	nb := &Builder{
		tgt:          b.tgt,
		nonRest:      b.nonRest,
		cfg:          b.cfg,
		deferred:     slices.Clone(b.deferred),
		bound:        maps.Clone(b.bound),
		boundThis:    b.boundThis,
		hasBoundThis: b.hasBoundThis,
		boundRest:    slices.Clone(b.boundRest),
		hasBoundRest: b.hasBoundRest,
	}
	apply(nb)
	b.cfg.logger.Debug("curry.derive",
		"name", b.cfg.name,
		"method", method,
		"position", p.String(),
		"arity", len(nb.deferred))

	return nb
}
