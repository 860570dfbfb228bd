// File: func.go
// Role: the curried chain produced by Builder.Build and call assembly.
// Immutability:
//   - plan is a snapshot shared read-only by every link of one chain.
//   - state is copied on each Apply, so links obtained from the same parent
//     never observe each other's arguments.

package curry

import (
	"maps"
	"reflect"

	"github.com/katalvlaran/curried/target"
)

// plan is the Builder configuration captured by Build.
type plan struct {
	tgt          target.Target
	nonRest      int
	cfg          config
	deferred     []Position
	bound        map[int]any
	restDeferred bool
}

// state is the assembly accumulated along one chain.
type state struct {
	next    int // index into plan.deferred of the next awaited argument
	this    any
	hasThis bool
	args    map[int]any
	rest    []any
	hasRest bool
}

// Func is one link of a curried chain. Apply supplies the next deferred
// argument and returns the following link; once every deferred argument
// has been supplied, Invoke calls the wrapped function.
//
// The zero Func is not usable; obtain one from Builder.Build.
type Func struct {
	plan *plan
	st   state
}

// Arity returns the number of deferred positions of the whole chain.
func (f Func) Arity() int { return len(f.plan.deferred) }

// Remaining returns how many arguments this link still awaits.
func (f Func) Remaining() int { return len(f.plan.deferred) - f.st.next }

// Saturated reports whether every deferred argument has been supplied.
func (f Func) Saturated() bool { return f.Remaining() == 0 }

// Next returns the position the next Apply writes to. ok is false when
// the link is saturated.
func (f Func) Next() (p Position, ok bool) {
	if f.Saturated() {
		return Position{}, false
	}
	return f.plan.deferred[f.st.next], true
}

// Apply writes arg into the next deferred position and returns the link
// awaiting the one after it. f itself is unchanged. For the Rest position
// arg must be a slice (of any element type) or nil.
func (f Func) Apply(arg any) (Func, error) {
	p, ok := f.Next()
	if !ok {
		return Func{}, curryErrorf(MethodApply, ErrOversaturated, "arity %d", f.Arity())
	}
	if p.kind == target.SlotRest {
		tail, err := toTail(arg)
		if err != nil {
			return Func{}, curryErrorf(MethodApply, err, "%s", p)
		}
		arg = tail
	}
	if err := f.plan.tgt.Check(p.Slot(), arg); err != nil {
		return Func{}, curryErrorf(MethodApply, err, "%s", p)
	}

	st := f.st
	st.next++
	switch p.kind {
	case target.SlotReceiver:
		st.this, st.hasThis = arg, true
	case target.SlotRest:
		st.rest, st.hasRest = arg.([]any), true
	default:
		st.args = maps.Clone(f.st.args)
		st.args[p.index] = arg
	}

	return Func{plan: f.plan, st: st}, nil
}

// Invoke calls the wrapped function with the assembled receiver and
// arguments. With no deferred positions at all, the function is called
// without receiver and without arguments, bound ones included. Errors
// returned by the function are passed through unchanged.
func (f Func) Invoke() (target.Result, error) {
	if !f.Saturated() {
		return nil, curryErrorf(MethodInvoke, ErrNotSaturated, "%d of %d remaining", f.Remaining(), f.Arity())
	}
	var c target.Call
	if f.Arity() > 0 {
		c = f.plan.assemble(f.st)
	}
	f.plan.cfg.logger.Debug("curry.invoke",
		"name", f.plan.cfg.name,
		"args", len(c.Args),
		"rest", len(c.Rest),
		"receiver", c.HasReceiver,
		"receiver_slot", f.plan.tgt.HasReceiver(),
		"variadic", f.plan.tgt.Variadic())

	return f.plan.tgt.Invoke(c)
}

// Call supplies all remaining arguments at once, in registration order,
// and invokes the wrapped function.
func (f Func) Call(args ...any) (target.Result, error) {
	if len(args) != f.Remaining() {
		return nil, curryErrorf(MethodCall, ErrArity, "want %d, got %d", f.Remaining(), len(args))
	}
	var err error
	for _, a := range args {
		if f, err = f.Apply(a); err != nil {
			return nil, err
		}
	}

	return f.Invoke()
}

// Curry returns the chain as plain single-argument closures. Each call
// returns the next func(any) any, and the call that supplies the last
// argument returns the target.Result. A saturated link yields a
// func() any. Failures panic with the error value.
func (f Func) Curry() any {
	if f.Saturated() {
		return func() any {
			return mustInvoke(f)
		}
	}
	return f.unary()
}

func (f Func) unary() func(any) any {
	return func(arg any) any {
		next, err := f.Apply(arg)
		if err != nil {
			panic(err)
		}
		if next.Saturated() {
			return mustInvoke(next)
		}
		return next.unary()
	}
}

func mustInvoke(f Func) target.Result {
	res, err := f.Invoke()
	if err != nil {
		panic(err)
	}
	return res
}

// assemble folds bound and supplied values into a target.Call.
//
// Positional list: bound values are the base layer and supplied values
// overlay them. When no rest tail is supplied the list is only as long as
// the highest set index (bound or supplied) + 1, capped at nonRest, so
// count-sensitive functions see how many arguments were actually passed.
// When a tail is supplied, deferred or bound, all nonRest slots are passed
// so the tail never lands in a named parameter.
func (p *plan) assemble(st state) target.Call {
	n := p.nonRest
	if !p.restDeferred && !st.hasRest {
		n = min(max(setLen(st.args), setLen(p.bound)), p.nonRest)
	}
	args := make([]any, n)
	for i := range args {
		args[i] = target.Undefined
	}
	for i, v := range p.bound {
		if i < n {
			args[i] = v
		}
	}
	for i, v := range st.args {
		if i < n {
			args[i] = v
		}
	}

	return target.Call{
		Receiver:    st.this,
		HasReceiver: st.hasThis,
		Args:        args,
		Rest:        st.rest,
		HasRest:     st.hasRest,
	}
}

// setLen returns the highest key + 1, or 0 for an empty map.
func setLen(m map[int]any) int {
	n := 0
	for i := range m {
		if i+1 > n {
			n = i + 1
		}
	}
	return n
}

// toTail converts a slice of any element type into []any.
func toTail(v any) ([]any, error) {
	switch t := v.(type) {
	case nil:
		return []any{}, nil
	case []any:
		return append([]any{}, t...), nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, ErrArgType
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, nil
}
