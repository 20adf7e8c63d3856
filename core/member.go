// Callable and Member: the invocable building blocks a Class is made of.
//
// A Callable wraps one Func together with its finality flag. A Member
// gives a Callable (or, for properties, up to three accessor Callables)
// a dispatch Kind. Members are shared by reference: listing the same
// *Member in several class declarations is allowed, and sealing it
// through any one of them seals it everywhere.

package core

import "sync/atomic"

// Callable pairs an implementation with a write-once finality flag.
//
// The zero value is a valid, unimplemented, non-final callable; invoking
// it yields ErrNotImplemented. Wrappers around the same Callable (added
// by marking helpers or decorators) stay transparent: the flag lives on
// the Callable itself, so sealing survives any amount of wrapping.
type Callable struct {
	fn    Func
	final atomic.Bool
}

// NewCallable wraps fn. A nil fn is allowed and produces a declaration
// stub: it can be named, sealed, and inherited, but invoking it returns
// ErrNotImplemented.
func NewCallable(fn Func) *Callable {
	return &Callable{fn: fn}
}

// MarkFinal seals the callable. Nil-safe, idempotent, never fails.
func (c *Callable) MarkFinal() {
	if c != nil {
		c.final.Store(true)
	}
}

// IsFinal reports whether the callable has been sealed. Nil-safe.
func (c *Callable) IsFinal() bool {
	return c != nil && c.final.Load()
}

// Implemented reports whether the callable carries an implementation.
func (c *Callable) Implemented() bool {
	return c != nil && c.fn != nil
}

// invoke runs the wrapped Func, surfacing ErrNotImplemented for stubs.
func (c *Callable) invoke(args ...any) (any, error) {
	if c == nil || c.fn == nil {
		return nil, ErrNotImplemented
	}

	return c.fn(args...), nil
}

// Member is one named slot of a class: an instance method, a static, a
// classmethod, or a property. Non-property members hold exactly one
// Callable; properties hold up to three accessor Callables, each sealed
// independently.
type Member struct {
	kind Kind

	// fn backs KindMethod, KindStatic, KindClassMethod. Always non-nil
	// for those kinds (constructors substitute a stub for nil input).
	fn *Callable

	// get/set/del back KindProperty. A nil slot means the accessor is
	// absent, which is distinct from present-but-unimplemented.
	get *Callable
	set *Callable
	del *Callable
}

// NewMethod declares an instance method backed by fn.
// The *Instance is prepended to the arguments on every invocation.
func NewMethod(fn Func) *Member { return MethodOf(NewCallable(fn)) }

// MethodOf declares an instance method backed by an existing Callable,
// preserving any finality mark it already carries. A nil c is replaced
// by an unimplemented stub.
func MethodOf(c *Callable) *Member {
	if c == nil {
		c = NewCallable(nil)
	}

	return &Member{kind: KindMethod, fn: c}
}

// NewStatic declares a static member backed by fn: a plain function
// living on the class, invoked without any receiver.
func NewStatic(fn Func) *Member { return StaticOf(NewCallable(fn)) }

// StaticOf declares a static member backed by an existing Callable.
// A nil c is replaced by an unimplemented stub.
func StaticOf(c *Callable) *Member {
	if c == nil {
		c = NewCallable(nil)
	}

	return &Member{kind: KindStatic, fn: c}
}

// NewClassMethod declares a classmethod backed by fn.
// The owning *Class is prepended to the arguments on every invocation.
func NewClassMethod(fn Func) *Member { return ClassMethodOf(NewCallable(fn)) }

// ClassMethodOf declares a classmethod backed by an existing Callable.
// A nil c is replaced by an unimplemented stub.
func ClassMethodOf(c *Callable) *Member {
	if c == nil {
		c = NewCallable(nil)
	}

	return &Member{kind: KindClassMethod, fn: c}
}

// NewProperty declares a property from plain accessor funcs. A nil func
// leaves that accessor absent: reads without a getter yield ErrNoGetter,
// writes without a setter ErrNoSetter, deletes without a deleter
// ErrNoDeleter.
func NewProperty(get, set, del Func) *Member {
	var g, s, d *Callable
	if get != nil {
		g = NewCallable(get)
	}
	if set != nil {
		s = NewCallable(set)
	}
	if del != nil {
		d = NewCallable(del)
	}

	return PropertyOf(g, s, d)
}

// PropertyOf declares a property from existing accessor Callables,
// preserving any finality marks they already carry. Nil slots stay
// absent. Unlike NewProperty, a present-but-unimplemented accessor can
// be expressed here by passing NewCallable(nil).
func PropertyOf(get, set, del *Callable) *Member {
	return &Member{kind: KindProperty, get: get, set: set, del: del}
}

// Kind returns the dispatch kind of the member. Nil-safe; a nil member
// reports the zero Kind.
func (m *Member) Kind() Kind {
	if m == nil {
		return 0
	}

	return m.kind
}

// Callable returns the backing callable of a non-property member,
// nil for properties and nil members.
func (m *Member) Callable() *Callable {
	if m == nil || m.kind == KindProperty {
		return nil
	}

	return m.fn
}

// Getter returns the getter slot of a property, nil otherwise.
func (m *Member) Getter() *Callable {
	if m == nil || m.kind != KindProperty {
		return nil
	}

	return m.get
}

// Setter returns the setter slot of a property, nil otherwise.
func (m *Member) Setter() *Callable {
	if m == nil || m.kind != KindProperty {
		return nil
	}

	return m.set
}

// Deleter returns the deleter slot of a property, nil otherwise.
func (m *Member) Deleter() *Callable {
	if m == nil || m.kind != KindProperty {
		return nil
	}

	return m.del
}

// MarkFinal seals the member. For properties every present accessor is
// sealed; absent slots stay absent and remain free for subclasses.
// Nil-safe, idempotent, never fails.
func (m *Member) MarkFinal() {
	if m == nil {
		return
	}
	if m.kind == KindProperty {
		m.get.MarkFinal()
		m.set.MarkFinal()
		m.del.MarkFinal()

		return
	}
	m.fn.MarkFinal()
}

// IsFinal reports whether the member is sealed: for properties, whether
// at least one accessor is sealed; for other kinds, whether the backing
// callable is. Nil-safe.
func (m *Member) IsFinal() bool {
	if m == nil {
		return false
	}
	if m.kind == KindProperty {
		return m.get.IsFinal() || m.set.IsFinal() || m.del.IsFinal()
	}

	return m.fn.IsFinal()
}

// call dispatches an invocation of the member by kind. recv may be nil
// for class-side calls; cls is the dynamic class performing the call.
func (m *Member) call(recv *Instance, cls *Class, args ...any) (any, error) {
	switch m.kind {
	case KindMethod:
		if recv == nil {
			return nil, ErrUnboundCall
		}
		bound := make([]any, 0, len(args)+1)
		bound = append(bound, recv)
		bound = append(bound, args...)

		return m.fn.invoke(bound...)
	case KindStatic:
		return m.fn.invoke(args...)
	case KindClassMethod:
		bound := make([]any, 0, len(args)+1)
		bound = append(bound, cls)
		bound = append(bound, args...)

		return m.fn.invoke(bound...)
	default:
		return nil, ErrNotCallable
	}
}
