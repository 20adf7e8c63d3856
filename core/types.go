// Package core defines the central Class, Member, Callable, and Instance
// types, and provides thread-safe primitives for declaring, sealing, and
// instantiating class hierarchies.
//
// All mutable state is guarded internally (sync.RWMutex for subclass
// registries and attribute dicts, atomics for finality flags), so classes
// and instances can be shared across goroutines without external locking.
//
// This file declares Func, Kind, SubclassHook, ClassOption, the Class
// struct, sentinel errors, and the shared constants.
//
// Errors:
//
//	ErrFinality          - a finality constraint was violated.
//	ErrEmptyClassName    - class name is the empty string.
//	ErrNilClass          - nil *Class where a class is required.
//	ErrDuplicateBase     - the same base class listed twice.
//	ErrEmptyMemberName   - member declared under the empty name.
//	ErrNilMember         - nil *Member in a declaration map.
package core

import (
	"errors"
	"sync"
	"sync/atomic"
)

// InitName is the member name treated as the constructor by (*Class).New.
const InitName = "init"

// Sentinel errors for core class operations.
var (
	// ErrFinality is the root of every finality violation. Concrete
	// violations are reported as *FinalityError values; all of them
	// satisfy errors.Is(err, ErrFinality).
	ErrFinality = errors.New("core: finality violation")

	// ErrEmptyClassName indicates NewClass was given an empty name.
	ErrEmptyClassName = errors.New("core: class name is empty")

	// ErrNilClass indicates a nil *Class was passed where a class is required.
	ErrNilClass = errors.New("core: class is nil")

	// ErrDuplicateBase indicates the same base class appears twice in a base list.
	ErrDuplicateBase = errors.New("core: duplicate base class")

	// ErrEmptyMemberName indicates a member was declared under the empty name.
	ErrEmptyMemberName = errors.New("core: member name is empty")

	// ErrNilMember indicates a nil *Member appeared in a declaration map.
	ErrNilMember = errors.New("core: member is nil")

	// ErrNilInstance indicates a method was invoked on a nil *Instance.
	ErrNilInstance = errors.New("core: instance is nil")

	// ErrAttributeNotFound indicates a name resolved neither through the
	// MRO nor through the instance attribute dict.
	ErrAttributeNotFound = errors.New("core: attribute not found")

	// ErrNotCallable indicates Call was used on an attribute that cannot
	// be invoked (a property, or a stored non-function value).
	ErrNotCallable = errors.New("core: attribute is not callable")

	// ErrUnboundCall indicates an instance method was invoked through a
	// class rather than through an instance.
	ErrUnboundCall = errors.New("core: instance method requires an instance")

	// ErrNotImplemented indicates a declared callable carries no
	// implementation (a schema stub) and was invoked anyway.
	ErrNotImplemented = errors.New("core: callable has no implementation")

	// ErrNoGetter indicates a read through a property with no getter.
	ErrNoGetter = errors.New("core: property has no getter")

	// ErrNoSetter indicates a write through a property with no setter.
	ErrNoSetter = errors.New("core: property has no setter")

	// ErrNoDeleter indicates a delete through a property with no deleter.
	ErrNoDeleter = errors.New("core: property has no deleter")

	// ErrUnexpectedArgs indicates New received constructor arguments but
	// the class resolves no "init" member to receive them.
	ErrUnexpectedArgs = errors.New("core: constructor arguments without init member")
)

// Func is the uniform implementation shape of every method, static,
// classmethod, and property accessor.
//
// Bound invocations receive their receiver as the leading argument:
// the *Instance for methods and accessors, the *Class for classmethods.
// Statics receive the caller's arguments unchanged.
type Func func(args ...any) any

// Kind discriminates how a Member binds and dispatches.
type Kind uint8

const (
	// KindMethod is an instance method: the *Instance is prepended to args.
	KindMethod Kind = iota + 1

	// KindStatic is a plain function living on the class: no receiver.
	KindStatic

	// KindClassMethod binds the owning *Class as the leading argument.
	KindClassMethod

	// KindProperty is an accessor bundle (getter/setter/deleter) dispatched
	// through attribute access rather than through calls.
	KindProperty
)

// String returns the lowercase name of the kind, "unknown" otherwise.
func (k Kind) String() string {
	switch k {
	case KindMethod:
		return "method"
	case KindStatic:
		return "static"
	case KindClassMethod:
		return "classmethod"
	case KindProperty:
		return "property"
	default:
		return "unknown"
	}
}

// SubclassHook observes a freshly validated subclass before it is
// published. Returning a non-nil error aborts the construction; the
// rejected class is never linked into the hierarchy.
type SubclassHook func(sub *Class) error

// ClassOption configures behavior of a Class during construction.
type ClassOption func(c *Class)

// WithFinal seals the class being constructed: every later attempt to
// list it (or any class inheriting from it) as a base fails with a
// *FinalityError.
func WithFinal() ClassOption {
	return func(c *Class) { c.final.Store(true) }
}

// WithOnSubclass registers fn to run for each directly or transitively
// constructed subclass, after all finality checks pass and before the
// subclass is published. A nil fn has no effect. Hooks registered on
// one class run in registration order; across ancestors the nearest
// ancestor's hooks run first.
func WithOnSubclass(fn SubclassHook) ClassOption {
	return func(c *Class) {
		if fn != nil {
			c.hooks = append(c.hooks, fn)
		}
	}
}

// Class is an immutable-after-construction description of a type:
// its name, base list, member table, and linearized ancestry.
//
// The only mutable parts are the finality flag (write-once via
// MarkFinal) and the subclass registry (appended to by NewClass).
// Everything else is fixed the moment NewClass returns.
type Class struct {
	// Identity & declaration (frozen at construction)
	name    string             // class name, non-empty
	bases   []*Class           // direct bases in declaration order
	members map[string]*Member // own members, name → member
	mro     []*Class           // C3 linearization, self first

	// final marks this class as non-subclassable. Write-once.
	final atomic.Bool

	// hooks run for every new descendant (set via WithOnSubclass).
	hooks []SubclassHook

	// muSub guards subs
	muSub sync.RWMutex
	subs  []*Class // direct subclasses in creation order
}
