// Instance: runtime objects of a Class, with Python-like attribute
// precedence. Properties are data descriptors, so they win over the
// attribute dict on every access path; plain members are non-data
// descriptors, so instance attributes shadow them.

package core

import "sync"

// Instance is one object of a Class. Its attribute dict is guarded by
// an RWMutex, so instances can be shared across goroutines; attribute
// reads take the read lock only.
type Instance struct {
	class *Class

	mu    sync.RWMutex
	attrs map[string]any
}

// New constructs an instance of c. When the MRO resolves a callable
// member named "init", it is invoked with the fresh instance and args,
// and its return value is discarded; an error from init (only stubs can
// produce one) aborts construction. Without an init member, args must
// be empty (ErrUnexpectedArgs otherwise).
func (c *Class) New(args ...any) (*Instance, error) {
	if c == nil {
		return nil, ErrNilClass
	}
	inst := &Instance{class: c, attrs: make(map[string]any)}
	if m, _, ok := c.Attr(InitName); ok && m.kind != KindProperty {
		if _, err := m.call(inst, c, args...); err != nil {
			return nil, err
		}

		return inst, nil
	}
	if len(args) > 0 {
		return nil, ErrUnexpectedArgs
	}

	return inst, nil
}

// Class returns the class the instance was constructed from.
func (i *Instance) Class() *Class {
	if i == nil {
		return nil
	}

	return i.class
}

// Get reads an attribute with descriptor precedence:
//
//  1. a property resolved along the MRO runs its getter (ErrNoGetter
//     when the getter slot is absent);
//  2. otherwise the instance attribute dict is consulted;
//  3. otherwise a resolved plain member is returned as a BoundMethod;
//  4. otherwise ErrAttributeNotFound.
func (i *Instance) Get(name string) (any, error) {
	if i == nil {
		return nil, ErrNilInstance
	}
	m, _, ok := i.class.Attr(name)
	if ok && m.kind == KindProperty {
		if m.get == nil {
			return nil, ErrNoGetter
		}

		return m.get.invoke(i)
	}
	i.mu.RLock()
	v, found := i.attrs[name]
	i.mu.RUnlock()
	if found {
		return v, nil
	}
	if ok {
		return BoundMethod{recv: i, member: m}, nil
	}

	return nil, ErrAttributeNotFound
}

// Set writes an attribute. A property resolved along the MRO runs its
// setter with (instance, value) and never touches the dict (ErrNoSetter
// when the setter slot is absent); any other name is stored in the
// instance attribute dict.
func (i *Instance) Set(name string, value any) error {
	if i == nil {
		return ErrNilInstance
	}
	m, _, ok := i.class.Attr(name)
	if ok && m.kind == KindProperty {
		if m.set == nil {
			return ErrNoSetter
		}
		_, err := m.set.invoke(i, value)

		return err
	}
	i.StoreAttr(name, value)

	return nil
}

// Del deletes an attribute. A property resolved along the MRO runs its
// deleter (ErrNoDeleter when the deleter slot is absent); any other
// name is removed from the instance attribute dict, failing with
// ErrAttributeNotFound when it was never set.
func (i *Instance) Del(name string) error {
	if i == nil {
		return ErrNilInstance
	}
	m, _, ok := i.class.Attr(name)
	if ok && m.kind == KindProperty {
		if m.del == nil {
			return ErrNoDeleter
		}
		_, err := m.del.invoke(i)

		return err
	}
	if !i.DeleteAttr(name) {
		return ErrAttributeNotFound
	}

	return nil
}

// Call resolves name with the same precedence as Get and invokes the
// result: a stored Func runs as-is, a plain member dispatches by kind
// with the instance (or its class) bound. Properties and stored
// non-function values yield ErrNotCallable.
func (i *Instance) Call(name string, args ...any) (any, error) {
	if i == nil {
		return nil, ErrNilInstance
	}
	m, _, ok := i.class.Attr(name)
	if ok && m.kind == KindProperty {
		return nil, ErrNotCallable
	}
	i.mu.RLock()
	v, found := i.attrs[name]
	i.mu.RUnlock()
	if found {
		fn, isFn := v.(Func)
		if !isFn {
			return nil, ErrNotCallable
		}

		return fn(args...), nil
	}
	if !ok {
		return nil, ErrAttributeNotFound
	}

	return m.call(i, i.class, args...)
}

// LoadAttr reads the raw attribute dict, bypassing all properties.
// Accessor implementations use it to reach their backing storage
// without recursing into themselves.
func (i *Instance) LoadAttr(name string) (any, bool) {
	if i == nil {
		return nil, false
	}
	i.mu.RLock()
	v, ok := i.attrs[name]
	i.mu.RUnlock()

	return v, ok
}

// StoreAttr writes the raw attribute dict, bypassing all properties.
func (i *Instance) StoreAttr(name string, value any) {
	if i == nil {
		return
	}
	i.mu.Lock()
	if i.attrs == nil {
		i.attrs = make(map[string]any)
	}
	i.attrs[name] = value
	i.mu.Unlock()
}

// DeleteAttr removes name from the raw attribute dict and reports
// whether it was present. Bypasses all properties.
func (i *Instance) DeleteAttr(name string) bool {
	if i == nil {
		return false
	}
	i.mu.Lock()
	_, ok := i.attrs[name]
	delete(i.attrs, name)
	i.mu.Unlock()

	return ok
}

// BoundMethod couples a resolved plain member with the instance it was
// read from. It is what Get returns for method, static, and classmethod
// members, mirroring how reading a method in Python yields a bound
// callable rather than running it.
type BoundMethod struct {
	recv   *Instance
	member *Member
}

// Call invokes the bound member: methods receive the instance, class-
// methods the instance's class, statics the arguments unchanged.
func (b BoundMethod) Call(args ...any) (any, error) {
	if b.member == nil {
		return nil, ErrNotCallable
	}

	return b.member.call(b.recv, b.recv.Class(), args...)
}

// Kind exposes the dispatch kind of the underlying member.
func (b BoundMethod) Kind() Kind { return b.member.Kind() }
