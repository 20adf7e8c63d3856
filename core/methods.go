// Package core: read-side surface of Class.
//
// This file provides identity, ancestry, member lookup, the subclass
// registry, and class-side dispatch. Everything here returns copies or
// sorted snapshots; nothing exposes internal storage. The only lock
// touched is muSub, guarding the subclass registry that NewClass
// appends to on publication.

package core

import "sort"

// Name returns the class name. Nil-safe; a nil class has no name.
func (c *Class) Name() string {
	if c == nil {
		return ""
	}

	return c.name
}

// Bases returns a copy of the direct bases in declaration order.
// Complexity: O(B)
func (c *Class) Bases() []*Class {
	if c == nil {
		return nil
	}
	out := make([]*Class, len(c.bases))
	copy(out, c.bases)

	return out
}

// MRO returns a copy of the C3 linearization, the class itself first.
// Complexity: O(A)
func (c *Class) MRO() []*Class {
	if c == nil {
		return nil
	}
	out := make([]*Class, len(c.mro))
	copy(out, c.mro)

	return out
}

// Member returns the member declared directly on c under name.
// Inherited members are not consulted; use Attr for MRO resolution.
// Complexity: O(1)
func (c *Class) Member(name string) (*Member, bool) {
	if c == nil {
		return nil, false
	}
	m, ok := c.members[name]

	return m, ok
}

// MemberNames returns the sorted names declared directly on c.
// Complexity: O(M·log M)
func (c *Class) MemberNames() []string {
	if c == nil {
		return nil
	}

	return sortedNames(c.members)
}

// Attr resolves name along the MRO and returns the visible member
// together with the class that declares it. The closest declaration
// wins; farther ones are shadowed.
// Complexity: O(A)
func (c *Class) Attr(name string) (*Member, *Class, bool) {
	if c == nil {
		return nil, nil, false
	}
	for _, anc := range c.mro {
		if m, ok := anc.members[name]; ok {
			return m, anc, true
		}
	}

	return nil, nil, false
}

// Subclasses returns the directly constructed subclasses of c, sorted
// by name (creation order breaks ties). The slice is a snapshot; later
// constructions do not mutate it.
// Complexity: O(S·log S)
func (c *Class) Subclasses() []*Class {
	if c == nil {
		return nil
	}
	// Snapshot under read lock, sort outside of it.
	c.muSub.RLock()
	out := make([]*Class, len(c.subs))
	copy(out, c.subs)
	c.muSub.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].name < out[j].name })

	return out
}

// IsSubclassOf reports whether other appears in c's MRO. Like Python's
// issubclass, a class counts as a subclass of itself.
// Complexity: O(A)
func (c *Class) IsSubclassOf(other *Class) bool {
	if c == nil || other == nil {
		return false
	}
	for _, anc := range c.mro {
		if anc == other {
			return true
		}
	}

	return false
}

// Call invokes a static or classmethod resolved along the MRO.
// Instance methods cannot be called through the class (ErrUnboundCall);
// properties are not callable (ErrNotCallable); unresolved names return
// ErrAttributeNotFound.
func (c *Class) Call(name string, args ...any) (any, error) {
	if c == nil {
		return nil, ErrNilClass
	}
	m, _, ok := c.Attr(name)
	if !ok {
		return nil, ErrAttributeNotFound
	}

	return m.call(nil, c, args...)
}

// addSubclass links sub into c's registry. Called by NewClass only,
// after every check has passed.
func (c *Class) addSubclass(sub *Class) {
	c.muSub.Lock()
	c.subs = append(c.subs, sub)
	c.muSub.Unlock()
}

// sortedNames returns the keys of a member table in sorted order.
func sortedNames(members map[string]*Member) []string {
	names := make([]string, 0, len(members))
	for name := range members {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
