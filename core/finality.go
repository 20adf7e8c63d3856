// Finality bookkeeping: the typed violation error, the sealed-name
// registry computed over a linearized ancestry, and the override check
// NewClass runs against every declared member.

package core

import (
	"fmt"
	"sort"
)

// Accessor slot labels used in FinalityError.Accessor.
const (
	accGetter  = "getter"
	accSetter  = "setter"
	accDeleter = "deleter"
)

// FinalityError reports the single kind of violation this package
// produces, in one of its two shapes:
//
//   - subclassing a final class: Class names the rejected declaration,
//     Base the sealed class, and Via the listed base through which Base
//     was reached when the two differ;
//   - overriding a final member: Class names the rejected declaration,
//     Member the sealed name, Declared the ancestor whose definition
//     seals it, and Accessor the specific property slot when only part
//     of a property is sealed.
//
// Every FinalityError unwraps to ErrFinality, so callers can match the
// whole family with errors.Is(err, ErrFinality).
type FinalityError struct {
	Class    string // class attempting the violation
	Base     string // sealed class being subclassed (subclass shape)
	Via      string // listed base through which Base was inherited, if indirect
	Member   string // sealed member name (override shape)
	Declared string // ancestor declaring the sealed member
	Accessor string // "getter", "setter" or "deleter" for partial property seals
}

// Error renders the violation with both sides identified: the sealed
// entity and the declaration that tried to break it.
func (e *FinalityError) Error() string {
	if e.Member != "" {
		if e.Accessor != "" {
			return fmt.Sprintf("core: class %q overrides final %s of property %q declared by %q",
				e.Class, e.Accessor, e.Member, e.Declared)
		}

		return fmt.Sprintf("core: class %q overrides final member %q declared by %q",
			e.Class, e.Member, e.Declared)
	}
	if e.Via != "" {
		return fmt.Sprintf("core: class %q subclasses final class %q (via base %q)",
			e.Class, e.Base, e.Via)
	}

	return fmt.Sprintf("core: class %q subclasses final class %q", e.Class, e.Base)
}

// Unwrap ties every FinalityError to the ErrFinality sentinel.
func (e *FinalityError) Unwrap() error { return ErrFinality }

// finalEntry records what exactly is sealed under one name, and by whom.
type finalEntry struct {
	owner *Class // ancestor whose definition decides the name
	whole bool   // entire name sealed (non-property member)
	get   bool   // property getter sealed
	set   bool   // property setter sealed
	del   bool   // property deleter sealed
}

// collectFinal walks a linearized ancestry nearest-first and returns the
// sealed names visible from its foot. The first class defining a name
// decides it ("closest ancestor wins"): a near unsealed redefinition
// shadows a far sealed one, and vice versa.
func collectFinal(ancestry []*Class) map[string]finalEntry {
	reg := make(map[string]finalEntry)
	resolved := make(map[string]struct{})
	for _, anc := range ancestry {
		for name, m := range anc.members {
			if _, done := resolved[name]; done {
				continue
			}
			resolved[name] = struct{}{}
			if ent, sealed := sealEntry(anc, m); sealed {
				reg[name] = ent
			}
		}
	}

	return reg
}

// sealEntry distills the finality state of one member definition.
// Returns false when nothing about the member is sealed.
func sealEntry(owner *Class, m *Member) (finalEntry, bool) {
	if m.kind == KindProperty {
		ent := finalEntry{
			owner: owner,
			get:   m.get.IsFinal(),
			set:   m.set.IsFinal(),
			del:   m.del.IsFinal(),
		}

		return ent, ent.get || ent.set || ent.del
	}
	if m.fn.IsFinal() {
		return finalEntry{owner: owner, whole: true}, true
	}

	return finalEntry{}, false
}

// violates decides whether defining m under a sealed name breaks the
// seal described by ent, and names the offended accessor slot when only
// part of a property is sealed.
//
// A wholly sealed name rejects any redefinition. A partially sealed
// property rejects a property that fills any sealed slot, while leaving
// the unsealed slots free; replacing it with a non-property clobbers the
// sealed accessors and is rejected outright.
func violates(ent finalEntry, m *Member) (bool, string) {
	if ent.whole {
		return true, ""
	}
	if m.kind == KindProperty {
		switch {
		case ent.get && m.get != nil:
			return true, accGetter
		case ent.set && m.set != nil:
			return true, accSetter
		case ent.del && m.del != nil:
			return true, accDeleter
		default:
			return false, ""
		}
	}
	// Non-property redefinition destroys every sealed accessor; report
	// the first one in getter/setter/deleter order.
	switch {
	case ent.get:
		return true, accGetter
	case ent.set:
		return true, accSetter
	default:
		return true, accDeleter
	}
}

// FinalNames returns the sorted names sealed along the MRO of c,
// including names c seals itself. The set is computed at call time, so
// marks applied after construction are visible immediately. A name
// counts as sealed when its closest definition seals it wholly or seals
// at least one property accessor.
//
// Nil-safe: a nil class has no sealed names.
// Complexity: O(M·log M) over the M distinct member names in the MRO.
func (c *Class) FinalNames() []string {
	if c == nil {
		return nil
	}
	reg := collectFinal(c.mro)
	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
