package final

import "github.com/katalvlaran/finality/core"

// Entity enumerates everything that can carry a finality mark.
type Entity interface {
	*core.Class | *core.Member | *core.Callable
}

// Final seals entity and returns it unchanged, decorator style. The
// seal is applied to the entity itself, so it is visible through every
// alias and wrapper sharing the same pointer. Nil entities are a no-op.
//
// Sealing a *core.Member of property kind seals every present accessor;
// seal a single *core.Callable accessor instead to leave the remaining
// slots overridable.
func Final[E Entity](entity E) E {
	switch v := any(entity).(type) {
	case *core.Class:
		v.MarkFinal()
	case *core.Member:
		v.MarkFinal()
	case *core.Callable:
		v.MarkFinal()
	}

	return entity
}

// IsFinal reports whether entity carries a finality mark. It accepts
// any value: classes, members, and callables answer their own state,
// everything else (including nil) is simply not final.
func IsFinal(entity any) bool {
	switch v := entity.(type) {
	case *core.Class:
		return v.IsFinal()
	case *core.Member:
		return v.IsFinal()
	case *core.Callable:
		return v.IsFinal()
	default:
		return false
	}
}

// FinalMethods returns the sorted member names sealed along the MRO of
// cls, its own seals included. Each name is decided by its closest
// definition, so an unsealed redefinition nearer to cls hides a sealed
// one farther away. Nil-safe: a nil class has no sealed names.
func FinalMethods(cls *core.Class) []string {
	return cls.FinalNames()
}
