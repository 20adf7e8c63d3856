// Package core provides a thread-safe, in-memory class model with
// construction-time finality enforcement and a minimal, composable API.
//
// A Class is born through NewClass and only through NewClass: that single
// gate validates the declaration, linearizes the ancestry (C3), checks
// every finality constraint, runs subclass hooks, and publishes the class
// to its bases. A declaration that violates finality never becomes a
// class — there is no partially built, half-registered state to observe.
//
// The model supports a rich mix of behaviors:
//
//   - Multiple inheritance with deterministic C3 linearization (MRO)
//   - Final classes (WithFinal): no subclass may ever be constructed
//   - Final members: methods, statics, classmethods sealed as a whole
//   - Final property accessors: getter, setter and deleter sealed
//     individually, so a subclass may replace the unsealed slots
//   - Subclass hooks (WithOnSubclass): ancestors observe and may veto
//     every new descendant, nearest ancestor first
//   - Instances with Python-like attribute precedence: properties win
//     over the attribute dict, plain members lose to it
//
// Why use core?
//
//   - One typed error — every violation surfaces as *FinalityError,
//     matchable with errors.Is(err, ErrFinality).
//   - Deterministic iteration — MemberNames(), FinalNames(), Subclasses()
//     all return sorted results.
//   - Marking is nil-safe, idempotent and cannot fail; re-marking a
//     final entity is a no-op.
//   - Closest ancestor wins — when several ancestors define one name,
//     only the nearest definition along the MRO decides its finality.
//
// Configuration Options (ClassOption):
//
//	– WithFinal()
//	    Seals the class itself. Any later NewClass listing it (or any
//	    class inheriting from it) among the bases fails with *FinalityError.
//
//	– WithOnSubclass(fn SubclassHook)
//	    Registers a hook invoked for every directly or transitively
//	    constructed subclass, after all finality checks pass.
//	    Returning an error aborts that construction.
//
// Core Surface:
//
//	// Construction
//	NewClass(name, bases, members, opts...) (*Class, error)
//	(*Class).New(args ...any) (*Instance, error)   // runs "init" when present
//
//	// Marking & queries
//	(*Class).MarkFinal() / IsFinal()
//	(*Member).MarkFinal() / IsFinal()
//	(*Callable).MarkFinal() / IsFinal()
//	(*Class).FinalNames() []string                 // sealed names along the MRO
//
//	// Introspection
//	(*Class).Name() / Bases() / MRO() / Member(name) / MemberNames()
//	(*Class).Attr(name) (member, owner, ok)        // MRO-resolved lookup
//	(*Class).Subclasses() / IsSubclassOf(other)
//
//	// Dispatch
//	(*Class).Call(name, args...)                   // statics & classmethods
//	(*Instance).Get / Set / Del / Call
//	(*Instance).LoadAttr / StoreAttr / DeleteAttr  // raw dict, bypasses properties
//
// Errors:
//
//	ErrFinality          – wrapped by every *FinalityError
//	ErrEmptyClassName    – class name is the empty string
//	ErrNilClass          – nil *Class where a class is required
//	ErrDuplicateBase     – same base listed twice
//	ErrEmptyMemberName   – member declared under the empty name
//	ErrNilMember         – nil *Member in the declaration map
//	ErrNilInstance       – nil *Instance receiver
//	ErrAttributeNotFound – name resolves nowhere
//	ErrNotCallable       – Call on a non-callable attribute
//	ErrUnboundCall       – instance method invoked without an instance
//	ErrNotImplemented    – declared callable carries no implementation
//	ErrNoGetter / ErrNoSetter / ErrNoDeleter – property slot absent
//	ErrUnexpectedArgs    – constructor arguments but no "init" member
package core
