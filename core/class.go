// NewClass: the single gate through which every class is built, and the
// place where finality is enforced. A declaration either passes every
// check and becomes a published Class, or fails atomically: no partial
// class, no hierarchy links, no observable side effects.

package core

import (
	"fmt"

	"github.com/katalvlaran/finality/mro"
)

// NewClass validates and constructs a class from its declaration.
//
// The declaration consists of a non-empty name, the direct bases in
// precedence order, the member table (may be nil), and options. The
// members map is copied; mutating it afterwards does not affect the
// class. Member values themselves are shared by reference.
//
// Enforcement happens here and only here:
//
//  1. structural validation (name, bases, member names);
//  2. no listed base may be, or inherit from, a sealed class;
//  3. the ancestry must linearize (C3) without contradictions;
//  4. no declared member may override a name sealed by its closest
//     ancestor definition, nor fill a sealed property accessor slot;
//  5. every ancestor's subclass hooks run, nearest ancestor first, and
//     may veto the construction.
//
// Only after all five gates pass is the class published to its bases'
// subclass registries. Finality violations are reported as
// *FinalityError (matchable via errors.Is(err, ErrFinality)); hook
// rejections and linearization failures keep their own causes.
//
// Complexity: O(A·M) over A ancestors and M members, plus the C3 merge.
func NewClass(name string, bases []*Class, members map[string]*Member, opts ...ClassOption) (*Class, error) {
	// 1. Validate the name.
	if name == "" {
		return nil, ErrEmptyClassName
	}

	// 2. Validate the base list: no nils, no duplicates.
	seen := make(map[*Class]struct{}, len(bases))
	for _, b := range bases {
		if b == nil {
			return nil, ErrNilClass
		}
		if _, dup := seen[b]; dup {
			return nil, ErrDuplicateBase
		}
		seen[b] = struct{}{}
	}

	// 3. Validate the member table.
	for mName, m := range members {
		if mName == "" {
			return nil, ErrEmptyMemberName
		}
		if m == nil {
			return nil, ErrNilMember
		}
	}

	// 4. Final-base check: walk each base's MRO so that classes sealed
	//    after their own construction are still caught here.
	for _, b := range bases {
		for _, anc := range b.mro {
			if anc.IsFinal() {
				violation := &FinalityError{Class: name, Base: anc.name}
				if anc != b {
					violation.Via = b.name
				}

				return nil, violation
			}
		}
	}

	// 5. Linearize the ancestry: C3 over the bases' MROs plus the local
	//    precedence order. Merge copies its inputs, so the bases' stored
	//    MRO slices are safe to pass as-is.
	seqs := make([][]*Class, 0, len(bases)+1)
	for _, b := range bases {
		seqs = append(seqs, b.mro)
	}
	if len(bases) > 0 {
		local := make([]*Class, len(bases))
		copy(local, bases)
		seqs = append(seqs, local)
	}
	merged, err := mro.Merge(seqs)
	if err != nil {
		return nil, fmt.Errorf("core: NewClass(%q): %w", name, err)
	}

	// 6. Assemble the candidate. Nothing below publishes it yet.
	c := &Class{
		name:    name,
		bases:   append(make([]*Class, 0, len(bases)), bases...),
		members: make(map[string]*Member, len(members)),
	}
	for mName, m := range members {
		c.members[mName] = m
	}
	c.mro = append(make([]*Class, 0, len(merged)+1), c)
	c.mro = append(c.mro, merged...)
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	// 7. Override check: each declared member against the sealed names
	//    visible from the ancestry. Checked in sorted name order so the
	//    reported violation is deterministic.
	reg := collectFinal(merged)
	for _, mName := range sortedNames(c.members) {
		ent, sealed := reg[mName]
		if !sealed {
			continue
		}
		if bad, slot := violates(ent, c.members[mName]); bad {
			return nil, &FinalityError{
				Class:    name,
				Member:   mName,
				Declared: ent.owner.name,
				Accessor: slot,
			}
		}
	}

	// 8. Ancestor hooks, nearest first. A hook error aborts construction
	//    with the cause preserved for errors.Is/As.
	for _, anc := range c.mro[1:] {
		for _, hook := range anc.hooks {
			if err = hook(c); err != nil {
				return nil, fmt.Errorf("core: subclass hook of %q rejected %q: %w", anc.name, name, err)
			}
		}
	}

	// 9. Publish: link the new class into each base's subclass registry.
	for _, b := range c.bases {
		b.addSubclass(c)
	}

	return c, nil
}

// MarkFinal seals the class: from this call on, no NewClass may list it
// (or any class inheriting from it) among the bases. Already existing
// subclasses are unaffected. Nil-safe, idempotent, never fails.
func (c *Class) MarkFinal() {
	if c != nil {
		c.final.Store(true)
	}
}

// IsFinal reports whether the class has been sealed. Nil-safe.
func (c *Class) IsFinal() bool {
	return c != nil && c.final.Load()
}
