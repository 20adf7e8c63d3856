// Building: materializing declaration documents into live classes.
package schema

import (
	"fmt"

	"github.com/katalvlaran/finality/core"
)

// Build materializes every class declared by f, in declaration order,
// against cat: bases resolve through the catalog, and each built class
// is defined back into it before the next declaration is processed.
// Members are created as declaration stubs (no implementation); invoking
// one yields core.ErrNotImplemented until real code is attached.
//
// Build fails fast: the first declaration the hierarchy rejects aborts
// with its error, and classes built before it stay defined in cat.
// Finality violations satisfy errors.Is(err, core.ErrFinality).
func Build(cat *Catalog, f *File) ([]*core.Class, error) {
	// 1. Guards and structural validation.
	if cat == nil {
		return nil, ErrNilCatalog
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	// 2. Materialize in declaration order.
	out := make([]*core.Class, 0, len(f.Classes))
	for _, cd := range f.Classes {
		cls, err := buildClass(cat, cd)
		if err != nil {
			return nil, err
		}
		if err = cat.Define(cls); err != nil {
			return nil, err
		}
		out = append(out, cls)
	}

	return out, nil
}

// buildClass materializes one declaration: resolves bases, assembles
// stub members, and runs them through the class construction gate.
func buildClass(cat *Catalog, cd ClassDecl) (*core.Class, error) {
	// 1. Resolve every base by name.
	bases := make([]*core.Class, 0, len(cd.Bases))
	for _, bname := range cd.Bases {
		b, err := cat.Resolve(bname)
		if err != nil {
			return nil, fmt.Errorf("schema: class %q: base %q: %w", cd.Name, bname, ErrUnknownBase)
		}
		bases = append(bases, b)
	}
	// 2. Assemble stub members with their finality marks.
	var members map[string]*core.Member
	if len(cd.Members) > 0 {
		members = make(map[string]*core.Member, len(cd.Members))
		for _, md := range cd.Members {
			m, err := buildMember(md)
			if err != nil {
				return nil, fmt.Errorf("schema: class %q: member %q: %w", cd.Name, md.Name, err)
			}
			members[md.Name] = m
		}
	}
	// 3. Class-level seal travels as a construction option.
	var opts []core.ClassOption
	if cd.Final {
		opts = append(opts, core.WithFinal())
	}
	// 4. The gate enforces inheritance and finality rules.
	cls, err := core.NewClass(cd.Name, bases, members, opts...)
	if err != nil {
		return nil, fmt.Errorf("schema: class %q: %w", cd.Name, err)
	}

	return cls, nil
}

// buildMember materializes one member declaration as an unimplemented
// stub of the declared kind.
func buildMember(md MemberDecl) (*core.Member, error) {
	kind, err := parseKind(md.Kind)
	if err != nil {
		return nil, err
	}

	var m *core.Member
	switch kind {
	case core.KindStatic:
		m = core.StaticOf(core.NewCallable(nil))
	case core.KindClassMethod:
		m = core.ClassMethodOf(core.NewCallable(nil))
	case core.KindProperty:
		m = core.PropertyOf(accessor(md.Getter), accessor(md.Setter), accessor(md.Deleter))
	default:
		m = core.MethodOf(core.NewCallable(nil))
	}
	// Member-level final seals the whole member; for properties that
	// covers every accessor declared above.
	if md.Final {
		m.MarkFinal()
	}

	return m, nil
}

// accessor materializes one accessor slot. An absent declaration stays
// an absent slot; a present one becomes a stub, sealed when marked.
func accessor(ad *AccessorDecl) *core.Callable {
	if ad == nil {
		return nil
	}
	stub := core.NewCallable(nil)
	if ad.Final {
		stub.MarkFinal()
	}

	return stub
}
