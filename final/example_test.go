package final_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/finality/core"
	"github.com/katalvlaran/finality/final"
)

// ExampleFinal seals a method inline in its declaration; the subclass
// that tries to override it never comes into existence.
func ExampleFinal() {
	base, _ := core.NewClass("Hasher", nil, map[string]*core.Member{
		"digest": final.Final(core.NewMethod(func(args ...any) any { return "sha256" })),
	})

	_, err := core.NewClass("WeakHasher", []*core.Class{base}, map[string]*core.Member{
		"digest": core.NewMethod(func(args ...any) any { return "crc32" }),
	})

	fmt.Println("rejected:", errors.Is(err, core.ErrFinality))
	// Output:
	// rejected: true
}

// ExampleFinalMethods asks a subclass which names its ancestry sealed.
func ExampleFinalMethods() {
	base, _ := core.NewClass("Store", nil, map[string]*core.Member{
		"commit":   final.Final(core.NewMethod(func(args ...any) any { return nil })),
		"rollback": final.Final(core.NewMethod(func(args ...any) any { return nil })),
		"stats":    core.NewMethod(func(args ...any) any { return nil }),
	})
	sub, _ := core.NewClass("CachedStore", []*core.Class{base}, nil)

	fmt.Println(final.FinalMethods(sub))
	// Output:
	// [commit rollback]
}

// ExampleIsFinal queries the mark on different entity kinds.
func ExampleIsFinal() {
	m := core.NewMethod(func(args ...any) any { return nil })
	fmt.Println(final.IsFinal(m))
	final.Final(m)
	fmt.Println(final.IsFinal(m))
	// Output:
	// false
	// true
}
