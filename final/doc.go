// Package final is the one-call marking facade: seal classes, members,
// or individual accessors in decorator style, and ask any class for its
// sealed surface.
//
// What:
//
//   - Final: generic pass-through marker. Final(x) seals x and returns
//     the same pointer, so it drops into declarations unchanged:
//
//     cls, err := core.NewClass("Cache", nil, map[string]*core.Member{
//     "flush": final.Final(core.NewMethod(flush)),
//     })
//
//   - IsFinal: kind-agnostic query over classes, members, callables.
//   - FinalMethods: the sorted sealed names visible from a class,
//     resolved closest-ancestor-first along its MRO.
//
// Why:
//   - Keep call sites declarative: sealing reads as part of the
//     declaration rather than as a separate mutation step
//   - One vocabulary for every sealable entity
//
// Marking through this package is nil-safe, idempotent, and never
// fails; enforcement stays where it belongs, inside core.NewClass.
//
// Functions:
//
//   - Final[E Entity](entity E) E
//   - IsFinal(entity any) bool
//   - FinalMethods(cls *core.Class) []string
package final
