// Package finality is your in-memory toolkit for building class hierarchies
// that stay closed where their authors said "no further" — final classes,
// final methods and final property accessors, enforced at construction time.
//
// 🚀 What is finality?
//
//	A modern, thread-safe library that brings together:
//		• Core primitives: classes, members, instances, C3 linearization
//		• Marking: flag a class, a member or a single accessor as final
//		• Enforcement: subclass construction fails fast on any violation
//		• Introspection: ask any class which names are sealed along its MRO
//		• Hierarchy walks: BFS/DFS over live subclass trees with hooks
//		• Schema: declare hierarchies in YAML, materialize or audit them
//
// ✨ Why choose finality?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – violations surface as one typed error, never later
//   - Deterministic – sorted outputs, reproducible linearization order
//   - Extensible – add custom hooks (OnSubclass, OnVisit…) for custom logic
//
// Under the hood, everything is organized under five subpackages:
//
//	core/      — Class, Member, Callable, Instance & the enforcement engine
//	mro/       — generic C3 merge & linearization
//	final/     — one-call marking facade: Final, IsFinal, FinalMethods
//	hierarchy/ — BFS/DFS traversal over subclass graphs
//	schema/    — YAML declarations, catalogs, build & verify
//
// Quick ASCII example:
//
//	    Base(final f)
//	    │
//	    Child ──── Child2(override f ✗)
//
//	Child may exist; Child2 is rejected before it ever becomes a class.
//
// The finalvet command (cmd/finalvet) audits YAML schema files from the
// shell and reports every violation without materializing a hierarchy.
//
//	go get github.com/katalvlaran/finality
package finality
