// Package mro implements C3 linearization — the method resolution order
// used to flatten a multiple-inheritance hierarchy into a single,
// deterministic precedence list.
//
// What:
//
//   - Merge: the C3 merge step. Repeatedly selects the first "good" head
//     (a candidate appearing in no tail of any sequence), appends it to
//     the output, and strips it from every sequence. Fails with
//     ErrInconsistent when no good head exists.
//   - Linearize: the full linearization. Computes
//     L(C) = C + merge(L(P1)…L(Pn), [P1…Pn]) over a parent-enumeration
//     callback, memoizing per node and detecting cycles via vertex
//     coloring (White, Gray, Black).
//
// Why:
//   - Resolve which ancestor supplies an inherited member when several
//     could ("closest ancestor wins")
//   - Guarantee that every class appears exactly once, before all of its
//     own ancestors, preserving local precedence order
//   - Reject hierarchies whose base orders contradict each other instead
//     of silently picking one
//
// Key Types & Constants:
//
//   - vertex states: White, Gray, Black (visitation markers)
//   - Merge/Linearize are generic over any comparable node type
//
// Complexity:
//
//   - Merge:     Time O(n²·k) for n nodes across k sequences, Memory O(n·k)
//   - Linearize: Time O(V·n²·k) worst case, Memory O(V·n) (memo table)
//
// Errors:
//
//   - ErrInconsistent  base orders contradict; no valid linearization
//   - ErrCycle         the hierarchy reaches itself through its parents
//   - ErrNilParents    Linearize called without a parent callback
//
// Functions:
//
//   - Merge[T comparable](seqs [][]T) ([]T, error)
//     perform one C3 merge over precomputed sequences
//   - Linearize[T comparable](root T, parents func(T) []T) ([]T, error)
//     compute the full linearization of root
package mro
