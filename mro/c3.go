// Package mro provides the C3 merge and linearization primitives.
//
// Merge implements the selection loop of the C3 algorithm; Linearize
// drives it across a whole hierarchy through a parents callback,
// memoizing results and detecting cycles with vertex coloring.
//
// Complexity:
//
//   - Merge:     Time O(n²·k), Memory O(n·k)
//   - Linearize: Time O(V·n²·k), Memory O(V·n)
package mro

import "errors"

// Vertex visitation states for Linearize cycle detection.
const (
	White = iota // White: the node has not been linearized yet.
	Gray         // Gray: the node is on the recursion stack (in progress).
	Black        // Black: the node's linearization is memoized.
)

var (
	// ErrInconsistent is returned when the sequences passed to Merge admit
	// no valid C3 ordering: every remaining head also appears in the tail
	// of some sequence, so the declared precedences contradict each other.
	ErrInconsistent = errors.New("mro: inconsistent hierarchy")

	// ErrCycle is returned by Linearize when a node is reachable from
	// itself through the parents callback.
	ErrCycle = errors.New("mro: hierarchy contains a cycle")

	// ErrNilParents is returned by Linearize when the parents callback is nil.
	ErrNilParents = errors.New("mro: parents function is nil")
)

// Merge computes the C3 merge of seqs and returns the merged order.
//
// The classic selection loop runs until every sequence is exhausted:
// scan sequences left to right, take the first head that occurs in no
// tail of any sequence (a "good" head), append it to the output and
// remove it from all sequences. Scanning left to right keeps the result
// deterministic and preserves local precedence order.
//
// Empty sequences are skipped. Input slices are never mutated.
// Returns ErrInconsistent when no good head can be selected.
func Merge[T comparable](seqs [][]T) ([]T, error) {
	// 1. Copy the non-empty sequences so callers keep their slices intact.
	work := make([][]T, 0, len(seqs))
	var total int
	for _, s := range seqs {
		if len(s) == 0 {
			continue
		}
		cp := make([]T, len(s))
		copy(cp, s)
		work = append(work, cp)
		total += len(s)
	}

	// 2. Selection loop: pick good heads until nothing remains.
	out := make([]T, 0, total)
	for len(work) > 0 {
		// 2a. Find the first head not shadowed by any tail.
		var head T
		found := false
		for _, s := range work {
			if !inAnyTail(work, s[0]) {
				head = s[0]
				found = true

				break
			}
		}
		// 2b. No good head means the precedence constraints contradict.
		if !found {
			return nil, ErrInconsistent
		}
		// 2c. Emit the head and strip it from every sequence.
		out = append(out, head)
		next := work[:0]
		for _, s := range work {
			s = strip(s, head)
			if len(s) > 0 {
				next = append(next, s)
			}
		}
		work = next
	}

	return out, nil
}

// Linearize computes the full C3 linearization of root:
//
//	L(root) = root + merge(L(P1), …, L(Pn), [P1 … Pn])
//
// where parents(n) enumerates the direct parents of n in local
// precedence order. Results are memoized per node, so shared ancestors
// (diamonds) are linearized once. The returned slice always starts with
// root itself.
//
// Returns ErrNilParents when parents is nil, ErrCycle when root reaches
// itself through its parents, and ErrInconsistent when declared parent
// orders contradict each other.
func Linearize[T comparable](root T, parents func(T) []T) ([]T, error) {
	// 1. Validate the callback.
	if parents == nil {
		return nil, ErrNilParents
	}
	// 2. Delegate to a stateful walker (memo + coloring).
	lz := &linearizer[T]{
		parents: parents,
		memo:    make(map[T][]T),
		state:   make(map[T]int),
	}

	return lz.visit(root)
}

// linearizer encapsulates state for a Linearize traversal.
type linearizer[T comparable] struct {
	parents func(T) []T // direct-parent enumeration, local precedence order
	memo    map[T][]T   // node → its finished linearization
	state   map[T]int   // visitation state: 0=White,1=Gray,2=Black
}

// visit linearizes n, recursing into parents first.
func (l *linearizer[T]) visit(n T) ([]T, error) {
	// 1. Memoized (Black) nodes are done.
	if lin, ok := l.memo[n]; ok {
		return lin, nil
	}
	// 2. A Gray node on the stack means we looped back onto ourselves.
	if l.state[n] == Gray {
		return nil, ErrCycle
	}
	// 3. Mark as in-progress (Gray).
	l.state[n] = Gray

	// 4. Linearize every parent, collecting their sequences in order.
	ps := l.parents(n)
	seqs := make([][]T, 0, len(ps)+1)
	for _, p := range ps {
		pl, err := l.visit(p)
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, pl)
	}
	// 5. The parent list itself participates to preserve local precedence.
	if len(ps) > 0 {
		ps2 := make([]T, len(ps))
		copy(ps2, ps)
		seqs = append(seqs, ps2)
	}

	// 6. Merge and prepend n.
	merged, err := Merge(seqs)
	if err != nil {
		return nil, err
	}
	lin := make([]T, 0, len(merged)+1)
	lin = append(lin, n)
	lin = append(lin, merged...)

	// 7. Mark as finished (Black) and memoize.
	l.state[n] = Black
	l.memo[n] = lin

	return lin, nil
}

// inAnyTail reports whether x occurs past the head of any sequence.
func inAnyTail[T comparable](seqs [][]T, x T) bool {
	for _, s := range seqs {
		for _, v := range s[1:] {
			if v == x {
				return true
			}
		}
	}

	return false
}

// strip returns s without any occurrence of x, reusing s's backing array.
func strip[T comparable](s []T, x T) []T {
	out := s[:0]
	for _, v := range s {
		if v != x {
			out = append(out, v)
		}
	}

	return out
}
