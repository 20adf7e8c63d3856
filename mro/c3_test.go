package mro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/finality/mro"
)

// parentsOf builds a parents callback from a static adjacency table.
func parentsOf(table map[string][]string) func(string) []string {
	return func(n string) []string {
		return table[n]
	}
}

// TestMerge_Empty verifies that merging no sequences yields an empty order.
func TestMerge_Empty(t *testing.T) {
	out, err := mro.Merge[string](nil)
	assert.NoError(t, err)
	assert.Empty(t, out)
}

// TestMerge_SingleSequence checks that one sequence merges to itself.
func TestMerge_SingleSequence(t *testing.T) {
	out, err := mro.Merge([][]string{{"A", "B", "C"}})
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, out)
}

// TestMerge_SkipsEmptySequences ensures empty inner slices are ignored.
func TestMerge_SkipsEmptySequences(t *testing.T) {
	out, err := mro.Merge([][]string{{}, {"A"}, nil, {"B"}})
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, out)
}

// TestMerge_Diamond verifies the classic diamond merge:
// merge([A,O],[B,O],[A,B]) = [A,B,O].
func TestMerge_Diamond(t *testing.T) {
	out, err := mro.Merge([][]string{
		{"A", "O"},
		{"B", "O"},
		{"A", "B"},
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "O"}, out)
}

// TestMerge_Inconsistent ensures contradictory precedences surface
// as ErrInconsistent: [A,B] vs [B,A] admits no valid order.
func TestMerge_Inconsistent(t *testing.T) {
	out, err := mro.Merge([][]string{
		{"A", "B"},
		{"B", "A"},
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, mro.ErrInconsistent)
}

// TestMerge_DoesNotMutateInput verifies the caller's slices survive a merge.
func TestMerge_DoesNotMutateInput(t *testing.T) {
	first := []string{"A", "O"}
	second := []string{"B", "O"}
	local := []string{"A", "B"}

	_, err := mro.Merge([][]string{first, second, local})
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "O"}, first)
	assert.Equal(t, []string{"B", "O"}, second)
	assert.Equal(t, []string{"A", "B"}, local)
}

// TestLinearize_NilParents verifies the nil-callback guard.
func TestLinearize_NilParents(t *testing.T) {
	out, err := mro.Linearize[string]("A", nil)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, mro.ErrNilParents)
}

// TestLinearize_Leaf checks that a parentless node linearizes to itself.
func TestLinearize_Leaf(t *testing.T) {
	out, err := mro.Linearize("A", parentsOf(nil))
	assert.NoError(t, err)
	assert.Equal(t, []string{"A"}, out)
}

// TestLinearize_Chain verifies a single-inheritance chain C→B→A.
func TestLinearize_Chain(t *testing.T) {
	table := map[string][]string{
		"C": {"B"},
		"B": {"A"},
	}
	out, err := mro.Linearize("C", parentsOf(table))
	assert.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, out)
}

// TestLinearize_Diamond verifies the diamond O; A(O); B(O); C(A,B):
// the shared root appears exactly once, after both branches.
func TestLinearize_Diamond(t *testing.T) {
	table := map[string][]string{
		"A": {"O"},
		"B": {"O"},
		"C": {"A", "B"},
	}
	out, err := mro.Linearize("C", parentsOf(table))
	assert.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B", "O"}, out)
}

// TestLinearize_LocalPrecedence ensures the base list order decides
// ties: C(B,A) places B before A even though both are leaves.
func TestLinearize_LocalPrecedence(t *testing.T) {
	table := map[string][]string{
		"C": {"B", "A"},
	}
	out, err := mro.Linearize("C", parentsOf(table))
	assert.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, out)
}

// TestLinearize_TwoLevelLattice verifies the canonical two-level lattice:
// O; D(O), E(O), F(O); B(D,E), C(D,F); A(B,C) → [A B C D E F O].
func TestLinearize_TwoLevelLattice(t *testing.T) {
	table := map[string][]string{
		"D": {"O"},
		"E": {"O"},
		"F": {"O"},
		"B": {"D", "E"},
		"C": {"D", "F"},
		"A": {"B", "C"},
	}
	out, err := mro.Linearize("A", parentsOf(table))
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "O"}, out)
}

// TestLinearize_Inconsistent verifies that conflicting base orders
// X(A,B) vs Y(B,A) make Z(X,Y) unlinearizable.
func TestLinearize_Inconsistent(t *testing.T) {
	table := map[string][]string{
		"X": {"A", "B"},
		"Y": {"B", "A"},
		"Z": {"X", "Y"},
	}
	out, err := mro.Linearize("Z", parentsOf(table))
	assert.Nil(t, out)
	assert.ErrorIs(t, err, mro.ErrInconsistent)
}

// TestLinearize_SelfCycle ensures a node listing itself as parent fails.
func TestLinearize_SelfCycle(t *testing.T) {
	table := map[string][]string{
		"A": {"A"},
	}
	out, err := mro.Linearize("A", parentsOf(table))
	assert.Nil(t, out)
	assert.ErrorIs(t, err, mro.ErrCycle)
}

// TestLinearize_IndirectCycle ensures A→B→C→A is rejected.
func TestLinearize_IndirectCycle(t *testing.T) {
	table := map[string][]string{
		"A": {"B"},
		"B": {"C"},
		"C": {"A"},
	}
	out, err := mro.Linearize("A", parentsOf(table))
	assert.Nil(t, out)
	assert.ErrorIs(t, err, mro.ErrCycle)
}

// TestLinearize_Deterministic runs the lattice twice and expects
// byte-identical orders.
func TestLinearize_Deterministic(t *testing.T) {
	table := map[string][]string{
		"D": {"O"},
		"E": {"O"},
		"F": {"O"},
		"B": {"D", "E"},
		"C": {"D", "F"},
		"A": {"B", "C"},
	}
	first, err := mro.Linearize("A", parentsOf(table))
	assert.NoError(t, err)
	second, err := mro.Linearize("A", parentsOf(table))
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestLinearize_IntNodes exercises the generic signature with a
// non-string node type.
func TestLinearize_IntNodes(t *testing.T) {
	table := map[int][]int{
		3: {2},
		2: {1},
	}
	out, err := mro.Linearize(3, func(n int) []int { return table[n] })
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, out)
}
