package scorer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/suftree/builder"
	"github.com/katalvlaran/suftree/scorer"
	"github.com/katalvlaran/suftree/symbol"
	"github.com/katalvlaran/suftree/tree"
)

func TestScore_SeedIsLowerBound(t *testing.T) {
	st := tree.NewStore([]byte("x"))
	leafA := st.NewNode(0)
	leafB := st.NewNode(0)
	require.NoError(t, st.AddChild(st.Root, symbol.Symbol('x'), tree.Edge{From: 0, To: tree.OpenEnd, Child: leafA}))
	require.NoError(t, st.AddChild(st.Root, symbol.Terminator, tree.Edge{From: 1, To: tree.OpenEnd, Child: leafB}))

	maxScore, nodeCount := scorer.Score(st, 1)

	assert.Equal(t, uint64(1), maxScore) // seed wins: root's own score is 0*2=0
	assert.Equal(t, uint64(3), nodeCount)
	assert.Equal(t, uint64(1), st.Node(leafA).LeafCount)
	assert.Equal(t, uint64(2), st.Node(st.Root).LeafCount)
}

func TestScore_BranchingNodeBeatsSeed(t *testing.T) {
	s := []byte("aaaaaa")
	b, err := builder.NewBuilder(s)
	require.NoError(t, err)
	for i := 0; i <= len(s); i++ {
		require.NoError(t, b.InsertSymbol(symbol.ReadSymbol(s, i)))
	}

	maxScore, nodeCount := scorer.Score(b.Store(), len(s))
	assert.Equal(t, uint64(12), maxScore)
	assert.Equal(t, uint64(13), nodeCount)
}

func TestScore_SingleChildNeverScored(t *testing.T) {
	st := tree.NewStore([]byte("ab"))
	mid := st.NewNode(1)
	leaf := st.NewNode(0)
	require.NoError(t, st.AddChild(st.Root, symbol.Symbol('a'), tree.Edge{From: 0, To: 1, Child: mid}))
	require.NoError(t, st.AddChild(mid, symbol.Symbol('b'), tree.Edge{From: 1, To: tree.OpenEnd, Child: leaf}))

	maxScore, _ := scorer.Score(st, 0)
	// mid has exactly one child, so it is never a scoring candidate. The
	// seed is 0 here so that scoring mid would show up as
	// depth(mid)*leafCount(mid) = 1*1 = 1; the root (depth 0) scores 0.
	assert.Equal(t, uint64(0), maxScore)
}
