package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/suftree/builder"
	"github.com/katalvlaran/suftree/symbol"
	"github.com/katalvlaran/suftree/tree"
)

func insertAll(t *testing.T, b *builder.Builder, s []byte) {
	t.Helper()
	for i := 0; i <= len(s); i++ {
		require.NoError(t, b.InsertSymbol(symbol.ReadSymbol(s, i)))
	}
}

func TestNewBuilder_RejectsOversizedInput(t *testing.T) {
	_, err := builder.NewBuilder([]byte("abc"), builder.WithMaxInputLength(3))
	assert.True(t, errors.Is(err, builder.ErrInputTooLarge))
}

func TestNewBuilder_DefaultBoundAccepted(t *testing.T) {
	b, err := builder.NewBuilder([]byte("abc"))
	require.NoError(t, err)
	require.NotNil(t, b)
}

func TestBuilder_SingleCharacter(t *testing.T) {
	s := []byte("a")
	b, err := builder.NewBuilder(s)
	require.NoError(t, err)
	insertAll(t, b, s)

	st := b.Store()
	// root, leaf for 'a', leaf for '$'
	assert.Equal(t, 3, st.Len())

	aEdge, ok := st.GetChild(st.Root, symbol.Symbol('a'))
	require.True(t, ok)
	assert.Equal(t, 0, aEdge.From)
	assert.Equal(t, tree.OpenEnd, aEdge.To)

	dollarEdge, ok := st.GetChild(st.Root, symbol.Terminator)
	require.True(t, ok)
	assert.Equal(t, 1, dollarEdge.From)
}

func TestBuilder_RepeatedCharacterSplitsEdges(t *testing.T) {
	s := []byte("aaa")
	b, err := builder.NewBuilder(s)
	require.NoError(t, err)
	insertAll(t, b, s)

	st := b.Store()

	// Every suffix of "aaa$" must be reachable from the root, ending at a
	// node with no outgoing edges (a leaf).
	suffixes := [][]symbol.Symbol{
		{'a', 'a', 'a', symbol.Terminator},
		{'a', 'a', symbol.Terminator},
		{'a', symbol.Terminator},
		{symbol.Terminator},
	}
	finalPos := len(s)

	for _, suf := range suffixes {
		node := st.Root
		i := 0
		for i < len(suf) {
			edge, ok := st.GetChild(node, suf[i])
			require.True(t, ok, "missing edge for suffix %v at offset %d", suf, i)

			edgeLen := edge.Length(finalPos)
			require.Greater(t, edgeLen, 0)

			for k := 0; k < edgeLen; k++ {
				require.Less(t, i+k, len(suf), "suffix ended mid-edge")
				require.Equal(t, suf[i+k], st.ReadSymbol(edge.From+k))
			}

			i += edgeLen
			node = edge.Child
		}

		assert.Empty(t, st.Node(node).Children, "suffix %v must end at a leaf", suf)
	}
}

func TestBuilder_SuffixLinkDepthInvariant(t *testing.T) {
	s := []byte("abcabcabc")
	b, err := builder.NewBuilder(s)
	require.NoError(t, err)
	insertAll(t, b, s)

	st := b.Store()
	for id := tree.NodeID(0); id < tree.NodeID(st.Len()); id++ {
		node := st.Node(id)
		if id == st.Root || node.SuffixLink == tree.NoNode {
			continue
		}
		linked := st.Node(node.SuffixLink)
		assert.Equal(t, node.Depth-1, linked.Depth, "node %d suffix-links to wrong depth", id)
	}
}
