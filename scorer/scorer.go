package scorer

import "github.com/katalvlaran/suftree/tree"

// frame is one stack entry of the iterative post-order walk: the node
// being visited and the (materialized) list of its children not yet
// recursed into.
type frame struct {
	id       tree.NodeID
	children []tree.Edge
	next     int
}

func newFrame(st *tree.Store, id tree.NodeID) frame {
	node := st.Node(id)
	children := make([]tree.Edge, 0, len(node.Children))
	for _, edge := range node.Children {
		children = append(children, edge)
	}

	return frame{id: id, children: children}
}

// Score runs a post-order traversal of st starting at its root, populating
// each Node's LeafCount and returning the maximum depth*leafCount product
// over branching internal nodes, alongside the total node count. inputLen
// seeds the running maximum at |S|, since the whole string itself is
// always a candidate substring occurring once.
func Score(st *tree.Store, inputLen int) (maxScore uint64, nodeCount uint64) {
	maxScore = uint64(inputLen)
	nodeCount = uint64(st.Len())

	stack := []frame{newFrame(st, st.Root)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.next < len(top.children) {
			child := top.children[top.next].Child
			top.next++
			stack = append(stack, newFrame(st, child))

			continue
		}

		node := st.Node(top.id)
		childCount := len(node.Children)

		if childCount == 0 {
			node.LeafCount = 1
		} else {
			var sum uint64
			for _, edge := range node.Children {
				sum += st.Node(edge.Child).LeafCount
			}
			node.LeafCount = sum

			if childCount >= 2 {
				score := uint64(node.Depth) * sum
				if score > maxScore {
					maxScore = score
				}
			}
		}

		stack = stack[:len(stack)-1]
	}

	return maxScore, nodeCount
}
