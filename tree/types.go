package tree

import (
	"errors"

	"github.com/katalvlaran/suftree/symbol"
)

// Sentinel errors for the tree package.
//
// These are unreachable if the construction above this package is
// correct, and indicate a programmer error rather than a user error.
var (
	// ErrChildKeyConflict is returned by AddChild when parent already has
	// an outgoing edge keyed by the same first symbol.
	ErrChildKeyConflict = errors.New("tree: child key already present")

	// ErrNonPositiveEdgeLength is returned when an edge's resolved length
	// is not strictly positive, violating the store's edge invariant.
	ErrNonPositiveEdgeLength = errors.New("tree: edge length not positive")

	// ErrDanglingActiveEdge is returned by Normalize when the active
	// point references an edge that the store no longer has.
	ErrDanglingActiveEdge = errors.New("tree: active point references missing edge")
)

// NodeID is a dense, monotonically-assigned handle into a Store's arena.
type NodeID int

// NoNode is the placeholder for "no node" (e.g. a suffix link that has not
// yet been set). It is not the zero value of NodeID: NodeID(0) is the root.
const NoNode NodeID = -1

// OpenEnd is the sentinel Edge.To value meaning "the current position + 1."
// It must exceed the configured maximum input length; see
// builder.Options.MaxInputLength.
const OpenEnd = 1 << 30

// Edge is a labelled directed arc from a parent node to Child, encoded as
// the half-open interval [From, To) over positions of the extended input.
// To == OpenEnd marks an implicitly-growing leaf edge.
type Edge struct {
	From  int
	To    int
	Child NodeID
}

// Length returns the edge's current length, resolving OpenEnd against pos
// (the index of the symbol currently being processed).
func (e Edge) Length(pos int) int {
	if e.To == OpenEnd {
		return pos + 1 - e.From
	}

	return e.To - e.From
}

// Node is either an internal branching point or a leaf, distinguished only
// by the emptiness of Children.
type Node struct {
	ID         NodeID
	Depth      int
	Children   map[symbol.Symbol]Edge
	SuffixLink NodeID

	// LeafCount is populated by package scorer's post-order pass; it is
	// meaningless before scoring runs.
	LeafCount uint64
}

// ActivePoint is the (active_node, active_edge, active_length) triple that
// Ukkonen's construction walks. When HasEdge is false the point sits
// exactly at Node; otherwise it is Length symbols along the edge leaving
// Node keyed by EdgeSym. HasEdge is always equivalent to Length > 0.
type ActivePoint struct {
	Node    NodeID
	EdgeSym symbol.Symbol
	HasEdge bool
	Length  int
}

// Store owns every Node in the tree built over a single input string S.
// Edges are owned by their parent node's Children map; Store is the sole
// allocator and is not safe for concurrent mutation; all mutation is
// scoped to a single Builder instance.
type Store struct {
	input []byte
	nodes []Node
	Root  NodeID
}

// NewStore allocates a Store over input (the raw, un-terminated string)
// with a freshly-created root node of depth 0.
func NewStore(input []byte) *Store {
	st := &Store{input: input}
	st.Root = st.NewNode(0)

	return st
}

// ReadSymbol returns symbol.ReadSymbol(input, i).
func (st *Store) ReadSymbol(i int) symbol.Symbol {
	return symbol.ReadSymbol(st.input, i)
}

// NewNode allocates a node with the given string-depth, empty children,
// no suffix link, and returns its dense NodeID.
func (st *Store) NewNode(depth int) NodeID {
	id := NodeID(len(st.nodes))
	st.nodes = append(st.nodes, Node{
		ID:         id,
		Depth:      depth,
		Children:   make(map[symbol.Symbol]Edge),
		SuffixLink: NoNode,
	})

	return id
}

// Node returns a pointer into the arena for id. The pointer is invalidated
// by subsequent calls to NewNode (which may reallocate the backing slice).
func (st *Store) Node(id NodeID) *Node {
	return &st.nodes[id]
}

// Len reports the number of nodes allocated so far, including the root.
func (st *Store) Len() int {
	return len(st.nodes)
}

// AddChild inserts edge under key sym on parent. Precondition: parent has
// no existing entry for sym; violating it is a construction bug and
// returns ErrChildKeyConflict.
func (st *Store) AddChild(parent NodeID, sym symbol.Symbol, edge Edge) error {
	children := st.nodes[parent].Children
	if _, exists := children[sym]; exists {
		return ErrChildKeyConflict
	}
	children[sym] = edge

	return nil
}

// ReplaceChild overwrites the entry for sym on parent, used at edge splits
// where the original edge is logically destroyed and shortened in place.
func (st *Store) ReplaceChild(parent NodeID, sym symbol.Symbol, edge Edge) {
	st.nodes[parent].Children[sym] = edge
}

// GetChild looks up the edge leaving parent keyed by sym. The boolean
// result distinguishes "absent" from a zero-value Edge.
func (st *Store) GetChild(parent NodeID, sym symbol.Symbol) (Edge, bool) {
	edge, ok := st.nodes[parent].Children[sym]

	return edge, ok
}

// Normalize ("canonize") walks ap down the tree while its active length
// reaches or exceeds the length of the edge it currently references.
// pos is the index of the symbol currently being added.
func (st *Store) Normalize(ap *ActivePoint, pos int) error {
	for ap.HasEdge {
		edge, ok := st.GetChild(ap.Node, ap.EdgeSym)
		if !ok {
			return ErrDanglingActiveEdge
		}

		edgeLen := edge.Length(pos)
		if edgeLen <= 0 {
			return ErrNonPositiveEdgeLength
		}

		if ap.Length < edgeLen {
			return nil
		}

		ap.Node = edge.Child
		ap.Length -= edgeLen
		if ap.Length > 0 {
			ap.EdgeSym = st.ReadSymbol(edge.From + edgeLen)
			ap.HasEdge = true
		} else {
			ap.HasEdge = false
		}
	}

	return nil
}
