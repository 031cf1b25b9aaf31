package builder

import (
	"fmt"

	"github.com/katalvlaran/suftree/symbol"
	"github.com/katalvlaran/suftree/tree"
)

// Builder holds the online state of an in-progress Ukkonen construction:
// the node/edge arena, the active point, the remainder counter, the
// current position, and the internal node (if any) still awaiting a
// suffix link from earlier in the same phase.
type Builder struct {
	store               *tree.Store
	ap                  tree.ActivePoint
	remainder           int
	pos                 int
	lastCreatedInternal tree.NodeID
}

// NewBuilder allocates a Builder over s. It does no insertion work; call
// InsertSymbol once per position of the extended input S·$ to drive
// construction.
func NewBuilder(s []byte, opts ...Option) (*Builder, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(s) >= cfg.MaxInputLength {
		return nil, fmt.Errorf("builder: NewBuilder: %w", ErrInputTooLarge)
	}

	store := tree.NewStore(s)

	return &Builder{
		store:               store,
		ap:                  tree.ActivePoint{Node: store.Root},
		remainder:           0,
		pos:                 -1,
		lastCreatedInternal: tree.NoNode,
	}, nil
}

// Store returns the node/edge arena this Builder has been populating.
// The scorer reads it read-only after construction completes.
func (b *Builder) Store() *tree.Store {
	return b.store
}

// InsertSymbol advances the construction by one phase, consuming c as the
// symbol at the next position of the extended input. Call it once per
// position, left to right, including the terminator phase.
func (b *Builder) InsertSymbol(c symbol.Symbol) error {
	b.pos++

	return b.phase(c)
}

// phase runs one per-phase state machine step: bump remainder, then
// repeat normalize/insert until remainder returns to rest (a rule-3
// "show-stopper" break, or the remainder loop draining to zero).
func (b *Builder) phase(c symbol.Symbol) error {
	b.remainder++
	b.lastCreatedInternal = tree.NoNode

	for b.remainder > 0 {
		if err := b.store.Normalize(&b.ap, b.pos); err != nil {
			return fmt.Errorf("builder: normalize at pos=%d: %w", b.pos, err)
		}

		if !b.ap.HasEdge {
			if _, exists := b.store.GetChild(b.ap.Node, c); !exists {
				// Rule 2: no outgoing edge for c yet, insert a new leaf.
				leaf := b.store.NewNode(0)
				edge := tree.Edge{From: b.pos, To: tree.OpenEnd, Child: leaf}
				if err := b.store.AddChild(b.ap.Node, c, edge); err != nil {
					return fmt.Errorf("builder: add leaf at pos=%d: %w", b.pos, err)
				}

				b.linkPending(b.ap.Node)
				if err := b.followSuffixLink(); err != nil {
					return err
				}

				continue
			}

			// Rule 3: the edge already exists, observe and stop the phase.
			b.ap.EdgeSym = c
			b.ap.HasEdge = true
			b.ap.Length = 1
			b.linkPending(b.ap.Node)

			break
		}

		edge, ok := b.store.GetChild(b.ap.Node, b.ap.EdgeSym)
		if !ok {
			return fmt.Errorf("builder: phase at pos=%d: %w", b.pos, tree.ErrDanglingActiveEdge)
		}

		nextChar := b.store.ReadSymbol(edge.From + b.ap.Length)
		if nextChar == c {
			// Rule 3: the continuation already exists, observe and stop.
			b.ap.Length++
			b.linkPending(b.ap.Node)

			break
		}

		// Rule 2: mismatch mid-edge, split it and insert the new leaf.
		if _, err := b.split(b.ap.Node, b.ap.EdgeSym, edge, c); err != nil {
			return err
		}

		if err := b.followSuffixLink(); err != nil {
			return err
		}
	}

	return nil
}

// split replaces edge (keyed by activeEdgeSym on parent) with a new split
// node carrying two children: the shortened continuation of edge, and a
// fresh leaf for c.
func (b *Builder) split(parent tree.NodeID, activeEdgeSym symbol.Symbol, edge tree.Edge, c symbol.Symbol) (tree.NodeID, error) {
	activeLength := b.ap.Length
	splitPos := edge.From + activeLength

	splitNode := b.store.NewNode(b.store.Node(parent).Depth + activeLength)
	leafNode := b.store.NewNode(0)

	leafEdge := tree.Edge{From: b.pos, To: tree.OpenEnd, Child: leafNode}
	if err := b.store.AddChild(splitNode, c, leafEdge); err != nil {
		return tree.NoNode, fmt.Errorf("builder: split leaf edge at pos=%d: %w", b.pos, err)
	}

	interiorSym := b.store.ReadSymbol(splitPos)
	interiorEdge := tree.Edge{From: splitPos, To: edge.To, Child: edge.Child}
	if err := b.store.AddChild(splitNode, interiorSym, interiorEdge); err != nil {
		return tree.NoNode, fmt.Errorf("builder: split interior edge at pos=%d: %w", b.pos, err)
	}

	b.store.ReplaceChild(parent, activeEdgeSym, tree.Edge{From: edge.From, To: splitPos, Child: splitNode})

	b.linkPending(splitNode)
	b.lastCreatedInternal = splitNode

	return splitNode, nil
}

// linkPending points the suffix link of the internal node created earlier
// in this phase (if any) at target, then clears the pending slot.
func (b *Builder) linkPending(target tree.NodeID) {
	if b.lastCreatedInternal != tree.NoNode {
		b.store.Node(b.lastCreatedInternal).SuffixLink = target
		b.lastCreatedInternal = tree.NoNode
	}
}

// followSuffixLink runs the suffix-link follow that happens after a
// leaf-add or split: decrement remainder, then move the active point
// either by shrinking it at the root or by following a suffix link, and
// re-normalize.
func (b *Builder) followSuffixLink() error {
	b.remainder--

	switch {
	case b.ap.Node == b.store.Root && b.ap.Length > 0:
		b.ap.Length--
		if b.ap.Length > 0 {
			b.ap.EdgeSym = b.store.ReadSymbol(b.pos - b.remainder + 1)
			b.ap.HasEdge = true
		} else {
			b.ap.HasEdge = false
		}
	case b.ap.Node != b.store.Root:
		link := b.store.Node(b.ap.Node).SuffixLink
		if link == tree.NoNode {
			link = b.store.Root
		}
		b.ap.Node = link
	}

	if err := b.store.Normalize(&b.ap, b.pos); err != nil {
		return fmt.Errorf("builder: normalize after suffix-link follow at pos=%d: %w", b.pos, err)
	}

	return nil
}
