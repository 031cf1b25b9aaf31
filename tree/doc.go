// Package tree implements the node/edge arena and active-point machinery
// that the Ukkonen engine (package builder) mutates and the scorer
// (package scorer) reads.
//
// What:
//
//   - Store: a dense arena of Node, indexed by NodeID; owns every Edge
//     through its parent node's child map.
//   - Edge: a half-open [From, To) interval over the input, with To
//     possibly set to OpenEnd meaning "grows with the current position."
//   - ActivePoint: the (node, edge, length) triple Ukkonen's construction
//     walks, plus Normalize (a.k.a. "canonize") to keep it valid.
//
// Why: isolating the arena and its invariants from the insertion state
// machine keeps the Builder's control flow (package builder) readable,
// the same way a graph library keeps its adjacency primitives separate
// from the traversal algorithms that walk them.
//
// Invariants:
//   - Outgoing edges from any node have pairwise-distinct first symbols.
//   - A leaf has no outgoing edges.
//   - Only internal, non-root nodes carry suffix links.
//   - The root has Depth 0 and no suffix link.
package tree
