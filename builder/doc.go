// Package builder implements Ukkonen's online suffix-tree construction:
// the state machine that consumes one symbol at a time, advancing the
// remainder counter, performing edge walks, rule-2 splits, rule-3
// observations, and threading suffix links between internal nodes
// created during the same phase.
//
// What:
//
//   - Builder.InsertSymbol(c): the single public operation. Call it once
//     per position of the extended input S·$, left to right.
//   - Option / Options: functional options controlling the configured
//     maximum input length.
//
// Why: this is, by a wide margin, the hard part of the system, maintaining
// the active point and remainder across a left-to-right scan while
// preserving the suffix-tree invariants under edge splits and suffix-link
// threading.
//
// Complexity: amortized O(1) per inserted suffix; O(|S|) total over a
// constant-size alphabet.
//
// Errors:
//
//   - ErrInputTooLarge  len(S) reaches the configured maximum.
//   - tree.Err*         internal invariant violations, wrapped with
//     phase/position context; indicate a construction bug, not a user error.
package builder
