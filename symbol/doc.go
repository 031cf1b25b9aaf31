// Package symbol defines the alphabet the suffix-tree construction reads
// from: the code units of an input string plus one reserved terminator.
//
// What:
//
//   - Symbol: one code unit of the input, or the reserved Terminator.
//   - ReadSymbol: reads a Symbol out of a byte slice at a given index,
//     returning Terminator once the index runs past the slice.
//
// Why:
//
//   - Ukkonen's construction needs every suffix of S to end at a leaf;
//     appending a terminator that never occurs inside S guarantees that.
//   - Keeping this as its own package documents the alphabet independently
//     of the tree/builder machinery that consumes it.
//
// Non-goals: Unicode-aware tokenization. The alphabet is exactly the
// sequence of bytes of the input plus Terminator.
package symbol
