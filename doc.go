// Package suftree computes, for an input string S, the maximum value of
// |w| * occ(w) taken over all non-empty substrings w of S, where |w| is
// the length of w and occ(w) is the number of distinct starting positions
// at which w occurs in S.
//
// The computation builds Ukkonen's online suffix tree of S (augmented
// with a terminating sentinel) and, after construction, scores every
// branching internal node.
//
// Under the hood, everything is organized under four subpackages:
//
//	symbol/  — the alphabet: input bytes plus the reserved terminator
//	tree/    — the node/edge arena and active-point machinery
//	builder/ — Ukkonen's online construction state machine
//	scorer/  — post-order scoring of the finished tree
//
// The single entry point is MaxSubstringScore. Everything upstream of it
// (a harness that feeds test strings, expected-value fixtures, console
// logging) is deliberately out of scope — see cmd/suftreectl for a thin
// CLI driver that plays that role without being part of the core.
package suftree
