// Package scorer computes, for a constructed suffix tree, the maximum
// value of depth(v) * leafCount(v) over all branching internal nodes v.
// leafCount(v) equals occ(w) for v's path-label w, because the tree's
// leaves correspond bijectively to the suffixes of S·$.
//
// Scorer recursion is explicit-stack, not call-stack recursive, since
// tree depth can be Θ(|S|) on pathological inputs.
package scorer
