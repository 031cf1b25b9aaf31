package suftree

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/suftree/builder"
	"github.com/katalvlaran/suftree/scorer"
	"github.com/katalvlaran/suftree/symbol"
)

// MaxSubstringScore computes max(|w| * occ(w)) over all non-empty
// substrings w of s, and the total number of nodes allocated while
// building the underlying suffix tree.
//
// Empty input returns (0, 1) without constructing a tree. Otherwise this
// drives a Builder over s plus the terminator through every position,
// then scores the result.
func MaxSubstringScore(s []byte) (maxScore uint64, nodeCount uint64, err error) {
	if len(s) == 0 {
		return 0, 1, nil
	}

	b, err := builder.NewBuilder(s)
	if err != nil {
		if errors.Is(err, builder.ErrInputTooLarge) {
			return 0, 0, fmt.Errorf("suftree: MaxSubstringScore: %w", ErrInputTooLarge)
		}

		return 0, 0, fmt.Errorf("suftree: MaxSubstringScore: %w", err)
	}

	for i := 0; i <= len(s); i++ {
		c := symbol.ReadSymbol(s, i)
		if err := b.InsertSymbol(c); err != nil {
			return 0, 0, fmt.Errorf("suftree: MaxSubstringScore: %w", err)
		}
	}

	maxScore, nodeCount = scorer.Score(b.Store(), len(s))

	return maxScore, nodeCount, nil
}
