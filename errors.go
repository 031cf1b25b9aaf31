package suftree

import "errors"

// ErrInputTooLarge is returned by MaxSubstringScore when the input is at
// least as long as the builder's configured maximum length.
var ErrInputTooLarge = errors.New("suftree: input exceeds configured maximum length")
