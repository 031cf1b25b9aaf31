package builder

import "errors"

// ErrInputTooLarge is returned by NewBuilder when the input is at least as
// long as the configured MaxInputLength. This is a construction-time
// refusal surfaced before any work is done.
var ErrInputTooLarge = errors.New("builder: input exceeds configured maximum length")
