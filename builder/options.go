package builder

import "github.com/katalvlaran/suftree/tree"

// DefaultMaxInputLength is the default upper bound on input length. It
// sits comfortably below tree.OpenEnd, which must exceed any accepted
// bound.
const DefaultMaxInputLength = 1_000_000

// Option configures NewBuilder. Use with NewBuilder(s, opts...).
type Option func(*Options)

// Options holds the configurable parameters of a Builder.
type Options struct {
	// MaxInputLength is the exclusive upper bound on len(S); NewBuilder
	// rejects any input whose length reaches this bound with
	// ErrInputTooLarge.
	MaxInputLength int
}

// DefaultOptions returns Options with MaxInputLength set to
// DefaultMaxInputLength.
func DefaultOptions() Options {
	return Options{MaxInputLength: DefaultMaxInputLength}
}

// WithMaxInputLength overrides the configured maximum input length. Values
// that are not positive, or that would reach tree.OpenEnd, are ignored so
// the invariant "OpenEnd exceeds the accepted bound" always holds.
func WithMaxInputLength(n int) Option {
	return func(o *Options) {
		if n > 0 && n < tree.OpenEnd {
			o.MaxInputLength = n
		}
	}
}
