package builder

import "errors"

// Sentinel errors for Graph Builder construction. Missing registry keys or
// malformed configuration abort Build entirely — there is no runtime
// fallback once a graph has been assembled.
var (
	// ErrMissingNoiseParam indicates the registry passed to Build lacks an
	// entry Build needed to construct a named root.
	ErrMissingNoiseParam = errors.New("builder: missing noise parameter")

	// ErrNilRegistry indicates Build was called with a nil NoiseRegistry.
	ErrNilRegistry = errors.New("builder: nil noise registry")
)
