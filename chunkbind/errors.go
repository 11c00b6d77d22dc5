package chunkbind

import "errors"

// Sentinel errors for chunk binding. Sampling a bound graph never errors;
// these guard the binding's own construction and misuse.
var (
	// ErrNilChunkSampler indicates NewBinding was called with a nil
	// ChunkNoiseSampler.
	ErrNilChunkSampler = errors.New("chunkbind: nil chunk sampler")

	// ErrAlreadyBound names the misuse of binding one root twice through
	// the same Binding. Bind does not return it: a second Bind of the same
	// root returns the memoized bound graph.
	ErrAlreadyBound = errors.New("chunkbind: root already bound")
)
