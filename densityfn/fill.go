package densityfn

// fillBySample is the default Fill implementation shared by every node kind
// that has no cheaper bulk strategy: sample applier.At(i) one at a time.
// Chunk-bound cache nodes (see the chunkbind package) override Fill to
// exploit spatial coherence instead.
func fillBySample(n Node, dest []float64, applier Applier) {
	for i := range dest {
		dest[i] = n.Sample(applier.At(i))
	}
}
