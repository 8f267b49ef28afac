package slimefield

// hashU32 is the xorshift-multiply hash used to derive deterministic
// per-agent pseudo-randomness: an initial xor with 2747636419, then three
// rounds of multiply-by-2654435769, the first two each followed by an
// xor-shift-16 (the third multiply is returned directly, with no trailing
// xor-shift).
func hashU32(state uint32) uint32 {
	state ^= 2747636419
	state *= 2654435769
	state ^= state >> 16
	state *= 2654435769
	state ^= state >> 16
	state *= 2654435769
	return state
}

// randFromHash derives a uniform pseudo-random float in [0, 1) from a seed
// by hashing it and normalizing by the full uint32 range.
func randFromHash(seed uint32) float64 {
	return float64(hashU32(seed)) / float64(1<<32)
}

// agentSeed combines a cell linear index with an agent index into one seed:
// hash((y*W+x) + hash(agentIndex)).
func agentSeed(cellIndex, agentIndex uint32) uint32 {
	return hashU32(cellIndex + hashU32(agentIndex))
}
