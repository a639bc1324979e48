package temporal

import "math"

// mix64 is SplitMix64's finalizer, used as the seeded base hash for a single
// uint64 component (vertex id, time bit pattern, delay bit pattern).
func mix64(x, seed uint64) uint64 {
	x += seed + 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// combineHash folds h2 into h1 using the boost::hash_combine mixer that the
// estimator's construction relies on being stable across calls: inserting the
// same components in the same order always yields the same hash.
func combineHash(h1, h2 uint64) uint64 {
	h1 ^= h2 + 0x9E3779B97F4A7C15 + (h1 << 6) + (h1 >> 2)
	return h1
}

func hashVertex(v Vertex, seed uint64) uint64 {
	return mix64(uint64(v), seed)
}

func hashTime(t Time, seed uint64) uint64 {
	return mix64(math.Float64bits(t), seed)
}

// HashVertex is the seeded vertex hash exposed for packages that need to
// insert a vertex into a node sketch directly, outside of an Event's own
// Hash method (the counter).
func HashVertex(v Vertex, seed uint64) uint64 {
	return hashVertex(v, seed)
}
