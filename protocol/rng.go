// Package protocol - RNG utilities for the shot fan-out.
//
// Shots run concurrently, and math/rand.Rand is not goroutine-safe, so
// every shot gets its own stream derived from the run seed and the shot
// index. Derivation uses a SplitMix64-style avalanche mix: the same seed
// always produces the same per-shot streams, independent of how shots are
// distributed across workers.
package protocol

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed 0. The
// value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// normalizeSeed applies the seed==0 policy.
func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed with the canonical SplitMix64 finalizer constants.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// shotRNG returns the deterministic stream for one shot.
func shotRNG(seed int64, shot int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(normalizeSeed(seed), uint64(shot))))
}
