// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import (
	crand "crypto/rand"
	"math/big"
	"math/rand/v2"
	"time"
)

// Source yields uniformly distributed integers in the inclusive range
// [lo, hi]. Callers guarantee lo <= hi.
type Source interface {
	IntRange(lo, hi int) int
}

// SeededSource is a deterministic PCG-backed Source.
type SeededSource struct {
	r *rand.Rand
}

// NewSeededSource returns a Source that replays the same sequence for the
// same seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewSource returns a SeededSource seeded from the wall clock.
func NewSource() *SeededSource {
	return NewSeededSource(uint64(time.Now().UnixNano()))
}

func (s *SeededSource) IntRange(lo, hi int) int {
	return lo + s.r.IntN(hi-lo+1)
}

// CryptoSource draws from the operating system's entropy pool.
type CryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
func NewCryptoSource() CryptoSource {
	return CryptoSource{}
}

func (CryptoSource) IntRange(lo, hi int) int {
	n, err := crand.Int(crand.Reader, big.NewInt(int64(hi-lo+1)))
	if err != nil {
		// crypto/rand does not fail on supported platforms
		panic("crypto/rand failed: " + err.Error())
	}
	return lo + int(n.Int64())
}
