package nodes

import (
	"crypto/rand"
	"encoding/binary"

	"outfitforge/logger"
)

// Seed modes understood by the outfit nodes.
const (
	SeedFixed     = "fixed"
	SeedRandom    = "random"
	SeedIncrement = "increment"
	SeedDecrement = "decrement"
)

var SeedModes = []string{SeedFixed, SeedRandom, SeedIncrement, SeedDecrement}

// randomSeed draws a fresh 32-bit seed from the system CSPRNG.
func randomSeed() uint32 {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		logger.Error("Could not read random seed", "error", err)
		return 0
	}
	return binary.BigEndian.Uint32(buf[:])
}

// ResolveSeed applies the seed-mode policy. Increment and decrement
// step the previous seed modulo 2^32 and fall back to the given seed
// when no previous seed was recorded.
func ResolveSeed(mode string, seed, lastSeed uint32) uint32 {
	switch mode {
	case SeedRandom:
		return randomSeed()
	case SeedIncrement:
		if lastSeed == 0 {
			return seed
		}
		return lastSeed + 1
	case SeedDecrement:
		if lastSeed == 0 {
			return seed
		}
		return lastSeed - 1
	default:
		return seed
	}
}
