package watermark

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// defaultTokenSeed is the fixed seed used when callers pass a nil RNG.
const defaultTokenSeed int64 = 1

const hexDigits = "0123456789abcdef"

// NewToken returns n lowercase hex digits drawn from r.
// If r==nil, a deterministic stream seeded with defaultTokenSeed is used, so
// tests and reproducible runs get stable tokens. n <= 0 yields "".
//
// math/rand.Rand is NOT goroutine-safe; do not share r across goroutines.
//
// Complexity: O(n).
func NewToken(r *rand.Rand, n int) string {
	if n <= 0 {
		return ""
	}
	if r == nil {
		r = rand.New(rand.NewSource(defaultTokenSeed))
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = hexDigits[r.Intn(len(hexDigits))]
	}

	return string(buf)
}

// RandomToken returns n hex digits from a stream seeded by crypto/rand.
// It falls back to the deterministic default stream if the system source
// is unavailable.
func RandomToken(n int) string {
	var seed [8]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return NewToken(nil, n)
	}

	return NewToken(rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(seed[:])))), n)
}
