package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math/rand/v2"

	"github.com/google/uuid"
)

func seededRNG(seed int64) *rand.Rand {
	return saltedRNG(seed, "a", "b")
}

func saltedRNG(seed int64, saltA, saltB string) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, saltA), seedWord(seed, saltB)))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// rngReader feeds uuid generation from a seeded stream so unit IDs repeat across runs.
type rngReader struct {
	rng *rand.Rand
}

func (r rngReader) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(buf[:], r.rng.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}

// seededIDs returns a UUID source that is independent of the simulation stream.
func seededIDs(seed int64) func() string {
	reader := rngReader{rng: saltedRNG(seed, "ids:a", "ids:b")}
	return func() string {
		id, err := uuid.NewRandomFromReader(reader)
		if err != nil {
			return uuid.NewString()
		}
		return id.String()
	}
}
