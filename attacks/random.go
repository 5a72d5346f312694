package attacks

import "math/rand/v2"

// magicRNG generates magic-number candidates reproducibly: a fixed seed
// always produces the same sequence, so the magic tables (and therefore
// every downstream hash) are stable across runs of the same binary, per
// spec §9 "Magic search reproducibility".
type magicRNG struct {
	r *rand.Rand
}

func newMagicRNG(seed uint64) *magicRNG {
	return &magicRNG{r: rand.New(rand.NewPCG(seed, seed))}
}

// lowerBits draws a 64-bit value with only the low 16 bits possibly set.
func (m *magicRNG) lowerBits() uint64 { return m.r.Uint64() & 0xFFFF }

// uniform draws a 64-bit value with a generally uniform distribution of
// set bits, built from four 16-bit draws at different shifts.
func (m *magicRNG) uniform() uint64 {
	return m.lowerBits() | (m.lowerBits() << 16) | (m.lowerBits() << 32) | (m.lowerBits() << 48)
}

// genCandidate produces a sparse 64-bit magic-number candidate by ANDing
// three independent uniform draws together, per spec §4.3 step 5.
func (m *magicRNG) genCandidate() uint64 {
	return m.uniform() & m.uniform() & m.uniform()
}
