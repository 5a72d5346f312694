package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/treepeck/chego/enum"
)

func TestPopLSB(t *testing.T) {
	for i := 0; i < 64; i++ {
		bitboard := uint64(1) << i
		got := PopLSB(&bitboard)
		assert.Equal(t, enum.Square(63-i), got)
		assert.Equal(t, uint64(0), bitboard)
	}
}

func TestCountBits(t *testing.T) {
	assert.Equal(t, 1, CountBits(0x8000000000000000))
	assert.Equal(t, 0, CountBits(0x0))
	assert.Equal(t, 64, CountBits(0xFFFFFFFFFFFFFFFF))
}

func TestNextSubset(t *testing.T) {
	mask := uint64(0b1011)
	seen := map[uint64]bool{}
	sub := uint64(0)
	for {
		seen[sub] = true
		sub = NextSubset(sub, mask)
		if sub == 0 {
			break
		}
	}
	assert.Len(t, seen, 1<<CountBits(mask))
	for s := range seen {
		assert.Equal(t, uint64(0), s&^mask, "subset must be contained in mask")
	}
}

func TestFindDirection(t *testing.T) {
	assert.Equal(t, East, FindDirection(enum.A1, enum.H1))
	assert.Equal(t, West, FindDirection(enum.H1, enum.A1))
	assert.Equal(t, North, FindDirection(enum.A1, enum.A8))
	assert.Equal(t, South, FindDirection(enum.A8, enum.A1))
	assert.Equal(t, NorthEast, FindDirection(enum.A1, enum.H8))
	assert.Equal(t, SouthWest, FindDirection(enum.H8, enum.A1))
	assert.Equal(t, DirNone, FindDirection(enum.A1, enum.B3))
}

func TestBetween(t *testing.T) {
	got := Between(enum.A1, enum.D1)
	want := enum.B1.Mask() | enum.C1.Mask()
	assert.Equal(t, want, got)

	assert.Equal(t, uint64(0), Between(enum.A1, enum.B3))
}

func TestRayEdgeToEdge(t *testing.T) {
	got := RayEdgeToEdge(enum.C1, enum.G1)
	var want uint64
	for f := 0; f < 8; f++ {
		want |= enum.Square(56 + f).Mask()
	}
	assert.Equal(t, want, got, "rank-1 ray must span the whole rank")
}

func BenchmarkPopLSB(b *testing.B) {
	bitboard := uint64(0xFFFFFFFFFFFFFFFF)
	for b.Loop() {
		if bitboard == 0 {
			bitboard = 0xFFFFFFFFFFFFFFFF
		}
		PopLSB(&bitboard)
	}
}

func BenchmarkCountBits(b *testing.B) {
	for b.Loop() {
		CountBits(0xFFFFFFFFFFFFFFFF)
	}
}
