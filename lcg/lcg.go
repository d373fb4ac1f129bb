package lcg

import (
	"errors"
	"fmt"

	"github.com/tutils/lcgrand/seed"
)

// Algorithm parameters, shared by every Generator.
const (
	Multiplier = 1103515245
	Increment  = 12345
	Modulus    = 1 << 32
)

// ErrInvalidRange is returned by NextInt when high < low.
var ErrInvalidRange = errors.New("lcg: invalid range")

// Generator is a linear congruential generator.
// It is not safe for concurrent use.
type Generator struct {
	seed  int64
	state int64
}

// New creates a Generator. Without WithSeed the seed is the clock's
// current Unix time in milliseconds.
func New(opts ...Option) *Generator {
	opt := newOptions(opts...)

	var s int64
	if opt.seed != nil {
		s = *opt.seed
	} else {
		s = seed.FromTime(opt.clock())
	}
	return &Generator{
		seed:  s,
		state: s,
	}
}

// step returns (Multiplier*x + Increment) mod Modulus in [0, Modulus).
// The product wraps modulo 2^64, which Modulus divides, so the low 32 bits
// are the euclidean residue even for negative x.
func step(x int64) int64 {
	return int64(uint32(uint64(x)*Multiplier + Increment))
}

func (g *Generator) advance() int64 {
	g.state = step(g.state)
	return g.state
}

// NextInt returns a value in [low, high]. The state is left untouched when
// the range is invalid.
func (g *Generator) NextInt(low, high int64) (int64, error) {
	if high < low {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, low, high)
	}
	x := uint64(g.advance())
	// span wraps to 0 only for the full int64 range, where every state fits.
	span := uint64(high) - uint64(low) + 1
	if span != 0 {
		x %= span
	}
	return int64(uint64(low) + x), nil
}

// NextFloat returns a value in [0.0, 1.0).
func (g *Generator) NextFloat() float64 {
	return float64(g.advance()) / Modulus
}

// State returns the raw state. A generator created with WithSeed(State())
// continues the same sequence.
func (g *Generator) State() int64 {
	return g.state
}

// Seed returns the initial state.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Reset rewinds the generator to its initial seed.
func (g *Generator) Reset() {
	g.state = g.seed
}
