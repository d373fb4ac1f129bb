package lcg

import "math/rand"

// 验证接口实现
var _ rand.Source = (*Source)(nil)
var _ rand.Source64 = (*Source)(nil)

// Source adapts a Generator to math/rand.
type Source struct {
	g *Generator
}

// NewSource returns a rand.Source64 driven by a Generator seeded with seed.
func NewSource(seed int64) rand.Source64 {
	return &Source{g: New(WithSeed(seed))}
}

// Seed implements rand.Source
func (s *Source) Seed(seed int64) {
	s.g = New(WithSeed(seed))
}

// Uint64 joins two consecutive states, high word first.
func (s *Source) Uint64() uint64 {
	hi := uint64(s.g.advance())
	lo := uint64(s.g.advance())
	return hi<<32 | lo
}

// Int63 implements rand.Source
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}
