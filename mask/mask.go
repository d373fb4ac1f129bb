// Package mask XORs a byte stream with a keystream drawn from an lcg
// generator. It hides data from casual reading and is not encryption.
package mask

import (
	"io"
	"math/rand"

	"github.com/tutils/lcgrand/lcg"
)

// Mask wraps readers and writers with the same keystream
type Mask interface {
	NewEncoder(w io.Writer) io.Writer
	NewDecoder(r io.Reader) io.Reader
}

var _ Mask = &xorMask{}

type xorMask struct {
	opts Options
}

// New create a new Mask
func New(seed int64, opts ...Option) Mask {
	return &xorMask{
		opts: *newOptions(seed, opts...),
	}
}

func (m *xorMask) NewEncoder(w io.Writer) io.Writer {
	return &encoder{
		w:   w,
		rnd: rand.New(m.opts.sourceNewer(m.opts.seed)),
	}
}

func (m *xorMask) NewDecoder(r io.Reader) io.Reader {
	return &decoder{
		r:   r,
		rnd: rand.New(m.opts.sourceNewer(m.opts.seed)),
	}
}

type encoder struct {
	w   io.Writer
	rnd *rand.Rand
	buf []byte
}

func (e *encoder) Write(p []byte) (n int, err error) {
	n = len(p)
	if cap(e.buf) < n {
		e.buf = make([]byte, n)
	} else {
		e.buf = e.buf[:n]
	}

	e.rnd.Read(e.buf)
	for i, b := range p {
		e.buf[i] ^= b
	}

	return e.w.Write(e.buf)
}

type decoder struct {
	r   io.Reader
	rnd *rand.Rand
	buf []byte
}

func (d *decoder) Read(p []byte) (n int, err error) {
	n, err = d.r.Read(p)
	if n == 0 {
		return n, err
	}
	if cap(d.buf) < n {
		d.buf = make([]byte, n)
	} else {
		d.buf = d.buf[:n]
	}

	d.rnd.Read(d.buf)
	for i, b := range d.buf {
		p[i] ^= b
	}

	return n, err
}

// SourceNewer builds the keystream source for a seed
type SourceNewer func(seed int64) rand.Source

func lcgSource(seed int64) rand.Source {
	return lcg.NewSource(seed)
}
