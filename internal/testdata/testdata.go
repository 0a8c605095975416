// Package testdata derives deterministic byte streams for tests and
// benchmarks. Streams are keyed by a label so independent tests never
// share data, and re-running a test always sees the same bytes.
package testdata

import (
	"encoding/binary"

	"github.com/ironlattice/mldsa/internal/sha3"
)

// DRBG is a deterministic stream of test bytes.
type DRBG struct {
	xof *sha3.State
}

// New returns the stream for the given label.
func New(label string) *DRBG {
	xof := sha3.NewShake128()
	_, _ = xof.Write([]byte(label))
	return &DRBG{xof: xof}
}

// Data returns the next n bytes of the stream.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.xof.Read(b)
	return b
}

// Uint64s returns the next n words of the stream.
func (d *DRBG) Uint64s(n int) []uint64 {
	b := d.Data(8 * n)
	w := make([]uint64, n)
	for i := range w {
		w[i] = binary.LittleEndian.Uint64(b[8*i:])
	}
	return w
}
