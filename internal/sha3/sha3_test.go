// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3 //nolint:testpackage // testing internals

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"hash"
	"math/rand"
	"testing"
	"time"

	fuzz "github.com/trailofbits/go-fuzz-utils"
	xsha3 "golang.org/x/crypto/sha3"
)

var _ hash.Hash = (*State)(nil)

func TestVectors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sum  func([]byte) []byte
		msg  string
		want string
	}{
		{
			name: "SHA3-256 empty",
			sum:  func(m []byte) []byte { d := Sum256(m); return d[:] },
			msg:  "",
			want: "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a",
		},
		{
			name: "SHA3-256 abc",
			sum:  func(m []byte) []byte { d := Sum256(m); return d[:] },
			msg:  "abc",
			want: "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
		},
		{
			name: "SHA3-512 empty",
			sum:  func(m []byte) []byte { d := Sum512(m); return d[:] },
			msg:  "",
			want: "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a6" +
				"15b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26",
		},
		{
			name: "SHAKE128 empty",
			sum: func(m []byte) []byte {
				d := make([]byte, 32)
				ShakeSum128(d, m)
				return d
			},
			msg:  "",
			want: "7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26",
		},
		{
			name: "SHAKE256 empty",
			sum: func(m []byte) []byte {
				d := make([]byte, 32)
				ShakeSum256(d, m)
				return d
			},
			msg:  "",
			want: "46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762f",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if got, want := hex.EncodeToString(test.sum([]byte(test.msg))), test.want; got != want {
				t.Errorf("%s = %s, want = %s", test.name, got, want)
			}
		})
	}
}

// TestMatchesReference checks every construction against
// golang.org/x/crypto/sha3 across message lengths spanning all three
// rate boundaries.
func TestMatchesReference(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for n := range 500 {
		msg := make([]byte, n)
		_, _ = rng.Read(msg)

		if got, want := Sum256(msg), xsha3.Sum256(msg); got != want {
			t.Fatalf("Sum256(%d bytes) = %x, want = %x", n, got, want)
		}
		if got, want := Sum512(msg), xsha3.Sum512(msg); got != want {
			t.Fatalf("Sum512(%d bytes) = %x, want = %x", n, got, want)
		}

		got, want := make([]byte, 64), make([]byte, 64)
		ShakeSum128(got, msg)
		xsha3.ShakeSum128(want, msg)
		if !bytes.Equal(got, want) {
			t.Fatalf("ShakeSum128(%d bytes) = %x, want = %x", n, got, want)
		}

		ShakeSum256(got, msg)
		xsha3.ShakeSum256(want, msg)
		if !bytes.Equal(got, want) {
			t.Fatalf("ShakeSum256(%d bytes) = %x, want = %x", n, got, want)
		}
	}
}

func TestStreamingWrites(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	msg := make([]byte, 701)
	_, _ = rng.Read(msg)

	h := NewShake256()
	rest := msg
	for _, chunk := range []int{1, 7, 64, 136, 300} {
		_, _ = h.Write(rest[:chunk])
		rest = rest[chunk:]
	}
	_, _ = h.Write(rest)

	got := make([]byte, 199)
	for out := got; len(out) > 0; {
		c := min(17, len(out))
		_, _ = h.Read(out[:c])
		out = out[c:]
	}

	want := make([]byte, len(got))
	xsha3.ShakeSum256(want, msg)
	if !bytes.Equal(got, want) {
		t.Errorf("chunked SHAKE256 = %x, want = %x", got, want)
	}
}

func TestSumIsASnapshot(t *testing.T) {
	t.Parallel()

	h := New256()
	_, _ = h.Write([]byte("ab"))

	s1 := h.Sum(nil)
	s2 := h.Sum(nil)
	if !bytes.Equal(s1, s2) {
		t.Errorf("repeated Sum diverged: %x != %x", s1, s2)
	}

	_, _ = h.Write([]byte("c"))
	full := Sum256([]byte("abc"))
	if got, want := h.Sum(nil), full[:]; !bytes.Equal(got, want) {
		t.Errorf("Sum after more writes = %x, want = %x", got, want)
	}
}

func TestWriteAfterReadPanics(t *testing.T) {
	t.Parallel()

	defer expectPanic(t)

	h := NewShake128()
	_, _ = h.Write([]byte("half"))
	_, _ = h.Read(make([]byte, 8))
	_, _ = h.Write([]byte("too late"))
}

func TestReset(t *testing.T) {
	t.Parallel()

	h := New512()
	_, _ = h.Write([]byte("garbage"))
	_, _ = h.Read(make([]byte, 64))
	h.Reset()
	_, _ = h.Write([]byte("abc"))

	want := Sum512([]byte("abc"))
	if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
		t.Errorf("digest after Reset = %x, want = %x", got, want)
	}
}

func TestShakeX4MatchesScalar(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	constructions := []struct {
		name   string
		batch  func() *ShakeX4
		scalar func() *State
	}{
		{"SHAKE128", NewShake128x4, NewShake128},
		{"SHAKE256", NewShake256x4, NewShake256},
	}

	for _, con := range constructions {
		t.Run(con.name, func(t *testing.T) {
			t.Parallel()

			for _, n := range []int{0, 1, 8, 71, 72, 135, 136, 137, 167, 168, 169, 336, 500} {
				var msgs, got, want [4][]byte
				for k := range msgs {
					msgs[k] = make([]byte, n)
					_, _ = rng.Read(msgs[k])
					got[k] = make([]byte, 333)
					want[k] = make([]byte, 333)
				}

				x4 := con.batch()
				x4.Absorb(msgs[0], msgs[1], msgs[2], msgs[3])
				x4.Read(got[0][:10], got[1][:10], got[2][:10], got[3][:10])
				x4.Read(got[0][10:], got[1][10:], got[2][10:], got[3][10:])

				for k := range want {
					s := con.scalar()
					_, _ = s.Write(msgs[k])
					_, _ = s.Read(want[k])
					if !bytes.Equal(got[k], want[k]) {
						t.Fatalf("lane %d of %d-byte batch = %x, want = %x", k, n, got[k], want[k])
					}
				}
			}
		})
	}
}

func TestShakeX4Reset(t *testing.T) {
	t.Parallel()

	junk := bytes.Repeat([]byte{0xa5}, 200)
	x4 := NewShake128x4()
	x4.Absorb(junk, junk, junk, junk)
	x4.Read(make([]byte, 16), make([]byte, 16), make([]byte, 16), make([]byte, 16))
	x4.Reset()

	msg := []byte("after reset")
	x4.Absorb(msg, msg, msg, msg)
	got := make([]byte, 32)
	x4.Read(got, make([]byte, 32), make([]byte, 32), make([]byte, 32))

	want := make([]byte, 32)
	ShakeSum128(want, msg)
	if !bytes.Equal(got, want) {
		t.Errorf("batch output after Reset = %x, want = %x", got, want)
	}
}

func TestShakeX4Panics(t *testing.T) {
	t.Parallel()

	t.Run("mismatched absorb", func(t *testing.T) {
		t.Parallel()
		defer expectPanic(t)

		NewShake128x4().Absorb([]byte("a"), []byte("a"), []byte("a"), []byte("ab"))
	})

	t.Run("read before absorb", func(t *testing.T) {
		t.Parallel()
		defer expectPanic(t)

		b := make([]byte, 8)
		NewShake256x4().Read(b, b, b, b)
	})

	t.Run("absorb after read", func(t *testing.T) {
		t.Parallel()
		defer expectPanic(t)

		x4 := NewShake256x4()
		x4.Absorb(nil, nil, nil, nil)
		b := make([]byte, 8)
		x4.Read(b, b, b, b)
		x4.Absorb(nil, nil, nil, nil)
	})
}

func expectPanic(t *testing.T) {
	t.Helper()

	if recover() == nil {
		t.Error("expected a panic")
	}
}

func FuzzMatchesReference(f *testing.F) {
	f.Add([]byte("initial corpus entry for the sponge cross-check"))

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		msg, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}

		n, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}

		if got, want := Sum256(msg), xsha3.Sum256(msg); got != want {
			t.Errorf("Sum256 = %x, want = %x", got, want)
		}
		if got, want := Sum512(msg), xsha3.Sum512(msg); got != want {
			t.Errorf("Sum512 = %x, want = %x", got, want)
		}

		out := int(n)%1024 + 1
		got, want := make([]byte, out), make([]byte, out)
		ShakeSum128(got, msg)
		xsha3.ShakeSum128(want, msg)
		if !bytes.Equal(got, want) {
			t.Errorf("ShakeSum128 (%d bytes) = %x, want = %x", out, got, want)
		}

		ShakeSum256(got, msg)
		xsha3.ShakeSum256(want, msg)
		if !bytes.Equal(got, want) {
			t.Errorf("ShakeSum256 (%d bytes) = %x, want = %x", out, got, want)
		}
	})
}

func BenchmarkSum256(b *testing.B) {
	for _, size := range []int64{64, 1024, 8192} {
		b.Run(fmt.Sprintf("%db", size), func(b *testing.B) {
			msg := make([]byte, size)
			b.SetBytes(size)
			b.ReportAllocs()
			for b.Loop() {
				Sum256(msg)
			}
		})
	}
}

func BenchmarkShake128(b *testing.B) {
	for _, size := range []int64{64, 1024, 8192} {
		b.Run(fmt.Sprintf("%db", size), func(b *testing.B) {
			msg := make([]byte, size)
			out := make([]byte, 32)
			b.SetBytes(size)
			b.ReportAllocs()
			for b.Loop() {
				ShakeSum128(out, msg)
			}
		})
	}
}

func BenchmarkShakeX4(b *testing.B) {
	seed := make([]byte, 34)
	outs := make([]byte, 4*840)
	b.SetBytes(4 * 840)
	b.ReportAllocs()
	for b.Loop() {
		x4 := NewShake128x4()
		x4.Absorb(seed, seed, seed, seed)
		x4.Read(outs[:840], outs[840:1680], outs[1680:2520], outs[2520:])
	}
}
