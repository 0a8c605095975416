package mldsa //nolint:testpackage // testing internals

import (
	"math/big"
	"testing"

	"github.com/ironlattice/mldsa/internal/testdata"
)

// randRing draws a polynomial with uniform coefficients in [0, q).
func randRing(drbg *testdata.DRBG) ringElement {
	var f ringElement
	for i, w := range drbg.Uint64s(n) {
		f[i] = fieldElement(w % q)
	}
	return f
}

func TestFieldAddSub(t *testing.T) {
	t.Parallel()

	drbg := testdata.New("field add sub")
	ws := drbg.Uint64s(2000)
	for i := 0; i < len(ws); i += 2 {
		a := fieldElement(ws[i] % q)
		b := fieldElement(ws[i+1] % q)

		if got, want := fieldAdd(a, b), fieldElement((uint64(a)+uint64(b))%q); got != want {
			t.Fatalf("fieldAdd(%d, %d) = %d, want = %d", a, b, got, want)
		}
		if got, want := fieldSub(a, b), fieldElement((uint64(a)+q-uint64(b))%q); got != want {
			t.Fatalf("fieldSub(%d, %d) = %d, want = %d", a, b, got, want)
		}
	}
}

// TestFieldMul checks the Montgomery product a * b * 2^-32 mod q
// against big-integer arithmetic.
func TestFieldMul(t *testing.T) {
	t.Parallel()

	bigQ := big.NewInt(q)
	rInv := new(big.Int).ModInverse(big.NewInt(1<<32), bigQ)

	drbg := testdata.New("field mul")
	ws := drbg.Uint64s(2000)
	for i := 0; i < len(ws); i += 2 {
		a := fieldElement(ws[i] % q)
		b := fieldElement(ws[i+1] % q)

		want := new(big.Int).Mul(big.NewInt(int64(a)), big.NewInt(int64(b)))
		want.Mul(want, rInv).Mod(want, bigQ)
		if got := fieldMul(a, b); uint64(got) != want.Uint64() {
			t.Fatalf("fieldMul(%d, %d) = %d, want = %d", a, b, got, want)
		}
	}
}

// TestNTTRoundTrip checks the transform pair's scaling convention:
// invNTT folds in n^-1 * 2^64, so a bare round trip returns f * 2^32.
// The extra factor cancels against the 2^-32 that nttMul introduces,
// which every caller interposes between the transforms.
func TestNTTRoundTrip(t *testing.T) {
	t.Parallel()

	drbg := testdata.New("ntt round trip")
	for range 50 {
		f := randRing(drbg)

		var want ringElement
		for i := range f {
			want[i] = fieldElement((uint64(f[i]) << 32) % q)
		}
		if got := invNTT(ntt(f)); got != want {
			t.Fatal("invNTT(ntt(f)) did not return f * 2^32")
		}
	}
}

// schoolbookMul multiplies in Z_q[X]/(X^n + 1) directly from the
// definition, wrapping X^n to -1.
func schoolbookMul(a, b ringElement) ringElement {
	var acc [n]int64
	for i := range a {
		for j := range b {
			p := int64(a[i]) * int64(b[j]) % q
			if i+j < n {
				acc[i+j] = (acc[i+j] + p) % q
			} else {
				acc[i+j-n] = (acc[i+j-n] - p + q) % q
			}
		}
	}
	var c ringElement
	for i := range c {
		c[i] = fieldElement(acc[i])
	}
	return c
}

// TestNTTMultiplication pins the whole transform pipeline, twiddle
// table included, against the negacyclic convolution it is supposed to
// compute.
func TestNTTMultiplication(t *testing.T) {
	t.Parallel()

	drbg := testdata.New("ntt multiplication")
	for range 10 {
		a := randRing(drbg)
		b := randRing(drbg)

		got := invNTT(nttMul(ntt(a), ntt(b)))
		if want := schoolbookMul(a, b); got != want {
			t.Fatal("NTT product diverges from the schoolbook product")
		}
	}
}
