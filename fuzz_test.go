package mldsa_test

import (
	"bytes"
	"testing"

	"github.com/ironlattice/mldsa"
	"github.com/ironlattice/mldsa/internal/testdata"
	fuzz "github.com/trailofbits/go-fuzz-utils"
)

// FuzzVerify hands the verifier mangled signatures. Anything it accepts
// for this message has to be the one signature the key produced.
func FuzzVerify(f *testing.F) {
	drbg := testdata.New("mldsa fuzz verify")

	key, err := mldsa.NewKey44(drbg.Data(mldsa.SeedSize))
	if err != nil {
		f.Fatal(err)
	}
	message := drbg.Data(64)
	sig, err := key.Sign(nil, message, nil)
	if err != nil {
		f.Fatal(err)
	}

	f.Add(bytes.Clone(sig))
	for range 10 {
		mutated := bytes.Clone(sig)
		idx := drbg.Data(2)
		mask := drbg.Data(1)
		mutated[(int(idx[0])|int(idx[1])<<8)%len(mutated)] ^= mask[0] | 1
		f.Add(mutated)
	}

	f.Fuzz(func(t *testing.T, candidate []byte) {
		if key.PublicKey().Verify(candidate, message, nil) && !bytes.Equal(candidate, sig) {
			t.Errorf("accepted a signature other than the canonical one: %x", candidate)
		}
	})
}

// FuzzParsePublicKey checks that parsing never panics and that any
// accepted encoding is canonical.
func FuzzParsePublicKey(f *testing.F) {
	drbg := testdata.New("mldsa fuzz public key")

	key, err := mldsa.NewKey44(drbg.Data(mldsa.SeedSize))
	if err != nil {
		f.Fatal(err)
	}
	f.Add(key.PublicKey().Bytes())
	f.Add(drbg.Data(mldsa.PublicKeySize44))
	f.Add(drbg.Data(17))

	f.Fuzz(func(t *testing.T, data []byte) {
		pk, err := mldsa.NewPublicKey44(data)
		if err != nil {
			t.Skip(err)
		}
		if !bytes.Equal(pk.Bytes(), data) {
			t.Errorf("re-encoding changed bytes: %x != %x", pk.Bytes(), data)
		}
	})
}

// FuzzParsePrivateKey checks the validating private key parser on
// ML-DSA-65, the level with 4-bit secret coefficients.
func FuzzParsePrivateKey(f *testing.F) {
	drbg := testdata.New("mldsa fuzz private key")

	key, err := mldsa.NewKey65(drbg.Data(mldsa.SeedSize))
	if err != nil {
		f.Fatal(err)
	}
	f.Add(key.PrivateKey().Bytes())
	f.Add(drbg.Data(mldsa.PrivateKeySize65))
	f.Add(drbg.Data(31))

	f.Fuzz(func(t *testing.T, data []byte) {
		sk, err := mldsa.NewPrivateKey65(data)
		if err != nil {
			t.Skip(err)
		}
		if !bytes.Equal(sk.Bytes(), data) {
			t.Errorf("re-encoding changed bytes: %x != %x", sk.Bytes(), data)
		}
		if sk.Public() == nil {
			t.Error("parsed key has no public half")
		}
	})
}

// FuzzSignVerify drives full sign and verify round trips across all
// three levels from fuzzer-chosen seeds, messages, and contexts.
func FuzzSignVerify(f *testing.F) {
	drbg := testdata.New("mldsa fuzz sign verify")
	for range 10 {
		f.Add(drbg.Data(256))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		levelRaw, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		seedRaw, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}
		seed := make([]byte, mldsa.SeedSize)
		copy(seed, seedRaw)

		message, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}
		contextRaw, err := tp.GetString()
		if err != nil {
			t.Skip(err)
		}
		context := []byte(contextRaw)
		if len(context) > 255 {
			context = context[:255]
		}

		var (
			sign   func(message, context []byte) ([]byte, error)
			verify func(sig, message, context []byte) bool
		)
		switch levelRaw % 3 {
		case 0:
			key, err := mldsa.NewKey44(seed)
			if err != nil {
				t.Fatal(err)
			}
			sign = func(m, c []byte) ([]byte, error) { return key.Sign(nil, m, c) }
			verify = key.PublicKey().Verify
		case 1:
			key, err := mldsa.NewKey65(seed)
			if err != nil {
				t.Fatal(err)
			}
			sign = func(m, c []byte) ([]byte, error) { return key.Sign(nil, m, c) }
			verify = key.PublicKey().Verify
		case 2:
			key, err := mldsa.NewKey87(seed)
			if err != nil {
				t.Fatal(err)
			}
			sign = func(m, c []byte) ([]byte, error) { return key.Sign(nil, m, c) }
			verify = key.PublicKey().Verify
		}

		sig, err := sign(message, context)
		if err != nil {
			t.Fatal(err)
		}
		if !verify(sig, message, context) {
			t.Fatal("signature rejected by its own key")
		}

		tampered := bytes.Clone(sig)
		tampered[0] ^= 0x01
		if verify(tampered, message, context) {
			t.Error("tampered signature accepted")
		}
	})
}
