// Package mldsa implements the ML-DSA module-lattice signature schemes
// from [FIPS 204] at all three security levels: ML-DSA-44, ML-DSA-65,
// and ML-DSA-87.
//
// Keys are generated from 32-byte seeds, signatures are hedged by
// default and deterministic when no randomness source is supplied, and
// an optional context string of up to 255 bytes separates signing
// domains. Private keys implement [crypto.Signer] and
// [crypto.MessageSigner].
//
// Every hash and XOF invocation in the scheme, from key expansion to
// the verifier's challenge recomputation, runs on this module's own
// Keccak-f[1600] core. Expanding the public matrix drives four SHAKE128
// instances in lockstep over the batched permutation, which is where
// the bulk of key generation and verification time goes.
//
// Basic usage:
//
//	key, err := mldsa.GenerateKey65(rand.Reader)
//	if err != nil {
//		// handle error
//	}
//	sig, err := key.Sign(rand.Reader, message, nil)
//	if err != nil {
//		// handle error
//	}
//	valid := key.PublicKey().Verify(sig, message, nil)
//
// [FIPS 204]: https://doi.org/10.6028/NIST.FIPS.204
package mldsa

import (
	"crypto"
	"errors"
)

const (
	// SeedSize is the length of the private seed a key pair expands from.
	SeedSize = 32

	// n is the polynomial degree of the ring Z_q[X]/(X^256+1).
	n = 256

	// q is the modulus, 2^23 - 2^13 + 1.
	q = 8380417

	// d is the number of bits dropped from t to form t1.
	d = 13

	qMinus1Div2 = (q - 1) / 2
)

// Encoded key and signature lengths, in bytes.
const (
	PublicKeySize44  = 1312
	PrivateKeySize44 = 2560
	SignatureSize44  = 2420

	PublicKeySize65  = 1952
	PrivateKeySize65 = 4032
	SignatureSize65  = 3309

	PublicKeySize87  = 2592
	PrivateKeySize87 = 4896
	SignatureSize87  = 4627
)

// ErrInvalidSeed is returned when a seed is not exactly SeedSize bytes.
var ErrInvalidSeed = errors.New("mldsa: invalid seed length")

// ErrInvalidKey is returned when an encoded key has the wrong length or
// contains an out-of-range coefficient.
var ErrInvalidKey = errors.New("mldsa: invalid key encoding")

// ErrContextTooLong is returned when a signing or verification context
// exceeds 255 bytes.
var ErrContextTooLong = errors.New("mldsa: context longer than 255 bytes")

// SignerOpts carries the optional domain-separation context for signing
// through the [crypto.Signer] interface.
type SignerOpts struct {
	// Context separates signing domains. It must be at most 255 bytes.
	Context []byte
}

// HashFunc returns 0: ML-DSA signs messages directly, never digests.
func (opts *SignerOpts) HashFunc() crypto.Hash {
	return 0
}

var (
	_ crypto.Signer = (*PrivateKey44)(nil)
	_ crypto.Signer = (*PrivateKey65)(nil)
	_ crypto.Signer = (*PrivateKey87)(nil)

	_ crypto.MessageSigner = (*PrivateKey44)(nil)
	_ crypto.MessageSigner = (*PrivateKey65)(nil)
	_ crypto.MessageSigner = (*PrivateKey87)(nil)
)
