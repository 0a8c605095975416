package mldsa

import (
	"crypto"
	"io"
)

// Key44 is an ML-DSA-44 key pair expanded from a seed.
type Key44 struct {
	kp keyPair
}

// PrivateKey44 is an ML-DSA-44 private key.
type PrivateKey44 struct {
	priv privateKey
}

// PublicKey44 is an ML-DSA-44 public key.
type PublicKey44 struct {
	pub publicKey
}

// GenerateKey44 generates an ML-DSA-44 key pair from rand.
func GenerateKey44(rand io.Reader) (*Key44, error) {
	kp, err := generateKey(params44, rand)
	if err != nil {
		return nil, err
	}
	return &Key44{kp: *kp}, nil
}

// NewKey44 expands a key pair from a SeedSize-byte seed.
func NewKey44(seed []byte) (*Key44, error) {
	kp, err := newKeyPair(params44, seed)
	if err != nil {
		return nil, err
	}
	return &Key44{kp: *kp}, nil
}

// NewPrivateKey44 parses an encoded private key.
func NewPrivateKey44(b []byte) (*PrivateKey44, error) {
	sk, err := parsePrivateKey(params44, b)
	if err != nil {
		return nil, err
	}
	return &PrivateKey44{priv: *sk}, nil
}

// NewPublicKey44 parses an encoded public key.
func NewPublicKey44(b []byte) (*PublicKey44, error) {
	pk, err := parsePublicKey(params44, b)
	if err != nil {
		return nil, err
	}
	return &PublicKey44{pub: *pk}, nil
}

// Bytes returns the generating seed, the most compact encoding of the
// key pair. The expanded private key encoding is available through
// PrivateKey().Bytes().
func (key *Key44) Bytes() []byte {
	b := make([]byte, SeedSize)
	copy(b, key.kp.seed[:])
	return b
}

// PrivateKey returns the expanded private key.
func (key *Key44) PrivateKey() *PrivateKey44 {
	return &PrivateKey44{priv: key.kp.privateKey}
}

// PublicKey returns the public key.
func (key *Key44) PublicKey() *PublicKey44 {
	return &PublicKey44{pub: key.kp.pub}
}

// Sign signs message bound to an optional context of at most 255
// bytes, reading hedging randomness from rand. A nil rand produces a
// deterministic signature.
func (key *Key44) Sign(rand io.Reader, message, context []byte) ([]byte, error) {
	return key.kp.signContext(rand, message, context)
}

// Public implements crypto.Signer.
func (sk *PrivateKey44) Public() crypto.PublicKey {
	return &PublicKey44{pub: *sk.priv.public()}
}

// Sign implements crypto.Signer. The digest is the message itself;
// ML-DSA never signs a prehash. If opts is a *SignerOpts, its Context
// binds the signature to a domain.
func (sk *PrivateKey44) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	return sk.priv.signMessage(rand, digest, opts)
}

// SignMessage implements crypto.MessageSigner.
func (sk *PrivateKey44) SignMessage(rand io.Reader, msg []byte, opts crypto.SignerOpts) ([]byte, error) {
	return sk.priv.signMessage(rand, msg, opts)
}

// SignWithContext signs message bound to a context of at most 255
// bytes. A nil rand produces a deterministic signature.
func (sk *PrivateKey44) SignWithContext(rand io.Reader, message, context []byte) ([]byte, error) {
	return sk.priv.signContext(rand, message, context)
}

// Bytes returns the encoded private key.
func (sk *PrivateKey44) Bytes() []byte {
	return sk.priv.bytes()
}

// Verify reports whether sig is a valid signature of message under the
// given context.
func (pk *PublicKey44) Verify(sig, message, context []byte) bool {
	return pk.pub.verifyContext(sig, message, context)
}

// Bytes returns the encoded public key.
func (pk *PublicKey44) Bytes() []byte {
	return pk.pub.bytes()
}

// Equal reports whether pk and other are the same public key.
func (pk *PublicKey44) Equal(other crypto.PublicKey) bool {
	o, ok := other.(*PublicKey44)
	if !ok {
		return false
	}
	return pk.pub.equal(&o.pub)
}
