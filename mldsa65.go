package mldsa

import (
	"crypto"
	"io"
)

// Key65 is an ML-DSA-65 key pair expanded from a seed.
type Key65 struct {
	kp keyPair
}

// PrivateKey65 is an ML-DSA-65 private key.
type PrivateKey65 struct {
	priv privateKey
}

// PublicKey65 is an ML-DSA-65 public key.
type PublicKey65 struct {
	pub publicKey
}

// GenerateKey65 generates an ML-DSA-65 key pair from rand.
func GenerateKey65(rand io.Reader) (*Key65, error) {
	kp, err := generateKey(params65, rand)
	if err != nil {
		return nil, err
	}
	return &Key65{kp: *kp}, nil
}

// NewKey65 expands a key pair from a SeedSize-byte seed.
func NewKey65(seed []byte) (*Key65, error) {
	kp, err := newKeyPair(params65, seed)
	if err != nil {
		return nil, err
	}
	return &Key65{kp: *kp}, nil
}

// NewPrivateKey65 parses an encoded private key.
func NewPrivateKey65(b []byte) (*PrivateKey65, error) {
	sk, err := parsePrivateKey(params65, b)
	if err != nil {
		return nil, err
	}
	return &PrivateKey65{priv: *sk}, nil
}

// NewPublicKey65 parses an encoded public key.
func NewPublicKey65(b []byte) (*PublicKey65, error) {
	pk, err := parsePublicKey(params65, b)
	if err != nil {
		return nil, err
	}
	return &PublicKey65{pub: *pk}, nil
}

// Bytes returns the generating seed, the most compact encoding of the
// key pair. The expanded private key encoding is available through
// PrivateKey().Bytes().
func (key *Key65) Bytes() []byte {
	b := make([]byte, SeedSize)
	copy(b, key.kp.seed[:])
	return b
}

// PrivateKey returns the expanded private key.
func (key *Key65) PrivateKey() *PrivateKey65 {
	return &PrivateKey65{priv: key.kp.privateKey}
}

// PublicKey returns the public key.
func (key *Key65) PublicKey() *PublicKey65 {
	return &PublicKey65{pub: key.kp.pub}
}

// Sign signs message bound to an optional context of at most 255
// bytes, reading hedging randomness from rand. A nil rand produces a
// deterministic signature.
func (key *Key65) Sign(rand io.Reader, message, context []byte) ([]byte, error) {
	return key.kp.signContext(rand, message, context)
}

// Public implements crypto.Signer.
func (sk *PrivateKey65) Public() crypto.PublicKey {
	return &PublicKey65{pub: *sk.priv.public()}
}

// Sign implements crypto.Signer. The digest is the message itself;
// ML-DSA never signs a prehash. If opts is a *SignerOpts, its Context
// binds the signature to a domain.
func (sk *PrivateKey65) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	return sk.priv.signMessage(rand, digest, opts)
}

// SignMessage implements crypto.MessageSigner.
func (sk *PrivateKey65) SignMessage(rand io.Reader, msg []byte, opts crypto.SignerOpts) ([]byte, error) {
	return sk.priv.signMessage(rand, msg, opts)
}

// SignWithContext signs message bound to a context of at most 255
// bytes. A nil rand produces a deterministic signature.
func (sk *PrivateKey65) SignWithContext(rand io.Reader, message, context []byte) ([]byte, error) {
	return sk.priv.signContext(rand, message, context)
}

// Bytes returns the encoded private key.
func (sk *PrivateKey65) Bytes() []byte {
	return sk.priv.bytes()
}

// Verify reports whether sig is a valid signature of message under the
// given context.
func (pk *PublicKey65) Verify(sig, message, context []byte) bool {
	return pk.pub.verifyContext(sig, message, context)
}

// Bytes returns the encoded public key.
func (pk *PublicKey65) Bytes() []byte {
	return pk.pub.bytes()
}

// Equal reports whether pk and other are the same public key.
func (pk *PublicKey65) Equal(other crypto.PublicKey) bool {
	o, ok := other.(*PublicKey65)
	if !ok {
		return false
	}
	return pk.pub.equal(&o.pub)
}
