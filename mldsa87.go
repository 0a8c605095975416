package mldsa

import (
	"crypto"
	"io"
)

// Key87 is an ML-DSA-87 key pair expanded from a seed.
type Key87 struct {
	kp keyPair
}

// PrivateKey87 is an ML-DSA-87 private key.
type PrivateKey87 struct {
	priv privateKey
}

// PublicKey87 is an ML-DSA-87 public key.
type PublicKey87 struct {
	pub publicKey
}

// GenerateKey87 generates an ML-DSA-87 key pair from rand.
func GenerateKey87(rand io.Reader) (*Key87, error) {
	kp, err := generateKey(params87, rand)
	if err != nil {
		return nil, err
	}
	return &Key87{kp: *kp}, nil
}

// NewKey87 expands a key pair from a SeedSize-byte seed.
func NewKey87(seed []byte) (*Key87, error) {
	kp, err := newKeyPair(params87, seed)
	if err != nil {
		return nil, err
	}
	return &Key87{kp: *kp}, nil
}

// NewPrivateKey87 parses an encoded private key.
func NewPrivateKey87(b []byte) (*PrivateKey87, error) {
	sk, err := parsePrivateKey(params87, b)
	if err != nil {
		return nil, err
	}
	return &PrivateKey87{priv: *sk}, nil
}

// NewPublicKey87 parses an encoded public key.
func NewPublicKey87(b []byte) (*PublicKey87, error) {
	pk, err := parsePublicKey(params87, b)
	if err != nil {
		return nil, err
	}
	return &PublicKey87{pub: *pk}, nil
}

// Bytes returns the generating seed, the most compact encoding of the
// key pair. The expanded private key encoding is available through
// PrivateKey().Bytes().
func (key *Key87) Bytes() []byte {
	b := make([]byte, SeedSize)
	copy(b, key.kp.seed[:])
	return b
}

// PrivateKey returns the expanded private key.
func (key *Key87) PrivateKey() *PrivateKey87 {
	return &PrivateKey87{priv: key.kp.privateKey}
}

// PublicKey returns the public key.
func (key *Key87) PublicKey() *PublicKey87 {
	return &PublicKey87{pub: key.kp.pub}
}

// Sign signs message bound to an optional context of at most 255
// bytes, reading hedging randomness from rand. A nil rand produces a
// deterministic signature.
func (key *Key87) Sign(rand io.Reader, message, context []byte) ([]byte, error) {
	return key.kp.signContext(rand, message, context)
}

// Public implements crypto.Signer.
func (sk *PrivateKey87) Public() crypto.PublicKey {
	return &PublicKey87{pub: *sk.priv.public()}
}

// Sign implements crypto.Signer. The digest is the message itself;
// ML-DSA never signs a prehash. If opts is a *SignerOpts, its Context
// binds the signature to a domain.
func (sk *PrivateKey87) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	return sk.priv.signMessage(rand, digest, opts)
}

// SignMessage implements crypto.MessageSigner.
func (sk *PrivateKey87) SignMessage(rand io.Reader, msg []byte, opts crypto.SignerOpts) ([]byte, error) {
	return sk.priv.signMessage(rand, msg, opts)
}

// SignWithContext signs message bound to a context of at most 255
// bytes. A nil rand produces a deterministic signature.
func (sk *PrivateKey87) SignWithContext(rand io.Reader, message, context []byte) ([]byte, error) {
	return sk.priv.signContext(rand, message, context)
}

// Bytes returns the encoded private key.
func (sk *PrivateKey87) Bytes() []byte {
	return sk.priv.bytes()
}

// Verify reports whether sig is a valid signature of message under the
// given context.
func (pk *PublicKey87) Verify(sig, message, context []byte) bool {
	return pk.pub.verifyContext(sig, message, context)
}

// Bytes returns the encoded public key.
func (pk *PublicKey87) Bytes() []byte {
	return pk.pub.bytes()
}

// Equal reports whether pk and other are the same public key.
func (pk *PublicKey87) Equal(other crypto.PublicKey) bool {
	o, ok := other.(*PublicKey87)
	if !ok {
		return false
	}
	return pk.pub.equal(&o.pub)
}
