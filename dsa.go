package mldsa

import (
	"crypto"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"

	"github.com/ironlattice/mldsa/internal/sha3"
)

// privateKey is the level-independent private key: the two seeds, the
// public key digest, the short vectors, the low part of t, and the
// expanded matrix in NTT form.
type privateKey struct {
	p   *parameters
	rho [32]byte
	key [32]byte
	tr  [64]byte
	s1  []ringElement
	s2  []ringElement
	t0  []ringElement
	a   []nttElement
}

// publicKey is the level-independent public key with the matrix and
// public key digest cached.
type publicKey struct {
	p   *parameters
	rho [32]byte
	t1  []ringElement
	tr  [64]byte
	a   []nttElement
}

// keyPair binds a private key to its originating seed and the public
// key derived alongside it.
type keyPair struct {
	privateKey
	seed [SeedSize]byte
	pub  publicKey
}

func generateKey(p *parameters, rand io.Reader) (*keyPair, error) {
	var seed [SeedSize]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return nil, fmt.Errorf("mldsa: reading key generation seed: %w", err)
	}
	return newKeyPair(p, seed[:])
}

func newKeyPair(p *parameters, seed []byte) (*keyPair, error) {
	if len(seed) != SeedSize {
		return nil, ErrInvalidSeed
	}
	kp := &keyPair{}
	copy(kp.seed[:], seed)
	keyGen(p, &kp.seed, &kp.privateKey, &kp.pub)
	return kp, nil
}

// keyGen expands seed into a key pair. FIPS 204 Algorithm 6.
func keyGen(p *parameters, seed *[SeedSize]byte, sk *privateKey, pk *publicKey) {
	h := sha3.NewShake256()
	_, _ = h.Write(seed[:])
	_, _ = h.Write([]byte{byte(p.k), byte(p.l)})

	var expanded [128]byte
	_, _ = h.Read(expanded[:])

	sk.p = p
	copy(sk.rho[:], expanded[:32])
	rhoPrime := expanded[32:96]
	copy(sk.key[:], expanded[96:128])

	sk.a = expandMatrix(p, &sk.rho)

	sk.s1 = make([]ringElement, p.l)
	for i := range sk.s1 {
		sk.s1[i] = sampleBoundedPoly(rhoPrime, p.eta, uint16(i))
	}
	sk.s2 = make([]ringElement, p.k)
	for i := range sk.s2 {
		sk.s2[i] = sampleBoundedPoly(rhoPrime, p.eta, uint16(p.l+i))
	}

	t := computeT(p, sk.a, sk.s1, sk.s2)

	pk.p = p
	pk.rho = sk.rho
	pk.a = sk.a
	pk.t1 = make([]ringElement, p.k)
	sk.t0 = make([]ringElement, p.k)
	for i := range t {
		for j := range t[i] {
			pk.t1[i][j], sk.t0[i][j] = power2Round(t[i][j])
		}
	}

	h.Reset()
	_, _ = h.Write(pk.bytes())
	_, _ = h.Read(sk.tr[:])
	pk.tr = sk.tr
}

// computeT returns t = A*s1 + s2 in the standard domain.
func computeT(p *parameters, a []nttElement, s1, s2 []ringElement) []ringElement {
	s1NTT := make([]nttElement, p.l)
	for i := range s1NTT {
		s1NTT[i] = ntt(s1[i])
	}
	t := make([]ringElement, p.k)
	for i := range t {
		var acc nttElement
		for j := range s1NTT {
			acc = polyAdd(acc, nttMul(a[i*p.l+j], s1NTT[j]))
		}
		t[i] = polyAdd(invNTT(acc), s2[i])
	}
	return t
}

// public recomputes the public key from the private components.
func (sk *privateKey) public() *publicKey {
	p := sk.p
	pk := &publicKey{p: p, rho: sk.rho, tr: sk.tr, a: sk.a}

	t := computeT(p, sk.a, sk.s1, sk.s2)
	pk.t1 = make([]ringElement, p.k)
	for i := range t {
		for j := range t[i] {
			pk.t1[i][j], _ = power2Round(t[i][j])
		}
	}
	return pk
}

// messageRepresentative prepends the pure-signature domain byte and the
// context string to the message. FIPS 204 Algorithm 2.
func messageRepresentative(message, context []byte) []byte {
	m := make([]byte, 0, 2+len(context)+len(message))
	m = append(m, 0, byte(len(context)))
	m = append(m, context...)
	m = append(m, message...)
	return m
}

// signContext validates the context, draws the per-signature
// randomness, and signs the domain-separated message. A nil rand
// selects the deterministic variant, which uses an all-zero rnd.
func (sk *privateKey) signContext(rand io.Reader, message, context []byte) ([]byte, error) {
	if len(context) > 255 {
		return nil, ErrContextTooLong
	}

	var rnd [32]byte
	if rand != nil {
		if _, err := io.ReadFull(rand, rnd[:]); err != nil {
			return nil, fmt.Errorf("mldsa: reading signature randomness: %w", err)
		}
	}

	return sk.sign(&rnd, messageRepresentative(message, context)), nil
}

// signMessage adapts the crypto.Signer and crypto.MessageSigner calling
// conventions, pulling the context out of opts when it is a
// *SignerOpts.
func (sk *privateKey) signMessage(rand io.Reader, msg []byte, opts crypto.SignerOpts) ([]byte, error) {
	if opts != nil && opts.HashFunc() != 0 {
		return nil, errors.New("mldsa: cannot sign pre-hashed messages")
	}
	var context []byte
	if o, ok := opts.(*SignerOpts); ok && o != nil {
		context = o.Context
	}
	return sk.signContext(rand, msg, context)
}

// sign runs the rejection loop until a candidate satisfies all four
// bounds. FIPS 204 Algorithm 7.
func (sk *privateKey) sign(rnd *[32]byte, mPrime []byte) []byte {
	p := sk.p

	h := sha3.NewShake256()
	_, _ = h.Write(sk.tr[:])
	_, _ = h.Write(mPrime)
	var mu [64]byte
	_, _ = h.Read(mu[:])

	h.Reset()
	_, _ = h.Write(sk.key[:])
	_, _ = h.Write(rnd[:])
	_, _ = h.Write(mu[:])
	var rhoPrime [64]byte
	_, _ = h.Read(rhoPrime[:])

	s1NTT := make([]nttElement, p.l)
	for i := range s1NTT {
		s1NTT[i] = ntt(sk.s1[i])
	}
	s2NTT := make([]nttElement, p.k)
	t0NTT := make([]nttElement, p.k)
	for i := range s2NTT {
		s2NTT[i] = ntt(sk.s2[i])
		t0NTT[i] = ntt(sk.t0[i])
	}

	var maskSeed [66]byte
	copy(maskSeed[:64], rhoPrime[:])

	y := make([]ringElement, p.l)
	yNTT := make([]nttElement, p.l)
	w := make([]ringElement, p.k)
	w1 := make([]ringElement, p.k)
	z := make([]ringElement, p.l)
	cs2 := make([]ringElement, p.k)
	ct0 := make([]ringElement, p.k)
	r0 := make([][n]int32, p.k)
	hints := make([]ringElement, p.k)

	for kappa := uint16(0); ; kappa += uint16(p.l) {
		for i := range y {
			nonce := kappa + uint16(i)
			maskSeed[64] = byte(nonce)
			maskSeed[65] = byte(nonce >> 8)
			y[i] = expandMask(maskSeed[:], p.gamma1Bits)
			yNTT[i] = ntt(y[i])
		}

		for i := range w {
			var acc nttElement
			for j := range yNTT {
				acc = polyAdd(acc, nttMul(sk.a[i*p.l+j], yNTT[j]))
			}
			w[i] = invNTT(acc)
			for j := range w[i] {
				w1[i][j] = fieldElement(highBits(w[i][j], p.gamma2))
			}
		}

		h.Reset()
		_, _ = h.Write(mu[:])
		for i := range w1 {
			_, _ = h.Write(packW1(p, w1[i]))
		}
		cTilde := make([]byte, p.commitmentHashSize())
		_, _ = h.Read(cTilde)

		c := sampleChallenge(cTilde, p.tau)
		cNTT := ntt(c)

		for i := range z {
			cs1 := invNTT(nttMul(cNTT, s1NTT[i]))
			z[i] = polyAdd(y[i], cs1)
		}
		if vectorInfinityNorm(z) >= p.gamma1()-p.beta {
			continue
		}

		for i := range cs2 {
			cs2[i] = invNTT(nttMul(cNTT, s2NTT[i]))
			for j := range cs2[i] {
				_, r0[i][j] = decompose(fieldSub(w[i][j], cs2[i][j]), p.gamma2)
			}
		}
		if vectorInfinityNormSigned(r0) >= int32(p.gamma2-p.beta) {
			continue
		}

		for i := range ct0 {
			ct0[i] = invNTT(nttMul(cNTT, t0NTT[i]))
		}
		if vectorInfinityNorm(ct0) >= p.gamma2 {
			continue
		}

		for i := range hints {
			for j := range hints[i] {
				r := fieldSub(w[i][j], cs2[i][j])
				hints[i][j] = makeHint(ct0[i][j], r, p.gamma2)
			}
		}
		if hintWeight(hints) > p.omega {
			continue
		}

		sig := make([]byte, 0, p.signatureSize)
		sig = append(sig, cTilde...)
		for i := range z {
			sig = append(sig, packZ(p, z[i])...)
		}
		sig = append(sig, packHint(hints, p.omega)...)
		return sig
	}
}

// verifyContext validates the context and verifies the signature over
// the domain-separated message.
func (pk *publicKey) verifyContext(sig, message, context []byte) bool {
	if len(context) > 255 {
		return false
	}
	return pk.verify(sig, messageRepresentative(message, context))
}

// verify checks a signature against the recomputed commitment.
// FIPS 204 Algorithm 8.
func (pk *publicKey) verify(sig, mPrime []byte) bool {
	p := pk.p
	if len(sig) != p.signatureSize {
		return false
	}

	h := sha3.NewShake256()
	_, _ = h.Write(pk.tr[:])
	_, _ = h.Write(mPrime)
	var mu [64]byte
	_, _ = h.Read(mu[:])

	cTilde := sig[:p.commitmentHashSize()]
	offset := p.commitmentHashSize()

	z := make([]ringElement, p.l)
	for i := range z {
		z[i] = unpackZ(p, sig[offset:offset+p.zPolySize()])
		offset += p.zPolySize()
	}
	if vectorInfinityNorm(z) >= p.gamma1()-p.beta {
		return false
	}

	hints := make([]ringElement, p.k)
	if !unpackHint(sig[offset:], hints, p.omega) {
		return false
	}

	c := sampleChallenge(cTilde, p.tau)
	cNTT := ntt(c)

	zNTT := make([]nttElement, p.l)
	for i := range zNTT {
		zNTT[i] = ntt(z[i])
	}

	h.Reset()
	_, _ = h.Write(mu[:])
	for i := 0; i < p.k; i++ {
		var acc nttElement
		for j := range zNTT {
			acc = polyAdd(acc, nttMul(pk.a[i*p.l+j], zNTT[j]))
		}

		var t1Scaled ringElement
		for j := range t1Scaled {
			t1Scaled[j] = pk.t1[i][j] << d
		}
		acc = polySub(acc, nttMul(cNTT, ntt(t1Scaled)))
		wApprox := invNTT(acc)

		var w1 ringElement
		for j := range w1 {
			w1[j] = useHint(hints[i][j], wApprox[j], p.gamma2)
		}
		_, _ = h.Write(packW1(p, w1))
	}

	check := make([]byte, len(cTilde))
	_, _ = h.Read(check)
	return subtle.ConstantTimeCompare(cTilde, check) == 1
}

// bytes encodes the private key: rho, K, tr, then the packed s1, s2,
// and t0 vectors.
func (sk *privateKey) bytes() []byte {
	p := sk.p
	b := make([]byte, 0, p.privateKeySize)
	b = append(b, sk.rho[:]...)
	b = append(b, sk.key[:]...)
	b = append(b, sk.tr[:]...)
	for i := range sk.s1 {
		b = append(b, packEta(p, sk.s1[i])...)
	}
	for i := range sk.s2 {
		b = append(b, packEta(p, sk.s2[i])...)
	}
	for i := range sk.t0 {
		b = append(b, packT0(sk.t0[i])...)
	}
	return b
}

// bytes encodes the public key: rho then the packed t1 vector.
func (pk *publicKey) bytes() []byte {
	b := make([]byte, 0, pk.p.publicKeySize)
	b = append(b, pk.rho[:]...)
	for i := range pk.t1 {
		b = append(b, packT1(pk.t1[i])...)
	}
	return b
}

func (pk *publicKey) equal(other *publicKey) bool {
	if pk.p != other.p || pk.rho != other.rho {
		return false
	}
	for i := range pk.t1 {
		if pk.t1[i] != other.t1[i] {
			return false
		}
	}
	return true
}

func parsePublicKey(p *parameters, b []byte) (*publicKey, error) {
	if len(b) != p.publicKeySize {
		return nil, ErrInvalidKey
	}

	pk := &publicKey{p: p}
	copy(pk.rho[:], b[:32])

	offset := 32
	pk.t1 = make([]ringElement, p.k)
	for i := range pk.t1 {
		pk.t1[i] = unpackT1(b[offset : offset+encodingSize10])
		offset += encodingSize10
	}

	pk.a = expandMatrix(p, &pk.rho)

	h := sha3.NewShake256()
	_, _ = h.Write(b)
	_, _ = h.Read(pk.tr[:])

	return pk, nil
}

func parsePrivateKey(p *parameters, b []byte) (*privateKey, error) {
	if len(b) != p.privateKeySize {
		return nil, ErrInvalidKey
	}

	sk := &privateKey{p: p}
	copy(sk.rho[:], b[:32])
	copy(sk.key[:], b[32:64])
	copy(sk.tr[:], b[64:128])

	offset := 128
	var err error
	sk.s1 = make([]ringElement, p.l)
	for i := range sk.s1 {
		if sk.s1[i], err = unpackEta(p, b[offset:offset+p.etaPolySize()]); err != nil {
			return nil, err
		}
		offset += p.etaPolySize()
	}
	sk.s2 = make([]ringElement, p.k)
	for i := range sk.s2 {
		if sk.s2[i], err = unpackEta(p, b[offset:offset+p.etaPolySize()]); err != nil {
			return nil, err
		}
		offset += p.etaPolySize()
	}
	sk.t0 = make([]ringElement, p.k)
	for i := range sk.t0 {
		sk.t0[i] = unpackT0(b[offset : offset+encodingSize13])
		offset += encodingSize13
	}

	sk.a = expandMatrix(p, &sk.rho)

	return sk, nil
}
