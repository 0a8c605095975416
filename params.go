package mldsa

// parameters collects one security level's quantities from FIPS 204
// Table 1 together with the encoded sizes they induce.
type parameters struct {
	name string

	k      int // rows of A, length of s2 and t
	l      int // columns of A, length of s1 and y
	eta    int // infinity norm bound on s1 and s2
	tau    int // nonzero coefficients in the challenge
	omega  int // maximum total hint weight
	lambda int // collision strength of the commitment hash, in bits

	gamma1Bits int    // y coefficients lie in (-2^gamma1Bits, 2^gamma1Bits]
	gamma2     uint32 // low-order rounding range
	beta       uint32 // tau * eta

	publicKeySize  int
	privateKeySize int
	signatureSize  int
}

//nolint:gochecknoglobals // these are constants
var (
	params44 = &parameters{
		name:           "ML-DSA-44",
		k:              4,
		l:              4,
		eta:            2,
		tau:            39,
		omega:          80,
		lambda:         128,
		gamma1Bits:     17,
		gamma2:         (q - 1) / 88,
		beta:           78,
		publicKeySize:  PublicKeySize44,
		privateKeySize: PrivateKeySize44,
		signatureSize:  SignatureSize44,
	}

	params65 = &parameters{
		name:           "ML-DSA-65",
		k:              6,
		l:              5,
		eta:            4,
		tau:            49,
		omega:          55,
		lambda:         192,
		gamma1Bits:     19,
		gamma2:         (q - 1) / 32,
		beta:           196,
		publicKeySize:  PublicKeySize65,
		privateKeySize: PrivateKeySize65,
		signatureSize:  SignatureSize65,
	}

	params87 = &parameters{
		name:           "ML-DSA-87",
		k:              8,
		l:              7,
		eta:            2,
		tau:            60,
		omega:          75,
		lambda:         256,
		gamma1Bits:     19,
		gamma2:         (q - 1) / 32,
		beta:           120,
		publicKeySize:  PublicKeySize87,
		privateKeySize: PrivateKeySize87,
		signatureSize:  SignatureSize87,
	}
)

func (p *parameters) gamma1() uint32 {
	return 1 << p.gamma1Bits
}

// commitmentHashSize is the length of c-tilde in bytes.
func (p *parameters) commitmentHashSize() int {
	return p.lambda / 4
}

// zPolySize is the packed length of one response polynomial, one
// gamma1Bits+1 bit field per coefficient.
func (p *parameters) zPolySize() int {
	return n * (p.gamma1Bits + 1) / 8
}

// etaPolySize is the packed length of one short secret polynomial.
func (p *parameters) etaPolySize() int {
	if p.eta == 2 {
		return n * 3 / 8
	}
	return n * 4 / 8
}

// w1PolySize is the packed length of one commitment polynomial: 6-bit
// fields when gamma2 is (q-1)/88, 4-bit fields when it is (q-1)/32.
func (p *parameters) w1PolySize() int {
	if p.gamma2 == (q-1)/88 {
		return n * 6 / 8
	}
	return n * 4 / 8
}

// hintSize is the encoded length of the hint vector.
func (p *parameters) hintSize() int {
	return p.omega + p.k
}
