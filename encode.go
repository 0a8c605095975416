package mldsa

// Packed lengths of one polynomial at each field width.
const (
	encodingSize3  = n * 3 / 8
	encodingSize4  = n * 4 / 8
	encodingSize6  = n * 6 / 8
	encodingSize10 = n * 10 / 8
	encodingSize13 = n * 13 / 8
	encodingSize18 = n * 18 / 8
	encodingSize20 = n * 20 / 8
)

// packT1 packs 10-bit public coefficients, four per five bytes.
func packT1(f ringElement) []byte {
	b := make([]byte, encodingSize10)
	for i := 0; i < n; i += 4 {
		x := uint64(f[i]) | uint64(f[i+1])<<10 | uint64(f[i+2])<<20 | uint64(f[i+3])<<30
		b[i/4*5] = byte(x)
		b[i/4*5+1] = byte(x >> 8)
		b[i/4*5+2] = byte(x >> 16)
		b[i/4*5+3] = byte(x >> 24)
		b[i/4*5+4] = byte(x >> 32)
	}
	return b
}

func unpackT1(b []byte) ringElement {
	var f ringElement
	for i := 0; i < n; i += 4 {
		x := uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 | uint64(b[4])<<32
		f[i] = fieldElement(x & 0x3ff)
		f[i+1] = fieldElement((x >> 10) & 0x3ff)
		f[i+2] = fieldElement((x >> 20) & 0x3ff)
		f[i+3] = fieldElement((x >> 30) & 0x3ff)
		b = b[5:]
	}
	return f
}

// packT0 packs 13-bit coefficients centered on 2^(d-1), eight per
// thirteen bytes.
func packT0(f ringElement) []byte {
	b := make([]byte, encodingSize13)
	const center = 1 << (d - 1)
	idx := 0
	for i := 0; i < n; i += 8 {
		var x1, x2 uint64
		x1 = uint64(fieldSub(center, f[i]))
		x1 |= uint64(fieldSub(center, f[i+1])) << 13
		x1 |= uint64(fieldSub(center, f[i+2])) << 26
		x1 |= uint64(fieldSub(center, f[i+3])) << 39
		a := uint64(fieldSub(center, f[i+4]))
		x1 |= a << 52
		x2 = a >> 12
		x2 |= uint64(fieldSub(center, f[i+5])) << 1
		x2 |= uint64(fieldSub(center, f[i+6])) << 14
		x2 |= uint64(fieldSub(center, f[i+7])) << 27

		b[idx] = byte(x1)
		b[idx+1] = byte(x1 >> 8)
		b[idx+2] = byte(x1 >> 16)
		b[idx+3] = byte(x1 >> 24)
		b[idx+4] = byte(x1 >> 32)
		b[idx+5] = byte(x1 >> 40)
		b[idx+6] = byte(x1 >> 48)
		b[idx+7] = byte(x1 >> 56)
		b[idx+8] = byte(x2)
		b[idx+9] = byte(x2 >> 8)
		b[idx+10] = byte(x2 >> 16)
		b[idx+11] = byte(x2 >> 24)
		b[idx+12] = byte(x2 >> 32)
		idx += 13
	}
	return b
}

func unpackT0(b []byte) ringElement {
	var f ringElement
	const center = 1 << (d - 1)
	const mask = (1 << 13) - 1
	for i := 0; i < n; i += 8 {
		x1 := uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
			uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
		x2 := uint64(b[8]) | uint64(b[9])<<8 | uint64(b[10])<<16 | uint64(b[11])<<24 | uint64(b[12])<<32
		b = b[13:]

		f[i] = fieldSub(center, fieldElement(x1&mask))
		f[i+1] = fieldSub(center, fieldElement((x1>>13)&mask))
		f[i+2] = fieldSub(center, fieldElement((x1>>26)&mask))
		f[i+3] = fieldSub(center, fieldElement((x1>>39)&mask))
		f[i+4] = fieldSub(center, fieldElement(((x1>>52)|(x2<<12))&mask))
		f[i+5] = fieldSub(center, fieldElement((x2>>1)&mask))
		f[i+6] = fieldSub(center, fieldElement((x2>>14)&mask))
		f[i+7] = fieldSub(center, fieldElement((x2>>27)&mask))
	}
	return f
}

// packEta2 packs coefficients in [-2, 2] as 3-bit fields holding 2-c.
func packEta2(f ringElement) []byte {
	b := make([]byte, encodingSize3)
	for i := 0; i < n; i += 8 {
		var x uint32
		for j := range 8 {
			x |= uint32(fieldSub(2, f[i+j])) << (3 * j)
		}
		b[i/8*3] = byte(x)
		b[i/8*3+1] = byte(x >> 8)
		b[i/8*3+2] = byte(x >> 16)
	}
	return b
}

// unpackEta2 rejects any 3-bit field above 4; those values never occur
// in a canonical encoding.
func unpackEta2(b []byte) (ringElement, error) {
	var f ringElement
	for i := 0; i < n; i += 8 {
		x := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
		// octal mask selecting the top bit of each 3-bit field
		msbs := x & 0o44444444
		if mask := (msbs >> 1) | (msbs >> 2); mask&x != 0 {
			return ringElement{}, ErrInvalidKey
		}
		b = b[3:]
		for j := range 8 {
			f[i+j] = fieldSub(2, fieldElement((x>>(3*j))&0x7))
		}
	}
	return f, nil
}

// packEta4 packs coefficients in [-4, 4] as 4-bit fields holding 4-c.
func packEta4(f ringElement) []byte {
	b := make([]byte, encodingSize4)
	for i := 0; i < n; i += 2 {
		b[i/2] = byte(fieldSub(4, f[i])) | byte(fieldSub(4, f[i+1]))<<4
	}
	return b
}

// unpackEta4 rejects any nibble above 8.
func unpackEta4(b []byte) (ringElement, error) {
	var f ringElement
	for i := 0; i < n; i += 8 {
		x := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
		msbs := x & 0x88888888
		if mask := (msbs >> 1) | (msbs >> 2) | (msbs >> 3); mask&x != 0 {
			return ringElement{}, ErrInvalidKey
		}
		b = b[4:]
		for j := range 8 {
			f[i+j] = fieldSub(4, fieldElement((x>>(4*j))&0xf))
		}
	}
	return f, nil
}

// packZ17 packs response coefficients for gamma1 = 2^17 as 18-bit
// fields holding gamma1-c, four per nine bytes.
func packZ17(f ringElement) []byte {
	b := make([]byte, encodingSize18)
	const gamma1 = 1 << 17
	idx := 0
	for i := 0; i < n; i += 4 {
		var x1, x2 uint64
		x1 = uint64(fieldSub(gamma1, f[i]))
		x1 |= uint64(fieldSub(gamma1, f[i+1])) << 18
		x1 |= uint64(fieldSub(gamma1, f[i+2])) << 36
		x2 = uint64(fieldSub(gamma1, f[i+3]))
		x1 |= x2 << 54
		x2 >>= 10

		b[idx] = byte(x1)
		b[idx+1] = byte(x1 >> 8)
		b[idx+2] = byte(x1 >> 16)
		b[idx+3] = byte(x1 >> 24)
		b[idx+4] = byte(x1 >> 32)
		b[idx+5] = byte(x1 >> 40)
		b[idx+6] = byte(x1 >> 48)
		b[idx+7] = byte(x1 >> 56)
		b[idx+8] = byte(x2)
		idx += 9
	}
	return b
}

func unpackZ17(b []byte) ringElement {
	var f ringElement
	const gamma1 = 1 << 17
	const mask = (1 << 18) - 1
	for i := 0; i < n; i += 4 {
		x1 := uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
			uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
		x2 := uint64(b[8])
		b = b[9:]
		f[i] = fieldSub(gamma1, fieldElement(x1&mask))
		f[i+1] = fieldSub(gamma1, fieldElement((x1>>18)&mask))
		f[i+2] = fieldSub(gamma1, fieldElement((x1>>36)&mask))
		f[i+3] = fieldSub(gamma1, fieldElement(((x1>>54)|(x2<<10))&mask))
	}
	return f
}

// packZ19 packs response coefficients for gamma1 = 2^19 as 20-bit
// fields, four per ten bytes.
func packZ19(f ringElement) []byte {
	b := make([]byte, encodingSize20)
	const gamma1 = 1 << 19
	idx := 0
	for i := 0; i < n; i += 4 {
		var x1, x2 uint64
		x1 = uint64(fieldSub(gamma1, f[i]))
		x1 |= uint64(fieldSub(gamma1, f[i+1])) << 20
		x1 |= uint64(fieldSub(gamma1, f[i+2])) << 40
		x2 = uint64(fieldSub(gamma1, f[i+3]))
		x1 |= x2 << 60
		x2 >>= 4

		b[idx] = byte(x1)
		b[idx+1] = byte(x1 >> 8)
		b[idx+2] = byte(x1 >> 16)
		b[idx+3] = byte(x1 >> 24)
		b[idx+4] = byte(x1 >> 32)
		b[idx+5] = byte(x1 >> 40)
		b[idx+6] = byte(x1 >> 48)
		b[idx+7] = byte(x1 >> 56)
		b[idx+8] = byte(x2)
		b[idx+9] = byte(x2 >> 8)
		idx += 10
	}
	return b
}

func unpackZ19(b []byte) ringElement {
	var f ringElement
	const gamma1 = 1 << 19
	const mask = (1 << 20) - 1
	for i := 0; i < n; i += 4 {
		x1 := uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
			uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
		x2 := uint64(b[8]) | uint64(b[9])<<8
		b = b[10:]
		f[i] = fieldSub(gamma1, fieldElement(x1&mask))
		f[i+1] = fieldSub(gamma1, fieldElement((x1>>20)&mask))
		f[i+2] = fieldSub(gamma1, fieldElement((x1>>40)&mask))
		f[i+3] = fieldSub(gamma1, fieldElement(((x1>>60)|(x2<<4))&mask))
	}
	return f
}

// packW1_4 packs commitment high parts in [0, 15], two per byte.
func packW1_4(f ringElement) []byte {
	b := make([]byte, encodingSize4)
	for i := 0; i < n; i += 2 {
		b[i/2] = byte(f[i]) | byte(f[i+1])<<4
	}
	return b
}

// packW1_6 packs commitment high parts in [0, 43], four per three bytes.
func packW1_6(f ringElement) []byte {
	b := make([]byte, encodingSize6)
	for i := 0; i < n; i += 4 {
		x := uint32(f[i]) | uint32(f[i+1])<<6 | uint32(f[i+2])<<12 | uint32(f[i+3])<<18
		b[i/4*3] = byte(x)
		b[i/4*3+1] = byte(x >> 8)
		b[i/4*3+2] = byte(x >> 16)
	}
	return b
}

// packHint encodes the hint vector as omega position bytes followed by
// k running counts.
func packHint(hints []ringElement, omega int) []byte {
	b := make([]byte, omega+len(hints))
	idx := 0
	for i := range hints {
		for j := range n {
			if hints[i][j] != 0 {
				b[idx] = byte(j)
				idx++
			}
		}
		b[omega+i] = byte(idx)
	}
	return b
}

// unpackHint decodes a hint vector, returning false unless the counts
// are monotonic, the positions strictly increase within each
// polynomial, and unused position bytes are zero. Every hint vector has
// exactly one valid encoding.
func unpackHint(b []byte, hints []ringElement, omega int) bool {
	idx := 0
	for i := range hints {
		limit := int(b[omega+i])
		if limit < idx || limit > omega {
			return false
		}
		first := idx
		for ; idx < limit; idx++ {
			pos := b[idx]
			if idx > first && b[idx-1] >= pos {
				return false
			}
			hints[i][pos] = 1
		}
	}
	for ; idx < omega; idx++ {
		if b[idx] != 0 {
			return false
		}
	}
	return true
}

// The eta, z, and w1 codecs vary by parameter set; these select the
// right width.

func packEta(p *parameters, f ringElement) []byte {
	if p.eta == 2 {
		return packEta2(f)
	}
	return packEta4(f)
}

func unpackEta(p *parameters, b []byte) (ringElement, error) {
	if p.eta == 2 {
		return unpackEta2(b)
	}
	return unpackEta4(b)
}

func packZ(p *parameters, f ringElement) []byte {
	if p.gamma1Bits == 17 {
		return packZ17(f)
	}
	return packZ19(f)
}

func unpackZ(p *parameters, b []byte) ringElement {
	if p.gamma1Bits == 17 {
		return unpackZ17(b)
	}
	return unpackZ19(b)
}

func packW1(p *parameters, f ringElement) []byte {
	if p.gamma2 == (q-1)/88 {
		return packW1_6(f)
	}
	return packW1_4(f)
}
