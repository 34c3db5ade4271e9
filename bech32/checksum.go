// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

// ChecksumLength is the number of 5-bit values in a bech32 checksum.
const ChecksumLength = 6

// gen encodes the generator polynomial for the bech32 BCH checksum.  Entry i
// is the value XORed into the accumulator when bit i of the shifted out
// coefficient is set.
var gen = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// PolyMod computes the remainder of dividing the polynomial with the passed
// 5-bit coefficients by the bech32 generator over GF(32).  The six 5-bit
// coefficients of the remainder are packed into the low 30 bits of the
// result.
func PolyMod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	return chk
}

// ExpandHRP returns the polynomial input for the passed hrp and 5-bit
// values: the high 3 bits of every hrp character, a zero, the low 5 bits of
// every hrp character, then the values themselves.  The returned slice is
// freshly allocated with room for a trailing checksum.
func ExpandHRP(hrp string, values []byte) []byte {
	n := len(hrp)
	expanded := make([]byte, 2*n+1+len(values), 2*n+1+len(values)+
		ChecksumLength)
	for i := 0; i < n; i++ {
		expanded[i] = hrp[i] >> 5
		expanded[i+n+1] = hrp[i] & 31
	}
	copy(expanded[2*n+1:], values)
	return expanded
}

// CreateChecksum returns the six 5-bit checksum values for the passed hrp
// and data values under the given encoding, most significant group first.
// The hrp is used as given, so callers must lowercase it first to produce a
// checksum a decoder will accept.
func CreateChecksum(enc Encoding, hrp string, values []byte) [ChecksumLength]byte {
	var zeros [ChecksumLength]byte
	polymod := PolyMod(append(ExpandHRP(hrp, values), zeros[:]...)) ^
		checksumConst(enc)

	var checksum [ChecksumLength]byte
	for i := 0; i < ChecksumLength; i++ {
		checksum[i] = byte((polymod >> uint(5*(5-i))) & 31)
	}
	return checksum
}

// VerifyChecksum returns the encoding whose constant the checksum of the
// passed hrp and values (data followed by checksum) matches, or Invalid when
// it matches neither or there are fewer values than a checksum.
func VerifyChecksum(hrp string, values []byte) Encoding {
	if len(values) < ChecksumLength {
		return Invalid
	}

	polymod := PolyMod(ExpandHRP(hrp, values))
	if enc, ok := ConstsToEncoding[ChecksumConst(polymod)]; ok {
		return enc
	}
	return Invalid
}
