// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import "fmt"

// ConvertBits converts a byte slice where each byte is encoding fromBits
// bits, to a byte slice where each byte is encoding toBits bits.  Bits are
// taken most significant first.
//
// When pad is true, a final partial group is zero-padded to toBits and
// emitted.  When pad is false, a leftover of fromBits or more bits, or any
// nonzero leftover bit, results in an ErrInvalidPadding error, so a 5-to-8
// bit conversion only succeeds on data that regroups to whole bytes.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		str := fmt.Sprintf("only bit groups between 1 and 8 allowed, "+
			"got %d to %d", fromBits, toBits)
		return nil, makeError(ErrInvalidBitGroups, str)
	}

	// The final bytes are appended, so reserve enough room for the worst
	// case up front.
	maxSize := len(data)*int(fromBits)/int(toBits) + 1
	regrouped := make([]byte, 0, maxSize)

	var acc uint32
	var bits uint8
	maxValue := uint32(1)<<toBits - 1
	for i, b := range data {
		if b>>fromBits != 0 {
			str := fmt.Sprintf("value %d at position %d does not fit "+
				"in %d bits", b, i, fromBits)
			return nil, makeError(ErrInvalidDataValue, str)
		}

		// Only the bits that can still contribute to an output group are
		// kept in the accumulator.
		acc = (acc<<fromBits | uint32(b)) & (1<<(fromBits+toBits-1) - 1)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			regrouped = append(regrouped, byte(acc>>bits&maxValue))
		}
	}

	leftover := byte(acc << (toBits - bits) & maxValue)
	if pad {
		if bits > 0 {
			regrouped = append(regrouped, leftover)
		}
		return regrouped, nil
	}

	if bits >= fromBits {
		str := fmt.Sprintf("%d leftover bits form an incomplete group",
			bits)
		return nil, makeError(ErrInvalidPadding, str)
	}
	if leftover != 0 {
		str := fmt.Sprintf("nonzero padding in %d leftover bits", bits)
		return nil, makeError(ErrInvalidPadding, str)
	}

	return regrouped, nil
}
