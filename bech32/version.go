// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import "fmt"

// ChecksumConst is a type that represents the currently defined bech32
// checksum constants.
type ChecksumConst uint32

const (
	// Bech32Const is the original constant used in the checksum
	// verification for bech32.
	Bech32Const ChecksumConst = 1

	// Bech32mConst is the new constant used for bech32m checksum
	// verification.
	Bech32mConst ChecksumConst = 0x2bc830a3
)

// Encoding identifies the checksum variant of a bech32 string.
type Encoding uint8

const (
	// Bech32 is the original encoding defined in BIP-173.
	Bech32 Encoding = iota

	// Bech32m is the encoding defined in BIP-350.
	Bech32m

	// Invalid is returned by checksum verification when neither constant
	// matched.  It is never a valid argument for encoding.
	Invalid
)

// EncodingToConsts maps bech32 encodings to the checksum constant to be used
// when encoding, and asserting a particular encoding when decoding.
var EncodingToConsts = map[Encoding]ChecksumConst{
	Bech32:  Bech32Const,
	Bech32m: Bech32mConst,
}

// ConstsToEncoding maps a bech32 constant to the encoding it's associated
// with.
var ConstsToEncoding = map[ChecksumConst]Encoding{
	Bech32Const:  Bech32,
	Bech32mConst: Bech32m,
}

// Map of Encoding values back to their names for pretty printing.
var encodingStrings = map[Encoding]string{
	Bech32:  "bech32",
	Bech32m: "bech32m",
	Invalid: "invalid",
}

// String returns the Encoding as a human-readable name.
func (e Encoding) String() string {
	if s, ok := encodingStrings[e]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Encoding (%d)", uint8(e))
}

// checksumConst returns the constant for the passed encoding.  Invalid and
// unknown encodings map to zero, which produces a checksum that verifies as
// neither variant.
func checksumConst(enc Encoding) uint32 {
	return uint32(EncodingToConsts[enc])
}
