// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

const (
	// Separator is the character between the human-readable part and the
	// data part.  Since it is the last occurrence that separates the two,
	// the hrp may itself contain it.
	Separator = '1'

	// MaxLength is the maximum length of a bech32 string, hrp and checksum
	// included.
	MaxLength = 90

	// MinLength is the length of the shortest valid bech32 string: a one
	// character hrp, the separator and a checksum.
	MinLength = 1 + 1 + ChecksumLength
)

// validateEncoding returns an error unless enc can be used to encode.
func validateEncoding(enc Encoding) error {
	if _, ok := EncodingToConsts[enc]; !ok {
		str := fmt.Sprintf("cannot encode using encoding %v", enc)
		return makeError(ErrInvalidEncoding, str)
	}
	return nil
}

// validateHRP checks the passed hrp for emptiness, characters outside the
// printable ASCII range and mixed case.
func validateHRP(hrp string) error {
	if len(hrp) == 0 {
		return makeError(ErrEmptyHRP, "human-readable part is empty")
	}
	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 33 || hrp[i] > 126 {
			str := fmt.Sprintf("invalid character in human-readable "+
				"part: %q", hrp[i])
			return makeError(ErrInvalidHRPCharacter, str)
		}
	}
	if hrp != strings.ToLower(hrp) && hrp != strings.ToUpper(hrp) {
		return makeError(ErrMixedCase, "human-readable part not all "+
			"lowercase or all uppercase")
	}
	return nil
}

// Encode encodes the passed byte payload under the human-readable part hrp
// using the checksum of the given encoding.  The payload is regrouped into
// 5-bit values with padding first.
//
// The hrp must be all lowercase or all uppercase.  An uppercase hrp results
// in an all uppercase string, while the checksum is always computed over the
// lowercase form so the result decodes to the same values either way.
func Encode(enc Encoding, hrp string, payload []byte) (string, error) {
	values, err := ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}
	return EncodeFromBase32(enc, hrp, values)
}

// EncodeFromBase32 encodes the passed 5-bit values, which must each be below
// 32, under the human-readable part hrp using the checksum of the given
// encoding.  It is the same as Encode without the byte regrouping, which is
// what callers that prefix the data with their own 5-bit values need.
func EncodeFromBase32(enc Encoding, hrp string, values []byte) (string, error) {
	if err := validateEncoding(enc); err != nil {
		return "", err
	}
	if err := validateHRP(hrp); err != nil {
		return "", err
	}

	total := len(hrp) + 1 + len(values) + ChecksumLength
	if total > MaxLength {
		str := fmt.Sprintf("encoded length %d exceeds the maximum of %d",
			total, MaxLength)
		return "", makeError(ErrTooLong, str)
	}

	lower := strings.ToLower(hrp)
	checksum := CreateChecksum(enc, lower, values)

	data, err := toChars(values)
	if err != nil {
		return "", err
	}
	sum, _ := toChars(checksum[:])

	var sb strings.Builder
	sb.Grow(total)
	sb.WriteString(lower)
	sb.WriteByte(Separator)
	sb.WriteString(data)
	sb.WriteString(sum)

	if hrp != lower {
		return strings.ToUpper(sb.String()), nil
	}
	return sb.String(), nil
}

// Decode decodes a bech32 or bech32m string.  It returns the encoding whose
// checksum matched, the lowercase human-readable part and the payload
// regrouped from 5-bit values into bytes without padding.
//
// A string whose data part does not regroup into whole bytes fails with
// ErrInvalidPadding even when its checksum is valid.  Use DecodeToBase32 for
// data that is not a plain byte payload, such as segwit addresses.
func Decode(bech string) (Encoding, string, []byte, error) {
	enc, hrp, values, err := decode(bech, MaxLength)
	if err != nil {
		return Invalid, "", nil, err
	}

	payload, err := ConvertBits(values, 5, 8, false)
	if err != nil {
		return Invalid, "", nil, err
	}
	return enc, hrp, payload, nil
}

// DecodeAs decodes a string like Decode but additionally requires its
// checksum to match the passed encoding.  A string using the other encoding
// fails with ErrChecksumMismatch.
func DecodeAs(want Encoding, bech string) (string, []byte, error) {
	if err := validateEncoding(want); err != nil {
		return "", nil, err
	}

	enc, hrp, payload, err := Decode(bech)
	if err != nil {
		return "", nil, err
	}
	if enc != want {
		str := fmt.Sprintf("expected %v checksum, got %v", want, enc)
		return "", nil, makeError(ErrChecksumMismatch, str)
	}
	return hrp, payload, nil
}

// DecodeToBase32 decodes a bech32 or bech32m string into its encoding, the
// lowercase human-readable part and the 5-bit data values with the checksum
// removed.
func DecodeToBase32(bech string) (Encoding, string, []byte, error) {
	return decode(bech, MaxLength)
}

// DecodeNoLimit is DecodeToBase32 without the MaxLength restriction.  It
// exists for protocols such as BOLT-11 invoices that use the bech32 checksum
// on longer strings, where the checksum no longer guarantees detection of
// the errors it does below MaxLength.
func DecodeNoLimit(bech string) (Encoding, string, []byte, error) {
	return decode(bech, -1)
}

// decode validates bech and returns its encoding, lowercase hrp and data
// values without checksum.  A negative maxLength disables the length limit.
func decode(bech string, maxLength int) (Encoding, string, []byte, error) {
	if len(bech) < MinLength {
		str := fmt.Sprintf("invalid bech32 string length %d, minimum "+
			"is %d", len(bech), MinLength)
		return Invalid, "", nil, makeError(ErrTooShort, str)
	}
	if maxLength >= 0 && len(bech) > maxLength {
		str := fmt.Sprintf("invalid bech32 string length %d, maximum "+
			"is %d", len(bech), maxLength)
		return Invalid, "", nil, makeError(ErrTooLong, str)
	}

	// Only ASCII characters between 33 and 126 are allowed.  The position
	// of the last separator decides whether a bad character is reported
	// against the hrp or the data part.
	one := strings.LastIndexByte(bech, Separator)
	for i := 0; i < len(bech); i++ {
		if bech[i] >= 33 && bech[i] <= 126 {
			continue
		}
		code, part := ErrInvalidHRPCharacter, "human-readable part"
		if one >= 0 && i > one {
			code, part = ErrInvalidCharacter, "data part"
		}
		str := fmt.Sprintf("invalid character in %s: %q", part, bech[i])
		return Invalid, "", nil, makeError(code, str)
	}

	// The characters must be either all lowercase or all uppercase.  The
	// lowercase form is used from here on.
	lower := strings.ToLower(bech)
	if bech != lower && bech != strings.ToUpper(bech) {
		return Invalid, "", nil, makeError(ErrMixedCase,
			"string not all lowercase or all uppercase")
	}
	bech = lower

	// The string is invalid if the last separator is missing, is the first
	// character (empty hrp), or is followed by fewer characters than a
	// checksum.
	switch {
	case one < 0:
		return Invalid, "", nil, makeError(ErrMissingSeparator,
			"missing separator '1'")
	case one == 0:
		return Invalid, "", nil, makeError(ErrMissingSeparator,
			"empty human-readable part")
	case one+ChecksumLength+1 > len(bech):
		str := fmt.Sprintf("invalid separator index %d, data part "+
			"shorter than the checksum", one)
		return Invalid, "", nil, makeError(ErrMissingSeparator, str)
	}

	hrp := bech[:one]
	values, err := toValues(bech[one+1:])
	if err != nil {
		return Invalid, "", nil, err
	}

	enc := VerifyChecksum(hrp, values)
	if enc == Invalid {
		log.Tracef("Checksum mismatch for hrp %q, values: %v", hrp,
			newLogClosure(func() string {
				return spew.Sdump(values)
			}))

		data := values[:len(values)-ChecksumLength]
		expected := CreateChecksum(Bech32, hrp, data)
		expectedM := CreateChecksum(Bech32m, hrp, data)
		exp, _ := toChars(expected[:])
		expM, _ := toChars(expectedM[:])
		str := fmt.Sprintf("invalid checksum (expected (bech32=%v, "+
			"bech32m=%v), got %v)", exp, expM,
			bech[len(bech)-ChecksumLength:])
		return Invalid, "", nil, makeError(ErrChecksumMismatch, str)
	}

	return enc, hrp, values[:len(values)-ChecksumLength], nil
}
