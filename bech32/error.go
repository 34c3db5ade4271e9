// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrTooLong indicates the combined length of the hrp, separator, data
	// and checksum exceeds MaxLength.
	ErrTooLong ErrorCode = iota

	// ErrTooShort indicates a string shorter than MinLength, which cannot
	// hold a non-empty hrp, the separator and a checksum.
	ErrTooShort

	// ErrEmptyHRP indicates the human-readable part has zero length.
	ErrEmptyHRP

	// ErrInvalidHRPCharacter indicates a character of the human-readable
	// part falls outside the printable ASCII range [33,126].
	ErrInvalidHRPCharacter

	// ErrMixedCase indicates a string or hrp containing both upper and
	// lowercase characters.
	ErrMixedCase

	// ErrMissingSeparator indicates the separator is absent, the hrp in
	// front of it is empty, or fewer than ChecksumLength characters follow
	// it.
	ErrMissingSeparator

	// ErrInvalidCharacter indicates a data or checksum character that is
	// not a member of the charset.
	ErrInvalidCharacter

	// ErrChecksumMismatch indicates the checksum matched neither the bech32
	// nor the bech32m constant, or did not match the required variant.
	ErrChecksumMismatch

	// ErrInvalidPadding indicates the final regrouping of an unpadded
	// conversion left nonzero bits or a full group of leftover bits.
	ErrInvalidPadding

	// ErrInvalidBitGroups indicates a conversion between group sizes
	// outside the supported range of 1 to 8 bits.
	ErrInvalidBitGroups

	// ErrInvalidDataValue indicates an input value that does not fit in
	// the source group size of a conversion, or a 5-bit value above 31.
	ErrInvalidDataValue

	// ErrInvalidEncoding indicates an attempt to encode using an encoding
	// other than Bech32 or Bech32m.
	ErrInvalidEncoding

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrTooLong:             "ErrTooLong",
	ErrTooShort:            "ErrTooShort",
	ErrEmptyHRP:            "ErrEmptyHRP",
	ErrInvalidHRPCharacter: "ErrInvalidHRPCharacter",
	ErrMixedCase:           "ErrMixedCase",
	ErrMissingSeparator:    "ErrMissingSeparator",
	ErrInvalidCharacter:    "ErrInvalidCharacter",
	ErrChecksumMismatch:    "ErrChecksumMismatch",
	ErrInvalidPadding:      "ErrInvalidPadding",
	ErrInvalidBitGroups:    "ErrInvalidBitGroups",
	ErrInvalidDataValue:    "ErrInvalidDataValue",
	ErrInvalidEncoding:     "ErrInvalidEncoding",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a bech32 validation failure.  The caller can use type
// assertions or IsErrorCode to determine the specific rule that failed.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Is reports whether target is an Error with the same error code, which
// allows errors.Is to match on the kind of failure regardless of the
// description.
func (e Error) Is(target error) bool {
	var t Error
	if !errors.As(target, &t) {
		return false
	}
	return e.ErrorCode == t.ErrorCode
}

// makeError creates an Error given a set of arguments.
func makeError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether or not the provided error is a bech32 error
// with the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	var e Error
	return errors.As(err, &e) && e.ErrorCode == c
}
