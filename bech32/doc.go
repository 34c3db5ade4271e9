// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bech32 provides a Go implementation of the bech32 format specified in
BIP 173 and its bech32m variant specified in BIP 350.

Bech32 strings consist of a human-readable part (hrp), followed by the
separator 1, then a checksummed data part encoded using the 32 characters
"qpzry9x8gf2tvdw0s3jn54khce6mua7l".

The checksum is a BCH code over GF(32).  It is computed over the expanded hrp
followed by the data values, and the two variants differ only in the constant
the final remainder is XORed with.  A decoder reports which of the two
constants matched.

Encode and Decode work on raw byte payloads and regroup them to and from 5-bit
values internally.  EncodeFromBase32 and DecodeToBase32 work on 5-bit values
directly, which is what segwit style callers need since their leading witness
version is a single 5-bit value and not part of the byte payload.

Usage

To decode a bech32 string into its variant, hrp and byte payload:

	enc, hrp, payload, err := bech32.Decode("a12uel5l")

To encode a payload with the bech32m checksum:

	str, err := bech32.Encode(bech32.Bech32m, "bc", payload)

Errors

All errors returned by this package are of type bech32.Error, which carries an
ErrorCode identifying the exact validation rule that failed.  Use IsErrorCode
to check for a specific code.
*/
package bech32
