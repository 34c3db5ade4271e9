// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import "fmt"

// Charset is the set of characters used in the data section of bech32
// strings, indexed by 5-bit value.  The characters 1, b, i and o are left out
// since they are easily confused with other characters.
const Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// invalidIndex marks bytes that are not members of Charset in charsetRev.
const invalidIndex = 0xff

// charsetRev maps a lowercase ASCII byte to its 5-bit value, or invalidIndex.
var charsetRev = func() [256]byte {
	var rev [256]byte
	for i := range rev {
		rev[i] = invalidIndex
	}
	for i := 0; i < len(Charset); i++ {
		rev[Charset[i]] = byte(i)
	}
	return rev
}()

// CharIndex returns the 5-bit value of the passed character.  Uppercase
// characters are lowercased before the lookup.  The second return is false
// for any character that is not a member of the charset, including the
// separator.
func CharIndex(c byte) (byte, bool) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	v := charsetRev[c]
	return v, v != invalidIndex
}

// toChars converts each 5-bit value to its charset character.
func toChars(values []byte) (string, error) {
	chars := make([]byte, len(values))
	for i, v := range values {
		if int(v) >= len(Charset) {
			str := "invalid 5-bit value %d at position %d"
			return "", makeError(ErrInvalidDataValue,
				fmt.Sprintf(str, v, i))
		}
		chars[i] = Charset[v]
	}
	return string(chars), nil
}

// toValues converts each character of a lowercase data part to its 5-bit
// value.
func toValues(data string) ([]byte, error) {
	values := make([]byte, len(data))
	for i := 0; i < len(data); i++ {
		v := charsetRev[data[i]]
		if v == invalidIndex {
			str := "invalid character not part of charset: %q"
			return nil, makeError(ErrInvalidCharacter,
				fmt.Sprintf(str, data[i]))
		}
		values[i] = v
	}
	return values, nil
}
