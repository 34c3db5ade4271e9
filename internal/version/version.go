// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version reports the bech32util release version.
package version

import (
	"fmt"
	"strings"
)

// Characters allowed in the pre-release and build metadata parts.
const (
	semanticAlphabet      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"
	semanticBuildAlphabet = semanticAlphabet + "."
)

// Release version of bech32util.
const (
	Major uint = 0
	Minor uint = 3
	Patch uint = 0
)

var (
	// PreRelease and BuildMetadata may be set at link time, for example
	// -ldflags "-X github.com/gohenderson/btcsharp/internal/version.BuildMetadata=abc".
	PreRelease    = "beta"
	BuildMetadata = ""
)

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec (http://semver.org/).  Characters outside
// the allowed alphabets are dropped from the overridable parts.
func String() string {
	version := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
	if pre := keepOnly(PreRelease, semanticAlphabet); pre != "" {
		version += "-" + pre
	}
	if build := keepOnly(BuildMetadata, semanticBuildAlphabet); build != "" {
		version += "+" + build
	}
	return version
}

// keepOnly returns str without the characters missing from alphabet.
func keepOnly(str, alphabet string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(alphabet, r) {
			return r
		}
		return -1
	}, str)
}
