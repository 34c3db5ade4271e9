// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import (
	"testing"
)

// TestString ensures the version string honors and normalizes the
// overridable pre-release and build metadata.
func TestString(t *testing.T) {
	savedPre, savedBuild := PreRelease, BuildMetadata
	defer func() {
		PreRelease, BuildMetadata = savedPre, savedBuild
	}()

	tests := []struct {
		pre   string
		build string
		want  string
	}{
		{"", "", "0.3.0"},
		{"beta", "", "0.3.0-beta"},
		{"", "dev.1", "0.3.0+dev.1"},
		{"rc1", "abc", "0.3.0-rc1+abc"},
		{"r.c_1", "a+b c", "0.3.0-rc1+abc"},
		{"!!", "??", "0.3.0"},
	}

	for i, test := range tests {
		PreRelease, BuildMetadata = test.pre, test.build
		if got := String(); got != test.want {
			t.Errorf("String #%d: got %s want %s", i, got, test.want)
		}
	}
}

// TestKeepOnly ensures characters outside the alphabet are dropped.
func TestKeepOnly(t *testing.T) {
	tests := []struct {
		in       string
		alphabet string
		want     string
	}{
		{"rc.1", semanticAlphabet, "rc1"},
		{"rc.1", semanticBuildAlphabet, "rc.1"},
		{"a+b c/d", semanticBuildAlphabet, "abcd"},
		{"", semanticAlphabet, ""},
	}

	for i, test := range tests {
		if got := keepOnly(test.in, test.alphabet); got != test.want {
			t.Errorf("keepOnly #%d: got %q want %q", i, got, test.want)
		}
	}
}
