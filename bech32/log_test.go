// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/stretchr/testify/require"
)

// TestTraceLogging ensures checksum mismatches are traced once a logger is
// in place, and that nothing is written after logging is disabled again.
func TestTraceLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := btclog.NewBackend(&buf).Logger("B32C")
	logger.SetLevel(btclog.LevelTrace)

	UseLogger(logger)
	defer DisableLog()

	_, _, _, err := Decode("A1G7SGD8")
	require.True(t, IsErrorCode(err, ErrChecksumMismatch))
	require.Contains(t, buf.String(), "[TRC] B32C: Checksum mismatch")

	DisableLog()
	buf.Reset()
	_, _, _, err = Decode("A1G7SGD8")
	require.Error(t, err)
	require.Zero(t, buf.Len())
}
