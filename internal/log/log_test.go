// Copyright (c) 2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package log

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/stretchr/testify/require"
)

// TestParseAndSetDebugLevels ensures global and per-subsystem debug levels
// are applied and invalid specifications are rejected.
func TestParseAndSetDebugLevels(t *testing.T) {
	defer SetLogLevels("info")

	require.NoError(t, ParseAndSetDebugLevels("debug"))
	for _, subsysID := range SupportedSubsystems() {
		require.Equal(t, btclog.LevelDebug, Level(subsysID), subsysID)
	}

	require.NoError(t, ParseAndSetDebugLevels("B32C=trace,BRDG=warn"))
	require.Equal(t, btclog.LevelTrace, Level("B32C"))
	require.Equal(t, btclog.LevelWarn, Level("BRDG"))
	require.Equal(t, btclog.LevelDebug, Level("BCUT"))

	tests := []string{
		"verbose",
		"B32C=trace,BRDG",
		"NOPE=info",
		"B32C=loud",
	}
	for _, test := range tests {
		require.Error(t, ParseAndSetDebugLevels(test), test)
	}

	require.Equal(t, btclog.LevelOff, Level("NOPE"))
}

// TestSupportedSubsystems ensures the subsystems are reported sorted.
func TestSupportedSubsystems(t *testing.T) {
	require.Equal(t, []string{"B32C", "BCUT", "BRDG"}, SupportedSubsystems())
}

// TestInitLogRotator ensures the rotator creates its directory and becomes
// an output until closed.
func TestInitLogRotator(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "bech32util.log")
	require.NoError(t, InitLogRotator(logFile))
	require.NotNil(t, LogRotator)

	BcutLog.Info("rotator test")

	CloseLogRotator()
	require.Nil(t, LogRotator)
	require.FileExists(t, logFile)
}

// TestLogWriterStderr ensures log output goes to standard error and leaves
// standard output to command results.
func TestLogWriterStderr(t *testing.T) {
	stdoutR, stdoutW, err := os.Pipe()
	require.NoError(t, err)
	stderrR, stderrW, err := os.Pipe()
	require.NoError(t, err)

	savedOut, savedErr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = stdoutW, stderrW
	n, err := logWriter{}.Write([]byte("to stderr\n"))
	os.Stdout, os.Stderr = savedOut, savedErr
	require.NoError(t, err)
	require.Equal(t, len("to stderr\n"), n)

	require.NoError(t, stdoutW.Close())
	require.NoError(t, stderrW.Close())
	gotErr, err := io.ReadAll(stderrR)
	require.NoError(t, err)
	gotOut, err := io.ReadAll(stdoutR)
	require.NoError(t, err)
	require.Equal(t, "to stderr\n", string(gotErr))
	require.Empty(t, gotOut)
}
