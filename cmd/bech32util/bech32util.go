// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The btcsharp developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gohenderson/btcsharp/internal/log"
	"github.com/gohenderson/btcsharp/internal/logbridge"
)

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain(args []string, stdin io.Reader, stdout io.Writer) error {
	// Load configuration and parse command line.
	cfg, cmd, err := loadConfig(args, stdout)
	if err != nil {
		return err
	}

	// Setup the rotated log file when a log directory was requested.
	if cfg.LogDir != "" {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := log.InitLogRotator(logFile); err != nil {
			return err
		}
		defer log.CloseLogRotator()
	}

	// Diagnostics from the commands go through the bridge so they never
	// hold up the output.  Shutdown flushes anything still queued.
	bridge := logbridge.New(log.BrdgLog, 0)
	defer func() {
		bridge.Shutdown()
		if n := bridge.Dropped(); n > 0 {
			log.BcutLog.Warnf("Dropped %d diagnostic records", n)
		}
	}()

	log.BcutLog.Debugf("Running %T", cmd)
	return cmd.run(&env{in: stdin, out: stdout, bridge: bridge})
}

func main() {
	if err := realMain(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errShowInfo) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
