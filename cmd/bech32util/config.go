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
	"github.com/gohenderson/btcsharp/internal/version"
	flags "github.com/jessevdk/go-flags"
)

const (
	appName               = "bech32util"
	defaultConfigFilename = "bech32util.conf"
	defaultLogFilename    = "bech32util.log"
	defaultDebugLevel     = "info"
)

var (
	defaultHomeDir    = appDataDir(appName)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
)

// appDataDir returns the per-user configuration directory for the named
// application, falling back to the working directory when the platform
// does not define one.
func appDataDir(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, name)
}

// errShowInfo is returned by loadConfig when a flag asked for informational
// output that has already been written and no command should run.
var errShowInfo = errors.New("informational output requested")

// config defines the global configuration options for bech32util.  Options
// specific to a command live on the command types.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	LogDir      string `long:"logdir" description:"Directory to write a rotated log file to (disabled when empty)"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
}

// commands holds one value per command so the parser can fill in their
// options and arguments.
type commands struct {
	encode      encodeCmd
	decode      decodeCmd
	convertBits convertBitsCmd
	checksum    checksumCmd
	batch       batchCmd
}

// newParser returns a parser over cfg with every command registered against
// cmds.
func newParser(cfg *config, cmds *commands, options flags.Options) (*flags.Parser, error) {
	parser := flags.NewParser(cfg, options)
	descs := []struct {
		name, short, long string
		data              interface{}
	}{
		{"encode", "Encode a payload", "Encode a hex or text payload under a human-readable part.", &cmds.encode},
		{"decode", "Decode a string", "Decode a Bech32 or Bech32m string and print its parts.", &cmds.decode},
		{"convertbits", "Regroup bit groups", "Regroup a hex payload between bit group widths.", &cmds.convertBits},
		{"checksum", "Compute a checksum", "Compute the checksum characters for a human-readable part and data characters.", &cmds.checksum},
		{"batch", "Decode lines from stdin", "Decode one string per line read from standard input.", &cmds.batch},
	}
	for _, d := range descs {
		if _, err := parser.AddCommand(d.name, d.short, d.long, d.data); err != nil {
			return nil, err
		}
	}
	return parser, nil
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// loadConfig initializes and parses the config using a config file and
// command line options, and returns the selected command.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// Help and informational output is written to w.  A missing config file is
// only an error when it was named explicitly.
func loadConfig(args []string, w io.Writer) (*config, runner, error) {
	// Default config.
	cfg := config{
		ConfigFile: defaultConfigFile,
		DebugLevel: defaultDebugLevel,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Command options are unknown
	// to the pre-parser and ignored.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.IgnoreUnknown)
	if _, err := preParser.ParseArgs(args); err != nil {
		return nil, nil, err
	}

	// Show the version and exit if the version flag was specified.
	if preCfg.ShowVersion {
		fmt.Fprintf(w, "%s version %s\n", appName, version.String())
		return nil, nil, errShowInfo
	}

	var cmds commands
	parser, err := newParser(&cfg, &cmds, flags.HelpFlag)
	if err != nil {
		return nil, nil, err
	}

	// Load additional config from file.
	if preCfg.ConfigFile != defaultConfigFile || fileExists(preCfg.ConfigFile) {
		err := flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
		if err != nil {
			return nil, nil, fmt.Errorf("error parsing config file %s: %w",
				preCfg.ConfigFile, err)
		}
	}

	// Parse command line options again to ensure they take precedence.
	if _, err := parser.ParseArgs(args); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(w, e.Message)
			return nil, nil, errShowInfo
		}
		parser.WriteHelp(w)
		return nil, nil, err
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Fprintln(w, "Supported subsystems", log.SupportedSubsystems())
		return nil, nil, errShowInfo
	}

	// Parse, validate, and set debug log level(s).
	if err := log.ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, nil, fmt.Errorf("loadConfig: %w", err)
	}

	if cfg.LogDir != "" {
		cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	}

	var cmd runner
	switch parser.Active.Name {
	case "encode":
		cmd = &cmds.encode
	case "decode":
		cmd = &cmds.decode
	case "convertbits":
		cmd = &cmds.convertBits
	case "checksum":
		cmd = &cmds.checksum
	case "batch":
		cmd = &cmds.batch
	}
	return &cfg, cmd, nil
}

// cleanAndExpandPath expands environment variables and a leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return filepath.Clean(os.ExpandEnv(path))
}
