// Copyright (c) 2024 The btcsharp developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/decred/dcrd/lru"
	"github.com/gohenderson/btcsharp/bech32"
	"github.com/gohenderson/btcsharp/internal/logbridge"
)

// env is the environment a command runs in.
type env struct {
	in     io.Reader
	out    io.Writer
	bridge *logbridge.Bridge
}

// runner is implemented by every command.
type runner interface {
	run(e *env) error
}

// encodingFlag returns the encoding selected by a --m style flag.
func encodingFlag(m bool) bech32.Encoding {
	if m {
		return bech32.Bech32m
	}
	return bech32.Bech32
}

// encodeCmd encodes a payload under a human-readable part.
type encodeCmd struct {
	Bech32m bool `short:"m" long:"m" description:"Use the Bech32m checksum"`
	Hex     bool `long:"hex" description:"Interpret DATA as hex (default)"`
	Text    bool `long:"text" description:"Interpret DATA as raw text"`
	Args    struct {
		HRP  string `positional-arg-name:"HRP"`
		Data string `positional-arg-name:"DATA"`
	} `positional-args:"yes" required:"yes"`
}

func (c *encodeCmd) run(e *env) error {
	if c.Hex && c.Text {
		return errors.New("--hex and --text are mutually exclusive")
	}

	payload := []byte(c.Args.Data)
	if !c.Text {
		var err error
		payload, err = hex.DecodeString(c.Args.Data)
		if err != nil {
			return fmt.Errorf("invalid hex data: %w", err)
		}
	}

	str, err := bech32.Encode(encodingFlag(c.Bech32m), c.Args.HRP, payload)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, str)
	return nil
}

// decodeCmd decodes a string and prints its parts.
type decodeCmd struct {
	Variant string `long:"variant" default:"any" choice:"any" choice:"bech32" choice:"bech32m" description:"Checksum variant the string must carry"`
	Base32  bool   `long:"base32" description:"Print the 5-bit data values instead of regrouping them to bytes"`
	Args    struct {
		String string `positional-arg-name:"STRING"`
	} `positional-args:"yes" required:"yes"`
}

func (c *decodeCmd) run(e *env) error {
	enc, hrp, data, err := decodeVariant(c.Variant, c.Base32, c.Args.String)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "encoding: %v\nhrp: %s\n", enc, hrp)
	if c.Base32 {
		fmt.Fprintf(e.out, "values: %s\n", formatValues(data))
		return nil
	}
	fmt.Fprintf(e.out, "data: %x\n", data)
	return nil
}

// variants maps the --variant choices that require a specific checksum to
// their encoding.
var variants = map[string]bech32.Encoding{
	"bech32":  bech32.Bech32,
	"bech32m": bech32.Bech32m,
}

// decodeVariant decodes str, requiring the named variant unless it is
// "any".  A string carrying the other variant fails with
// bech32.ErrChecksumMismatch.
func decodeVariant(variant string, base32 bool, str string) (bech32.Encoding, string, []byte, error) {
	want, specific := variants[variant]
	if !base32 {
		if !specific {
			return bech32.Decode(str)
		}
		hrp, payload, err := bech32.DecodeAs(want, str)
		if err != nil {
			return bech32.Invalid, "", nil, err
		}
		return want, hrp, payload, nil
	}

	enc, hrp, values, err := bech32.DecodeToBase32(str)
	if err != nil {
		return bech32.Invalid, "", nil, err
	}
	if specific && enc != want {
		desc := fmt.Sprintf("expected %v checksum, got %v", want, enc)
		return bech32.Invalid, "", nil, bech32.Error{
			ErrorCode:   bech32.ErrChecksumMismatch,
			Description: desc,
		}
	}
	return enc, hrp, values, nil
}

// convertBitsCmd regroups a hex payload between bit group widths.
type convertBitsCmd struct {
	From uint8 `long:"from" default:"8" description:"Width of the input groups {1-8}"`
	To   uint8 `long:"to" default:"5" description:"Width of the output groups {1-8}"`
	Pad  bool  `long:"pad" description:"Zero pad a trailing partial group"`
	Args struct {
		Hex string `positional-arg-name:"HEX"`
	} `positional-args:"yes" required:"yes"`
}

func (c *convertBitsCmd) run(e *env) error {
	data, err := hex.DecodeString(c.Args.Hex)
	if err != nil {
		return fmt.Errorf("invalid hex data: %w", err)
	}
	values, err := bech32.ConvertBits(data, c.From, c.To, c.Pad)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, formatValues(values))
	return nil
}

// checksumCmd prints the checksum characters for a human-readable part and
// data part characters.
type checksumCmd struct {
	Bech32m bool `short:"m" long:"m" description:"Use the Bech32m checksum"`
	Args    struct {
		HRP    string `positional-arg-name:"HRP"`
		Values string `positional-arg-name:"VALUES" description:"Data part characters from the Bech32 alphabet"`
	} `positional-args:"yes" required:"yes"`
}

func (c *checksumCmd) run(e *env) error {
	values := make([]byte, 0, len(c.Args.Values))
	for i := 0; i < len(c.Args.Values); i++ {
		v, ok := bech32.CharIndex(c.Args.Values[i])
		if !ok {
			return fmt.Errorf("invalid data character %q at "+
				"position %d", c.Args.Values[i], i)
		}
		values = append(values, v)
	}

	sum := bech32.CreateChecksum(encodingFlag(c.Bech32m),
		strings.ToLower(c.Args.HRP), values)
	var sb strings.Builder
	for _, v := range sum {
		sb.WriteByte(bech32.Charset[v])
	}
	fmt.Fprintln(e.out, sb.String())
	return nil
}

// batchCmd decodes one string per input line.
type batchCmd struct {
	Unique uint `long:"unique" default:"0" description:"Skip inputs already seen among the last N distinct inputs (0 disables)"`
	Base32 bool `long:"base32" description:"Print the 5-bit data values instead of regrouping them to bytes"`
}

// errBatchFailed is returned when at least one batch input failed to decode.
var errBatchFailed = errors.New("one or more inputs failed to decode")

func (c *batchCmd) run(e *env) error {
	var seen *lru.Cache
	if c.Unique > 0 {
		cache := lru.NewCache(c.Unique)
		seen = &cache
	}

	var lineNum, valid, invalid, dups int
	scanner := bufio.NewScanner(e.in)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if seen != nil {
			if seen.Contains(line) {
				dups++
				e.bridge.Logf(logbridge.LevelDebug, "line %d: skipping "+
					"duplicate %q", lineNum, line)
				continue
			}
			seen.Add(line)
		}

		enc, hrp, data, err := decodeVariant("any", c.Base32, line)
		if err != nil {
			invalid++
			fmt.Fprintf(e.out, "%s\tinvalid\t%s\n", line, errorCode(err))
			e.bridge.Logf(logbridge.LevelWarn, "line %d: %v", lineNum, err)
			continue
		}

		valid++
		if c.Base32 {
			fmt.Fprintf(e.out, "%s\t%v\t%s\t%s\n", line, enc, hrp,
				formatValues(data))
		} else {
			fmt.Fprintf(e.out, "%s\t%v\t%s\t%x\n", line, enc, hrp, data)
		}
		e.bridge.Logf(logbridge.LevelTrace, "line %d: decoded %d data "+
			"bytes under %q", lineNum, len(data), hrp)
	}
	if err := scanner.Err(); err != nil {
		e.bridge.Logf(logbridge.LevelError, "reading input: %v", err)
		return err
	}

	e.bridge.Logf(logbridge.LevelInfo, "Processed %d lines: %d valid, "+
		"%d invalid, %d duplicates", lineNum, valid, invalid, dups)
	if invalid > 0 {
		return errBatchFailed
	}
	return nil
}

// errorCode returns the name of the codec error code carried by err.
func errorCode(err error) string {
	var e bech32.Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	return e.ErrorCode.String()
}

// formatValues returns values as space separated decimals.
func formatValues(values []byte) string {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = fmt.Sprint(v)
	}
	return strings.Join(strs, " ")
}
