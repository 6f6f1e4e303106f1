// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/eventtype/lib/codec"
	"github.com/bureau-foundation/eventtype/lib/eventtype"
)

// classification is the --json output record for classify.
type classification struct {
	Type  eventtype.Type  `json:"type"`
	Class eventtype.Class `json:"class"`
}

func runClassify(env *environment, args []string) int {
	var jsonOutput bool
	flagSet := pflag.NewFlagSet("classify", pflag.ContinueOnError)
	flagSet.SetOutput(env.stderr)
	flagSet.BoolVar(&jsonOutput, "json", false, "print one JSON object per type")
	if err := flagSet.Parse(args); err != nil {
		return usageError(env, err)
	}
	if flagSet.NArg() == 0 {
		fmt.Fprintln(env.stderr, "error: classify requires at least one event type")
		return exitUsage
	}

	encoder := json.NewEncoder(env.stdout)
	for _, raw := range flagSet.Args() {
		eventType := env.registry.Find(raw)
		if eventType.Class() == eventtype.Unknown {
			env.logger.Debug("unclassified event type", "type", raw)
		}
		if jsonOutput {
			if err := encoder.Encode(classification{Type: eventType, Class: eventType.Class()}); err != nil {
				fmt.Fprintf(env.stderr, "error: %v\n", err)
				return exitUsage
			}
			continue
		}
		env.printType(eventType)
	}
	return exitOK
}

func runList(env *environment, args []string) int {
	var classFilter string
	var digest bool
	flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
	flagSet.SetOutput(env.stderr)
	flagSet.StringVar(&classFilter, "class", "", "only list types of this class")
	flagSet.BoolVar(&digest, "digest", false, "print the BLAKE3 digest of the classification table instead")
	if err := flagSet.Parse(args); err != nil {
		return usageError(env, err)
	}
	if flagSet.NArg() > 0 {
		fmt.Fprintf(env.stderr, "error: unexpected argument: %s\n", flagSet.Arg(0))
		return exitUsage
	}

	if digest {
		sum := env.registry.Digest()
		fmt.Fprintln(env.stdout, hex.EncodeToString(sum[:]))
		return exitOK
	}

	var filter *eventtype.Class
	if classFilter != "" {
		class, err := eventtype.ParseClass(classFilter)
		if err != nil {
			fmt.Fprintf(env.stderr, "error: --class: %v\n", err)
			return exitUsage
		}
		filter = &class
	}

	for _, eventType := range env.registry.Types() {
		if filter != nil && eventType.Class() != *filter {
			continue
		}
		env.printType(eventType)
	}
	return exitOK
}

// errMissingType reports an event document with no "type" key. It is
// distinct from ErrMalformedType, which covers a present but non-string
// value such as null.
var errMissingType = errors.New(`missing "type" field`)

func runDecode(env *environment, args []string) int {
	var cborInput bool
	flagSet := pflag.NewFlagSet("decode", pflag.ContinueOnError)
	flagSet.SetOutput(env.stderr)
	flagSet.BoolVar(&cborInput, "cbor", false, "read a stream of CBOR event maps instead of JSON lines")
	if err := flagSet.Parse(args); err != nil {
		return usageError(env, err)
	}
	if flagSet.NArg() > 0 {
		fmt.Fprintf(env.stderr, "error: decode takes no arguments (reads stdin)\n")
		return exitUsage
	}

	var read, failures int
	var err error
	if cborInput {
		read, failures, err = env.decodeCBOR()
	} else {
		read, failures, err = env.decodeJSON()
	}
	if err != nil {
		fmt.Fprintf(env.stderr, "error: reading stdin: %v\n", err)
		return exitUsage
	}

	if failures > 0 {
		env.logger.Warn("decode finished with failures", "events", read, "failures", failures)
		return exitDecodeFail
	}
	return exitOK
}

// decodeJSON reads one JSON event per line, skipping blank lines.
func (env *environment) decodeJSON() (read, failures int, err error) {
	scanner := bufio.NewScanner(env.stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		read++

		var fields map[string]json.RawMessage
		var eventType eventtype.Type
		err = json.Unmarshal(line, &fields)
		if err == nil {
			raw, ok := fields["type"]
			if !ok {
				err = errMissingType
			} else {
				err = eventType.UnmarshalJSON(raw)
			}
		}
		if !env.report("line", lineNumber, eventType, err) {
			failures++
		}
	}
	return read, failures, scanner.Err()
}

// decodeCBOR reads a stream of concatenated CBOR event maps. A
// document that is not a map is counted as a failure and decoding
// continues; a stream that is not well-formed CBOR stops decoding.
func (env *environment) decodeCBOR() (read, failures int, err error) {
	decoder := codec.NewDecoder(env.stdin)
	for {
		var fields map[string]codec.RawMessage
		err = decoder.Decode(&fields)
		if errors.Is(err, io.EOF) {
			return read, failures, nil
		}
		read++

		var typeErr *cbor.UnmarshalTypeError
		if err != nil && !errors.As(err, &typeErr) {
			env.report("item", read, eventtype.Type{}, err)
			return read, failures + 1, nil
		}

		var eventType eventtype.Type
		if err == nil {
			raw, ok := fields["type"]
			if !ok {
				err = errMissingType
			} else {
				err = eventType.UnmarshalCBOR(raw)
			}
		}
		if !env.report("item", read, eventType, err) {
			failures++
		}
	}
}

// report prints a decoded event type, or logs why the event at
// position could not be decoded. It returns false on failure.
func (env *environment) report(unit string, position int, eventType eventtype.Type, err error) bool {
	if err != nil {
		env.logger.Warn("undecodable event",
			unit, position,
			"malformed_type", errors.Is(err, eventtype.ErrMalformedType),
			"error", err)
		return false
	}
	env.printType(eventType)
	return true
}

func usageError(env *environment, err error) int {
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	fmt.Fprintf(env.stderr, "error: %v\n", err)
	return exitUsage
}
