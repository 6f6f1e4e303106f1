// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/eventtype/lib/config"
	"github.com/bureau-foundation/eventtype/lib/eventtype"
	"github.com/bureau-foundation/eventtype/lib/version"
)

const (
	exitOK         = 0
	exitDecodeFail = 1
	exitUsage      = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// environment carries the streams and shared state every command uses.
type environment struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	logger   *slog.Logger
	registry *eventtype.Registry
	styles   classStyles
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Handle --version before anything else.
	for _, argument := range args {
		if argument == "--version" {
			version.Print(stdout, "bureau-event-type")
			return exitOK
		}
	}

	var configPath string
	var logLevel string

	flagSet := pflag.NewFlagSet("bureau-event-type", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.SetInterspersed(false)
	flagSet.StringVar(&configPath, "config", "", "config file declaring additional event types (default: $BUREAU_CONFIG)")
	flagSet.StringVar(&logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(stderr, flagSet)
			return exitOK
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	if help, _ := flagSet.GetBool("help"); help {
		printUsage(stderr, flagSet)
		return exitOK
	}

	remaining := flagSet.Args()
	if len(remaining) == 0 {
		fmt.Fprintln(stderr, "error: command required")
		printUsage(stderr, flagSet)
		return exitUsage
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	if logLevel != "" {
		if err := cfg.Log.Level.UnmarshalText([]byte(logLevel)); err != nil {
			fmt.Fprintf(stderr, "error: --log-level: %v\n", err)
			return exitUsage
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: invalid config: %v\n", err)
		return exitUsage
	}

	env := &environment{
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		logger:   cfg.Logger(stderr),
		registry: eventtype.Default(),
		styles:   newClassStyles(stdout),
	}

	registered, err := cfg.Apply(env.registry)
	for _, eventType := range registered {
		env.logger.Debug("registered event type", "type", eventType.String(), "class", eventType.Class().String())
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: config event_types: %v\n", err)
		return exitUsage
	}

	command, commandArgs := remaining[0], remaining[1:]
	switch command {
	case "classify":
		return runClassify(env, commandArgs)
	case "list":
		return runList(env, commandArgs)
	case "decode":
		return runDecode(env, commandArgs)
	default:
		fmt.Fprintf(stderr, "error: unknown command %q\n", command)
		printUsage(stderr, flagSet)
		return exitUsage
	}
}

// loadConfig loads the file named by --config, then BUREAU_CONFIG.
// Without either, the defaults apply and only the well-known types
// are registered.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	if os.Getenv(config.EnvironmentVariable) != "" {
		return config.Load()
	}
	return config.Default(), nil
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `Usage: bureau-event-type [flags] <command> [args]

Commands:
  classify [--json] TYPE...   print the class of each event type
  list [--class C] [--digest] list registered event types
  decode [--cbor]             classify the "type" field of events read from stdin
                              (JSON, one per line; or a CBOR stream with --cbor)

Flags:
%s`, flagSet.FlagUsages())
}
