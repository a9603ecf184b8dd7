package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
)

// Run parses the argument list and dispatches to the selected sub-command.
// It lives outside package main so tests can drive the CLI directly.
func Run(args []string) {
	setConfigPath(extractConfigPath(args))

	opts := &Options{}
	if len(args) > 0 {
		opts.Init(args[0])
	}

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// extractConfigPath pulls the -f/--config value out of the raw argument list
// ahead of full parsing, so sub-commands see the config path no matter where
// it appears on the command line.
func extractConfigPath(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if value, ok := strings.CutPrefix(arg, "--config="); ok {
			return value
		}
		if (arg == "-f" || arg == "--config") && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
