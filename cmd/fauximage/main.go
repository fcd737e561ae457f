// fauximage generates flat-color background images for faux columns.
//
// Usage:
//
//	fauximage [serve] [-config faux.yaml]
//	fauximage render -type png -bg f0c -w 100 -h 50 [-bdloc top -bdcolor 000 -bdsize 5] [-o /path/to/fauximages/]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var errUsage = errors.New("usage")

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case errors.Is(err, errUsage):
		os.Exit(2)
	case err != nil:
		fmt.Fprintf(os.Stderr, "fauximage: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches args to a command. Without a command, or when the first
// argument is a flag, run serves.
func run(args []string, stdout, stderr io.Writer) error {
	cmd := "serve"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "serve":
		return runServe(args)
	case "render":
		return runRender(args, stdout)
	case "help":
		printUsage(stderr)
		return nil
	default:
		fmt.Fprintf(stderr, "fauximage: unknown command %q\n\n", cmd)
		printUsage(stderr)
		return errUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `fauximage - faux column background image generator

Commands:
  serve   Serve images over HTTP (default).
  render  Render a single image to a file or stdout.

Run "fauximage <command> -h" for the flags of a command.
`)
}
