// pin-check is a tool for validating Piece Identifier Notation (PIN) tokens.
// Tokens are read from the command line, or from stdin one per line when no
// arguments are given. The exit status is 0 when every token is valid.
package main

import (
	"flag"
	"fmt"
	"os"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("pin-check version %s\n", programVersion)
		os.Exit(0)
	}

	checker := &Checker{
		Out:     os.Stdout,
		ErrOut:  os.Stderr,
		Quiet:   *quiet,
		Verbose: *verbose,
	}

	var ok bool
	if flag.NArg() > 0 {
		ok = checker.CheckTokens(flag.Args())
	} else {
		ok = checker.CheckReader(os.Stdin)
	}
	if !ok {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: pin-check [options] [token ...]\n\n")
	fmt.Fprintf(os.Stderr, "Validates PIN tokens. With no arguments, reads one token per line from stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
