// flags.go - Command-line flag definitions
package main

import "flag"

var (
	quiet   = flag.Bool("q", false, "Suppress per-token output; report via exit status only")
	verbose = flag.Bool("v", false, "Print the parsed components of each valid token")
	version = flag.Bool("version", false, "Print version and exit")
)
