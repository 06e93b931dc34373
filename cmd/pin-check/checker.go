package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lgbarn/pin-go/pin"
)

// Checker validates a stream of PIN tokens and reports the results.
type Checker struct {
	Out     io.Writer
	ErrOut  io.Writer
	Quiet   bool
	Verbose bool
}

// CheckTokens validates each token in order. It returns true when every
// token is a well-formed PIN token.
func (c *Checker) CheckTokens(tokens []string) bool {
	allValid := true
	for _, token := range tokens {
		if !c.checkToken(token) {
			allValid = false
		}
	}
	return allValid
}

// CheckReader validates one token per line from r, skipping blank lines.
func (c *Checker) CheckReader(r io.Reader) bool {
	scanner := bufio.NewScanner(r)
	allValid := true
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if !c.checkToken(line) {
			allValid = false
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(c.ErrOut, "read error: %v\n", err)
		return false
	}
	return allValid
}

// checkToken validates a single token and reports its result.
func (c *Checker) checkToken(token string) bool {
	id, err := pin.Parse(token)
	if err != nil {
		if !c.Quiet {
			fmt.Fprintf(c.ErrOut, "%s: %v\n", token, err)
		}
		return false
	}
	if c.Quiet {
		return true
	}
	if c.Verbose {
		fmt.Fprintf(c.Out, "%s: piece=%s side=%s state=%s terminal=%t\n",
			token, id.Piece(), id.Side(), id.State(), id.Terminal())
	} else {
		fmt.Fprintf(c.Out, "%s: valid\n", token)
	}
	return true
}
