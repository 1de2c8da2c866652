// Command ctok reads C source text from standard input and prints its tokens,
// one per line.
//
// Usage:
//
//	echo "int x = 42;" | ctok
//	ctok -all < decl.c
//	ctok -dump < decl.c
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/shapestone/shape-ctok/pkg/ctok"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	flags := flag.NewFlagSet("ctok", flag.ContinueOnError)
	flags.SetOutput(stderr)
	all := flags.Bool("all", false, "tokenize all of standard input instead of the first line")
	dump := flags.Bool("dump", false, "print a structural dump of the token slice")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	input, err := readInput(stdin, *all)
	if err != nil {
		logger.Printf("Failed to read line: %v", err)
		return 1
	}

	tokens := ctok.Tokenize(input)

	if *dump {
		spew.Fdump(stdout, tokens)
		return 0
	}
	for _, token := range tokens {
		fmt.Fprintln(stdout, token)
	}
	return 0
}

// readInput returns the first line of r including its newline, or all of r.
// Reaching end of input before a newline is not an error.
func readInput(r io.Reader, all bool) (string, error) {
	if all {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}
