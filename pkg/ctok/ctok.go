// Package ctok tokenizes a small subset of a C-like language.
//
// The tokenizer recognizes four token shapes:
//
//   - Keyword: the reserved words "if" and "int"
//   - Identifier: letters, digits and underscores, not starting with a digit
//   - Number: a run of decimal digits
//   - Operator: "=" or ";"
//
// Whitespace between tokens is skipped. There are no comments, strings,
// multi-character operators or signed and fractional numbers.
//
// # Unrecognized characters
//
// The tokenizer has no error values. The first character that starts none of
// the shapes above ends the token stream, and nothing after it is scanned:
//
//	ctok.Tokenize("x+y") // [Identifier("x")]
//
// Use Tokenizer.Exhausted to tell a stop on such a character apart from the
// end of input.
//
// # Thread Safety
//
// Tokenize and TokenizeReader are safe for concurrent use; each call creates
// its own Tokenizer. A single Tokenizer or Scanner must not be shared between
// goroutines without external locking.
//
// # Example usage with Tokenize:
//
//	tokens := ctok.Tokenize("int x = 42;")
//	for _, token := range tokens {
//	    fmt.Println(token) // Keyword("int"), Identifier("x"), ...
//	}
//
// # Example usage with a Tokenizer:
//
//	tok := ctok.NewTokenizer("if ready = 1;")
//	for {
//	    token, ok := tok.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(token.Kind, token.Text)
//	}
package ctok

import (
	"fmt"
	"io"
)

// Tokenize returns all tokens of input in order.
// Empty input returns an empty, non-nil slice.
//
// Example:
//
//	tokens := ctok.Tokenize("int x = 42;")
//	// [Keyword("int") Identifier("x") Operator("=") Number("42") Operator(";")]
func Tokenize(input string) []Token {
	return NewTokenizer(input).All()
}

// TokenizeReader reads all of reader and returns its tokens.
// The only error is a failure to read; unrecognized characters end the
// token slice as they do for Tokenize.
func TokenizeReader(reader io.Reader) ([]Token, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("ctok: read input: %w", err)
	}
	return Tokenize(string(data)), nil
}

// Format returns the format identifier for this tokenizer.
func Format() string {
	return "C"
}
