package ctok

import (
	"io"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-ctok/internal/tokenizer"
)

// Tokenizer produces tokens on demand from a cursor over its input.
//
// Each call to Next advances the cursor; it never rewinds. Once Next has
// reported the end of the stream, either because the input is exhausted or
// because the next character is not recognized, every later call reports the
// end again.
//
// A Tokenizer is not safe for concurrent use.
type Tokenizer struct {
	stream shapetokenizer.Stream
	tok    shapetokenizer.Tokenizer
	halted bool
}

// NewTokenizer creates a Tokenizer positioned at the first character of input.
// Empty input is valid and yields no tokens.
func NewTokenizer(input string) *Tokenizer {
	return newTokenizerWithStream(shapetokenizer.NewStream(input))
}

// NewTokenizerFromReader creates a Tokenizer that reads its input from reader
// through a buffered stream. A read error ends the token stream the same way
// the end of input does; use NewScanner to observe read errors.
func NewTokenizerFromReader(reader io.Reader) *Tokenizer {
	return newTokenizerWithStream(shapetokenizer.NewStreamFromReader(reader))
}

func newTokenizerWithStream(stream shapetokenizer.Stream) *Tokenizer {
	return &Tokenizer{
		stream: stream,
		tok:    tokenizer.NewTokenizerWithStream(stream),
	}
}

// Next returns the next token and true, or the zero Token and false when
// there are no more tokens.
//
// Whitespace before a token is skipped. An unrecognized character such as
// '+' or '.' ends the stream without being consumed, so "x+y" yields only
// Identifier("x").
func (t *Tokenizer) Next() (Token, bool) {
	if t.halted {
		return Token{}, false
	}

	for {
		raw, ok := t.tok.NextToken()
		if !ok {
			t.halted = true
			return Token{}, false
		}
		if raw.Kind() == tokenizer.TokenWhitespace {
			continue
		}

		kind, ok := kindOf(raw.Kind())
		if !ok {
			t.halted = true
			return Token{}, false
		}
		return Token{Kind: kind, Text: raw.ValueString()}, true
	}
}

// Halted reports whether Next has already signalled the end of the stream.
func (t *Tokenizer) Halted() bool {
	return t.halted
}

// Exhausted reports whether the tokenizer halted at the true end of input,
// as opposed to stopping on an unrecognized character. It is false while
// tokens may still be produced.
func (t *Tokenizer) Exhausted() bool {
	return t.halted && t.stream.IsEos()
}

// All drains the tokenizer and returns the remaining tokens in order.
// The result is never nil.
func (t *Tokenizer) All() []Token {
	tokens := []Token{}
	for {
		token, ok := t.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, token)
	}
}
