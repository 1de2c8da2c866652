package tokenizer

import (
	"unicode"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for the C subset.
// The tokenizer matches tokens in this order:
// 1. Whitespace runs (emitted as TokenWhitespace)
// 2. Words (keywords and identifiers)
// 3. Numbers
// 4. Operators = and ;
//
// Whitespace handling is disabled at the framework level so that the
// whitespace set is exactly unicode.IsSpace. When no matcher accepts the
// next character NextToken reports no token and the character stays unread.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		WhitespaceMatcher(),
		WordMatcher(),
		NumberMatcher(),
		tokenizer.StringMatcherFunc(TokenOperator, "="),
		tokenizer.StringMatcherFunc(TokenOperator, ";"),
	)
}

// NewTokenizerWithStream creates a tokenizer using a pre-configured stream.
// This is used to support streaming from io.Reader and to let callers
// inspect the stream (IsEos) after tokenization stops.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// WhitespaceMatcher matches a maximal run of whitespace characters.
func WhitespaceMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		value := consumeWhile(stream, unicode.IsSpace)
		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenWhitespace, value)
	}
}

// WordMatcher matches identifiers and keywords.
//
// Grammar:
//
//	Word = ( Letter | "_" ) { Letter | Digit | "_" } ;
//
// The first character must be an ASCII letter or underscore. Later
// characters may be any Unicode letter or number. The matched text is a
// keyword only if it equals a reserved word exactly.
func WordMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || !isWordStart(r) {
			return nil
		}

		value := consumeWhile(stream, isWordPart)
		if IsKeyword(string(value)) {
			return tokenizer.NewToken(TokenKeyword, value)
		}
		return tokenizer.NewToken(TokenIdentifier, value)
	}
}

// NumberMatcher matches a maximal run of ASCII decimal digits.
// There is no sign, decimal point or exponent.
//
// Performance: Uses ByteStream for fast ASCII scanning when available.
func NumberMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if byteStream, ok := stream.(tokenizer.ByteStream); ok {
			return numberMatcherByte(byteStream)
		}
		return numberMatcherRune(stream)
	}
}

// numberMatcherByte uses ByteStream for optimal performance.
// Digits are ASCII so a byte scan stops at exactly the same place as a rune scan.
func numberMatcherByte(stream tokenizer.ByteStream) *tokenizer.Token {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok || !isDigitByte(b) {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenNumber, []rune(string(value)))
}

// numberMatcherRune is the fallback rune-based implementation.
func numberMatcherRune(stream tokenizer.Stream) *tokenizer.Token {
	value := consumeWhile(stream, isDigit)
	if len(value) == 0 {
		return nil
	}
	return tokenizer.NewToken(TokenNumber, value)
}

// consumeWhile consumes characters as long as accept holds and returns them.
// Nothing is consumed if the first character is rejected.
func consumeWhile(stream tokenizer.Stream, accept func(rune) bool) []rune {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok || !accept(r) {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	return value
}

func isWordStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isWordPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
