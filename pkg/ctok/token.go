package ctok

import (
	"fmt"

	"github.com/shapestone/shape-ctok/internal/tokenizer"
)

// Kind identifies which of the four token shapes a Token has.
// The set is closed; there is no way to register further kinds.
type Kind int

const (
	// KindKeyword is a reserved word: "if" or "int".
	KindKeyword Kind = iota + 1
	// KindIdentifier is a run of letters, digits and underscores that does
	// not start with a digit and is not a reserved word.
	KindIdentifier
	// KindNumber is a run of decimal digits.
	KindNumber
	// KindOperator is "=" or ";".
	KindOperator
)

// String returns the variant name of the kind.
func (k Kind) String() string {
	switch k {
	case KindKeyword:
		return "Keyword"
	case KindIdentifier:
		return "Identifier"
	case KindNumber:
		return "Number"
	case KindOperator:
		return "Operator"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a classified unit of source text.
//
// Tokens compare structurally with ==. They carry no position and do not
// reference the input they were scanned from. Text is never empty for a
// token produced by a Tokenizer.
type Token struct {
	Kind Kind
	Text string
}

// Keyword returns a keyword token.
func Keyword(text string) Token { return Token{Kind: KindKeyword, Text: text} }

// Identifier returns an identifier token.
func Identifier(text string) Token { return Token{Kind: KindIdentifier, Text: text} }

// Number returns a number token.
func Number(text string) Token { return Token{Kind: KindNumber, Text: text} }

// Operator returns an operator token.
func Operator(text string) Token { return Token{Kind: KindOperator, Text: text} }

// String returns the structural representation of the token, such as
// Keyword("int") or Operator(";").
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

// kindOf maps a framework token kind onto the public Kind.
// Whitespace and unknown kinds report false.
func kindOf(kind string) (Kind, bool) {
	switch kind {
	case tokenizer.TokenKeyword:
		return KindKeyword, true
	case tokenizer.TokenIdentifier:
		return KindIdentifier, true
	case tokenizer.TokenNumber:
		return KindNumber, true
	case tokenizer.TokenOperator:
		return KindOperator, true
	default:
		return 0, false
	}
}
