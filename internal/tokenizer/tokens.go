// Package tokenizer provides C-subset tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for the C subset.
//
// Note: The framework layer also emits whitespace runs as tokens so that
// whitespace classification stays under this package's control. The public
// ctok package drops them before handing tokens to callers.
const (
	// Word tokens
	TokenKeyword    = "Keyword"    // if, int
	TokenIdentifier = "Identifier" // [A-Za-z_][letters, digits, _]*

	// Literal token
	TokenNumber = "Number" // [0-9]+

	// Single-character operators
	TokenOperator = "Operator" // = or ;

	// Trivia
	TokenWhitespace = "Whitespace" // unicode.IsSpace run
)

// keywords is the fixed reserved word set.
var keywords = map[string]struct{}{
	"if":  {},
	"int": {},
}

// IsKeyword reports whether word is a reserved word.
// Only the exact text matches; "iffy" is not a keyword.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}
