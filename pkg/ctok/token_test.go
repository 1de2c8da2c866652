package ctok

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Keyword", KindKeyword.String())
	assert.Equal(t, "Identifier", KindIdentifier.String())
	assert.Equal(t, "Number", KindNumber.String())
	assert.Equal(t, "Operator", KindOperator.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, `Keyword("int")`, Keyword("int").String())
	assert.Equal(t, `Identifier("x")`, Identifier("x").String())
	assert.Equal(t, `Number("42")`, Number("42").String())
	assert.Equal(t, `Operator(";")`, Operator(";").String())
}

func TestToken_StructuralEquality(t *testing.T) {
	assert.True(t, Keyword("if") == Token{Kind: KindKeyword, Text: "if"})
	assert.False(t, Keyword("if") == Identifier("if"))
	assert.False(t, Number("1") == Number("01"))
}
