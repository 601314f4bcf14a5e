package token

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("COMMA", Token{Kind: COMMA, Line: 1, Col: 4}.String())
	assert.Equal("REGCALL(13)", Token{Kind: REGCALL, Literal: "13"}.String())
	assert.Equal("OPENING_PAREN", OPENING_PAREN.String())
	assert.Equal("Kind(99)", Kind(99).String())
}

func TestErrSource(t *testing.T) {
	assert := assert.New(t)

	err := Errorf(ErrUnknownLabel, 3, 15, "unknown label '%v'", "loop")
	assert.True(errors.Is(err, ErrUnknownLabel))
	assert.False(errors.Is(err, ErrSyntax))
	assert.Equal("unknown label from line 3, col 15: unknown label 'loop'", err.Error())

	var es *ErrSource
	assert.True(errors.As(err, &es))
	assert.Equal(3, es.Line)
	assert.Equal(15, es.Col)

	err = &ErrSource{Err: ErrMissingGlobalDirective, Line: 1}
	assert.Equal("missing global directive from line 1", err.Error())
}

func TestToken_Errorf(t *testing.T) {
	assert := assert.New(t)

	tok := Token{Kind: IDENT, Literal: "foo", Line: 7, Col: 2}
	err := tok.Errorf(ErrSyntax, "bad '%v'", tok.Literal)
	assert.ErrorIs(err, ErrSyntax)
	assert.Equal("syntax error from line 7, col 2: bad 'foo'", err.Error())
}
