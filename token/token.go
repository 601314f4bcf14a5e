package token

import (
	"fmt"
)

// Token is a classified lexical unit with its source position.
// Line and Col are 1-based.
type Token struct {
	Kind    Kind   // Token classification.
	Literal string // Payload; empty when the kind carries none.
	Line    int    // Source line.
	Col     int    // Source column.
}

// String returns KIND or KIND(literal).
func (tok Token) String() string {
	if len(tok.Literal) == 0 {
		return tok.Kind.String()
	}

	return fmt.Sprintf("%v(%v)", tok.Kind, tok.Literal)
}

// Errorf creates a positioned error of the given kind at the token.
func (tok Token) Errorf(kind error, format string, args ...any) error {
	return Errorf(kind, tok.Line, tok.Col, format, args...)
}
