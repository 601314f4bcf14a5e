package interp

import (
	"strings"

	"github.com/ezrec/rvlearn/token"
)

// Verify checks a line against an operand pattern, position by position.
// Tokens beyond the end of the pattern are not examined.
func Verify(tokens []token.Token, pattern token.Pattern) (err error) {
	for n, slot := range pattern {
		if n >= len(tokens) {
			var at token.Token
			if len(tokens) != 0 {
				at = tokens[len(tokens)-1]
			}
			err = at.Errorf(token.ErrSyntax, "expected '%v', but found nothing instead", slot)
			return
		}

		tok := tokens[n]
		if !slot.Accepts(tok.Kind) {
			err = tok.Errorf(token.ErrSyntax, "expected '%v', but found '%v' instead",
				slot, strings.ToLower(tok.Kind.String()))
			return
		}
	}

	return
}
