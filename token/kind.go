package token

// Kind is the classification of a lexed token.
type Kind int

//go:generate go tool stringer -type=Kind
const (
	INSTRUCTION   = Kind(0)  // Instruction mnemonic, lowercased.
	IDENT         = Kind(1)  // Identifier; label references and string bodies.
	REGCALL       = Kind(2)  // Resolved register reference, index as literal.
	IMMEDIATE     = Kind(3)  // Decimal digit run.
	LABEL         = Kind(4)  // Label declaration, colon consumed.
	COMMA         = Kind(5)  // ,
	DIRECTIVE     = Kind(6)  // .name
	STRING        = Kind(7)  // Reserved.
	RETURN        = Kind(8)  // ret
	TAB           = Kind(9)  // Indentation marker.
	OPENING_PAREN = Kind(10) // (
	CLOSING_PAREN = Kind(11) // )
	ECALL         = Kind(12) // ecall
	NOP           = Kind(13) // NOP
	COMMENT       = Kind(14) // Never leaves the lexer.
)
