// Package token holds the vocabulary shared by the rvlearn lexer and
// interpreter: token kinds, the instruction mnemonic list, the identifier and
// digit character classes, register alias resolution, operand patterns and
// the positioned error model.
package token
