package token

import (
	"slices"
	"strconv"
	"strings"
)

// Register file geometry.
const (
	REGISTER_COUNT = 33 // Slots 0 through 32.
	REGISTER_ZERO  = 0  // Hard-wired zero.
	REGISTER_PC    = 32 // Program counter, also general purpose.
)

// Instructions lists every mnemonic the lexer recognises.
// Not every mnemonic is executable.
var Instructions = []string{
	"add", "sub", "and", "or", "xor", "sll", "srl", "slt",
	"addi", "andi", "ori", "xori", "slli", "srli", "slti",
	"beq", "bne", "blt", "bqe",
}

// IsInstruction reports whether text is a mnemonic, ignoring case.
func IsInstruction(text string) bool {
	return slices.Contains(Instructions, strings.ToLower(text))
}

// IsIdent reports whether r belongs to the identifier alphabet.
func IsIdent(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

// IsDigit reports whether r is a decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// registerBase maps numbered register prefixes to their first index.
var registerBase = map[rune]int{
	'x': 0,
	't': 6,
	's': 13,
	'a': 25,
}

// IsRegisterPrefix reports whether r starts a numbered register name.
func IsRegisterPrefix(r rune) bool {
	_, ok := registerBase[r]
	return ok
}

// Register resolves a numbered register name to its index. The index is not
// bounds checked; a7 resolves to 32 and x40 to 40.
func Register(prefix rune, suffix string) (index int, err error) {
	base, ok := registerBase[prefix]
	if !ok {
		err = ErrRegisterName(string(prefix) + suffix)
		return
	}

	n, perr := strconv.ParseUint(suffix, 10, 31)
	if perr != nil {
		err = ErrRegisterName(string(prefix) + suffix)
		return
	}

	index = base + int(n)
	return
}

// keyword is the classification of a reserved word.
type keyword struct {
	kind    Kind
	literal string
}

var keywords = map[string]keyword{
	"zero":  {REGCALL, "0"},
	"ra":    {REGCALL, "1"},
	"sp":    {REGCALL, "2"},
	"gp":    {REGCALL, "3"},
	"tp":    {REGCALL, "4"},
	"fp":    {REGCALL, "12"},
	"pc":    {REGCALL, strconv.Itoa(REGISTER_PC)},
	"ret":   {RETURN, ""},
	"ecall": {ECALL, ""},
	"NOP":   {NOP, ""},
}

// Keyword classifies a reserved word. Matching is case sensitive.
func Keyword(text string) (kind Kind, literal string, ok bool) {
	kw, ok := keywords[text]
	if !ok {
		return
	}

	kind = kw.kind
	literal = kw.literal
	return
}
