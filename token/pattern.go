package token

import (
	"slices"
	"strings"
)

// Slot is the set of kinds acceptable at one operand position.
type Slot []Kind

// Accepts reports whether kind fits the slot.
func (slot Slot) Accepts(kind Kind) bool {
	return slices.Contains(slot, kind)
}

// String lists the slot kinds in lower case, "ident or immediate" style.
func (slot Slot) String() string {
	names := make([]string, len(slot))
	for n, kind := range slot {
		names[n] = strings.ToLower(kind.String())
	}
	return strings.Join(names, " or ")
}

// Pattern is the ordered operand shape a line must match.
type Pattern []Slot

// Canonical operand patterns.
var (
	// op rd, rs1, rs2
	PATTERN_REGISTER = Pattern{{INSTRUCTION}, {REGCALL}, {COMMA}, {REGCALL}, {COMMA}, {REGCALL}}
	// op rd, rs1, imm
	PATTERN_IMMEDIATE = Pattern{{INSTRUCTION}, {REGCALL}, {COMMA}, {REGCALL}, {COMMA}, {IMMEDIATE}}
	// op rs1, rs2, label|offset
	PATTERN_BRANCH = Pattern{{INSTRUCTION}, {REGCALL}, {COMMA}, {REGCALL}, {COMMA}, {IDENT, IMMEDIATE}}
	// .directive label
	PATTERN_DIRECTIVE_LABEL = Pattern{{DIRECTIVE}, {IDENT}}
)
