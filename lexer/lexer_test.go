package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rvlearn/token"
)

// kinds strips positions so tables stay readable.
func kinds(tokens []token.Token) (out []string) {
	for _, tok := range tokens {
		out = append(out, tok.String())
	}
	return
}

func TestTokenize(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		line   string
		expect []string
	}){
		{"empty", "", nil},
		{"spaces", "      ", []string{"TAB"}},
		{"comment", "# set s0 to 10", nil},
		{"comment_indented", "\t# indented comment", []string{"TAB"}},
		{"addi", "addi s0, zero, 10", []string{
			"INSTRUCTION(addi)", "REGCALL(13)", "COMMA", "REGCALL(0)", "COMMA", "IMMEDIATE(10)",
		}},
		{"add", "add s2, s0, s1", []string{
			"INSTRUCTION(add)", "REGCALL(15)", "COMMA", "REGCALL(13)", "COMMA", "REGCALL(14)",
		}},
		{"upper", "ADDI T0, X1, 4", []string{
			"INSTRUCTION(addi)", "IDENT(T)", "IMMEDIATE(0)", "COMMA", "IDENT(X)", "IMMEDIATE(1)", "COMMA", "IMMEDIATE(4)",
		}},
		{"branch_label", "beq x18, x19, loop", []string{
			"INSTRUCTION(beq)", "REGCALL(18)", "COMMA", "REGCALL(19)", "COMMA", "IDENT(loop)",
		}},
		{"branch_offset", "bne t0, a0, 12", []string{
			"INSTRUCTION(bne)", "REGCALL(6)", "COMMA", "REGCALL(25)", "COMMA", "IMMEDIATE(12)",
		}},
		{"pc_alias", "sub pc, pc, s0", []string{
			"INSTRUCTION(sub)", "REGCALL(32)", "COMMA", "REGCALL(32)", "COMMA", "REGCALL(13)",
		}},
		{"a7", "add a7, zero, zero", []string{
			"INSTRUCTION(add)", "REGCALL(32)", "COMMA", "REGCALL(0)", "COMMA", "REGCALL(0)",
		}},
		{"named", "or ra, sp, gp", []string{
			"INSTRUCTION(or)", "REGCALL(1)", "COMMA", "REGCALL(2)", "COMMA", "REGCALL(3)",
		}},
		{"tp_fp", "and tp, fp, zero", []string{
			"INSTRUCTION(and)", "REGCALL(4)", "COMMA", "REGCALL(12)", "COMMA", "REGCALL(0)",
		}},
		{"label", "loop:", []string{"LABEL(loop)"}},
		{"label_start", "_start:", []string{"LABEL(_start)"}},
		{"label_prefix", "start:", []string{"LABEL(start)"}},
		{"indented", "    addi x18, x18, 1", []string{
			"TAB", "INSTRUCTION(addi)", "REGCALL(18)", "COMMA", "REGCALL(18)", "COMMA", "IMMEDIATE(1)",
		}},
		{"tabbed", "\taddi x20, x20, 2 # increment", []string{
			"TAB", "INSTRUCTION(addi)", "REGCALL(20)", "COMMA", "REGCALL(20)", "COMMA", "IMMEDIATE(2)",
		}},
		{"directive", ".global _start", []string{"DIRECTIVE(global)", "IDENT(_start)"}},
		{"directive_case", ".GLOBAL main", []string{"DIRECTIVE(GLOBAL)", "IDENT(main)"}},
		{"nop", "NOP # filler", []string{"NOP"}},
		{"nop_lower", "nop", []string{"IDENT(nop)"}},
		{"keywords", "ret ecall", []string{"RETURN", "ECALL"}},
		{"parens", "sb s0, 0(zero)", []string{
			"IDENT(sb)", "REGCALL(13)", "COMMA", "IMMEDIATE(0)", "OPENING_PAREN", "REGCALL(0)", "CLOSING_PAREN",
		}},
		{"string", `"hello world" x1`, []string{"IDENT(hello world)", "REGCALL(1)"}},
		{"string_open", `"unterminated`, []string{"IDENT(unterminated)"}},
		{"dead_mnemonic", "bqe x1, x2, end", []string{
			"INSTRUCTION(bqe)", "REGCALL(1)", "COMMA", "REGCALL(2)", "COMMA", "IDENT(end)",
		}},
	}

	for _, entry := range table {
		tokens, err := Tokenize(entry.line, 1)
		assert.NoError(err, entry.name)
		assert.Equal(entry.expect, kinds(tokens), entry.name)
	}
}

func TestTokenize_Position(t *testing.T) {
	assert := assert.New(t)

	tokens, err := Tokenize("addi s0, zero, 10", 3)
	assert.NoError(err)
	assert.Equal([]token.Token{
		{Kind: token.INSTRUCTION, Literal: "addi", Line: 3, Col: 1},
		{Kind: token.REGCALL, Literal: "13", Line: 3, Col: 6},
		{Kind: token.COMMA, Line: 3, Col: 8},
		{Kind: token.REGCALL, Literal: "0", Line: 3, Col: 10},
		{Kind: token.COMMA, Line: 3, Col: 14},
		{Kind: token.IMMEDIATE, Literal: "10", Line: 3, Col: 16},
	}, tokens)
}

func TestTokenize_SpaceNormalisation(t *testing.T) {
	assert := assert.New(t)

	// Only the first run of four spaces becomes a tab.
	tokens, err := Tokenize("        NOP", 1)
	assert.NoError(err)
	assert.Equal([]string{"TAB", "NOP"}, kinds(tokens))

	tokens, err = Tokenize("\t\tNOP", 1)
	assert.NoError(err)
	assert.Equal([]string{"TAB", "TAB", "NOP"}, kinds(tokens))
}

func TestTokenize_IllegalCharacter(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		col  int
	}){
		{"addi s0, zero, -1", 16},
		{"add $1, x0, x1", 5},
		{"loop1:", 6},
		{"x1:", 3},
		{"add s0, s1, s2;", 15},
		{"é", 1},
	}

	for _, entry := range table {
		tokens, err := Tokenize(entry.line, 9)
		assert.Nil(tokens, entry.line)
		assert.True(errors.Is(err, token.ErrIllegalCharacter), entry.line)

		var es *token.ErrSource
		if assert.True(errors.As(err, &es), entry.line) {
			assert.Equal(9, es.Line, entry.line)
			assert.Equal(entry.col, es.Col, entry.line)
		}
	}
}

func TestTokenize_InvalidRegister(t *testing.T) {
	assert := assert.New(t)

	_, err := Tokenize("add x99999999999999999999, x1, x2", 4)
	assert.ErrorIs(err, token.ErrInvalidRegisterCall)

	var es *token.ErrSource
	assert.True(errors.As(err, &es))
	assert.Equal(4, es.Line)
	assert.Equal(5, es.Col)
}

func TestLexer_Withdraw(t *testing.T) {
	assert := assert.New(t)

	// Register prefixes that start ordinary identifiers back off and
	// rescan the whole word.
	for _, word := range []string{"sub", "and", "xor", "target", "alpha", "slt"} {
		tokens, err := Tokenize(word, 1)
		assert.NoError(err, word)
		if assert.Len(tokens, 1, word) {
			assert.Equal(1, tokens[0].Col, word)
			assert.NotEqual(token.REGCALL, tokens[0].Kind, word)
		}
	}
}
