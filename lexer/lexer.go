// Package lexer converts one line of rvlearn assembly text into tokens.
package lexer

import (
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/rvlearn/token"
)

// eof is the current character past the end of the line.
const eof = rune(-1)

// Lexer is a single-line cursor with one character of lookahead.
type Lexer struct {
	text   []rune
	idx    int
	lineNo int
	char   rune
}

// New creates a lexer for one line of text. The first run of four spaces
// is normalised to a tab before scanning.
func New(text string, lineNo int) (lx *Lexer) {
	lx = &Lexer{
		text:   []rune(strings.Replace(text, "    ", "\t", 1)),
		idx:    -1,
		lineNo: lineNo,
	}
	lx.advance()

	return
}

// Tokenize lexes a single line of text.
func Tokenize(text string, lineNo int) (tokens []token.Token, err error) {
	return New(text, lineNo).Lex()
}

func (lx *Lexer) advance() {
	lx.idx++
	lx.char = lx.at(lx.idx)
}

// withdraw steps the cursor back one character.
func (lx *Lexer) withdraw() {
	lx.idx--
	lx.char = lx.at(lx.idx)
}

func (lx *Lexer) at(idx int) rune {
	if idx < 0 || idx >= len(lx.text) {
		return eof
	}
	return lx.text[idx]
}

// col is the 1-based column of the current character.
func (lx *Lexer) col() int {
	return lx.idx + 1
}

func (lx *Lexer) emit(kind token.Kind, col int, literal string) token.Token {
	return token.Token{Kind: kind, Literal: literal, Line: lx.lineNo, Col: col}
}

// Lex scans the whole line. Comments are dropped from the result.
func (lx *Lexer) Lex() (tokens []token.Token, err error) {
	defer func() {
		if err != nil {
			tokens = nil
		}
	}()

	for lx.char != eof {
		col := lx.col()
		switch {
		case lx.char == ' ' || lx.char == '\n':
			lx.advance()
		case lx.char == '\t':
			tokens = append(tokens, lx.emit(token.TAB, col, ""))
			lx.advance()
		case lx.char == ',':
			tokens = append(tokens, lx.emit(token.COMMA, col, ""))
			lx.advance()
		case lx.char == '(':
			tokens = append(tokens, lx.emit(token.OPENING_PAREN, col, ""))
			lx.advance()
		case lx.char == ')':
			tokens = append(tokens, lx.emit(token.CLOSING_PAREN, col, ""))
			lx.advance()
		case token.IsIdent(lx.char):
			var tok token.Token
			tok, err = lx.collectWord()
			if err != nil {
				return
			}
			tokens = append(tokens, tok)
		case token.IsDigit(lx.char):
			tokens = append(tokens, lx.emit(token.IMMEDIATE, col, lx.collectDigits()))
		case lx.char == '.':
			lx.advance()
			tokens = append(tokens, lx.emit(token.DIRECTIVE, col, lx.collectIdent()))
		case lx.char == '"':
			tokens = append(tokens, lx.collectString())
		case lx.char == '#':
			tokens = append(tokens, lx.collectComment())
		default:
			err = token.Errorf(token.ErrIllegalCharacter, lx.lineNo, col, "illegal character '%c'", lx.char)
			return
		}
	}

	tokens = slices.DeleteFunc(tokens, func(tok token.Token) bool {
		return tok.Kind == token.COMMENT
	})

	return
}

// collectWord scans a numbered register name or an identifier.
func (lx *Lexer) collectWord() (tok token.Token, err error) {
	col := lx.col()

	if token.IsRegisterPrefix(lx.char) {
		prefix := lx.char
		lx.advance()
		if !token.IsDigit(lx.char) {
			lx.withdraw()
			tok = lx.classify(col, lx.collectIdent())
			return
		}

		suffix := lx.collectDigits()
		var index int
		index, err = token.Register(prefix, suffix)
		if err != nil {
			err = token.Errorf(token.ErrInvalidRegisterCall, lx.lineNo, col, "%v", err)
			return
		}
		tok = lx.emit(token.REGCALL, col, strconv.Itoa(index))
		return
	}

	tok = lx.classify(col, lx.collectIdent())
	return
}

// classify turns an identifier run into a label, instruction, keyword or
// plain identifier.
func (lx *Lexer) classify(col int, ident string) token.Token {
	if lx.char == ':' {
		lx.advance()
		return lx.emit(token.LABEL, col, ident)
	}

	if token.IsInstruction(ident) {
		return lx.emit(token.INSTRUCTION, col, strings.ToLower(ident))
	}

	kind, literal, ok := token.Keyword(ident)
	if ok {
		return lx.emit(kind, col, literal)
	}

	return lx.emit(token.IDENT, col, ident)
}

func (lx *Lexer) collectIdent() string {
	var sb strings.Builder
	for token.IsIdent(lx.char) {
		sb.WriteRune(lx.char)
		lx.advance()
	}
	return sb.String()
}

func (lx *Lexer) collectDigits() string {
	var sb strings.Builder
	for token.IsDigit(lx.char) {
		sb.WriteRune(lx.char)
		lx.advance()
	}
	return sb.String()
}

// collectString scans a double-quoted string. An unterminated string runs
// to the end of the line.
func (lx *Lexer) collectString() token.Token {
	col := lx.col()
	lx.advance()

	var sb strings.Builder
	for lx.char != eof && lx.char != '"' {
		sb.WriteRune(lx.char)
		lx.advance()
	}
	if lx.char == '"' {
		lx.advance()
	}

	return lx.emit(token.IDENT, col, sb.String())
}

func (lx *Lexer) collectComment() token.Token {
	col := lx.col()
	lx.advance()

	for lx.char == ' ' {
		lx.advance()
	}

	var sb strings.Builder
	for lx.char != eof && lx.char != '\n' {
		sb.WriteRune(lx.char)
		lx.advance()
	}

	return lx.emit(token.COMMENT, col, sb.String())
}
