// Package source prepares rvlearn program text for the interpreter.
//
// Each text line is lexed with its 1-based line number. Blank lines, lines
// that lex to nothing (comments) and lines that lex to a lone indentation
// marker are dropped; the rest form the program in order.
package source

import (
	"bufio"
	"errors"
	"io"
	"maps"
	"regexp"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/rvlearn/lexer"
	"github.com/ezrec/rvlearn/token"
	"github.com/ezrec/rvlearn/translate"
)

var f = translate.From

var (
	ErrExpression = errors.New(f("invalid expression"))
)

// WORD_SIZE is the branch offset, in bytes, of one program line.
const WORD_SIZE = 4

// Options controls program loading.
type Options struct {
	Verbose     bool           // If set, logs every kept line at debug level.
	Expressions bool           // If set, expands $(...) before lexing.
	Define      map[string]int // Names visible to $(...) expressions.
}

// Program is a lexed program, one token line per executable source line.
type Program [][]token.Token

// LoadString loads a program from a string.
func LoadString(text string, opts Options) (prog Program, err error) {
	return Load(strings.NewReader(text), opts)
}

// Load reads and lexes a program.
func Load(input io.Reader, opts Options) (prog Program, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if len(strings.TrimSpace(text)) == 0 {
			continue
		}

		if opts.Expressions {
			text, err = expand(text, lineno, opts.Define)
			if err != nil {
				return
			}
		}

		var tokens []token.Token
		tokens, err = lexer.Tokenize(text, lineno)
		if err != nil {
			return
		}

		if len(tokens) == 0 || (len(tokens) == 1 && tokens[0].Kind == token.TAB) {
			continue
		}

		if opts.Verbose {
			log.Debugf("%v: %v", lineno, tokens)
		}

		prog = append(prog, tokens)
	}

	err = scanner.Err()
	return
}

var reExpression = regexp.MustCompile(`\$\([^\$]*\)`)

// expand replaces every $(...) before any comment on a line with its
// decimal value. LINENO is the current line number and WORD the byte size
// of one line for branch offsets; both override user definitions.
func expand(line string, lineno int, define map[string]int) (text string, err error) {
	names := maps.Clone(define)
	if names == nil {
		names = make(map[string]int, 2)
	}
	maps.Copy(names, map[string]int{
		"LINENO": lineno,
		"WORD":   WORD_SIZE,
	})

	pred := make(starlark.StringDict, len(names))
	for name, value := range names {
		pred[name] = starlark.MakeInt(value)
	}

	head, comment, commented := strings.Cut(line, "#")

	text = reExpression.ReplaceAllStringFunc(head, func(str string) string {
		if err != nil {
			return str
		}
		var value int64
		value, err = evaluate(str[2:len(str)-1], pred)
		if err != nil {
			col := strings.Index(head, str) + 1
			err = token.Errorf(ErrExpression, lineno, col, "%v", err)
			return str
		}
		return strconv.FormatInt(value, 10)
	})

	if commented {
		text += "#" + comment
	}

	return
}

// evaluate runs a single Starlark expression, which must produce a
// non-negative integer.
func evaluate(expr string, pred starlark.StringDict) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrNotInteger(expr)
		return
	}

	value, ok = st_int.Int64()
	if !ok || value < 0 || value > 0x7fffffff {
		err = ErrNotInteger(expr)
		return
	}

	return
}

// ErrNotInteger is an expression that did not produce a usable immediate.
type ErrNotInteger string

func (err ErrNotInteger) Error() string {
	return f("$(%v) is not a non-negative 32-bit integer", string(err))
}
