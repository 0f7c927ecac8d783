// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package program

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/icm/cpu"
)

// Predefined system equates
var sysEquate = map[string]int32{
	"LINENO": 0,
	"P0":     100,
	"P1":     1000,
	"P2":     10000,
}

func init() {
	for _, op := range cpu.Opcodes {
		sysEquate[strings.ToUpper(op.String())] = int32(op)
	}
}

// Loader is a two pass loader for program text.
type Loader struct {
	Verbose bool             // If set, verbosely logs the loader actions.
	Equate  map[string]int32 // Map of equates and labels.

	predefine map[string]int32 // Predefines
}

// Predefine defines a new equate or redefines an existing equate.
func (ld *Loader) Predefine(equ string, value int32) {
	if ld.predefine == nil {
		ld.predefine = map[string]int32{equ: value}
	} else {
		ld.predefine[equ] = value
	}
}

// sourceLine is a tokenized line of program text.
type sourceLine struct {
	lineno int
	text   string
	words  []string
}

// splitWords splits a line into words at commas and whitespace, keeping
// $(...) expressions whole, and dropping any trailing comment.
func splitWords(line string) (words []string, err error) {
	var word strings.Builder
	depth := 0

	flush := func() {
		if word.Len() > 0 {
			words = append(words, word.String())
			word.Reset()
		}
	}

	for _, r := range line {
		if depth == 0 {
			if r == ';' || r == '#' {
				break
			}
			if r == ',' || unicode.IsSpace(r) {
				flush()
				continue
			}
		}
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				err = ErrParenthesis
				return
			}
		}
		word.WriteRune(r)
	}

	if depth != 0 {
		err = ErrParenthesis
		return
	}

	flush()
	return
}

// isLabel returns the label name if word is a label definition.
func isLabel(word string) (label string, ok bool) {
	if len(word) < 2 || !strings.HasSuffix(word, ":") {
		return
	}
	return word[:len(word)-1], true
}

// parenEval does compile-time $(...) evaluations
func (ld *Loader) parenEval(expr string) (value int32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, value := range ld.Equate {
		pred[key] = starlark.MakeInt(int(value))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 != int64(int32(st_int64)) {
		err = ErrParseExpression(expr)
		return
	}
	value = int32(st_int64)
	return
}

// valueOf returns the value of a single word.
func (ld *Loader) valueOf(word string) (value int32, err error) {
	if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		return ld.parenEval(word[2 : len(word)-1])
	}

	equate, ok := ld.Equate[word]
	if ok {
		value = equate
		return
	}

	v64, err := strconv.ParseInt(word, 0, 32)
	if err != nil {
		err = ErrParseValue(word)
		return
	}

	value = int32(v64)
	return
}

// Parse parses an input stream into a Program.
func (ld *Loader) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	ld.Equate = maps.Clone(sysEquate)
	for attr, val := range ld.predefine {
		ld.Equate[attr] = val
	}

	prog = &Program{
		Label: map[string]int{},
	}

	// First pass: tokenize and place labels.
	var lines []sourceLine
	var ip int
	for scanner.Scan() {
		line = scanner.Text()
		lineno++

		var words []string
		words, err = splitWords(line)
		if err != nil {
			return
		}
		if len(words) == 0 {
			continue
		}
		lines = append(lines, sourceLine{lineno: lineno, text: line, words: words})

		if words[0] == ".equ" {
			continue
		}

		for _, word := range words {
			label, ok := isLabel(word)
			if !ok {
				ip++
				continue
			}
			_, dup := ld.Equate[label]
			if dup {
				err = ErrLabelDuplicate
				return
			}
			ld.Equate[label] = int32(ip)
			prog.Label[label] = ip
		}
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	// Second pass: evaluate.
	for _, src := range lines {
		line = src.text
		lineno = src.lineno

		if ld.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		ld.Equate["LINENO"] = int32(lineno)

		// .equ CONST VALUE
		if src.words[0] == ".equ" {
			if len(src.words) != 3 {
				err = ErrEquateSyntax
				return
			}
			_, ok := ld.Equate[src.words[1]]
			if ok {
				err = ErrEquateDuplicate
				return
			}
			var value int32
			value, err = ld.valueOf(src.words[2])
			if err != nil {
				return
			}
			ld.Equate[src.words[1]] = value
			continue
		}

		for _, word := range src.words {
			if _, ok := isLabel(word); ok {
				continue
			}
			var value int32
			value, err = ld.valueOf(word)
			if err != nil {
				return
			}
			prog.Words = append(prog.Words, value)
			prog.LineNo = append(prog.LineNo, lineno)
		}
	}

	return
}

// ParseString parses program text held in a string.
func (ld *Loader) ParseString(text string) (prog *Program, err error) {
	return ld.Parse(strings.NewReader(text))
}

// ParseFile parses the program text in the file at path.
func (ld *Loader) ParseFile(path string) (prog *Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err = ld.Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
	}

	return
}
