package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tape provides sequential I/O over text streams.
// Input is a list of integers separated by whitespace or commas; output
// is written as one decimal integer per line.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
}

var _ Channel = (*Tape)(nil)

// splitValues is a bufio.SplitFunc yielding comma or space separated words.
func splitValues(data []byte, atEOF bool) (advance int, token []byte, err error) {
	isSep := func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	}

	start := 0
	for start < len(data) {
		r, width := utf8.DecodeRune(data[start:])
		if !isSep(r) {
			break
		}
		start += width
	}

	for n := start; n < len(data); {
		r, width := utf8.DecodeRune(data[n:])
		if isSep(r) {
			return n + width, data[start:n], nil
		}
		n += width
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	return start, nil, nil
}

// Receive reads the next integer from the input stream.
// End of input is reported as ErrChannelClosed.
func (tc *Tape) Receive() (value int32, err error) {
	if tc.Input == nil {
		err = ErrChannelClosed
		return
	}

	if tc.scanner == nil {
		tc.scanner = bufio.NewScanner(tc.Input)
		tc.scanner.Split(splitValues)
	}

	if !tc.scanner.Scan() {
		err = tc.scanner.Err()
		if err == nil {
			err = ErrChannelClosed
		}
		return
	}

	word := strings.TrimSpace(tc.scanner.Text())
	v64, err := strconv.ParseInt(word, 10, 32)
	if err != nil {
		err = ErrParseValue(word)
		return
	}

	value = int32(v64)
	return
}

// Send writes value to the output stream.
func (tc *Tape) Send(value int32) (err error) {
	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)

	return
}
