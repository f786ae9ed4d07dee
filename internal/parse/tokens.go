/*
 Copyright (C) 2025 Douglas Wayne Potter

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as
 published by the Free Software Foundation, either version 3 of the
 License, or (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Package parse reads Set Covering instances and solutions from the file
// formats the CFT reference implementation accepts: the OR-Library SCP
// format, the RAIL format, the CVRP-derived format, and a best-effort
// subset of MPS. SCP, RAIL and solution files are read as flat token
// streams with tokenScanner; CVRP is read line by line with lineScanner,
// and MPS scans its own lines.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// tokenScanner reads successive whitespace-separated tokens from a file,
// transparently crossing line boundaries exactly as the reference parser's
// FileLineIterator/StringView combination does: a token is never split,
// but callers never need to care which physical line it came from.
type tokenScanner struct {
	sc  *bufio.Scanner
	pos int64
}

func newTokenScanner(r io.Reader) *tokenScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)
	return &tokenScanner{sc: sc}
}

// next returns the next token, or an error if the stream is exhausted or
// a read error occurred.
func (t *tokenScanner) next() (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("unexpected end of file at token %d", t.pos)
	}
	t.pos++
	return t.sc.Text(), nil
}

func (t *tokenScanner) nextInt() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("expected integer, got %q: %w", tok, err)
	}
	return v, nil
}

func (t *tokenScanner) nextFloat() (float64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("expected number, got %q: %w", tok, err)
	}
	return v, nil
}

// lineScanner reads whole lines. CVRP column bodies are terminated by the
// line itself (an unknown number of fields), unlike SCP and RAIL where an
// explicit count drives how many tokens to consume, so CVRP needs line
// boundaries rather than a flat token stream.
type lineScanner struct {
	sc *bufio.Scanner
}

func newLineScanner(r io.Reader) *lineScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &lineScanner{sc: sc}
}

// next returns the fields of the next non-blank line, or io.EOF once the
// stream is exhausted.
func (l *lineScanner) next() ([]string, error) {
	for l.sc.Scan() {
		fields := strings.Fields(l.sc.Text())
		if len(fields) > 0 {
			return fields, nil
		}
	}
	if err := l.sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}
