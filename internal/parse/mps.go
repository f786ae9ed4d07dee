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

package parse

import (
	"bufio"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/snow-abstraction/cover/internal/cft"
)

// MPS does a best-effort parse of a Set Covering instance out of an MPS
// file: not a general-purpose MPS reader, just enough to recover the
// objective row and the G/E/L constraint rows of a covering-style model.
// It may fail on, or silently misparse, MPS files that do not encode a
// set covering problem. When strict is true, a ROWS entry with an
// unrecognised sense, or any COLUMNS line that cannot be classified as
// either a cost or coverage entry, is an error instead of being skipped.
func MPS(path string, strict bool) (cft.Instance, error) {
	file, err := os.Open(path)
	if err != nil {
		return cft.Instance{}, err
	}
	defer file.Close()

	prefix := "MPS reader"
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line, ok := nextMPSLine(scanner)
	downCounter := 10
	for ok && line != "ROWS" {
		downCounter--
		if downCounter == 0 {
			break
		}
		line, ok = nextMPSLine(scanner)
	}
	if line != "ROWS" {
		return cft.Instance{}, fmt.Errorf("MPS: ROWS section not found within the first lines of the file")
	}

	rowsMap := make(map[string]int)
	objName := ""
	for {
		line, ok = nextMPSLine(scanner)
		if !ok {
			return cft.Instance{}, fmt.Errorf("MPS: unexpected end of file in ROWS section")
		}
		if line == "COLUMNS" {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "N":
			objName = fields[1]
		case "G", "E", "L":
			if _, found := rowsMap[fields[1]]; found {
				return cft.Instance{}, fmt.Errorf("MPS: row name %q duplicated", fields[1])
			}
			rowsMap[fields[1]] = len(rowsMap)
		default:
			if strict {
				return cft.Instance{}, fmt.Errorf("MPS: unrecognized ROWS sense %q", fields[0])
			}
			slog.Debug(prefix, "skip unrecognized ROWS line", line)
		}
	}
	nrows := len(rowsMap)

	cols := cft.NewSparseBinMat[cft.RowIdx]()
	var costs []float64
	prevColName := ""
	var curRows []cft.RowIdx
	haveCol := false

	flushCol := func() error {
		if !haveCol {
			return nil
		}
		if len(curRows) == 0 {
			return fmt.Errorf("MPS: column %q covers no rows", prevColName)
		}
		cols.PushCol(curRows)
		return nil
	}

	for {
		line, ok = nextMPSLine(scanner)
		if !ok {
			return cft.Instance{}, fmt.Errorf("MPS: unexpected end of file in COLUMNS section")
		}
		if line == "RHS" {
			break
		}
		fields := strings.Fields(line)
		// Best-effort column-entry detection: a real entry's third field
		// is a numeric value; anything else (MARKER lines, etc.) is noise.
		if len(fields) < 3 || !looksNumeric(fields[2]) {
			if strict && len(fields) > 0 {
				return cft.Instance{}, fmt.Errorf("MPS: unrecognized COLUMNS line %q", line)
			}
			slog.Debug(prefix, "skip non-entry COLUMNS line", line)
			continue
		}

		if fields[0] != prevColName {
			if err := flushCol(); err != nil {
				return cft.Instance{}, err
			}
			prevColName = fields[0]
			haveCol = true
			curRows = curRows[:0]
			// A column that never gets an objective-row (N) entry below must
			// not default to cost 0: that would make an unpriced column look
			// free and therefore irresistible to Greedy/Subgradient/fixing.
			costs = append(costs, math.Inf(1))
		}

		for t := 1; t+1 < len(fields); t += 2 {
			if fields[t] == objName {
				cost, err := strconv.ParseFloat(fields[t+1], 64)
				if err != nil {
					return cft.Instance{}, fmt.Errorf("MPS: objective coefficient for column %q: %w", prevColName, err)
				}
				costs[len(costs)-1] = cost
				continue
			}
			rowIdx, found := rowsMap[fields[t]]
			if !found {
				return cft.Instance{}, fmt.Errorf("MPS: unknown row %q in COLUMNS entry %q", fields[t], line)
			}
			curRows = append(curRows, cft.RowIdx(rowIdx))
		}
	}
	if err := flushCol(); err != nil {
		return cft.Instance{}, err
	}

	inst := cft.Instance{Cols: cols, Costs: costs}
	inst.FillRowsFromCols(nrows)
	return inst, nil
}

func nextMPSLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "*") {
			continue
		}
		if !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") {
			return strings.TrimSpace(line), true
		}
		return line, true
	}
	return "", false
}

func looksNumeric(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	return unicode.IsDigit(rune(s[0])) || s[0] == '.'
}
