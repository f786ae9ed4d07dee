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
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/snow-abstraction/cover/internal/cft"
)

// CVRPResult is an instance paired with the warm-start solution embedded in
// a CVRP-derived instance file.
type CVRPResult struct {
	Inst    cft.Instance
	InitSol cft.Solution
}

// CVRP reads a CVRP-derived instance file: a header line with the
// row/column counts, then one line per column holding its cost, the cost
// of the route it was generated from (which must not undercut the
// column's own cost), and the 0-based rows it covers, and finally one
// trailing line listing the warm-start solution's column indices (which
// may be absent).
func CVRP(path string) (CVRPResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return CVRPResult{}, err
	}
	defer f.Close()

	ls := newLineScanner(f)
	header, err := ls.next()
	if err != nil {
		return CVRPResult{}, fmt.Errorf("CVRP: reading header: %w", err)
	}
	if len(header) != 2 {
		return CVRPResult{}, fmt.Errorf("CVRP: header must hold exactly 2 values, got %d", len(header))
	}
	nrows, err := strconv.Atoi(header[0])
	if err != nil {
		return CVRPResult{}, fmt.Errorf("CVRP: row count: %w", err)
	}
	ncols, err := strconv.Atoi(header[1])
	if err != nil {
		return CVRPResult{}, fmt.Errorf("CVRP: column count: %w", err)
	}

	costs := make([]float64, ncols)
	cols := cft.NewSparseBinMat[cft.RowIdx]()

	for j := 0; j < ncols; j++ {
		fields, err := ls.next()
		if err != nil {
			return CVRPResult{}, fmt.Errorf("CVRP: reading column %d: %w", j, err)
		}
		if len(fields) < 2 {
			return CVRPResult{}, fmt.Errorf("CVRP: column %d line has too few fields", j)
		}
		cost, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return CVRPResult{}, fmt.Errorf("CVRP: column %d cost: %w", j, err)
		}
		routeCost, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return CVRPResult{}, fmt.Errorf("CVRP: column %d route cost: %w", j, err)
		}
		if routeCost < cost {
			return CVRPResult{}, fmt.Errorf("CVRP: column %d route cost %g is less than column cost %g", j, routeCost, cost)
		}
		costs[j] = cost

		rows := make([]cft.RowIdx, 0, len(fields)-2)
		for _, tok := range fields[2:] {
			i, err := strconv.Atoi(tok)
			if err != nil {
				return CVRPResult{}, fmt.Errorf("CVRP: column %d row index: %w", j, err)
			}
			if i < 0 || i >= nrows {
				return CVRPResult{}, fmt.Errorf("CVRP: column %d row index %d out of range [0, %d)", j, i, nrows)
			}
			rows = append(rows, cft.RowIdx(i))
		}
		cols.PushCol(rows)
	}

	var initSol cft.Solution
	if fields, err := ls.next(); err == nil {
		for _, tok := range fields {
			j, err := strconv.Atoi(tok)
			if err != nil {
				return CVRPResult{}, fmt.Errorf("CVRP: warm-start solution index: %w", err)
			}
			initSol.Idxs = append(initSol.Idxs, cft.ColIdx(j))
			initSol.Cost += costs[j]
		}
	} else if err != io.EOF {
		return CVRPResult{}, fmt.Errorf("CVRP: reading warm-start solution: %w", err)
	}

	inst := cft.Instance{Cols: cols, Costs: costs}
	inst.FillRowsFromCols(nrows)
	return CVRPResult{Inst: inst, InitSol: initSol}, nil
}
