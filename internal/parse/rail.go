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
	"os"

	"github.com/snow-abstraction/cover/internal/cft"
)

// RAIL reads a RAIL-format instance: a header line with the row/column
// counts, then for each column a cost, a coverage count, and that many
// 1-based row indices, laid out column-major (the natural order for this
// format, unlike SCP's row-major coverage lists).
func RAIL(path string) (cft.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return cft.Instance{}, err
	}
	defer f.Close()

	ts := newTokenScanner(f)
	nrows, ncols, err := readDims(ts)
	if err != nil {
		return cft.Instance{}, err
	}

	costs := make([]float64, ncols)
	cols := cft.NewSparseBinMat[cft.RowIdx]()
	rowBuf := make([]cft.RowIdx, 0, 16)

	for j := 0; j < ncols; j++ {
		costs[j], err = ts.nextFloat()
		if err != nil {
			return cft.Instance{}, fmt.Errorf("RAIL: reading cost of column %d: %w", j, err)
		}
		n, err := ts.nextInt()
		if err != nil {
			return cft.Instance{}, fmt.Errorf("RAIL: reading coverage count of column %d: %w", j, err)
		}
		rowBuf = rowBuf[:0]
		for k := 0; k < n; k++ {
			i, err := ts.nextInt()
			if err != nil {
				return cft.Instance{}, fmt.Errorf("RAIL: reading row index of column %d: %w", j, err)
			}
			i--
			if i < 0 || i >= nrows {
				return cft.Instance{}, fmt.Errorf("RAIL: row index %d out of range [0, %d) in column %d", i, nrows, j)
			}
			rowBuf = append(rowBuf, cft.RowIdx(i))
		}
		cols.PushCol(rowBuf)
	}

	inst := cft.Instance{Cols: cols, Costs: costs}
	inst.FillRowsFromCols(nrows)
	return inst, nil
}
