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
	"os"

	"github.com/snow-abstraction/cover/internal/cft"
)

// SCP reads an OR-Library-format Set Covering instance: a header line with
// the row/column counts, then ncols cost values, then for each row a count
// followed by that many 1-based column indices covering it.
func SCP(path string) (cft.Instance, error) {
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
	for j := 0; j < ncols; j++ {
		costs[j], err = ts.nextFloat()
		if err != nil {
			return cft.Instance{}, fmt.Errorf("SCP: reading cost of column %d: %w", j, err)
		}
	}

	colRows := make([][]cft.RowIdx, ncols)
	for i := 0; i < nrows; i++ {
		n, err := ts.nextInt()
		if err != nil {
			return cft.Instance{}, fmt.Errorf("SCP: reading coverage count of row %d: %w", i, err)
		}
		for k := 0; k < n; k++ {
			j, err := ts.nextInt()
			if err != nil {
				return cft.Instance{}, fmt.Errorf("SCP: reading column index of row %d: %w", i, err)
			}
			if j < 1 || j > ncols {
				return cft.Instance{}, fmt.Errorf("SCP: column index %d out of range [1, %d]", j, ncols)
			}
			colRows[j-1] = append(colRows[j-1], cft.RowIdx(i))
		}
	}

	cols := cft.NewSparseBinMat[cft.RowIdx]()
	for _, rows := range colRows {
		cols.PushCol(rows)
	}

	inst := cft.Instance{Cols: cols, Costs: costs}
	inst.FillRowsFromCols(nrows)
	return inst, nil
}

// WriteSCP writes inst in the same OR-Library row-major format SCP reads:
// a header line of nrows/ncols, the ncols cost values, then for each row a
// count followed by the 1-based column indices covering it.
func WriteSCP(path string, inst cft.Instance) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	nrows, ncols := inst.NRows(), inst.NCols()

	if _, err := fmt.Fprintf(w, "%d %d\n", nrows, ncols); err != nil {
		return err
	}
	for j := 0; j < ncols; j++ {
		if _, err := fmt.Fprintf(w, "%g\n", inst.Costs[j]); err != nil {
			return err
		}
	}
	for i := 0; i < nrows; i++ {
		row := inst.Rows.Col(i)
		if _, err := fmt.Fprintf(w, "%d", len(row)); err != nil {
			return err
		}
		for _, j := range row {
			if _, err := fmt.Fprintf(w, " %d", int(j)+1); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return w.Flush()
}

// readDims reads the SCP/RAIL header line: nrows then ncols.
func readDims(ts *tokenScanner) (nrows, ncols int, err error) {
	nrows, err = ts.nextInt()
	if err != nil {
		return 0, 0, fmt.Errorf("reading row count: %w", err)
	}
	ncols, err = ts.nextInt()
	if err != nil {
		return 0, 0, fmt.Errorf("reading column count: %w", err)
	}
	return nrows, ncols, nil
}
