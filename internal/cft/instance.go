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

package cft

import "fmt"

// Instance is a set covering instance: a column-major sparse matrix of
// which rows each column covers, the derived row view (which columns
// cover each row), and a cost per column.
type Instance struct {
	Cols  SparseBinMat[RowIdx]
	Rows  SparseBinMat[ColIdx]
	Costs []float64
}

// NRows returns the number of rows.
func (inst *Instance) NRows() int {
	return inst.Rows.Size()
}

// NCols returns the number of columns.
func (inst *Instance) NCols() int {
	return inst.Cols.Size()
}

// NewInstance builds an Instance from a column-major list of row sets and
// a matching cost vector, deriving the row view with FillRowsFromCols.
// nrows must be at least one plus the largest row index referenced.
func NewInstance(nrows int, cols [][]RowIdx, costs []float64) (Instance, error) {
	if len(cols) != len(costs) {
		return Instance{}, fmt.Errorf("cft: %d columns but %d costs", len(cols), len(costs))
	}
	inst := Instance{Cols: NewSparseBinMat[RowIdx](), Costs: append([]float64(nil), costs...)}
	for j, rows := range cols {
		if len(rows) == 0 {
			return Instance{}, fmt.Errorf("cft: column %d is empty", j)
		}
		for _, r := range rows {
			if int(r) < 0 || int(r) >= nrows {
				return Instance{}, fmt.Errorf("cft: column %d references out-of-range row %d", j, r)
			}
		}
		inst.Cols.PushCol(rows)
	}
	inst.FillRowsFromCols(nrows)
	return inst, nil
}

// FillRowsFromCols reconstructs the row view from Cols in one pass. It is
// the only sanctioned way to produce Rows: after any structural mutation
// of Cols the row view must either be re-derived this way or updated
// coherently, never left stale.
func (inst *Instance) FillRowsFromCols(nrows int) {
	counts := make([]int, nrows)
	for j := 0; j < inst.Cols.Size(); j++ {
		for _, r := range inst.Cols.Col(j) {
			counts[r]++
		}
	}

	rows := NewSparseBinMat[ColIdx]()
	rows.Begs = make([]int, nrows+1)
	total := 0
	for i, c := range counts {
		rows.Begs[i] = total
		total += c
	}
	rows.Begs[nrows] = total
	rows.Idxs = make([]ColIdx, total)

	cursor := append([]int(nil), rows.Begs[:nrows]...)
	for j := 0; j < inst.Cols.Size(); j++ {
		for _, r := range inst.Cols.Col(j) {
			rows.Idxs[cursor[r]] = ColIdx(j)
			cursor[r]++
		}
	}
	inst.Rows = rows
}

// WellFormed reports whether Cols and Rows are mutual inverses, no row or
// column is empty, and every cost is finite. It is intended for use in
// debug-mode tests, not the hot path.
func (inst *Instance) WellFormed() error {
	if inst.Cols.Size() != len(inst.Costs) {
		return fmt.Errorf("cft: %d columns but %d costs", inst.Cols.Size(), len(inst.Costs))
	}
	for j := 0; j < inst.Cols.Size(); j++ {
		col := inst.Cols.Col(j)
		if len(col) == 0 {
			return fmt.Errorf("cft: column %d is empty", j)
		}
		for _, r := range col {
			if !inst.Rows.Contains(int(r), ColIdx(j)) {
				return fmt.Errorf("cft: column %d claims row %d but row view disagrees", j, r)
			}
		}
	}
	for i := 0; i < inst.Rows.Size(); i++ {
		row := inst.Rows.Col(i)
		if len(row) == 0 {
			return fmt.Errorf("cft: row %d is empty", i)
		}
		for _, j := range row {
			if !inst.Cols.Contains(int(j), RowIdx(i)) {
				return fmt.Errorf("cft: row %d claims column %d but column view disagrees", i, j)
			}
		}
	}
	for j, c := range inst.Costs {
		if c != c { // NaN
			return fmt.Errorf("cft: column %d has a NaN cost", j)
		}
	}
	return nil
}

// ReducedCosts returns c̄ⱼ(u) = costⱼ - Σᵢ∈col(j) uᵢ for every column, along
// with the real Lagrangian lower bound L(u) = Σᵢ uᵢ + Σⱼ min(0, c̄ⱼ(u)).
func (inst *Instance) ReducedCosts(mults []float64) (reduced []float64, lb float64) {
	reduced = make([]float64, inst.NCols())
	for _, u := range mults {
		lb += u
	}
	for j := 0; j < inst.NCols(); j++ {
		c := inst.Costs[j]
		for _, r := range inst.Cols.Col(j) {
			c -= mults[r]
		}
		reduced[j] = c
		if c < 0 {
			lb += c
		}
	}
	return reduced, lb
}

// CoreInstance is an Instance restricted to a subset of the enclosing
// instance's columns, plus the map from core column index back to the
// enclosing instance's column index. Its row set equals the enclosing
// instance's row set.
type CoreInstance struct {
	Inst   Instance
	ColMap []ColIdx
}
