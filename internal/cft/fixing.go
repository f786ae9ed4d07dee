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

// IdxsMaps is an old->new index remapping produced by a single fixing
// step: ColMap[oldJ] is the new column index, or RemovedCol if the column
// did not survive; likewise RowMap for rows. It lets external data
// (multipliers, solutions) follow a compaction.
type IdxsMaps struct {
	ColMap []ColIdx
	RowMap []RowIdx
}

// FixingData tracks, across a sequence of fixing steps applied to a
// working Instance, the bidirectional map from the current (shrunken)
// instance back to the original one, the list of fixed columns in
// original numbering, and their accumulated cost.
type FixingData struct {
	Curr2Orig FixingMaps
	FixedCols []ColIdx
	FixedCost float64
}

// FixingMaps maps each surviving current index back to its original
// index: Curr2Orig.ColMap[currJ] is the original column index of current
// column currJ (never RemovedCol for a live instance).
type FixingMaps struct {
	ColMap []ColIdx
	RowMap []RowIdx
}

// MakeIdentityFixingData returns a FixingData with identity mappings and
// no fixed columns, the state Refinement resets to at the start of every
// iteration.
func MakeIdentityFixingData(ncols, nrows int) FixingData {
	colMap := make([]ColIdx, ncols)
	for j := range colMap {
		colMap[j] = ColIdx(j)
	}
	rowMap := make([]RowIdx, nrows)
	for i := range rowMap {
		rowMap[i] = RowIdx(i)
	}
	return FixingData{Curr2Orig: FixingMaps{ColMap: colMap, RowMap: rowMap}}
}

// FixColumnsAndComputeMaps marks colsToFix (current indexes) as fixed,
// removes them and every row they cover from inst, and returns the
// old->new map produced by the removal. fixing is updated in place:
// FixedCols/FixedCost grow with the newly fixed columns (in original
// numbering) and Curr2Orig is advanced to describe the new, smaller
// instance. Invoke this as the sole way to fix columns — calling the
// pieces in the wrong order desynchronizes fixing from inst.
func FixColumnsAndComputeMaps(colsToFix []ColIdx, inst *Instance, fixing *FixingData) IdxsMaps {
	oldNCols := inst.NCols()
	oldNRows := inst.NRows()

	fixedCol := make([]bool, oldNCols)
	for _, j := range colsToFix {
		fixedCol[j] = true
		fixing.FixedCols = append(fixing.FixedCols, fixing.Curr2Orig.ColMap[j])
		fixing.FixedCost += inst.Costs[j]
	}

	removedRow := make([]bool, oldNRows)
	for _, j := range colsToFix {
		for _, i := range inst.Cols.Col(int(j)) {
			removedRow[i] = true
		}
	}

	old2new := IdxsMaps{
		ColMap: make([]ColIdx, oldNCols),
		RowMap: make([]RowIdx, oldNRows),
	}

	newRowMap := make([]RowIdx, 0, oldNRows)
	nextRow := RowIdx(0)
	for i := 0; i < oldNRows; i++ {
		if removedRow[i] {
			old2new.RowMap[i] = RemovedRow
			continue
		}
		old2new.RowMap[i] = nextRow
		newRowMap = append(newRowMap, fixing.Curr2Orig.RowMap[i])
		nextRow++
	}

	newCols := NewSparseBinMat[RowIdx]()
	newCosts := make([]float64, 0, oldNCols)
	newColMap := make([]ColIdx, 0, oldNCols)
	nextCol := ColIdx(0)
	for j := 0; j < oldNCols; j++ {
		if fixedCol[j] {
			old2new.ColMap[j] = RemovedCol
			continue
		}
		remapped := make([]RowIdx, 0, len(inst.Cols.Col(j)))
		for _, i := range inst.Cols.Col(j) {
			if nr := old2new.RowMap[i]; nr != RemovedRow {
				remapped = append(remapped, nr)
			}
		}
		if len(remapped) == 0 {
			// Every row this column covers is already covered by fixed
			// columns; it contributes nothing to the shrunken instance.
			old2new.ColMap[j] = RemovedCol
			continue
		}
		newCols.PushCol(remapped)
		newCosts = append(newCosts, inst.Costs[j])
		newColMap = append(newColMap, fixing.Curr2Orig.ColMap[j])
		old2new.ColMap[j] = nextCol
		nextCol++
	}

	inst.Cols = newCols
	inst.Costs = newCosts
	inst.FillRowsFromCols(int(nextRow))

	fixing.Curr2Orig.ColMap = newColMap
	fixing.Curr2Orig.RowMap = newRowMap

	return old2new
}

// ApplyToMults drops the multiplier entries for rows removed by a fixing
// step, following old2new row by row.
func ApplyToMults(old2new IdxsMaps, mults []float64) []float64 {
	out := make([]float64, 0, len(mults))
	for i, nr := range old2new.RowMap {
		if nr != RemovedRow {
			out = append(out, mults[i])
		}
	}
	return out
}
