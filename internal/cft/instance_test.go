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

import (
	"testing"

	"gotest.tools/v3/assert"
)

func smallInstance(t *testing.T) Instance {
	t.Helper()
	inst, err := NewInstance(3, [][]RowIdx{
		{0, 1},
		{1, 2},
		{0, 2},
	}, []float64{2, 3, 4})
	assert.NilError(t, err)
	return inst
}

func TestNewInstanceWellFormed(t *testing.T) {
	inst := smallInstance(t)
	assert.NilError(t, inst.WellFormed())
	assert.Equal(t, inst.NRows(), 3)
	assert.Equal(t, inst.NCols(), 3)
}

func TestNewInstanceRejectsEmptyColumn(t *testing.T) {
	_, err := NewInstance(2, [][]RowIdx{{0}, {}}, []float64{1, 1})
	assert.ErrorContains(t, err, "empty")
}

func TestNewInstanceRejectsOutOfRangeRow(t *testing.T) {
	_, err := NewInstance(2, [][]RowIdx{{0, 5}}, []float64{1})
	assert.ErrorContains(t, err, "out-of-range")
}

func TestNewInstanceRejectsMismatchedCosts(t *testing.T) {
	_, err := NewInstance(2, [][]RowIdx{{0}, {1}}, []float64{1})
	assert.ErrorContains(t, err, "costs")
}

func TestReducedCosts(t *testing.T) {
	inst := smallInstance(t)
	mults := []float64{1, 1, 1}
	reduced, lb := inst.ReducedCosts(mults)

	// col0 covers {0,1}: 2-2=0; col1 covers {1,2}: 3-2=1; col2 covers {0,2}: 4-2=2.
	assert.DeepEqual(t, reduced, []float64{0, 1, 2})
	assert.Equal(t, lb, 3.0) // sum(u) = 3, no negative reduced costs
}

func TestFillRowsFromColsInverse(t *testing.T) {
	inst := smallInstance(t)
	for i := 0; i < inst.NRows(); i++ {
		for _, j := range inst.Rows.Col(i) {
			assert.Assert(t, inst.Cols.Contains(int(j), RowIdx(i)))
		}
	}
}
