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
	"testing"

	"github.com/snow-abstraction/cover/internal/cft"
	"gotest.tools/v3/assert"
)

func TestRAILParsesColumnMajorCoverage(t *testing.T) {
	// 2 rows, 2 columns; col0 cost5 covers rows{1,2} (1-based); col1 cost7
	// covers row{1}.
	path := writeTestFile(t, "inst.rail", `2 2
5 2 1 2
7 1 1
`)
	inst, err := RAIL(path)
	assert.NilError(t, err)
	assert.Equal(t, inst.NRows(), 2)
	assert.Equal(t, inst.NCols(), 2)
	assert.DeepEqual(t, inst.Costs, []float64{5, 7})
	assert.DeepEqual(t, inst.Cols.Col(0), []cft.RowIdx{0, 1})
	assert.DeepEqual(t, inst.Cols.Col(1), []cft.RowIdx{0})
}

func TestRAILRejectsOutOfRangeRowIndex(t *testing.T) {
	path := writeTestFile(t, "bad.rail", `1 1
3 1 5
`)
	_, err := RAIL(path)
	assert.ErrorContains(t, err, "out of range")
}
