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

func TestCVRPParsesColumnsAndWarmStart(t *testing.T) {
	path := writeTestFile(t, "inst.cvrp", `2 2
3 3 0 1
4 5 1
0 1
`)
	result, err := CVRP(path)
	assert.NilError(t, err)
	assert.Equal(t, result.Inst.NRows(), 2)
	assert.Equal(t, result.Inst.NCols(), 2)
	assert.DeepEqual(t, result.Inst.Costs, []float64{3, 4})
	assert.DeepEqual(t, result.Inst.Cols.Col(0), []cft.RowIdx{0, 1})
	assert.DeepEqual(t, result.Inst.Cols.Col(1), []cft.RowIdx{1})
	assert.DeepEqual(t, result.InitSol.Idxs, []cft.ColIdx{0, 1})
	assert.Equal(t, result.InitSol.Cost, 7.0)
}

func TestCVRPToleratesMissingWarmStart(t *testing.T) {
	path := writeTestFile(t, "inst.cvrp", `1 1
2 2 0
`)
	result, err := CVRP(path)
	assert.NilError(t, err)
	assert.Equal(t, len(result.InitSol.Idxs), 0)
}

func TestCVRPRejectsRouteCostBelowColumnCost(t *testing.T) {
	path := writeTestFile(t, "bad.cvrp", `1 1
5 2 0
`)
	_, err := CVRP(path)
	assert.ErrorContains(t, err, "less than column cost")
}
