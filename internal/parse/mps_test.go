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
	"math"
	"testing"

	"github.com/snow-abstraction/cover/internal/cft"
	"gotest.tools/v3/assert"
)

const sampleMPS = `NAME          TEST
ROWS
 N  COST
 G  R0
 G  R1
COLUMNS
    C0        COST            1.0   R0              1.0
    C0        R1              1.0
    C1        COST            2.0   R0              1.0
RHS
    RHS       R0              1.0   R1              1.0
BOUNDS
ENDATA
`

func TestMPSParsesCoverageModel(t *testing.T) {
	path := writeTestFile(t, "inst.mps", sampleMPS)
	inst, err := MPS(path, false)
	assert.NilError(t, err)
	assert.Equal(t, inst.NRows(), 2)
	assert.Equal(t, inst.NCols(), 2)
	assert.DeepEqual(t, inst.Costs, []float64{1.0, 2.0})
	assert.DeepEqual(t, inst.Cols.Col(0), []cft.RowIdx{0, 1})
	assert.DeepEqual(t, inst.Cols.Col(1), []cft.RowIdx{0})
}

func TestMPSRejectsUnknownRowReference(t *testing.T) {
	bad := `NAME          TEST
ROWS
 N  COST
 G  R0
COLUMNS
    C0        COST            1.0   RX              1.0
RHS
`
	path := writeTestFile(t, "bad.mps", bad)
	_, err := MPS(path, false)
	assert.ErrorContains(t, err, "unknown row")
}

func TestMPSColumnWithoutObjectiveEntryGetsInfiniteCost(t *testing.T) {
	unpriced := `NAME          TEST
ROWS
 N  COST
 G  R0
 G  R1
COLUMNS
    C0        COST            1.0   R0              1.0
    C1        R1              1.0
RHS
    RHS       R0              1.0   R1              1.0
`
	path := writeTestFile(t, "unpriced.mps", unpriced)
	inst, err := MPS(path, false)
	assert.NilError(t, err)
	assert.Equal(t, inst.Costs[0], 1.0)
	assert.Assert(t, math.IsInf(inst.Costs[1], 1))
}

func TestMPSStrictRejectsUnrecognizedRowSense(t *testing.T) {
	bad := `NAME          TEST
ROWS
 N  COST
 X  R0
COLUMNS
    C0        COST            1.0
RHS
`
	path := writeTestFile(t, "bad2.mps", bad)
	_, err := MPS(path, true)
	assert.ErrorContains(t, err, "unrecognized ROWS sense")
}
