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

package cover

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

const samplePartitionMPS = `NAME          TEST
ROWS
 N  COST
 E  R0
 E  R1
COLUMNS
    C0        COST            1.0   R0              1.0
    C1        COST            2.0   R1              1.0
    C2        R0              1.0   R1              1.0
RHS
    RHS       R0              1.0   R1              1.0
BOUNDS
 UP BND       C0              1.0
 UP BND       C1              1.0
 UP BND       C2              1.0
ENDATA
`

func writeMPSFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inst.mps")
	assert.NilError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadMPSInstanceParsesPartitionModel(t *testing.T) {
	ins, err := ReadMPSInstance(writeMPSFile(t, samplePartitionMPS))
	assert.NilError(t, err)
	assert.Equal(t, ins.N, 2)
	assert.DeepEqual(t, ins.Costs, []float64{1.0, 2.0, math.Inf(1)})
	assert.DeepEqual(t, ins.Subsets, [][]int{{0}, {1}, {0, 1}})
}

func TestReadMPSInstanceRejectsUnknownRow(t *testing.T) {
	bad := `NAME          TEST
ROWS
 N  COST
 E  R0
COLUMNS
    C0        COST            1.0   RX              1.0
RHS
    RHS       R0              1.0
BOUNDS
 UP BND       C0              1.0
ENDATA
`
	_, err := ReadMPSInstance(writeMPSFile(t, bad))
	assert.ErrorContains(t, err, "unknown row")
}

func TestReadMPSInstanceRejectsNonUnitRHS(t *testing.T) {
	bad := `NAME          TEST
ROWS
 N  COST
 E  R0
COLUMNS
    C0        COST            1.0   R0              1.0
RHS
    RHS       R0              2.0
BOUNDS
 UP BND       C0              1.0
ENDATA
`
	_, err := ReadMPSInstance(writeMPSFile(t, bad))
	assert.ErrorContains(t, err, "rhs values to be exactly 1.0")
}
