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
	"os"
	"path/filepath"
	"testing"

	"github.com/snow-abstraction/cover/internal/cft"
	"gotest.tools/v3/assert"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NilError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSCPParsesRowMajorCoverage(t *testing.T) {
	// 3 rows, 3 columns; costs 2,3,4; row0 covered by {1,3}, row1 by {1,2},
	// row2 by {2,3} (1-based, matching the OR-Library convention).
	path := writeTestFile(t, "inst.scp", `3 3
2 3 4
2 1 3
2 1 2
2 2 3
`)
	inst, err := SCP(path)
	assert.NilError(t, err)
	assert.Equal(t, inst.NRows(), 3)
	assert.Equal(t, inst.NCols(), 3)
	assert.DeepEqual(t, inst.Costs, []float64{2, 3, 4})
	assert.Assert(t, inst.Cols.Contains(0, cft.RowIdx(0)))
	assert.Assert(t, inst.Cols.Contains(2, cft.RowIdx(0)))
}

func TestWriteSCPRoundTripsThroughSCP(t *testing.T) {
	cols := cft.NewSparseBinMat[cft.RowIdx]()
	cols.PushCol([]cft.RowIdx{0, 2})
	cols.PushCol([]cft.RowIdx{1})
	inst := cft.Instance{Cols: cols, Costs: []float64{5, 2.5}}
	inst.FillRowsFromCols(3)

	path := filepath.Join(t.TempDir(), "roundtrip.scp")
	assert.NilError(t, WriteSCP(path, inst))

	got, err := SCP(path)
	assert.NilError(t, err)
	assert.Equal(t, got.NRows(), 3)
	assert.Equal(t, got.NCols(), 2)
	assert.DeepEqual(t, got.Costs, []float64{5, 2.5})
	assert.DeepEqual(t, got.Cols.Col(0), []cft.RowIdx{0, 2})
	assert.DeepEqual(t, got.Cols.Col(1), []cft.RowIdx{1})
}

func TestSCPRejectsOutOfRangeColumnIndex(t *testing.T) {
	path := writeTestFile(t, "bad.scp", `1 2
1 1
1 5
`)
	_, err := SCP(path)
	assert.ErrorContains(t, err, "out of range")
}
