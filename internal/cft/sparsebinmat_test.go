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

func TestSparseBinMatPushColAndCol(t *testing.T) {
	m := NewSparseBinMat[RowIdx]()
	assert.Assert(t, m.Empty())

	m.PushCol([]RowIdx{0, 2})
	m.PushCol([]RowIdx{1})

	assert.Equal(t, m.Size(), 2)
	assert.DeepEqual(t, m.Col(0), []RowIdx{0, 2})
	assert.DeepEqual(t, m.Col(1), []RowIdx{1})
	assert.Assert(t, m.Contains(0, RowIdx(2)))
	assert.Assert(t, !m.Contains(1, RowIdx(2)))
}

func TestSparseBinMatClear(t *testing.T) {
	m := NewSparseBinMat[ColIdx]()
	m.PushCol([]ColIdx{0, 1})
	m.Clear()
	assert.Assert(t, m.Empty())
	assert.Equal(t, m.Size(), 0)
}
