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

func TestCoverCountersCoverUncover(t *testing.T) {
	c := NewCoverCounters(4)
	assert.Equal(t, c.Size(), 4)

	newly := c.Cover([]RowIdx{0, 1, 1})
	assert.Equal(t, newly, 2)
	assert.Equal(t, c.At(0), uint32(1))
	assert.Equal(t, c.At(1), uint32(2))
	assert.Equal(t, c.At(2), uint32(0))

	newlyUncovered := c.Uncover([]RowIdx{1})
	assert.Equal(t, newlyUncovered, 0)
	assert.Equal(t, c.At(1), uint32(1))

	newlyUncovered = c.Uncover([]RowIdx{1})
	assert.Equal(t, newlyUncovered, 1)
	assert.Equal(t, c.At(1), uint32(0))
}

func TestCoverCountersRedundancy(t *testing.T) {
	c := NewCoverCounters(3)
	c.Cover([]RowIdx{0, 1})

	assert.Assert(t, !c.IsRedundantCover([]RowIdx{0, 2}))
	assert.Assert(t, c.IsRedundantCover([]RowIdx{0, 1}))

	assert.Assert(t, !c.IsRedundantUncover([]RowIdx{0, 1}))
	c.Cover([]RowIdx{0, 1})
	assert.Assert(t, c.IsRedundantUncover([]RowIdx{0, 1}))
}

func TestCoverCountersReset(t *testing.T) {
	c := NewCoverCounters(2)
	c.Cover([]RowIdx{0, 1})
	c.Reset(3)
	assert.Equal(t, c.Size(), 3)
	for i := 0; i < 3; i++ {
		assert.Equal(t, c.At(RowIdx(i)), uint32(0))
	}
}
