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
	"math"
	"testing"

	"gotest.tools/v3/assert"
)

func TestComputeScore(t *testing.T) {
	assert.Equal(t, ComputeScore(4, 2), 2.0)   // gamma>0: gamma/mu
	assert.Equal(t, ComputeScore(-4, 2), -8.0) // gamma<=0: gamma*mu
	assert.Assert(t, math.IsInf(ComputeScore(4, 0), 1))
}

func TestScoresInitAndGetGoodScores(t *testing.T) {
	inst, err := NewInstance(2, [][]RowIdx{{0}, {0, 1}, {1}}, []float64{1, 1, 1})
	assert.NilError(t, err)

	var s Scores
	s.Gammas = append([]float64(nil), inst.Costs...)
	s.Init(&inst)

	good := s.GetGoodScores(3)
	assert.Equal(t, len(good), 3)
	// All mu>0 so nothing is +Inf, and they're sorted ascending by score.
	for i := 1; i < len(good); i++ {
		assert.Assert(t, good[i-1].Score <= good[i].Score)
	}
}

func TestUpdateCoveredUpdatesTouchedRows(t *testing.T) {
	inst, err := NewInstance(2, [][]RowIdx{{0}, {0, 1}, {1}}, []float64{1, 1, 1})
	assert.NilError(t, err)

	var s Scores
	s.Gammas = append([]float64(nil), inst.Costs...)
	s.Init(&inst)

	totalCover := NewCoverCounters(2)
	mults := []float64{0.5, 0.5}
	newlyCovered := s.UpdateCovered(&inst, []ColIdx{0}, mults, &totalCover)
	assert.Equal(t, newlyCovered, 1) // column 0 covers row 0 only

	// Column 1 also covers row 0, so its score must now reflect the
	// multiplier credit from row 0 having become covered.
	idx := s.ScoreMap[1]
	assert.Assert(t, idx >= 0)
	assert.Equal(t, s.CoveredRows[1], 1) // only row 1 left uncovered for column 1
}
