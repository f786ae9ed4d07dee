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

package solvers

import (
	"testing"

	"gotest.tools/v3/assert"
)

// When the columns partition the rows (no element shared by two subsets),
// the LP relaxation the Lagrangian dual approximates has no duality gap, so
// CalcScLb should recover the exact optimum, not merely a lower bound on it.
func TestCalcScLbOnDisjointSubsetsMatchesOptimum(t *testing.T) {
	matrix, err := convertSubsetsToMatrix([][]int{{0}, {1}, {2}})
	assert.NilError(t, err)

	lb, err := CalcScLb(matrix, []float64{1.0, 2.0, 3.0})
	assert.NilError(t, err)
	assert.Assert(t, lb-6.0 <= 1e-9 && 6.0-lb <= 1e-9, "got %f, want 6.0", lb)
}

// With overlapping subsets the dual bound must never exceed the true
// optimum (weak duality): here one subset covering both rows at cost 1
// beats the two disjoint subsets that together cost 4.
func TestCalcScLbNeverExceedsOptimumWithOverlap(t *testing.T) {
	matrix, err := convertSubsetsToMatrix([][]int{{0}, {1}, {0, 1}})
	assert.NilError(t, err)

	lb, err := CalcScLb(matrix, []float64{2.0, 2.0, 1.0})
	assert.NilError(t, err)
	assert.Assert(t, lb <= 1.0+1e-9, "lower bound %f exceeds optimum 1.0", lb)
}
