/*
 Copyright (C) 2024 Douglas Wayne Potter

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
	"math/rand"
	"testing"

	"github.com/snow-abstraction/cover"
	"gotest.tools/v3/assert"
)

func TestInfeasible(t *testing.T) {
	ins, err := MakeInstance(3, [][]int{{0, 1}, {1, 2}, {0, 2}}, []float64{1.0, 1.0, 1.0})
	assert.NilError(t, err)
	result, err := SolveByBruteForceInternal(ins)
	assert.NilError(t, err)
	assert.Assert(t, !result.ExactlyCovered, "should be infeasible")
}

func TestEmptyInstance(t *testing.T) {
	ins, err := MakeInstance(0, [][]int{}, []float64{})
	assert.NilError(t, err)
	result, err := SolveByBruteForceInternal(ins)
	assert.NilError(t, err)
	emptyCover := subsetsEval{ExactlyCovered: true}
	assert.DeepEqual(t, result, emptyCover)
}

func TestCheaperSolutionFound(t *testing.T) {
	ins, err := MakeInstance(2, [][]int{{0, 1}, {0}, {1}, {0}}, []float64{17, 7, 5, 3})
	assert.NilError(t, err)
	result, err := SolveByBruteForceInternal(ins)
	assert.NilError(t, err)
	theMinimum := subsetsEval{SubsetsIndices: []int{2, 3}, ExactlyCovered: true, Cost: 5 + 3}
	assert.DeepEqual(t, result, theMinimum)
}

// bruteAndBBAgree checks that the brute force and branch-and-bound solvers
// reach the same verdict (feasible with the same cost, or both infeasible)
// on the same instance.
func bruteAndBBAgree(t *testing.T, m, n int, seed int64) {
	ins := cover.MakeRandomInstance(m, n, seed)

	bruteIns, err := MakeInstance(ins.N, ins.Subsets, ins.Costs)
	assert.NilError(t, err)
	bruteResult, err := SolveByBruteForceInternal(bruteIns)
	assert.NilError(t, err)

	bbResult, err := SolveByBranchAndBound(ins)
	assert.NilError(t, err)

	assert.Equal(t, bruteResult.ExactlyCovered, bbResult.ExactlyCovered)
	if bruteResult.ExactlyCovered {
		assert.Assert(t, floatsClose(bruteResult.Cost, bbResult.Cost), "brute %f vs bb %f", bruteResult.Cost, bbResult.Cost)
	}
}

func floatsClose(a, b float64) bool {
	d := a - b
	return d > -1e-9 && d < 1e-9
}

func TestBruteAndBranchAndBoundAgreeOnRandomInstances(t *testing.T) {
	seed := int64(rand.Int63())
	for m := 1; m <= 4; m++ {
		for n := 1; n <= 6; n++ {
			m, n, s := m, n, seed
			t.Run("", func(t *testing.T) {
				t.Parallel()
				bruteAndBBAgree(t, m, n, s)
			})
			seed++
		}
	}
}
