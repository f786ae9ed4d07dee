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

func TestRefinementFixManagerResetsOnImprovement(t *testing.T) {
	inst := smallInstance(t)
	env := DefaultEnvironment()
	mults := []float64{1, 1, 1}
	bestSol := Solution{Idxs: []ColIdx{0, 1}, Cost: 5}

	m := newRefinementFixManager()
	m.SelectColsToFix(&env, &inst, mults, &bestSol)
	assert.Equal(t, m.fixFraction, env.MinFixing) // first call always "improves" over MaxFloat64

	// A worse cost on the next call should grow the fraction instead.
	bestSol.Cost = 6
	m.SelectColsToFix(&env, &inst, mults, &bestSol)
	assert.Assert(t, m.fixFraction > env.MinFixing)
}

func TestRefinementFixManagerRespectsRowBudget(t *testing.T) {
	inst := smallInstance(t)
	env := DefaultEnvironment()
	env.MinFixing = 1.0
	mults := []float64{1, 1, 1}
	bestSol := Solution{Idxs: []ColIdx{0, 1, 2}, Cost: 9}

	m := newRefinementFixManager()
	cols := m.SelectColsToFix(&env, &inst, mults, &bestSol)
	assert.Assert(t, len(cols) >= 1)
	assert.Assert(t, len(cols) <= len(bestSol.Idxs))

	// A near-zero budget must not select any column, since even the
	// smallest column here would blow past it.
	env.MinFixing = 0.01
	m2 := newRefinementFixManager()
	cols2 := m2.SelectColsToFix(&env, &inst, mults, &bestSol)
	assert.Equal(t, len(cols2), 0)
}

func TestFromFixedToUnfixedSol(t *testing.T) {
	fixing := MakeIdentityFixingData(3, 3)
	fixing.FixedCols = []ColIdx{2}
	fixing.FixedCost = 4.0
	fixing.Curr2Orig.ColMap = []ColIdx{0, 1}

	sol := Solution{Idxs: []ColIdx{1}, Cost: 3.0}
	unfixed := fromFixedToUnfixedSol(sol, &fixing)
	assert.Equal(t, unfixed.Cost, 7.0)
	assert.DeepEqual(t, unfixed.Idxs, []ColIdx{2, 1})
}

func TestRunProducesFeasibleSolutionOnSmallInstance(t *testing.T) {
	inst := smallInstance(t)
	env := DefaultEnvironment()
	env.HeurIters = 10
	env.Init()

	result := Run(&env, &inst, nil)

	totalCover := NewCoverCounters(inst.NRows())
	for _, j := range result.Sol.Idxs {
		totalCover.Cover(inst.Cols.Col(int(j)))
	}
	for i := 0; i < inst.NRows(); i++ {
		assert.Assert(t, totalCover.At(RowIdx(i)) > 0)
	}
	assert.Assert(t, result.Sol.Cost > 0)
}

func TestRunHonorsWarmstart(t *testing.T) {
	inst := smallInstance(t)
	env := DefaultEnvironment()
	env.HeurIters = 10
	env.Init()

	warmstart := &Solution{Idxs: []ColIdx{0, 1, 2}, Cost: 9}
	result := Run(&env, &inst, warmstart)

	assert.Assert(t, result.Sol.Cost <= warmstart.Cost)
}
