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

	"golang.org/x/exp/slices"
)

// initStepSize is the subgradient step size used at the start of every
// three-phase iteration.
const initStepSize = 0.1

// ThreePhaseResult is the outcome of one orchestration cycle: the best
// feasible solution found, and the multipliers/lower bound recorded
// before any column fixing distorted the problem.
type ThreePhaseResult struct {
	Sol           Solution
	NofixLagrMult []float64
	NofixLB       float64
}

// ThreePhase runs one outer iteration of the CFT heuristic: subgradient
// dual optimization, heuristic primal construction, and column fixing,
// looping until the instance is fully fixed or the bound closes the gap.
// inst is progressively fixed in place and loses its original state;
// Refinement is responsible for restoring it between calls.
type ThreePhase struct {
	subgrad   Subgradient
	greedy    Greedy
	colFixing ColFixing
	pricer    Pricer

	fixing   FixingData
	sol      Solution
	bestSol  Solution
	core     CoreInstance
	lagrMult []float64
}

// Run executes the three-phase loop on inst (mutated in place) and
// returns the best solution found together with the pre-fixing dual
// state.
func (t *ThreePhase) Run(env *Environment, inst *Instance) ThreePhaseResult {
	origNRows := inst.NRows()

	totTimer := NewChrono()
	unfixedLB := -math.MaxFloat64
	var unfixedLagrMult []float64
	t.setup(inst)

	for iterCounter := 0; inst.NRows() != 0; iterCounter++ {
		timer := NewChrono()
		Printf(env, 3, TagThreePhase, "Three-phase iteration %d:", iterCounter)

		stepSize := initStepSize
		cutoff := t.bestSol.Cost - t.fixing.FixedCost
		realLB := t.subgrad.Run(env, inst, cutoff, &t.pricer, &t.core, &stepSize, t.lagrMult)

		if iterCounter == 0 {
			unfixedLagrMult = append([]float64(nil), t.lagrMult...)
			unfixedLB = realLB
		}

		if realLB+t.fixing.FixedCost >= t.bestSol.Cost-env.Epsilon || !env.TimeLeft() {
			break
		}

		t.sol.Idxs = t.sol.Idxs[:0]
		t.sol.Cost = cutoff
		t.subgrad.Heuristic(env, &t.core.Inst, stepSize, &t.greedy, &t.sol, t.lagrMult)

		if t.sol.Cost+t.fixing.FixedCost < t.bestSol.Cost {
			t.bestSol = fromCoreToUnfixedSol(t.sol, &t.core, &t.fixing)
		}

		t.colFixing.Fix(env, origNRows, inst, &t.fixing, &t.lagrMult, &t.greedy)
		realLB = t.pricer.Price(inst, t.lagrMult, &t.core)
		perturbLagrMult(t.lagrMult, env.Rng())

		Printf(env, 3, TagThreePhase, "Remaining rows:     %d", inst.NRows())
		Printf(env, 3, TagThreePhase, "Remaining columns:  %d", inst.NCols())
		Printf(env, 3, TagThreePhase, "Core instance cols: %d", t.core.Inst.NCols())
		Printf(env, 3, TagThreePhase, "Fixed cost:         %.2f", t.fixing.FixedCost)
		Printf(env, 3, TagThreePhase, "Best solution:      %.2f", t.bestSol.Cost)
		Printf(env, 3, TagThreePhase, "Current LB:         %.2f", realLB+t.fixing.FixedCost)
		Printf(env, 3, TagThreePhase, "Iteration time:     %.2fs\n", timer.Elapsed().Seconds())

		if realLB+t.fixing.FixedCost >= t.bestSol.Cost-env.Epsilon {
			break
		}
	}

	Printf(env, 3, TagThreePhase, "Best solution: %.2f, time: %.2fs\n", t.bestSol.Cost, totTimer.Elapsed().Seconds())
	return ThreePhaseResult{Sol: t.bestSol, NofixLagrMult: unfixedLagrMult, NofixLB: unfixedLB}
}

func (t *ThreePhase) setup(inst *Instance) {
	buildTentativeCoreInstance(inst, &t.core)
	t.lagrMult = computeGreedyMultipliers(&t.core.Inst)
	t.fixing = MakeIdentityFixingData(inst.NCols(), inst.NRows())

	t.sol.Idxs = t.sol.Idxs[:0]
	t.sol.Cost = 0
	t.greedy.BuildWithMults(&t.core.Inst, t.lagrMult, &t.sol, math.MaxFloat64, 0)

	t.bestSol = fromCoreToUnfixedSol(t.sol, &t.core, &t.fixing)
}

// fromCoreToUnfixedSol maps a solution of the core instance (where both
// fixing and pricing have been applied) back to the whole instance
// without fixing.
func fromCoreToUnfixedSol(coreSol Solution, core *CoreInstance, fixing *FixingData) Solution {
	unfixed := Solution{
		Cost: coreSol.Cost + fixing.FixedCost,
		Idxs: append([]ColIdx(nil), fixing.FixedCols...),
	}
	for _, j := range coreSol.Idxs {
		unpriceJ := core.ColMap[j]
		unfixedJ := fixing.Curr2Orig.ColMap[unpriceJ]
		unfixed.Idxs = append(unfixed.Idxs, unfixedJ)
	}
	return unfixed
}

// computeGreedyMultipliers builds an initial Lagrangian multiplier for
// each row as the cheapest per-row cost share among the columns covering
// it: cost(j) / |col(j)|.
func computeGreedyMultipliers(inst *Instance) []float64 {
	mults := make([]float64, inst.NRows())
	for i := range mults {
		mults[i] = math.MaxFloat64
	}
	for i := 0; i < inst.NRows(); i++ {
		for _, j := range inst.Rows.Col(i) {
			candidate := inst.Costs[j] / float64(len(inst.Cols.Col(int(j))))
			if candidate < mults[i] {
				mults[i] = candidate
			}
		}
	}
	return mults
}

// perturbLagrMult scales every multiplier by a uniform random factor in
// [0.9, 1.1], preventing the subgradient loop from restarting from the
// exact point it converged to.
func perturbLagrMult(mults []float64, rng *Xoshiro256Plus) {
	for i := range mults {
		mults[i] *= rng.UniformFloat64(0.9, 1.1)
	}
}

// buildTentativeCoreInstance selects, for every row, up to minCov
// covering columns (deduplicated), giving Subgradient a reasonably small
// starting core before the first real pricing pass.
func buildTentativeCoreInstance(inst *Instance, core *CoreInstance) {
	colMap := make([]ColIdx, 0, inst.NRows()*minCov)
	for i := 0; i < inst.NRows(); i++ {
		row := inst.Rows.Col(i)
		n := minCov
		if len(row) < n {
			n = len(row)
		}
		colMap = append(colMap, row[:n]...)
	}

	slices.Sort(colMap)
	colMap = slices.Compact(colMap)

	newCols := NewSparseBinMat[RowIdx]()
	newCosts := make([]float64, 0, len(colMap))
	for _, j := range colMap {
		newCols.PushCol(inst.Cols.Col(int(j)))
		newCosts = append(newCosts, inst.Costs[j])
	}

	core.ColMap = colMap
	core.Inst = Instance{Cols: newCols, Costs: newCosts}
	core.Inst.FillRowsFromCols(inst.NRows())
}
