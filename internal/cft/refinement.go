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

// refinementFixManager selects, at the start of each refinement round, the
// columns to permanently fix before the next ThreePhase call. The target
// fraction of rows to fix grows geometrically (Alpha) between rounds that
// fail to improve the incumbent, and resets to MinFixing on improvement.
type refinementFixManager struct {
	fixFraction      float64
	prevCost         float64
	rowCoverage      CoverCounters
	gapContributions []CidxAndCost
}

func newRefinementFixManager() refinementFixManager {
	return refinementFixManager{prevCost: math.MaxFloat64}
}

// SelectColsToFix ranks every column of bestSol by its gap contribution
// Δⱼ = max(0, c̄ⱼ) + Σᵢ∈col(j) uᵢ·(covᵢ−1)/covᵢ (covᵢ counted over bestSol
// alone) and returns, in ascending Δ order, the prefix of columns whose
// union covers no more than the target row fraction.
func (m *refinementFixManager) SelectColsToFix(env *Environment, inst *Instance, bestLagrMult []float64, bestSol *Solution) []ColIdx {
	nrows := inst.NRows()

	m.fixFraction = math.Min(1.0, m.fixFraction*env.Alpha)
	if bestSol.Cost < m.prevCost {
		m.fixFraction = env.MinFixing
	}
	m.prevCost = bestSol.Cost

	nrowsToFix := int(float64(nrows) * m.fixFraction)

	m.rowCoverage.Reset(nrows)
	for _, j := range bestSol.Idxs {
		m.rowCoverage.Cover(inst.Cols.Col(int(j)))
	}

	m.gapContributions = m.gapContributions[:0]
	for _, j := range bestSol.Idxs {
		gapContrib := 0.0
		reducedCost := inst.Costs[j]
		for _, i := range inst.Cols.Col(int(j)) {
			cov := float64(m.rowCoverage.At(i))
			gapContrib += bestLagrMult[i] * (cov - 1.0) / cov
			reducedCost -= bestLagrMult[i]
		}
		gapContrib += math.Max(reducedCost, 0.0)
		m.gapContributions = append(m.gapContributions, CidxAndCost{Idx: j, Cost: gapContrib})
	}
	slices.SortFunc(m.gapContributions, func(a, b CidxAndCost) bool { return a.Cost < b.Cost })

	coveredRows := 0
	m.rowCoverage.Reset(nrows)
	colsToFix := make([]ColIdx, 0, len(m.gapContributions))
	for _, c := range m.gapContributions {
		coveredRows += m.rowCoverage.Cover(inst.Cols.Col(int(c.Idx)))
		if coveredRows > nrowsToFix {
			break
		}
		colsToFix = append(colsToFix, c.Idx)
	}
	return colsToFix
}

// fromFixedToUnfixedSol maps a solution of a fixed instance back to the
// original, unfixed index space.
func fromFixedToUnfixedSol(sol Solution, fixing *FixingData) Solution {
	unfixed := Solution{
		Cost: sol.Cost + fixing.FixedCost,
		Idxs: append([]ColIdx(nil), fixing.FixedCols...),
	}
	for _, j := range sol.Idxs {
		unfixed.Idxs = append(unfixed.Idxs, fixing.Curr2Orig.ColMap[j])
	}
	return unfixed
}

// Run is the complete CFT algorithm: the outer refinement loop around
// ThreePhase. It repeatedly solves the (possibly column-fixed) instance to
// near-optimality, then fixes a growing fraction of the best solution's
// columns and re-solves the residual problem, until the incumbent closes
// the gap to the unfixed lower bound (within Beta/Epsilon) or time runs
// out. warmstart, if non-nil, seeds the incumbent.
func Run(env *Environment, origInst *Instance, warmstart *Solution) Result {
	ncols := origInst.NCols()
	nrows := origInst.NRows()

	inst := *origInst
	bestSol := Solution{Cost: math.MaxFloat64}
	if warmstart != nil && len(warmstart.Idxs) > 0 {
		bestSol = warmstart.Clone()
	}

	threePhase := &ThreePhase{}
	fixManager := newRefinementFixManager()
	var nofixLagrMult []float64
	nofixLB := math.MaxFloat64
	maxCost := math.MaxFloat64
	fixing := MakeIdentityFixingData(ncols, nrows)

	for iterCounter := 0; ; iterCounter++ {
		result3p := threePhase.Run(env, &inst)
		if result3p.Sol.Cost+fixing.FixedCost < bestSol.Cost {
			bestSol = fromFixedToUnfixedSol(result3p.Sol, &fixing)
		}

		if iterCounter == 0 {
			nofixLagrMult = result3p.NofixLagrMult
			nofixLB = result3p.NofixLB
			maxCost = env.Beta*nofixLB + env.Epsilon
		}

		if bestSol.Cost <= maxCost || !env.TimeLeft() {
			break
		}

		inst = *origInst
		colsToFix := fixManager.SelectColsToFix(env, &inst, nofixLagrMult, &bestSol)
		fixing = MakeIdentityFixingData(ncols, nrows)
		if len(colsToFix) > 0 {
			FixColumnsAndComputeMaps(colsToFix, &inst, &fixing)
		}

		freePerc := float64(inst.NRows()) * 100.0 / float64(nrows)
		Printf(env, 2, TagRefinement, "%2d: Best solution %.2f, lb %.2f, gap %.2f%%", iterCounter, bestSol.Cost, nofixLB, 100.0*(bestSol.Cost-nofixLB)/bestSol.Cost)
		Printf(env, 2, TagRefinement, "%2d: Fixed cost %.2f, free rows %.0f%%, time %.2fs\n", iterCounter, fixing.FixedCost, freePerc, env.Elapsed().Seconds())

		if inst.NRows() == 0 || !env.TimeLeft() {
			break
		}
	}

	return Result{Sol: bestSol, Dual: DualState{Mults: nofixLagrMult, LB: nofixLB}}
}
