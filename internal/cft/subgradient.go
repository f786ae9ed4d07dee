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

// Subgradient runs dual ascent on the Lagrangian multipliers of a core
// instance, with adaptive step size, periodic re-pricing, and an exit
// test; it also drives the heuristic sub-phase that repeatedly calls
// Greedy to try to improve the incumbent primal solution.
type Subgradient struct {
	lbSol        Solution
	greedySol    Solution
	rowCoverage  CoverCounters
	reducedCosts []float64
	lagrMult     []float64
}

// Run performs the subgradient phase: it optimizes the multipliers of
// core against the given cutoff (the current upper bound), periodically
// invoking pricer to refresh core and obtain the real lower bound on
// origInst. stepSize is updated in place and carried across calls;
// bestLagrMult is updated in place to the multipliers that produced the
// best core lower bound found. It returns the best real lower bound
// observed.
func (s *Subgradient) Run(env *Environment, origInst *Instance, cutoff float64, pricer *Pricer, core *CoreInstance, stepSize *float64, bestLagrMult []float64) float64 {
	nrows := origInst.NRows()
	maxRealLB := cutoff - env.Epsilon

	timer := NewChrono()
	stepMgr := NewStepSizeManager(20, *stepSize)
	exitMgr := NewExitConditionManager(300)
	priceMgr := NewPricingManager(10, minUint64(1000, uint64(nrows)/3))

	bestCoreLB := -math.MaxFloat64
	bestRealLB := -math.MaxFloat64
	s.resetRedCostsAndLB(core.Inst.Costs, &bestCoreLB)
	s.lagrMult = append(s.lagrMult[:0], bestLagrMult...)

	Printf(env, 4, TagSubgradient, "Subgradient start: UB %.2f, cutoff %.2f", cutoff, maxRealLB)

	maxIters := uint64(10 * nrows)
	for iter := uint64(0); iter < maxIters && bestRealLB < maxRealLB; iter++ {
		s.updateLBSolAndReducedCosts(&core.Inst, s.lagrMult)
		s.computeReducedRowCoverage(&core.Inst)
		sqrNorm := s.computeSubgradSqrNorm()

		if s.lbSol.Cost > bestCoreLB {
			Printf(env, 5, TagSubgradient, "%4d: Current lower bound: %.2f", iter, s.lbSol.Cost)
			bestCoreLB = s.lbSol.Cost
			copy(bestLagrMult, s.lagrMult)
		}

		if sqrNorm < 0.999 {
			Printf(env, 4, TagSubgradient, "%4d: Found optimal solution.", iter)
			copy(bestLagrMult, s.lagrMult)
			break
		}

		if exitMgr.ShouldExit(iter, bestCoreLB) {
			break
		}

		*stepSize = stepMgr.Update(iter, s.lbSol.Cost)
		stepFactor := *stepSize * (cutoff - s.lbSol.Cost) / sqrNorm
		s.updateLagrMult(stepFactor)

		if priceMgr.ShouldPrice(iter) && iter < maxIters-1 {
			realLB := pricer.Price(origInst, s.lagrMult, core)
			priceMgr.Update(bestCoreLB, realLB, cutoff)

			Printf(env, 4, TagSubgradient, "%4d: LB: %8.2f  Core LB: %8.2f  Step size: %6.3f", iter, realLB, bestCoreLB, *stepSize)

			if realLB > bestRealLB {
				bestRealLB = realLB
			}
			s.resetRedCostsAndLB(core.Inst.Costs, &bestCoreLB)

			if !env.TimeLeft() {
				break
			}
		}
	}

	Printf(env, 4, TagSubgradient, "Subgradient ended in %.2fs", timer.Elapsed().Seconds())
	return bestRealLB
}

// Heuristic runs up to env.HeurIters subgradient iterations against the
// incumbent primal cost, calling greedy on every iteration; whenever
// greedy beats the incumbent it becomes the new bestSol. bestLagrMult is
// updated in place: to the multipliers of the best core lower bound, or,
// when env.UseGreedyMultForPricer is set, to the multipliers that produced
// the best greedy solution.
func (s *Subgradient) Heuristic(env *Environment, coreInst *Instance, stepSize float64, greedy *Greedy, bestSol *Solution, bestLagrMult []float64) {
	timer := NewChrono()
	bestCoreLB := -math.MaxFloat64
	s.resetRedCostsAndLB(coreInst.Costs, &bestCoreLB)
	s.lagrMult = append(s.lagrMult[:0], bestLagrMult...)

	for iter := uint64(0); iter < env.HeurIters; iter++ {
		s.updateLBSolAndReducedCosts(coreInst, s.lagrMult)

		s.rowCoverage.Reset(coreInst.NRows())
		for _, j := range s.lbSol.Idxs {
			s.rowCoverage.Cover(coreInst.Cols.Col(int(j)))
		}
		sqrNorm := s.computeSubgradSqrNorm()

		if s.lbSol.Cost > bestCoreLB {
			bestCoreLB = s.lbSol.Cost
			if !env.UseGreedyMultForPricer {
				copy(bestLagrMult, s.lagrMult)
			}
		}

		if bestCoreLB >= bestSol.Cost-env.Epsilon {
			return
		}

		cutoff := bestSol.Cost
		s.greedySol.Idxs = s.greedySol.Idxs[:0]
		s.greedySol.Cost = 0
		greedy.Build(coreInst, s.lagrMult, s.reducedCosts, &s.greedySol, cutoff, 0)
		Printf(env, 5, TagHeuristic, "%4d: Greedy solution %.2f", iter, s.greedySol.Cost)
		if s.greedySol.Cost <= bestSol.Cost-env.Epsilon {
			*bestSol = s.greedySol.Clone()
			if env.UseGreedyMultForPricer {
				copy(bestLagrMult, s.lagrMult)
			}
			Printf(env, 4, TagHeuristic, "%4d: Improved solution %.2f", iter, bestSol.Cost)
		}

		if sqrNorm < 0.999 {
			Printf(env, 4, TagHeuristic, "%4d Found optimal solution.", iter)
			copy(bestLagrMult, s.lagrMult)
			return
		}

		stepFactor := stepSize * (bestSol.Cost - s.lbSol.Cost) / sqrNorm
		s.updateLagrMult(stepFactor)

		if !env.TimeLeft() {
			break
		}
	}

	Printf(env, 4, TagHeuristic, "Heuristic phase ended in %.2fs", timer.Elapsed().Seconds())
}

// resetRedCostsAndLB resets reducedCosts to colCosts (as if lagrMult were
// all zero) and clears lbSol, matching the state expected at the top of
// the loop.
func (s *Subgradient) resetRedCostsAndLB(colCosts []float64, bestCoreLB *float64) {
	s.reducedCosts = append(s.reducedCosts[:0], colCosts...)
	*bestCoreLB = -math.MaxFloat64
	s.lbSol.Cost = -math.MaxFloat64
	s.lbSol.Idxs = s.lbSol.Idxs[:0]
}

func (s *Subgradient) updateLagrMult(stepFactor float64) {
	for i := 0; i < s.rowCoverage.Size(); i++ {
		violation := 1.0 - float64(s.rowCoverage.At(RowIdx(i)))
		newMult := s.lagrMult[i] + stepFactor*violation
		if newMult < 0 {
			newMult = 0
		}
		s.lagrMult[i] = newMult
	}
}

// updateLBSolAndReducedCosts recomputes the reduced costs and the
// lower-bound solution (every column with negative reduced cost) for the
// given multipliers.
func (s *Subgradient) updateLBSolAndReducedCosts(inst *Instance, lagrMult []float64) {
	s.lbSol.Idxs = s.lbSol.Idxs[:0]
	s.lbSol.Cost = 0
	for _, u := range lagrMult {
		s.lbSol.Cost += u
	}

	if cap(s.reducedCosts) < inst.NCols() {
		s.reducedCosts = make([]float64, inst.NCols())
	} else {
		s.reducedCosts = s.reducedCosts[:inst.NCols()]
	}

	for j := 0; j < inst.NCols(); j++ {
		c := inst.Costs[j]
		for _, i := range inst.Cols.Col(j) {
			c -= lagrMult[i]
		}
		s.reducedCosts[j] = c
		if c < 0 {
			s.lbSol.Idxs = append(s.lbSol.Idxs, ColIdx(j))
			s.lbSol.Cost += c
		}
	}
}

// computeReducedRowCoverage builds the row coverage of lbSol, skipping
// columns that would be redundant against the growing coverage, visiting
// columns in ascending reduced-cost order.
func (s *Subgradient) computeReducedRowCoverage(inst *Instance) {
	s.rowCoverage.Reset(inst.NRows())
	reduced := s.reducedCosts
	slices.SortFunc(s.lbSol.Idxs, func(a, b ColIdx) bool { return reduced[a] < reduced[b] })

	for _, j := range s.lbSol.Idxs {
		col := inst.Cols.Col(int(j))
		if !s.rowCoverage.IsRedundantCover(col) {
			s.rowCoverage.Cover(col)
		}
	}
}

// computeSubgradSqrNorm returns Σᵢ (1 - covᵢ)² over the current row
// coverage.
func (s *Subgradient) computeSubgradSqrNorm() float64 {
	sqrNorm := 0.0
	for i := 0; i < s.rowCoverage.Size(); i++ {
		violation := 1 - float64(s.rowCoverage.At(RowIdx(i)))
		sqrNorm += violation * violation
	}
	return sqrNorm
}
