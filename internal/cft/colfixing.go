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

import "math"

// colFixThresh is the reduced-cost threshold below which a column is a
// candidate for fixing.
const colFixThresh = -0.001

// ColFixing shrinks the current instance at the end of a three-phase
// iteration by fixing a conflict-free set of negative-reduced-cost
// columns (extended by Greedy with at most max(1, origNRows/200) further
// columns) and mutating inst,
// fixing, and lagrMult in place.
type ColFixing struct {
	colsToFix    []ColIdx
	rowCoverage  CoverCounters
	reducedCosts []float64
}

// Fix selects F0 (pairwise row-disjoint negative-reduced-cost columns),
// extends it via greedy by at most max(1, origNRows/200) further columns
// (fewer if the rest of inst is covered first), fixes the result, and
// updates lagrMult to the shrunken row set. lagrMult is replaced with a
// new, shorter slice reflecting the removed rows.
func (c *ColFixing) Fix(env *Environment, origNRows int, inst *Instance, fixing *FixingData, lagrMult *[]float64, greedy *Greedy) {
	timer := NewChrono()

	c.selectNonOverlappingCols(inst, *lagrMult)
	noOverlapNCols := len(c.colsToFix)

	fixAtLeast := len(c.colsToFix) + maxInt(1, origNRows/200)
	sol := Solution{Idxs: append([]ColIdx(nil), c.colsToFix...)}
	greedy.Build(inst, *lagrMult, c.reducedCosts, &sol, math.MaxFloat64, fixAtLeast)
	c.colsToFix = sol.Idxs

	old2new := FixColumnsAndComputeMaps(c.colsToFix, inst, fixing)
	*lagrMult = ApplyToMults(old2new, *lagrMult)

	Printf(env, 4, TagColFixing, "Fixing %d columns (%d + %d), time %.2fs\n", len(c.colsToFix), noOverlapNCols, len(c.colsToFix)-noOverlapNCols, timer.Elapsed().Seconds())
}

// selectNonOverlappingCols collects every column whose reduced cost is
// below colFixThresh, then discards any of them whose rows are covered
// more than once by the candidate set, leaving a conflict-free partial
// solution in c.colsToFix.
func (c *ColFixing) selectNonOverlappingCols(inst *Instance, lagrMult []float64) {
	ncols := inst.NCols()
	if cap(c.reducedCosts) < ncols {
		c.reducedCosts = make([]float64, ncols)
	} else {
		c.reducedCosts = c.reducedCosts[:ncols]
	}
	c.rowCoverage.Reset(inst.NRows())
	c.colsToFix = c.colsToFix[:0]

	for j := 0; j < ncols; j++ {
		cost := inst.Costs[j]
		for _, i := range inst.Cols.Col(j) {
			cost -= lagrMult[i]
		}
		c.reducedCosts[j] = cost
		if cost < colFixThresh {
			c.colsToFix = append(c.colsToFix, ColIdx(j))
			c.rowCoverage.Cover(inst.Cols.Col(j))
		}
	}

	kept := c.colsToFix[:0]
	for _, j := range c.colsToFix {
		overlaps := false
		for _, i := range inst.Cols.Col(int(j)) {
			if c.rowCoverage.At(i) > 1 {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, j)
		}
	}
	c.colsToFix = kept
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
