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

import "golang.org/x/exp/slices"

// EnumVars bounds the depth of the bounded branch-and-bound enumeration
// that finishes redundancy elimination: once the greedy thinning pass has
// whittled the redundant set down to at most this many survivors, they
// are enumerated exhaustively.
const EnumVars = 10

// RedundancyData is the scratch state of one redundancy-elimination call.
// TotalCover is the coverage of every not-yet-removed column; PartialCover
// is the coverage of the columns kept so far. The two are kept separate
// deliberately: collapsing them loses the ability to test both "would
// removing this column break total feasibility" and "does keeping it add
// anything to the partial solution".
type RedundancyData struct {
	RedundSet       []CidxAndCost
	TotalCover      CoverCounters
	PartialCover    CoverCounters
	ColsToRemove    []ColIdx
	BestCost        float64
	PartialCost     float64
	PartialCovCount int
}

// Eliminate removes redundant columns from sol (a feasible solution whose
// coverage is already reflected in totalCover) using greedy thinning
// followed by bounded enumeration, never increasing cost and never
// producing an infeasible subset. cutoffCost is the current upper bound;
// if the non-redundant core of sol already meets or exceeds it, ok is
// false and the caller should discard the candidate.
func Eliminate(inst *Instance, sol []ColIdx, cutoffCost float64, totalCover CoverCounters) (kept []ColIdx, cost float64, ok bool) {
	var red RedundancyData
	red.TotalCover = totalCover
	red.PartialCover = NewCoverCounters(inst.NRows())
	red.BestCost = cutoffCost

	for _, j := range sol {
		col := inst.Cols.Col(int(j))
		if red.TotalCover.IsRedundantUncover(col) {
			red.RedundSet = append(red.RedundSet, CidxAndCost{Idx: j, Cost: inst.Costs[j]})
			continue
		}
		red.PartialCovCount += red.PartialCover.Cover(col)
		red.PartialCost += inst.Costs[j]
		if red.PartialCost >= cutoffCost {
			return nil, 0, false
		}
	}
	slices.SortFunc(red.RedundSet, func(a, b CidxAndCost) bool { return a.Cost < b.Cost })

	heuristicRemoval(inst, &red)
	enumerationRemoval(inst, &red)

	removed := make(map[ColIdx]bool, len(red.ColsToRemove))
	for _, j := range red.ColsToRemove {
		removed[j] = true
	}
	kept = make([]ColIdx, 0, len(sol))
	for _, j := range sol {
		if !removed[j] {
			kept = append(kept, j)
			cost += inst.Costs[j]
		}
	}
	return kept, cost, true
}

// heuristicRemoval greedily drops the most expensive redundant column
// (by ascending-cost order, so pop from the back) while the redundant set
// is larger than EnumVars and the partial cost still beats the cutoff,
// re-evaluating the remaining redundant columns since removing a peer can
// make some of them non-redundant.
func heuristicRemoval(inst *Instance, red *RedundancyData) {
	for red.PartialCost < red.BestCost && len(red.RedundSet) > EnumVars {
		if red.PartialCovCount == inst.NRows() {
			return
		}

		last := red.RedundSet[len(red.RedundSet)-1]
		red.RedundSet = red.RedundSet[:len(red.RedundSet)-1]
		red.TotalCover.Uncover(inst.Cols.Col(int(last.Idx)))
		red.ColsToRemove = append(red.ColsToRemove, last.Idx)

		kept := red.RedundSet[:0]
		for _, x := range red.RedundSet {
			col := inst.Cols.Col(int(x.Idx))
			if red.TotalCover.IsRedundantUncover(col) {
				kept = append(kept, x)
				continue
			}
			red.PartialCost += inst.Costs[x.Idx]
			red.PartialCovCount += red.PartialCover.Cover(col)
		}
		red.RedundSet = kept
	}
}

// enumerationRemoval performs the depth-bounded branch-and-bound over the
// at-most-EnumVars survivors of heuristicRemoval.
func enumerationRemoval(inst *Instance, red *RedundancyData) {
	if red.PartialCost >= red.BestCost || len(red.RedundSet) == 0 {
		return
	}

	oldUB := red.BestCost
	keep := make([]bool, len(red.RedundSet))
	bestKeep := make([]bool, len(red.RedundSet))

	enumerate(inst, red, 0, keep, bestKeep)

	if red.BestCost < oldUB {
		for r, x := range red.RedundSet {
			if !bestKeep[r] {
				red.ColsToRemove = append(red.ColsToRemove, x.Idx)
			}
		}
	}
}

func enumerate(inst *Instance, red *RedundancyData, depth int, keep, bestKeep []bool) {
	if depth == len(red.RedundSet) || red.PartialCovCount == red.PartialCover.Size() {
		if red.PartialCost < red.BestCost {
			red.BestCost = red.PartialCost
			copy(bestKeep, keep)
		}
		return
	}

	col := inst.Cols.Col(int(red.RedundSet[depth].Idx))

	// Take branch: keep the column, if doing so still beats the cutoff
	// and it is not already redundant given what's been kept so far.
	if red.PartialCost+red.RedundSet[depth].Cost < red.BestCost && !red.PartialCover.IsRedundantCover(col) {
		keep[depth] = true
		red.PartialCovCount += red.PartialCover.Cover(col)
		red.PartialCost += red.RedundSet[depth].Cost

		enumerate(inst, red, depth+1, keep, bestKeep)

		keep[depth] = false
		red.PartialCovCount -= red.PartialCover.Uncover(col)
		red.PartialCost -= red.RedundSet[depth].Cost
	}

	// Skip branch: discard the column, only if the rest of the (not yet
	// removed) columns still cover every row without it.
	if red.TotalCover.IsRedundantUncover(col) {
		red.TotalCover.Uncover(col)
		enumerate(inst, red, depth+1, keep, bestKeep)
		red.TotalCover.Cover(col)
	}
}
