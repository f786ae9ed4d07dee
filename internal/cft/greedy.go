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

// Greedy orchestrates Scores and Eliminate to build a feasible solution
// under a cost cutoff and/or size cap. It keeps its Scores cache across
// calls to avoid per-iteration allocation.
type Greedy struct {
	scores Scores
}

// BuildWithMults is Build, deriving the per-column gamma (reduced cost)
// from lagrMult when the caller has not already computed reduced costs.
func (g *Greedy) BuildWithMults(inst *Instance, lagrMult []float64, sol *Solution, cutoffCost float64, maxSolSize int) {
	reduced, _ := inst.ReducedCosts(lagrMult)
	g.Build(inst, lagrMult, reduced, sol, cutoffCost, maxSolSize)
}

// Build extends sol (possibly empty) by repeatedly taking the
// lowest-score column until every row of inst is covered or maxSolSize is
// reached, then hands the result to Eliminate. It never returns an
// infeasible solution unless maxSolSize was reached first, in which case
// the caller accepts the partial solution; on success sol.Cost is the
// final cost, on failure sol.Cost is set to a sentinel >= cutoffCost.
func (g *Greedy) Build(inst *Instance, lagrMult, gammas []float64, sol *Solution, cutoffCost float64, maxSolSize int) {
	if maxSolSize <= 0 {
		maxSolSize = math.MaxInt32
	}

	g.scores.Gammas = append(g.scores.Gammas[:0], gammas...)
	nrows := inst.NRows()
	totalCover := NewCoverCounters(nrows)

	g.scores.Init(inst)
	nrowsToCover := nrows
	if len(sol.Idxs) > 0 {
		nrowsToCover -= g.scores.UpdateCovered(inst, sol.Idxs, lagrMult, &totalCover)
	}

	smallerSize := minInt(nrowsToCover, inst.NCols())
	goodScores := g.scores.GetGoodScores(smallerSize)

	var scoreUpdateTrigger float64
	if len(goodScores) > 0 {
		scoreUpdateTrigger = goodScores[len(goodScores)-1].Score
	}

	for nrowsToCover > 0 && len(sol.Idxs) < maxSolSize {
		sMin := argminScore(goodScores)
		if sMin < 0 {
			break // instance infeasible on the columns available
		}
		if goodScores[sMin].Score >= scoreUpdateTrigger {
			smallerSize = minInt(nrowsToCover, inst.NCols()-len(sol.Idxs))
			goodScores = g.scores.GetGoodScores(smallerSize)
			if len(goodScores) == 0 {
				break
			}
			scoreUpdateTrigger = goodScores[len(goodScores)-1].Score
			sMin = argminScore(goodScores)
		}

		jstar := goodScores[sMin].Idx
		sol.Idxs = append(sol.Idxs, jstar)
		sol.Cost += inst.Costs[jstar]

		col := inst.Cols.Col(int(jstar))
		for _, i := range col {
			if totalCover.At(i) == 0 {
				g.scores.updateRowScores(inst.Rows.Col(int(i)), lagrMult[i])
			}
		}
		nrowsToCover -= totalCover.Cover(col)
	}

	kept, cost, ok := Eliminate(inst, sol.Idxs, cutoffCost, totalCover)
	if !ok {
		sol.Cost = cutoffCost
		return
	}
	sol.Idxs = kept
	sol.Cost = cost
}

// argminScore returns the index within scores of the smallest score,
// breaking ties by the lower column index for a stable selection order.
// It returns -1 for an empty slice.
func argminScore(scores []ScoreData) int {
	if len(scores) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i].Score < scores[best].Score ||
			(scores[i].Score == scores[best].Score && scores[i].Idx < scores[best].Idx) {
			best = i
		}
	}
	return best
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
