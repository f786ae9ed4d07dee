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

// ScoreData pairs a live score with the column it belongs to.
type ScoreData struct {
	Score float64
	Idx   ColIdx
}

// Scores holds the incrementally maintained greedy score of every column
// still eligible for selection. Gamma is the reduced cost of the column
// plus the multipliers of its already-covered rows (its cost minus the
// multipliers of its still-uncovered rows); CoveredRows
// (mu) is how many still-uncovered rows the column would cover.
type Scores struct {
	Scores      []ScoreData
	Gammas      []float64
	CoveredRows []int
	ScoreMap    []int // column index -> index into Scores, or -1 if removed
}

// ComputeScore returns the greedy score for a column with the given gamma
// and mu (count of still-uncovered rows it covers): gamma/mu if gamma>0,
// gamma*mu if gamma<=0, or +Inf if mu==0 (the column would contribute
// nothing).
func ComputeScore(gamma float64, mu int) float64 {
	if mu == 0 {
		return math.Inf(1)
	}
	if gamma > 0 {
		return gamma / float64(mu)
	}
	return gamma * float64(mu)
}

// Init computes the initial score of every column of inst from the
// already-populated Gammas (normally inst.Costs when mults is all zero,
// or the reduced costs otherwise).
func (s *Scores) Init(inst *Instance) {
	ncols := inst.NCols()
	s.Scores = make([]ScoreData, ncols)
	s.ScoreMap = make([]int, ncols)
	s.CoveredRows = make([]int, ncols)

	for j := 0; j < ncols; j++ {
		mu := len(inst.Cols.Col(j))
		score := ComputeScore(s.Gammas[j], mu)
		s.ScoreMap[j] = j
		s.CoveredRows[j] = mu
		s.Scores[j] = ScoreData{Score: score, Idx: ColIdx(j)}
	}
}

// updateRowScores recomputes the score of every column covering row,
// after row became covered with Lagrangian multiplier iLagrMult: each
// such column loses row from its mu and gains iLagrMult in its gamma.
func (s *Scores) updateRowScores(row []ColIdx, iLagrMult float64) {
	for _, j := range row {
		s.CoveredRows[j]--
		s.Gammas[j] += iLagrMult

		sIdx := s.ScoreMap[j]
		if sIdx < 0 {
			continue
		}
		s.Scores[sIdx].Score = ComputeScore(s.Gammas[j], s.CoveredRows[j])
	}
}

// UpdateCovered folds the columns in newlyTaken into totalCover and
// updates the scores of every column touched by a row that just became
// covered for the first time. It returns how many rows were newly
// covered.
func (s *Scores) UpdateCovered(inst *Instance, newlyTaken []ColIdx, lagrMult []float64, totalCover *CoverCounters) int {
	coveredRows := 0
	for _, j := range newlyTaken {
		coveredRows += totalCover.Cover(inst.Cols.Col(int(j)))
	}

	for i := 0; i < totalCover.Size(); i++ {
		if totalCover.At(RowIdx(i)) == 1 {
			// Row i transitioned to covered by this batch; the check is
			// "> 0" in the reference but restricting to the transition
			// (== 1, post-increment) avoids re-updating rows that were
			// already covered before this call.
			s.updateRowScores(inst.Rows.Col(i), lagrMult[i])
		}
	}
	return coveredRows
}

// GetGoodScores drops columns whose score has gone to +Inf (they can
// never help), then partitions the remainder so the amount smallest live
// scores are contiguous, keeping ScoreMap consistent, and returns that
// prefix.
func (s *Scores) GetGoodScores(amount int) []ScoreData {
	s.Scores = removeInfiniteScores(s.Scores, s.ScoreMap)

	if amount > len(s.Scores) {
		amount = len(s.Scores)
	}
	if amount == 0 {
		return nil
	}

	slices.SortFunc(s.Scores, func(a, b ScoreData) bool { return a.Score < b.Score })
	for i, sd := range s.Scores {
		s.ScoreMap[sd.Idx] = i
	}
	return s.Scores[:amount]
}

func removeInfiniteScores(scores []ScoreData, scoreMap []int) []ScoreData {
	kept := scores[:0]
	for _, sd := range scores {
		if math.IsInf(sd.Score, 1) {
			scoreMap[sd.Idx] = -1
			continue
		}
		kept = append(kept, sd)
	}
	return kept
}
