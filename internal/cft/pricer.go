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

// minCov is the capacity of the per-row bounded window kept by the C2
// selection pass: the pricer guarantees at least minCov columns per row
// survive into the core instance whenever that many exist, so Greedy
// cannot become infeasible on the core.
const minCov = 5

// Pricer builds a core instance from an enclosing Instance and a set of
// Lagrangian multipliers. It keeps scratch buffers across calls to avoid
// per-iteration allocation.
type Pricer struct {
	reducedCosts []float64
	taken        []bool
}

// Price computes the real Lagrangian lower bound L(u) and, as a side
// effect, fills core with a column subset guaranteed to contain the
// promising columns of inst under multipliers mults.
func (p *Pricer) Price(inst *Instance, mults []float64, core *CoreInstance) float64 {
	nrows := inst.NRows()
	ncols := inst.NCols()
	if nrows == 0 || ncols == 0 {
		core.ColMap = core.ColMap[:0]
		core.Inst = Instance{}
		return 0
	}

	reduced, lb := inst.ReducedCosts(mults)
	p.reducedCosts = reduced

	if cap(p.taken) < ncols {
		p.taken = make([]bool, ncols)
	} else {
		p.taken = p.taken[:ncols]
		for i := range p.taken {
			p.taken[i] = false
		}
	}

	colMap := core.ColMap[:0]
	colMap = p.selectC1(inst, colMap)
	colMap = p.selectC2(inst, colMap)

	newCols := NewSparseBinMat[RowIdx]()
	newCosts := make([]float64, 0, len(colMap))
	for _, j := range colMap {
		newCols.PushCol(inst.Cols.Col(int(j)))
		newCosts = append(newCosts, inst.Costs[j])
	}
	core.ColMap = colMap
	core.Inst = Instance{Cols: newCols, Costs: newCosts}
	core.Inst.FillRowsFromCols(nrows)

	return lb
}

// selectC1 collects every column with reduced cost below 0.1, truncated
// to the 5*nrows cheapest by reduced cost if that threshold is exceeded.
func (p *Pricer) selectC1(inst *Instance, idxs []ColIdx) []ColIdx {
	for j := 0; j < inst.NCols(); j++ {
		if p.reducedCosts[j] < 0.1 {
			idxs = append(idxs, ColIdx(j))
		}
	}

	maxSize := 5 * inst.NRows()
	if len(idxs) > maxSize {
		slices.SortFunc(idxs, func(a, b ColIdx) bool {
			return p.reducedCosts[a] < p.reducedCosts[b]
		})
		idxs = idxs[:maxSize]
	}

	for _, j := range idxs {
		p.taken[j] = true
	}
	return idxs
}

// selectC2 adds, for every row, up to minCov columns covering that row
// (the cheapest-by-reduced-cost ones not already selected), guaranteeing
// every row keeps a bounded covering window in the core.
func (p *Pricer) selectC2(inst *Instance, idxs []ColIdx) []ColIdx {
	window := make([]ColIdx, 0, minCov)
	for i := 0; i < inst.NRows(); i++ {
		window = window[:0]
		for _, j := range inst.Rows.Col(i) {
			window = insertSortedBounded(window, j, minCov, p.reducedCosts)
		}
		for _, j := range window {
			if !p.taken[j] {
				p.taken[j] = true
				idxs = append(idxs, j)
			}
		}
	}
	return idxs
}

// insertSortedBounded inserts j into window (kept sorted ascending by
// key(j)) while capping its length at capacity, dropping the worst element if
// necessary.
func insertSortedBounded(window []ColIdx, j ColIdx, capacity int, key []float64) []ColIdx {
	pos := 0
	for pos < len(window) && key[window[pos]] <= key[j] {
		pos++
	}
	if pos == len(window) {
		if len(window) < capacity {
			return append(window, j)
		}
		return window
	}
	if len(window) < capacity {
		window = append(window, ColIdx(0))
	}
	copy(window[pos+1:], window[pos:len(window)-1])
	window[pos] = j
	return window
}
