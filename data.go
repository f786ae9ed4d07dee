/*
 Copyright (C) 2023 Douglas Wayne Potter

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

package cover

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"golang.org/x/exp/slices"
)

type Instance struct {
	// The number of elements in the set X to be covered, indexed
	// 0 ... N-1.
	N int
	// Subsets of X. The inner slices must only contain element indices in
	// [0, N-1]. The indices must be sorted and each subset must be include
	// at most once. Empty Subsets are not allowed.
	Subsets [][]int
	// The cost of each subset. Each cost must be strictly positive.
	// The length of subsets and Costs must be equal.
	// The restrictions on the Costs reasonable for many problems and
	// suit certain algorithms.
	Costs []float64
}

// Validate reports the first constraint violation found in the instance:
// a negative N, a Subsets/Costs length mismatch, an empty subset,
// out-of-range, unsorted or duplicated subset elements, or a cost that is
// not strictly positive. It mirrors the checks internal/solvers.MakeInstance
// applies before handing an instance to the exact solvers, so the same
// malformed input is rejected the same way whichever solver path is used.
func (ins Instance) Validate() error {
	if ins.N < 0 {
		return fmt.Errorf("N must be nonnegative, got %d", ins.N)
	}
	if len(ins.Subsets) != len(ins.Costs) {
		return fmt.Errorf("there must be exactly one cost per subset, got %d subsets and %d costs",
			len(ins.Subsets), len(ins.Costs))
	}
	for i, subset := range ins.Subsets {
		if len(subset) == 0 {
			return fmt.Errorf("subset index %d is empty, empty subsets are not allowed", i)
		}
		prev := -1
		for _, e := range subset {
			if e < 0 || e >= ins.N {
				return fmt.Errorf("subset index %d contains element %d outside [0, %d)", i, e, ins.N)
			}
			if e <= prev {
				return fmt.Errorf("subset index %d is not sorted or contains a duplicate element", i)
			}
			prev = e
		}
	}
	for i, cost := range ins.Costs {
		if cost <= 0 {
			return fmt.Errorf("cost index %d is %f, only strictly positive costs are supported", i, cost)
		}
	}
	return nil
}

func MakeRandomInstance(m int, n int, seed int64) Instance {
	gen := rand.New(rand.NewSource(seed))

	ins := Instance{N: n, Subsets: make([][]int, 0), Costs: make([]float64, 0)}

	// universe of elements to be covered
	u := make([]int, ins.N)
	for i := 0; i < ins.N; i++ {
		u[i] = i
	}
	for j := 0; j < m; j++ {
		for {
			// make random subset u[:k]
			gen.Shuffle(len(u), func(i, j int) { u[i], u[j] = u[j], u[i] })
			k := gen.Intn(ins.N) + 1
			subset := u[:k]
			// sort subset to give it an unique representation
			sort.Ints(subset)

			// only add subset if unique
			// TODO: This introduces quadratic complexity. Ideally we would
			// do a binary search or use some hash table to check if the
			// subset has alredy been added.
			match := false
			for _, s := range ins.Subsets {
				if slices.Equal(subset, s) {
					match = true
					break
				}
			}

			if !match {
				ins.Subsets = append(ins.Subsets, make([]int, len(subset)))
				copy(ins.Subsets[len(ins.Subsets)-1], subset)

				// generate random cost such that 1 <= cost < 10
				// with that basis that the cost should be lower if few
				// elements.
				x := math.Pow(gen.Float64(), math.Log(float64(k)))
				ins.Costs = append(ins.Costs, 10.0*(1-0.9*x))
				break
			}
		}

	}

	return ins
}
