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

package parse

import (
	"fmt"
	"os"
	"strings"

	"github.com/snow-abstraction/cover/internal/cft"
)

// Solution reads a solution file: a single line holding the cost followed
// by the 0-based column indices in the solution.
func Solution(path string) (cft.Solution, error) {
	f, err := os.Open(path)
	if err != nil {
		return cft.Solution{}, err
	}
	defer f.Close()

	ts := newTokenScanner(f)
	cost, err := ts.nextFloat()
	if err != nil {
		return cft.Solution{}, fmt.Errorf("solution: reading cost: %w", err)
	}

	sol := cft.Solution{Cost: cost}
	for {
		j, err := ts.nextInt()
		if err != nil {
			break
		}
		sol.Idxs = append(sol.Idxs, cft.ColIdx(j))
	}
	return sol, nil
}

// WriteSolution writes sol to path in the same format Solution reads: the
// cost followed by every selected column index, space-separated on one
// line.
func WriteSolution(path string, sol cft.Solution) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%g", sol.Cost)
	for _, j := range sol.Idxs {
		fmt.Fprintf(&b, " %d", j)
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
