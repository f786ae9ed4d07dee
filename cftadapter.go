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

package cover

import (
	"fmt"

	"github.com/snow-abstraction/cover/internal/cft"
)

// ToCFTInstance converts an Instance (whose Subsets are row-lists of the
// elements each subset covers) into the column-major cft.Instance the
// Lagrangian heuristic operates on.
func ToCFTInstance(ins Instance) (cft.Instance, error) {
	if err := ins.Validate(); err != nil {
		return cft.Instance{}, fmt.Errorf("ToCFTInstance: %w", err)
	}

	cols := make([][]cft.RowIdx, len(ins.Subsets))
	for j, subset := range ins.Subsets {
		rows := make([]cft.RowIdx, len(subset))
		for k, e := range subset {
			rows[k] = cft.RowIdx(e)
		}
		cols[j] = rows
	}
	return cft.NewInstance(ins.N, cols, ins.Costs)
}
