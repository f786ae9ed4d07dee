/*
 Copyright (C) 2024 Douglas Wayne Potter

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

// SubsetsEval is the result of attempting to solve a set covering Instance
// exactly (brute force or branch-and-bound): either an exact cover with its
// cost and the subset indices chosen, or the zero value if none was found.
type SubsetsEval struct {
	// SubsetsIndices are indices into Instance.Subsets chosen for the cover.
	SubsetsIndices []int
	// ExactlyCovered is true iff SubsetsIndices covers every element exactly once.
	ExactlyCovered bool
	Cost           float64
	// Optimal is true iff Cost is known to be minimal among exact covers.
	Optimal bool
}
