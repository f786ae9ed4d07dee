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

// Idx is the set of index types a SparseBinMat can be built over: ColIdx
// when it stores, per row, the columns covering it, or RowIdx when it
// stores, per column, the rows it covers.
type Idx interface {
	ColIdx | RowIdx
}

// SparseBinMat is a column-major sparse 0/1 matrix: idxs is the flat
// sequence of row indexes, begs[j]..begs[j+1] delimits column j's row
// list. Empty columns are forbidden; begs is non-decreasing with
// begs[0] == 0 and begs[len(begs)-1] == len(idxs).
type SparseBinMat[T Idx] struct {
	Idxs []T
	Begs []int
}

// NewSparseBinMat returns an empty matrix ready to accept columns via
// PushCol.
func NewSparseBinMat[T Idx]() SparseBinMat[T] {
	return SparseBinMat[T]{Begs: []int{0}}
}

// Col returns the slice of indexes belonging to column j.
func (m *SparseBinMat[T]) Col(j int) []T {
	if Debug && (j < 0 || j >= m.Size() || m.Begs[j+1] > len(m.Idxs)) {
		panic("cft: SparseBinMat.Col index out of range")
	}
	return m.Idxs[m.Begs[j]:m.Begs[j+1]]
}

// Size returns the number of columns.
func (m *SparseBinMat[T]) Size() int {
	if len(m.Begs) == 0 {
		return 0
	}
	return len(m.Begs) - 1
}

// Empty reports whether the matrix has no columns.
func (m *SparseBinMat[T]) Empty() bool {
	return len(m.Begs) <= 1
}

// Clear removes every column.
func (m *SparseBinMat[T]) Clear() {
	m.Idxs = m.Idxs[:0]
	m.Begs = m.Begs[:1]
	m.Begs[0] = 0
}

// PushCol appends a new column holding a copy of elems. elems must be
// non-empty; empty columns are a structural violation of the matrix.
func (m *SparseBinMat[T]) PushCol(elems []T) {
	if Debug && len(elems) == 0 {
		panic("cft: SparseBinMat.PushCol with empty column")
	}
	m.Idxs = append(m.Idxs, elems...)
	m.Begs = append(m.Begs, len(m.Idxs))
}

// Contains reports whether column j contains index v.
func (m *SparseBinMat[T]) Contains(j int, v T) bool {
	return slices.Contains(m.Col(j), v)
}
