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
	"testing"

	"gotest.tools/v3/assert"
)

func TestValidateAcceptsWellFormedInstance(t *testing.T) {
	ins := Instance{N: 3, Subsets: [][]int{{0, 1}, {2}}, Costs: []float64{1.5, 2.0}}
	assert.NilError(t, ins.Validate())
}

func TestValidateRejectsOutOfRangeElement(t *testing.T) {
	ins := Instance{N: 2, Subsets: [][]int{{0, 2}}, Costs: []float64{1.0}}
	assert.ErrorContains(t, ins.Validate(), "outside")
}

func TestValidateRejectsUnsortedSubset(t *testing.T) {
	ins := Instance{N: 2, Subsets: [][]int{{1, 0}}, Costs: []float64{1.0}}
	assert.ErrorContains(t, ins.Validate(), "not sorted")
}

func TestValidateRejectsNonPositiveCost(t *testing.T) {
	ins := Instance{N: 2, Subsets: [][]int{{0}}, Costs: []float64{0}}
	assert.ErrorContains(t, ins.Validate(), "strictly positive")
}

func TestValidateRejectsMismatchedLengths(t *testing.T) {
	ins := Instance{N: 2, Subsets: [][]int{{0}, {1}}, Costs: []float64{1.0}}
	assert.ErrorContains(t, ins.Validate(), "one cost per subset")
}

func TestMakeRandomInstanceProducesValidatableInstance(t *testing.T) {
	ins := MakeRandomInstance(5, 4, 7)
	assert.NilError(t, ins.Validate())
}
