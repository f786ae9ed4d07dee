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
	"testing"

	"gotest.tools/v3/assert"
)

func TestColFixingFixFixesColumnsAndShrinksMults(t *testing.T) {
	inst := smallInstance(t)
	// mults that make column 0 ({0,1}, cost 2) strongly attractive:
	// reduced cost = 2 - 5 - 5 = -8.
	lagrMult := []float64{5, 5, 0}

	fixing := MakeIdentityFixingData(inst.NCols(), inst.NRows())
	var greedy Greedy
	var cf ColFixing
	env := DefaultEnvironment()
	env.Init()

	origNRows := inst.NRows()
	cf.Fix(&env, origNRows, &inst, &fixing, &lagrMult, &greedy)

	assert.Assert(t, len(fixing.FixedCols) > 0)
	assert.Equal(t, len(lagrMult), inst.NRows())
	assert.Equal(t, len(fixing.Curr2Orig.RowMap), inst.NRows())
}
