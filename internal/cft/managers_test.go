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

func TestStepSizeManagerHalvesOnWideSpread(t *testing.T) {
	m := NewStepSizeManager(2, 0.1)
	m.Update(1, 10.0)
	step := m.Update(2, 100.0) // huge spread -> halved
	assert.Equal(t, step, 0.05)
}

func TestStepSizeManagerGrowsOnNarrowSpread(t *testing.T) {
	initStep := 0.1
	m := NewStepSizeManager(2, initStep)
	m.Update(1, 10.0)
	step := m.Update(2, 10.0) // zero spread -> grown
	assert.Equal(t, step, initStep*1.5)
}

func TestExitConditionManagerDetectsStagnation(t *testing.T) {
	m := NewExitConditionManager(1)
	assert.Assert(t, !m.ShouldExit(1, 10.0)) // first reading, huge "improvement" from -max
	assert.Assert(t, m.ShouldExit(2, 10.0))  // no movement at all
}

func TestExitConditionManagerOnlyFiresOnPeriod(t *testing.T) {
	m := NewExitConditionManager(3)
	assert.Assert(t, !m.ShouldExit(1, 10.0))
	assert.Assert(t, !m.ShouldExit(2, 20.0))
}

func TestPricingManagerShouldPriceOnPeriod(t *testing.T) {
	m := NewPricingManager(5, 100)
	assert.Assert(t, !m.ShouldPrice(1))
	assert.Assert(t, m.ShouldPrice(5))
}

func TestPricingManagerUpdateGrowsPeriodWhenTight(t *testing.T) {
	m := NewPricingManager(5, 1000)
	m.Update(100.0, 100.0, 100.0) // delta ~ 0 -> grows x10
	assert.Equal(t, m.Period, uint64(50))
}

func TestPricingManagerUpdateResetsPeriodWhenLoose(t *testing.T) {
	m := NewPricingManager(5, 1000)
	m.Update(50.0, 10.0, 100.0) // delta = 0.4 -> falls to default
	assert.Equal(t, m.Period, uint64(10))
}
