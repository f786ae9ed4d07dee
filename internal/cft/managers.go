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

import "math"

// StepSizeManager tracks the min/max lower bound seen over the last
// Period iterations and adapts the subgradient step size every Period
// iterations: a wide min/max spread halves the step, a narrow spread
// grows it by 1.5x, otherwise it is left alone.
type StepSizeManager struct {
	Period         uint64
	nextUpdateIter uint64
	stepSize       float64
	minLB          float64
	maxLB          float64
}

// NewStepSizeManager returns a manager with the given period and initial
// step size.
func NewStepSizeManager(period uint64, initStepSize float64) StepSizeManager {
	return StepSizeManager{
		Period:         period,
		nextUpdateIter: period,
		stepSize:       initStepSize,
		minLB:          math.MaxFloat64,
		maxLB:          -math.MaxFloat64,
	}
}

// Update folds lowerBound into the running min/max and, every Period
// iterations, adapts and returns the step size.
func (m *StepSizeManager) Update(iter uint64, lowerBound float64) float64 {
	if lowerBound < m.minLB {
		m.minLB = lowerBound
	}
	if lowerBound > m.maxLB {
		m.maxLB = lowerBound
	}
	if iter == m.nextUpdateIter {
		m.nextUpdateIter += m.Period
		diff := (m.maxLB - m.minLB) / math.Abs(m.maxLB)
		if diff > 0.01 {
			m.stepSize /= 2.0
		}
		if diff <= 0.001 {
			m.stepSize *= 1.5
		}
		m.minLB = math.MaxFloat64
		m.maxLB = -math.MaxFloat64
	}
	return m.stepSize
}

// ExitConditionManager decides, every Period iterations, whether the
// subgradient loop has stalled: both the absolute and relative
// improvement of the lower bound over the last period must fall below
// fixed thresholds (1.0 absolute, 0.001 relative) for the loop to exit.
// Environment.AbsSubgradExit and RelSubgradExit are not consulted.
type ExitConditionManager struct {
	Period         uint64
	nextUpdateIter uint64
	prevLB         float64
}

// NewExitConditionManager returns a manager with the given period.
func NewExitConditionManager(period uint64) ExitConditionManager {
	return ExitConditionManager{Period: period, nextUpdateIter: period, prevLB: -math.MaxFloat64}
}

// ShouldExit reports whether iteration iter, having reached lowerBound,
// should terminate the subgradient loop.
func (m *ExitConditionManager) ShouldExit(iter uint64, lowerBound float64) bool {
	if iter != m.nextUpdateIter {
		return false
	}
	m.nextUpdateIter += m.Period
	absImprovement := lowerBound - m.prevLB
	relImprovement := absImprovement / lowerBound
	m.prevLB = lowerBound
	return absImprovement < 1.0 && relImprovement < 0.001
}

// PricingManager decides when to re-invoke the Pricer and adapts the
// pricing period based on how tight the core bound is relative to the
// real bound.
type PricingManager struct {
	Period             uint64
	nextUpdateIter     uint64
	maxPeriodIncrement uint64
}

// NewPricingManager returns a manager with the given initial period and
// period cap.
func NewPricingManager(period, maxPeriodIncrement uint64) PricingManager {
	return PricingManager{Period: period, nextUpdateIter: period, maxPeriodIncrement: maxPeriodIncrement}
}

// ShouldPrice reports whether iteration iter is a pricing event.
func (m *PricingManager) ShouldPrice(iter uint64) bool {
	return iter == m.nextUpdateIter
}

// Update adapts the pricing period after a pricing event: the tighter the
// core bound is to the real bound (as a fraction of the upper bound), the
// longer pricing is deferred.
func (m *PricingManager) Update(coreLB, realLB, ub float64) {
	delta := (coreLB - realLB) / ub
	switch {
	case delta <= 1e-6:
		m.Period = minUint64(m.maxPeriodIncrement, 10*m.Period)
	case delta <= 0.02:
		m.Period = minUint64(m.maxPeriodIncrement, 5*m.Period)
	case delta <= 0.2:
		m.Period = minUint64(m.maxPeriodIncrement, 2*m.Period)
	default:
		m.Period = 10
	}
	m.nextUpdateIter += m.Period
}

func minUint64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
