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

// Package cft implements the Caprara-Fischetti-Toth Lagrangian heuristic
// for the Set Covering Problem: an outer Refinement loop that repeatedly
// fixes promising columns and re-solves the shrunken residual problem with
// an inner Three-Phase engine (subgradient dual optimization, randomized
// greedy primal construction, column fixing).
package cft

import (
	"math"
	"time"
)

// ColIdx indexes into an Instance's columns. RemovedCol is a tombstone used
// during in-place compaction.
type ColIdx int32

// RowIdx indexes into an Instance's rows. RemovedRow is a tombstone used
// during in-place compaction.
type RowIdx int32

const (
	// RemovedCol marks a column slot that has been fixed or compacted away.
	RemovedCol ColIdx = math.MaxInt32
	// RemovedRow marks a row slot that has been covered and compacted away.
	RemovedRow RowIdx = math.MaxInt32
)

// Debug, when true, enables internal consistency assertions that panic on
// violation instead of silently producing undefined behaviour. It is
// expected to be turned off in the hot path of a release build.
var Debug = false

// Available parser names, mirrored in internal/parse.
const (
	ParserSCP  = "SCP"
	ParserRAIL = "RAIL"
	ParserCVRP = "CVRP"
	ParserMPS  = "MPS"
)

// Environment holds every tunable of the heuristic plus the ambient
// services (timer, PRNG) the core consumes but does not own the lifecycle
// of. It is read-only for the solver except for the PRNG stream and timer.
type Environment struct {
	InstPath    string
	SolPath     string
	InitSolPath string
	Parser      string

	Seed           uint64
	TimeLimit      time.Duration
	Verbose        int
	Epsilon        float64
	HeurIters      uint64
	Alpha          float64
	Beta           float64
	AbsSubgradExit float64
	RelSubgradExit float64
	MinFixing      float64
	UseUnitCosts   bool

	// UseGreedyMultForPricer resolves an open question in the source
	// material: whether the Pricer should be fed the multipliers
	// associated with the best dual bound found (false, matching the
	// original CFT paper) or the multipliers associated with the best
	// greedy primal solution found during the heuristic sub-phase (true,
	// which the reference implementation's authors note sometimes works
	// better in practice). Off by default to match the paper.
	UseGreedyMultForPricer bool

	// MPSStrict, when true, makes the MPS parser reject any ROWS sense or
	// COLUMNS entry it does not recognise instead of skipping it.
	MPSStrict bool

	timer Chrono
	rng   *Xoshiro256Plus
}

// DefaultEnvironment returns an Environment with the reference defaults.
func DefaultEnvironment() Environment {
	return Environment{
		Parser:         ParserRAIL,
		TimeLimit:      time.Duration(math.MaxInt64),
		Verbose:        4,
		Epsilon:        0.999,
		HeurIters:      250,
		Alpha:          1.1,
		Beta:           1.0,
		AbsSubgradExit: 1.0,
		RelSubgradExit: 0.001,
		MinFixing:      0.3,
	}
}

// Init starts the timer and seeds the PRNG stream. Call once before a solve.
func (e *Environment) Init() {
	e.timer = NewChrono()
	e.rng = NewXoshiro256Plus(e.Seed)
}

// Elapsed returns the time elapsed since Init.
func (e *Environment) Elapsed() time.Duration {
	return e.timer.Elapsed()
}

// TimeLeft reports whether the configured time budget has not yet expired.
func (e *Environment) TimeLeft() bool {
	return e.timer.Elapsed() < e.TimeLimit
}

// Rng returns the environment's pseudo-random number generator stream. It
// panics if Init has not been called; the solver always calls Init first.
func (e *Environment) Rng() *Xoshiro256Plus {
	if e.rng == nil {
		panic("cft: Environment.Rng called before Init")
	}
	return e.rng
}

// CidxAndCost pairs a column index with a cost, used by Scores and Pricer
// when returning a ranked subset of columns.
type CidxAndCost struct {
	Idx  ColIdx
	Cost float64
}

// Solution is a candidate cover: a list of selected column indexes plus
// their total cost.
type Solution struct {
	Idxs []ColIdx
	Cost float64
}

// Clone returns a deep copy of the solution.
func (s Solution) Clone() Solution {
	idxs := make([]ColIdx, len(s.Idxs))
	copy(idxs, s.Idxs)
	return Solution{Idxs: idxs, Cost: s.Cost}
}

// DualState is the multiplier vector together with the lower bound it
// produced.
type DualState struct {
	Mults []float64
	LB    float64
}

// Result is what Refinement (and therefore a full solve) returns.
type Result struct {
	Sol  Solution
	Dual DualState
}
