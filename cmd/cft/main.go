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

// A Lagrangian heuristic solver for the Set Covering Problem, following
// Caprara, Fischetti & Toth.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/snow-abstraction/cover"
	"github.com/snow-abstraction/cover/internal/cft"
	"github.com/snow-abstraction/cover/internal/parse"
	"github.com/snow-abstraction/cover/internal/solvers"
)

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(
		w,
		`Usage: %s [flags] [-i] <instance path>

%s reads a Set Covering instance, solves it with the Caprara-Fischetti-Toth
Lagrangian heuristic and writes the best solution found to a solution file.

Arguments:
`,
		os.Args[0],
		os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage

	def := cft.DefaultEnvironment()

	var instPath, solPath, initSolPath, parserName string
	var seed uint64
	var timeLimitSec float64
	var verbose int
	var epsilon, alpha, beta, absSubgExit, relSubgExit, minFixing float64
	var heurIters uint64
	var useUnitCosts, useGreedyMultForPricer, mpsStrict, exact bool

	for _, pair := range [][2]string{{"i", "inst"}} {
		flag.StringVar(&instPath, pair[0], "", "instance file path")
		flag.StringVar(&instPath, pair[1], "", "instance file path")
	}
	for _, pair := range [][2]string{{"p", "parser"}} {
		flag.StringVar(&parserName, pair[0], def.Parser, "instance format: RAIL, SCP, CVRP or MPS")
		flag.StringVar(&parserName, pair[1], def.Parser, "instance format: RAIL, SCP, CVRP or MPS")
	}
	for _, pair := range [][2]string{{"o", "out-sol"}} {
		flag.StringVar(&solPath, pair[0], "", "output solution file path (default: instance basename + .sol)")
		flag.StringVar(&solPath, pair[1], "", "output solution file path (default: instance basename + .sol)")
	}
	for _, pair := range [][2]string{{"w", "init-sol"}} {
		flag.StringVar(&initSolPath, pair[0], "", "warm-start solution file path")
		flag.StringVar(&initSolPath, pair[1], "", "warm-start solution file path")
	}
	for _, pair := range [][2]string{{"s", "seed"}} {
		flag.Uint64Var(&seed, pair[0], 0, "PRNG seed")
		flag.Uint64Var(&seed, pair[1], 0, "PRNG seed")
	}
	for _, pair := range [][2]string{{"t", "timelimit"}} {
		flag.Float64Var(&timeLimitSec, pair[0], 0, "time limit in seconds (0 = unbounded)")
		flag.Float64Var(&timeLimitSec, pair[1], 0, "time limit in seconds (0 = unbounded)")
	}
	for _, pair := range [][2]string{{"v", "verbose"}} {
		flag.IntVar(&verbose, pair[0], def.Verbose, "verbosity level, 0-5")
		flag.IntVar(&verbose, pair[1], def.Verbose, "verbosity level, 0-5")
	}
	for _, pair := range [][2]string{{"e", "epsilon"}} {
		flag.Float64Var(&epsilon, pair[0], def.Epsilon, "numerical tolerance for cost/bound comparisons")
		flag.Float64Var(&epsilon, pair[1], def.Epsilon, "numerical tolerance for cost/bound comparisons")
	}
	for _, pair := range [][2]string{{"g", "heur-iters"}} {
		flag.Uint64Var(&heurIters, pair[0], def.HeurIters, "subgradient iterations per heuristic sub-phase")
		flag.Uint64Var(&heurIters, pair[1], def.HeurIters, "subgradient iterations per heuristic sub-phase")
	}
	for _, pair := range [][2]string{{"b", "beta"}} {
		flag.Float64Var(&beta, pair[0], def.Beta, "stop once the best cost is at most beta*LB + epsilon")
		flag.Float64Var(&beta, pair[1], def.Beta, "stop once the best cost is at most beta*LB + epsilon")
	}
	for _, pair := range [][2]string{{"a", "abs-subg-exit"}} {
		flag.Float64Var(&absSubgExit, pair[0], def.AbsSubgradExit, "absolute subgradient stall threshold (not read by the solver; the exit test uses a fixed 1.0)")
		flag.Float64Var(&absSubgExit, pair[1], def.AbsSubgradExit, "absolute subgradient stall threshold (not read by the solver; the exit test uses a fixed 1.0)")
	}
	for _, pair := range [][2]string{{"r", "rel-subg-exit"}} {
		flag.Float64Var(&relSubgExit, pair[0], def.RelSubgradExit, "relative subgradient stall threshold (not read by the solver; the exit test uses a fixed 0.001)")
		flag.Float64Var(&relSubgExit, pair[1], def.RelSubgradExit, "relative subgradient stall threshold (not read by the solver; the exit test uses a fixed 0.001)")
	}
	flag.Float64Var(&alpha, "alpha", 1.1, "fix-fraction growth factor per refinement round")
	flag.Float64Var(&minFixing, "min-fixing", def.MinFixing, "initial fraction of rows fixed per refinement round")
	flag.BoolVar(&useGreedyMultForPricer, "greedy-mult-pricer", false, "feed the pricer the best-primal multipliers instead of the best-dual ones")
	flag.BoolVar(&mpsStrict, "mps-strict", false, "reject unrecognized MPS ROWS/COLUMNS entries instead of skipping them")
	flag.BoolVar(&exact, "exact", false, "solve small instances to proven optimality with branch-and-bound instead of running the heuristic")
	for _, pair := range [][2]string{{"U", "use-unit-costs"}} {
		flag.BoolVar(&useUnitCosts, pair[0], false, "ignore instance costs, treat every column as cost 1")
		flag.BoolVar(&useUnitCosts, pair[1], false, "ignore instance costs, treat every column as cost 1")
	}

	flag.Parse()
	if instPath == "" && flag.NArg() > 0 {
		instPath = flag.Arg(0)
	}
	if instPath == "" {
		fmt.Fprintln(os.Stderr, "error: an instance path is required (positional argument or -i/--inst)")
		flag.Usage()
		os.Exit(1)
	}
	if solPath == "" {
		ext := filepath.Ext(instPath)
		solPath = strings.TrimSuffix(instPath, ext) + ".sol"
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if exact {
		runExact(instPath)
		return
	}

	env := cft.DefaultEnvironment()
	env.InstPath = instPath
	env.SolPath = solPath
	env.InitSolPath = initSolPath
	env.Parser = strings.ToUpper(parserName)
	env.Seed = seed
	if timeLimitSec > 0 {
		env.TimeLimit = time.Duration(timeLimitSec * float64(time.Second))
	}
	env.Verbose = verbose
	env.Epsilon = epsilon
	env.HeurIters = heurIters
	env.Alpha = alpha
	env.Beta = beta
	env.AbsSubgradExit = absSubgExit
	env.RelSubgradExit = relSubgExit
	env.MinFixing = minFixing
	env.UseUnitCosts = useUnitCosts
	env.UseGreedyMultForPricer = useGreedyMultForPricer
	env.MPSStrict = mpsStrict
	env.Init()

	inst, initSol, err := readInstanceAndInitSol(&env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	cft.Printf(&env, 1, cft.TagCFT, "Instance size: %d x %d.\n", inst.NRows(), inst.NCols())

	var warmstart *cft.Solution
	if initSol != nil {
		warmstart = initSol
	}
	result := cft.Run(&env, &inst, warmstart)

	cft.Printf(&env, 1, cft.TagCFT, "Best solution: %.2f, lower bound: %.2f", result.Sol.Cost, result.Dual.LB)

	if err := parse.WriteSolution(env.SolPath, result.Sol); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write solution: %s\n", err)
		os.Exit(1)
	}
}

// readInstanceAndInitSol parses the instance (and, if set, warm-start
// solution) named by env using the configured parser, applying
// use-unit-costs if requested.
func readInstanceAndInitSol(env *cft.Environment) (cft.Instance, *cft.Solution, error) {
	var inst cft.Instance
	var initSol *cft.Solution

	switch env.Parser {
	case cft.ParserRAIL:
		cft.Printf(env, 1, cft.TagCFT, "Parsing RAIL instance from %s\n", env.InstPath)
		i, err := parse.RAIL(env.InstPath)
		if err != nil {
			return cft.Instance{}, nil, err
		}
		inst = i
	case cft.ParserSCP:
		cft.Printf(env, 1, cft.TagCFT, "Parsing SCP instance from %s\n", env.InstPath)
		i, err := parse.SCP(env.InstPath)
		if err != nil {
			return cft.Instance{}, nil, err
		}
		inst = i
	case cft.ParserCVRP:
		cft.Printf(env, 1, cft.TagCFT, "Parsing CVRP instance from %s\n", env.InstPath)
		r, err := parse.CVRP(env.InstPath)
		if err != nil {
			return cft.Instance{}, nil, err
		}
		inst = r.Inst
		if len(r.InitSol.Idxs) > 0 {
			initSol = &r.InitSol
		}
	case cft.ParserMPS:
		cft.Printf(env, 1, cft.TagCFT, "Parsing MPS instance from %s\n", env.InstPath)
		i, err := parse.MPS(env.InstPath, env.MPSStrict)
		if err != nil {
			return cft.Instance{}, nil, err
		}
		inst = i
	default:
		return cft.Instance{}, nil, fmt.Errorf("parser %q does not exist", env.Parser)
	}

	if env.InitSolPath != "" {
		sol, err := parse.Solution(env.InitSolPath)
		if err != nil {
			return cft.Instance{}, nil, err
		}
		initSol = &sol
	}

	if env.UseUnitCosts {
		for j := range inst.Costs {
			inst.Costs[j] = 1.0
		}
		if initSol != nil {
			initSol.Cost = float64(len(initSol.Idxs))
		}
	}

	return inst, initSol, nil
}

// runExact solves a small JSON or MPS instance to proven optimality via
// branch-and-bound, preserving the tool's original, pre-heuristic mode for
// instances small enough to afford it.
func runExact(filename string) {
	ins, err := readLegacyInstance(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read instance due to error: %s\n", err)
		os.Exit(1)
	}

	sol, err := solvers.SolveByBranchAndBound(*ins)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to find optimal solution due to error: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("Solution: %+v\n", sol)
}

// readLegacyInstance reads a cover.Instance from JSON or MPS, matching the
// file-extension-dispatch behaviour this tool originally shipped with
// before it grew the heuristic's own parser set.
func readLegacyInstance(filename string) (*cover.Instance, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		b, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		var ins cover.Instance
		if err := json.Unmarshal(b, &ins); err != nil {
			return nil, err
		}
		return &ins, nil
	case ".mps":
		return cover.ReadMPSInstance(filename)
	}
	return nil, fmt.Errorf("the file extension should be .json or .mps, not %s", ext)
}
