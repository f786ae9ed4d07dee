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
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/snow-abstraction/cover"
	"github.com/snow-abstraction/cover/internal/parse"
	"github.com/snow-abstraction/cover/internal/util"
)

func main() {

	flags := util.NewFlagSet(`Usage: %s -instance instance.json

%s reads in a problem instance and outputs it to standard out using
Go debug formatting. The legacy .json extension loads a cover.Instance;
.mps/.scp/.rail/.cvrp load a cft.Instance through the heuristic's own
parsers (internal/parse), the same ones cmd/cft uses to run the solver.

Arguments:
`)
	filename := flags.String("instance", "",
		"instance filename, one of .json, .mps, .scp, .rail, .cvrp (case-insensitive)")
	mpsStrict := flags.Bool("mpsStrict", false,
		"for .mps files, reject COLUMNS/ROWS entries the parser does not recognise instead of skipping them")
	logLevel := flags.String("logLevel", "Info", "log level (Debug, Info, Warn, Error)")
	flags.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: true,
		Level:     util.ParseLogLevel(*logLevel),
	})))

	if *filename == "" {
		fmt.Fprintln(os.Stderr, "Please supply the instance file name")
		os.Exit(1)
	}

	if err := printInstance(*filename, *mpsStrict); err != nil {
		fmt.Fprintf(os.Stderr, "failed to read instance due to error: %s\n", err)
		os.Exit(1)
	}
}

// printInstance dispatches on file extension. .json is the one format that
// still means a cover.Instance (the exact-cover oracle's native shape);
// every other extension routes through internal/parse into a cft.Instance,
// the same readers cmd/cft uses to load instances for the heuristic.
func printInstance(filename string, mpsStrict bool) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		ins, err := cover.ReadJsonInstance(filename)
		if err != nil {
			return err
		}
		fmt.Printf("Instance: %#v\n", ins)
	case ".mps":
		inst, err := parse.MPS(filename, mpsStrict)
		if err != nil {
			return err
		}
		fmt.Printf("Instance: %#v\n", inst)
	case ".scp":
		inst, err := parse.SCP(filename)
		if err != nil {
			return err
		}
		fmt.Printf("Instance: %#v\n", inst)
	case ".rail":
		inst, err := parse.RAIL(filename)
		if err != nil {
			return err
		}
		fmt.Printf("Instance: %#v\n", inst)
	case ".cvrp":
		result, err := parse.CVRP(filename)
		if err != nil {
			return err
		}
		fmt.Printf("Instance: %#v\n", result.Inst)
		if len(result.InitSol.Idxs) > 0 {
			fmt.Printf("Warm-start solution: %#v\n", result.InitSol)
		}
	default:
		return fmt.Errorf(
			"the file extension should be .json, .mps, .scp, .rail or .cvrp, not %s", filepath.Ext(filename))
	}
	return nil
}
