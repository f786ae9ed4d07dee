/*
 Copyright (C) 2023 Douglas Wayne Potter

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
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/snow-abstraction/cover"
	"github.com/snow-abstraction/cover/internal/parse"
)

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(
		w,
		`Usage: %s -seed 1 -m 100 -n 10

%s outputs a random instance to standard out (-format json) or to -out
(-format scp). The instance generated may be infeasible.

For certain m and n will take a long time because each
subset is generated randomly but must be unique. In fact if the number of
possible nonempty subsets (2^n-1) is less than m then the program will never
terminate.

Arguments:
`,
		os.Args[0],
		os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	var seed int64
	flag.Int64Var(&seed, "seed", 1, "seed for the random generator")
	var m int
	flag.IntVar(&m, "m", 0, "number of subsets")
	var n int
	flag.IntVar(&n, "n", 0, "number of elements to be covered")
	format := flag.String("format", "json", "output format: json (to stdout) or scp (OR-Library format, to -out)")
	outPath := flag.String("out", "instance.scp", "output path, only used for -format scp")
	flag.Parse()

	if m < 0 {
		log.Fatalln("m must be non-negative (0 <= m)")
	}
	if n < 0 {
		log.Fatalln("n must be non-negative (0 <= n)")
	}

	var ins cover.Instance
	if n > 0 {
		ins = cover.MakeRandomInstance(m, n, seed)
	} else {
		// add empty lists to avoid "Null" text in JSON for zero Instance.
		ins = cover.Instance{N: n, Subsets: make([][]int, 0), Costs: make([]float64, 0)}
	}

	switch *format {
	case "json":
		b, err := json.MarshalIndent(ins, "", "  ")
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Print(string(b))
	case "scp":
		inst, err := cover.ToCFTInstance(ins)
		if err != nil {
			log.Fatalln(err)
		}
		if err := parse.WriteSCP(*outPath, inst); err != nil {
			log.Fatalln(err)
		}
	default:
		log.Fatalf("unknown -format %q, expected json or scp", *format)
	}
}
