// SPDX-License-Identifier: MIT

/*
Package main samples positions from a placement file.

	placesample -config frontage.yaml -n 10

prints the feasible set followed by one sampled position per line.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/logger"
	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/placement"
	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/sampling"
)

var (
	configPath = flag.String("config", "", "path to the placement YAML file")
	count      = flag.Int("n", 0, "number of samples; overrides the file's samples")
	seed       = flag.Uint64("seed", 0, "random seed; overrides the file's seed")
	verbose    = flag.Bool("v", false, "log placement decisions")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage of %s:\n  %s -config <file> [-n N] [-seed S] [-v]\n", os.Args[0], os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if *configPath == "" || flag.NArg() != 0 {
		usage()
		os.Exit(2)
	}
	if *verbose {
		logger.Named("placement").SetLevel(logger.DebugLevel)
		logger.Named("interval").SetLevel(logger.DebugLevel)
	}
	if err := do(os.Stdout, *configPath, *count, *seed); err != nil {
		if errors.Is(err, placement.ErrNoFeasibleRegion) {
			fmt.Fprintln(os.Stderr, "no feasible position:", err.Error())
		} else {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
}

// do loads the file at path, applies the non-zero overrides and writes the
// feasible set followed by one sample per line to w.
func do(w io.Writer, path string, n int, seed uint64) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cfg, err := placement.LoadConfig(f)
	if err != nil {
		return errors.Wrapf(err, "%s", path)
	}
	if n > 0 {
		cfg.Samples = n
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	p, err := cfg.Build()
	if err != nil {
		return err
	}
	xs, err := p.SampleN(sampling.NewRand(cfg.Seed), cfg.Samples)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, p.Feasible())
	for _, x := range xs {
		fmt.Fprintln(w, x)
	}
	return nil
}
