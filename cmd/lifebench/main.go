// Command lifebench runs a fixed number of generations of a cellular
// automaton grid and reports throughput.
//
// Usage:
//
//	lifebench -height 1000 -width 1000 -rule B3/S23 -generations 100
//
// It seeds the grid with a single glider near the top-left corner by
// default, or a pseudo-random fill with -fill, then steps it -generations
// times and prints elapsed time and cells/sec. -print renders the final
// grid to stdout.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/lifeclusters/bitlife/life"
)

var (
	height      = flag.Int("height", 1000, "grid height")
	width       = flag.Int("width", 1000, "grid width")
	ruleStr     = flag.String("rule", "B3/S23", "rule in Bx/Sy form")
	generations = flag.Int("generations", 100, "number of generations to step")
	chunkLength = flag.Int("chunk", 0, "row chunk length (0 = engine default)")
	parallelStr = flag.String("parallel", "auto", "auto, true, or false")
	fill        = flag.Float64("fill", 0, "fraction of cells to seed at random (0 seeds a single glider instead)")
	seed        = flag.Int64("seed", 1, "random seed for -fill")
	print       = flag.Bool("print", false, "print the final grid to stdout")
)

func main() {
	flag.Parse()

	rule, err := life.ParseRule(*ruleStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	g, err := life.NewGrid(*height, *width, rule)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer g.Close()

	seedGrid(g)

	opts := life.StepOptions{ChunkLength: *chunkLength}
	switch *parallelStr {
	case "auto":
	case "true":
		v := true
		opts.Parallel = &v
	case "false":
		v := false
		opts.Parallel = &v
	default:
		fmt.Fprintf(os.Stderr, "Error: -parallel must be auto, true, or false\n")
		os.Exit(1)
	}

	fmt.Printf("lifebench: %dx%d, rule %s, %d generations, dispatch=%s\n",
		*height, *width, rule.String(), *generations, life.CurrentDispatchLevel())

	start := time.Now()
	for i := 0; i < *generations; i++ {
		g.Step(opts)
	}
	elapsed := time.Since(start)

	cells := float64(*height) * float64(*width) * float64(*generations)
	fmt.Printf("elapsed: %s, %.2f Mcells/sec, final population: %d\n",
		elapsed, cells/elapsed.Seconds()/1e6, g.LiveCount())

	if *print {
		fmt.Println(g.String())
	}
}

func seedGrid(g *life.Grid) {
	if *fill > 0 {
		rng := rand.New(rand.NewSource(*seed))
		for i := 0; i < g.Height(); i++ {
			for j := 0; j < g.Width(); j++ {
				if rng.Float64() < *fill {
					g.Set(i, j, true)
				}
			}
		}
		return
	}

	glider := [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	for _, c := range glider {
		if c[0] < g.Height() && c[1] < g.Width() {
			g.Set(c[0], c[1], true)
		}
	}
}
