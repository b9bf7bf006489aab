package main

import (
	"flag"
	"os"
	"runtime/pprof"
	"time"

	"github.com/corvid-labs/zugzwang"
)

// runPerft implements the `zugzwang perft` subcommand: walk the legal move
// tree from a position to a fixed depth, optionally under a CPU/heap
// profiler, and report the node count and elapsed time.
func runPerft(args []string) {
	fs := flag.NewFlagSet("perft", flag.ExitOnError)
	depth := fs.Int("depth", 5, "perft depth")
	fen := fs.String("fen", zugzwang.StartingFEN, "FEN of the root position")
	divide := fs.Bool("divide", false, "print per-root-move node counts")
	cpuprofile := fs.String("cpuprofile", "", "file to write a CPU profile to")
	memprofile := fs.String("memprofile", "", "file to write a heap profile to")
	fs.Parse(args)

	pos, err := zugzwang.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("parsing FEN: %v", err)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatalf("creating cpu profile: %v", err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	start := time.Now()
	if *divide {
		results := zugzwang.PerftDivide(pos, *depth)
		var total uint64
		for uciMove, n := range results {
			log.Infof("%s %d", uciMove, n)
			total += n
		}
		log.Infof("total %d", total)
	} else {
		nodes := zugzwang.Perft(pos, *depth)
		log.Infof("nodes %d", nodes)
	}
	log.Infof("elapsed %s", time.Since(start))

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatalf("creating mem profile: %v", err)
		}
		defer f.Close()
		pprof.WriteHeapProfile(f)
	}
}
