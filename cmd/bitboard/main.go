package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	draw = flag.Bool("draw", false, "render the bitmap as a colorized checkerboard")

	benchRun        = flag.Bool("bench", false, "run benchmark mode")
	benchIterations = flag.Int("bench.iterations", 10_000_000, "iterations per benchmarked operation")
	benchParallel   = flag.Bool("bench.parallel", true, "spread benchmark iterations over all CPUs")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	if *benchRun {
		return runBench(*benchIterations, *benchParallel)
	}
	return printMask(args, *draw)
}
