//
// dts - Russian draughts decision tree statistics tool
//
// MIT License
//
// Copyright (c) 2018-2026 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/pkg/profile"

	"github.com/frankkopp/dts/internal/cache"
	"github.com/frankkopp/dts/internal/config"
	"github.com/frankkopp/dts/internal/logging"
	"github.com/frankkopp/dts/internal/mtsearch"
	"github.com/frankkopp/dts/internal/position"
	"github.com/frankkopp/dts/internal/search"
	"github.com/frankkopp/dts/internal/stats"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("dts", flag.ContinueOnError)

	var (
		maxDepth       int
		verbose        bool
		timeoutStr     string
		randomize      bool
		maxWidth       int
		cacheEnabled   bool
		printCacheHits bool
		printWins      bool
		cacheImpl      string
		threads        int
		profileFlag    bool
	)

	fs.IntVar(&maxDepth, "d", search.DefaultMaxDepth, "max recursion depth")
	fs.IntVar(&maxDepth, "max-depth", search.DefaultMaxDepth, "max recursion depth")
	fs.BoolVar(&verbose, "v", false, "emit every visited board")
	fs.BoolVar(&verbose, "verbose", false, "emit every visited board")
	fs.StringVar(&timeoutStr, "t", "10s", "search timeout, e.g. 10s, 500ms, 2m")
	fs.StringVar(&timeoutStr, "timeout", "10s", "search timeout, e.g. 10s, 500ms, 2m")
	fs.BoolVar(&randomize, "r", false, "visit successors in random order")
	fs.BoolVar(&randomize, "randomize", false, "visit successors in random order")
	fs.IntVar(&maxWidth, "w", 0, "limit successors visited per node (0 = unlimited)")
	fs.IntVar(&maxWidth, "max-width", 0, "limit successors visited per node (0 = unlimited)")
	fs.BoolVar(&cacheEnabled, "c", false, "enable transposition cache & loop detection")
	fs.BoolVar(&cacheEnabled, "cache", false, "enable transposition cache & loop detection")
	fs.BoolVar(&printCacheHits, "H", false, "print a line for every cache hit")
	fs.BoolVar(&printCacheHits, "print-cache-hits", false, "print a line for every cache hit")
	fs.BoolVar(&printWins, "W", false, "print the winning path for every dead-end leaf")
	fs.BoolVar(&printWins, "print-wins", false, "print the winning path for every dead-end leaf")
	fs.StringVar(&cacheImpl, "C", cache.ImplTrie, "cache backend: std, dense, or trie")
	fs.StringVar(&cacheImpl, "cache-impl", cache.ImplTrie, "cache backend: std, dense, or trie")
	fs.IntVar(&threads, "j", 1, "worker count for mtdfs")
	fs.IntVar(&threads, "threads", 1, "worker count for mtdfs")
	fs.BoolVar(&profileFlag, "profile", false, "capture a CPU profile for the run into ./cpu.pprof")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: dts [flags] <dfs|mtdfs>")
		fs.Usage()
		return 1
	}
	command := fs.Arg(0)
	if command != "dfs" && command != "mtdfs" {
		fmt.Fprintf(os.Stderr, "unknown command %q: expected dfs or mtdfs\n", command)
		return 1
	}

	config.Setup()
	logging.GetLog()

	timeout, err := config.ParseDuration(timeoutStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cacheFactory := func() (cache.Cache, error) { return cache.New(cacheImpl, 1<<16) }
	if _, err := cacheFactory(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if profileFlag {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	var stop int32
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		atomic.StoreInt32(&stop, 1)
	}()

	driverLimits := search.Limits{
		MaxDepth:       maxDepth,
		MaxWidth:       maxWidth,
		Randomize:      randomize,
		Timeout:        timeout,
		Verbose:        verbose,
		PrintWins:      printWins,
		PrintCacheHits: printCacheHits,
	}
	if verbose {
		driverLimits.StatusPeriod = search.DefaultStatusPeriod
	}

	var st *stats.Stats
	var completed bool

	switch command {
	case "dfs":
		if cacheEnabled {
			c, _ := cacheFactory()
			driverLimits.Cache = c
		}
		d := search.NewDriver(driverLimits, &stop)
		s, ok := d.Run(position.Initial)
		st, completed = s, ok
	case "mtdfs":
		mtLimits := mtsearch.Limits{
			Workers: threads,
			Driver:  driverLimits,
		}
		if cacheEnabled {
			mtLimits.CacheFactory = cacheFactory
		}
		s, ok, err := mtsearch.Run(position.Initial, mtLimits, &stop)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		st, completed = s, ok
	}

	fmt.Println(st.String())
	if !completed {
		fmt.Println("search cancelled before completion")
	}
	return 0
}
