// Package main provides the entry point for CacheSim.
// CacheSim simulates a configurable multi-level CPU cache hierarchy
// driven by a memory address trace.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/smdupor/CacheSim/cache"
	"github.com/smdupor/CacheSim/config"
	"github.com/smdupor/CacheSim/trace"
)

var (
	configPath = flag.String("config", "", "Path to cache parameters JSON file")
	verbose    = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()
	os.Exit(run(flag.Args(), os.Stdout, os.Stderr))
}

// run executes one simulation: parameter resolution, the trace loop, and
// the final reports. Reports go to stdout, diagnostics to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	params, tracePath, err := resolveParams(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	traceFile, err := os.Open(tracePath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: Unable to open file %s\n", tracePath)
		return 1
	}
	defer func() { _ = traceFile.Close() }()

	hierarchy, err := cache.Build(*params)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	printConfiguration(stdout, params, tracePath)

	events := 0
	scanner := trace.NewScanner(traceFile)
	for scanner.Scan() {
		ev := scanner.Event()
		switch ev.Op {
		case trace.OpRead:
			hierarchy.Read(ev.Addr)
			events++
		case trace.OpWrite:
			hierarchy.Write(ev.Addr)
			events++
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "Error: failed to read trace: %v\n", err)
		return 1
	}

	hierarchy.ContentsReport(stdout)
	hierarchy.StatisticsReport(stdout)

	if *verbose {
		fmt.Fprintf(stderr, "\nProcessed %d trace events from %s\n", events, tracePath)
	}

	return 0
}

// resolveParams produces the hierarchy parameters and trace path from the
// command line. With -config, the JSON file supplies the parameters and
// the trace file is the only positional argument; otherwise the seven
// positional arguments are, in order:
//
//	BLOCKSIZE L1_SIZE L1_ASSOC VC_NUM_BLOCKS L2_SIZE L2_ASSOC TRACE_FILE
func resolveParams(args []string) (*config.Params, string, error) {
	if *configPath != "" {
		if len(args) != 1 {
			return nil, "", fmt.Errorf("Expected inputs:1 Given inputs:%d", len(args))
		}
		params, err := config.Load(*configPath)
		if err != nil {
			return nil, "", err
		}
		return params, args[0], nil
	}

	if len(args) != 7 {
		return nil, "", fmt.Errorf("Expected inputs:7 Given inputs:%d", len(args))
	}

	params := &config.Params{}
	for _, field := range []struct {
		name string
		arg  string
		dst  *int
	}{
		{"BLOCKSIZE", args[0], &params.BlockSize},
		{"L1_SIZE", args[1], &params.L1Size},
		{"L1_ASSOC", args[2], &params.L1Assoc},
		{"VC_NUM_BLOCKS", args[3], &params.VCNumBlocks},
		{"L2_SIZE", args[4], &params.L2Size},
		{"L2_ASSOC", args[5], &params.L2Assoc},
	} {
		value, err := strconv.Atoi(field.arg)
		if err != nil {
			return nil, "", fmt.Errorf("%s must be an integer, got %q", field.name, field.arg)
		}
		*field.dst = value
	}

	return params, args[6], nil
}

// printConfiguration echoes the simulated configuration.
func printConfiguration(sink io.Writer, params *config.Params, tracePath string) {
	fmt.Fprintf(sink,
		"  ===== Simulator configuration =====\n"+
			"  L1_BLOCKSIZE:                     %d\n"+
			"  L1_SIZE:                          %d\n"+
			"  L1_ASSOC:                         %d\n"+
			"  VC_NUM_BLOCKS:                    %d\n"+
			"  L2_SIZE:                          %d\n"+
			"  L2_ASSOC:                         %d\n"+
			"  trace_file:                       %s\n"+
			"  ===================================\n\n",
		params.BlockSize, params.L1Size, params.L1Assoc,
		params.VCNumBlocks, params.L2Size, params.L2Assoc, tracePath)
}
