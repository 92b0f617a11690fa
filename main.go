// Package main provides the entry point for CacheSim.
// CacheSim is a trace-driven multi-level CPU cache hierarchy simulator.
//
// For the full CLI, use: go run ./cmd/cachesim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("CacheSim - Memory Hierarchy Simulator")
	fmt.Println("")
	fmt.Println("Usage: cachesim <BLOCKSIZE> <L1_SIZE> <L1_ASSOC> <VC_NUM_BLOCKS> <L2_SIZE> <L2_ASSOC> <trace_file>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -config    Path to cache parameters JSON file")
	fmt.Println("  -v         Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/cachesim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/cachesim' instead.")
	}
}
