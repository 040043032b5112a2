// Command sssp prints single-source shortest paths over a weighted directed graph
// described on the command line.
//
// Usage:
//
//	sssp --demo --symmetric -s A
//	sssp -v A -v B -v C -e A:B:4 -e B:C:1 -s A
//	sssp --auto-vertices -e A:B:4 -e B:C:1 -s A --dot | dot -Tsvg > paths.svg
package main

import (
	"os"

	"github.com/safing/portbase/log"
)

func main() {
	err := newRootCmd().Execute()
	log.Shutdown()
	if err != nil {
		os.Exit(1)
	}
}
