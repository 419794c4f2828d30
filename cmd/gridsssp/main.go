// Command gridsssp solves single-source shortest paths over 2D and 3D
// lattice graphs read from text files, and generates such files.
//
//	gridsssp solve --input in.txt --output out.txt --flag3d 0 --algo dijkstra
//	gridsssp solve --input in.txt --output out.txt --algo bellmanford --nthreads 8
//	gridsssp gen --output in.txt --dims 100,100 --source 50,50 --min 1 --max 10
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
