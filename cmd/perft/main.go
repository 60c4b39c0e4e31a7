// Command perft counts legal move tree leaf nodes from a FEN position, to
// validate the move generator against known node counts.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"bitchess/board"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos := board.New()
	if err := pos.LoadFEN(*fen); err != nil {
		fmt.Fprintf(os.Stderr, "LoadFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := board.PerftDivide(pos, *depth)
		type kv struct {
			move string
			n    uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].move < arr[j].move })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.move, x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := board.Perft(pos, *depth)
	elapsed := time.Since(start)
	nps := float64(nodes) / elapsed.Seconds()

	fmt.Printf("depth %d\tnodes %d\ttime %s\tnps %.0f\n", *depth, nodes, elapsed, nps)
}
