// Command play runs the search against a FEN position and prints the
// chosen move.
package main

import (
	"flag"
	"fmt"
	"os"

	"bitchess/board"
	"bitchess/search"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 5, "Maximum search depth")
	quiesce := flag.Bool("quiesce", true, "Extend leaf nodes with quiescence search")
	flag.Parse()

	pos := board.New()
	if err := pos.LoadFEN(*fen); err != nil {
		fmt.Fprintf(os.Stderr, "LoadFEN error: %v\n", err)
		os.Exit(2)
	}

	s := search.NewSearcher(search.Config{MaxDepth: *depth, Quiesce: *quiesce})
	result := s.FindBestMove(pos)

	if result.BestMove == (board.Move{}) {
		fmt.Println("no legal moves")
		return
	}
	fmt.Printf("bestmove %s score %d depth %d nodes %d\n",
		result.BestMove, result.Score, result.Depth, result.NodesSearched)
}
