// Command solve decides one move for a board given on the command
// line. Debug aid for heuristic tuning: it prints the pivot verdict,
// the snake prefix, the score and the chosen move.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Simba256/2048/engine"
	"github.com/Simba256/2048/game"
	"github.com/Simba256/2048/rules"
)

func main() {
	boardArg := flag.String("board", "", "Board as rows separated by ';' and cells by ',' (1 = empty), e.g. \"2,2,2,1;4,16,2,2;8,64,32,8;32,128,512,16384\"")
	flag.Parse()

	if *boardArg == "" {
		flag.Usage()
		log.Fatal("missing -board")
	}

	b, err := game.Parse(*boardArg)
	if err != nil {
		log.Fatalf("bad board: %v", err)
	}

	cfg := engine.DefaultConfig()
	e := engine.New(cfg)

	fmt.Println("board:")
	fmt.Print(b)

	if m, ok := e.CheckPivot(b); ok {
		fmt.Printf("pivot override: %s\n", m)
	} else {
		fmt.Println("pivot override: none")
	}

	fmt.Printf("snake prefix: %v\n", engine.MonotonicRun(b))
	h := engine.Heuristic{SnakeBase: cfg.SnakeBase, RawBase: cfg.RawBase}
	fmt.Printf("score: %.0f\n", h.Score(b))

	move := e.NextMove(b)
	fmt.Printf("move: %s (key %q)\n", move, move.Key())
	if move != game.MoveUndo {
		fmt.Println("after:")
		fmt.Print(rules.Apply(b, move))
	}
}
