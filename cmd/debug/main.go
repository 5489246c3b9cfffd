package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"morris/internal/morris"
)

// 用法：debug [notation]，不给参数时打印开局
func main() {
	flag.Parse()

	g := morris.NewGame(morris.White)
	if flag.NArg() > 0 {
		var err error
		g, err = morris.Decode(strings.Join(flag.Args(), " "))
		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println("Notation:", g.Encode())
	fmt.Printf("Hash: %016x\n", g.Hash())
	fmt.Println("Phase:", g.Phase(), "to move:", g.Current())
	fmt.Println(g)

	b := g.Board()
	for _, c := range []morris.Color{morris.White, morris.Black} {
		fmt.Printf("%s mills: %v, can move: %v, flying: %v\n", c, b.Mills(c), g.CanMove(c), g.Flying(c))
	}
	if r := g.Result(); r.Over {
		if r.Draw {
			fmt.Println("Result: draw,", r.Reason)
		} else {
			fmt.Printf("Result: %s wins, %s\n", r.Winner, r.Reason)
		}
	}
}
