package main

import (
	"fmt"
	"os"

	"citydesigner/internal/game"
)

func main() {
	if err := game.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "citydesigner:", err)
		os.Exit(1)
	}
}
