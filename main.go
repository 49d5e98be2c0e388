package main

import (
	"fmt"
	"os"

	"github.com/hashmap-kz/mdtree/cmd"
)

func main() {
	if err := cmd.NewCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
