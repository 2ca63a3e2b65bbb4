package main

import (
	"fmt"
	"os"

	"github.com/byterings/psync/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "psync: %v\n", err)
		if cmd.IsFlagError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
