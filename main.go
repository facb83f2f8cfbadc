package main

import (
	"os"

	"github.com/cakeart/cakeart/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
