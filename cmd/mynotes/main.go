package main

import (
	"os"

	"github.com/existflow/mynotes/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
