package main

import (
	"os"

	"github.com/agenthub-dev/agenthub/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
