package main

import (
	"os"

	"github.com/moneta-ai/moneta/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
