package main

import (
	"os"

	"github.com/anrid/malaria-stats/pkg/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
