package main

import (
	"os"

	"github.com/seedbatch-dev/seedbatch/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
