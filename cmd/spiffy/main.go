package main

import (
	"os"

	"github.com/msto63/spiffy/cmd/spiffy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
