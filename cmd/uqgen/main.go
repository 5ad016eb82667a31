package main

import (
	"os"

	"github.com/unreal-qt/uqgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
