package main

import (
	"fmt"
	"os"

	"github.com/calebcase/numerics/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "numconv: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
