// Command odsf builds OpenDocument formulas from typed expression documents.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/odsf/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
