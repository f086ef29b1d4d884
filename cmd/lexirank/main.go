// main is the entry point for the lexirank CLI.
package main

import (
	"os"

	"github.com/mpetrulis/lexirank/cmd"
	"github.com/mpetrulis/lexirank/internal/contract"
)

func main() {
	err := cmd.Execute()
	cmd.CloseStore()
	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("failed to stop profiling", perr)
	}
	if err != nil {
		contract.LogWarn("command failed", err)
		os.Exit(1)
	}
}
