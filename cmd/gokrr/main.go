// Command gokrr fits a kernel ridge regression model to a potential-energy
// curve stored in whitespace-delimited text files and writes predictions
// and an optional plot.
package main

import (
	"os"

	"github.com/maxjr82/gokrr/pkg/log"
)

var version = "dev"

func main() {
	root := NewRootCmd(version)
	if err := root.Execute(); err != nil {
		logger := log.Logger()
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
