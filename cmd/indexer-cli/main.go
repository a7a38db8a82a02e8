package main

import (
	"os"

	"github.com/feral-file/ff-algorand-indexer/cmd/indexer-cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
