package main

import (
	"os"

	"spdhec/cmd/spdhec/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
